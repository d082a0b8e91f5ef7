package server

// indexHTML is the upload page. It drives the stream endpoint and renders
// the preview plus a download link when the run finishes.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Excel Data Cleaner for MCHX (Charge-EEV) Experimental Results</title>
<style>
body { font-family: sans-serif; max-width: 64rem; margin: 2rem auto; padding: 0 1rem; }
#bar { width: 100%; height: 1rem; background: #eee; border-radius: 4px; overflow: hidden; display: none; }
#bar div { height: 100%; width: 0; background: #2b8a3e; transition: width .2s; }
#error { color: #c92a2a; white-space: pre-line; }
table { border-collapse: collapse; margin-top: 1rem; font-size: .85rem; }
th, td { border: 1px solid #ccc; padding: .25rem .5rem; text-align: right; }
th { background: #f1f3f5; }
</style>
</head>
<body>
<h1>Excel Data Cleaner for MCHX (Charge-EEV) Experimental Results</h1>
<p>Upload a workbook with one identically formatted sheet per test run to
consolidate all data into a clean, formatted table.</p>
<form id="form">
  <input type="file" name="file" accept=".xlsx" required>
  <button type="submit">Clean</button>
</form>
<div id="bar"><div></div></div>
<p id="status"></p>
<p id="error"></p>
<div id="result"></div>
<script>
const form = document.getElementById('form');
form.addEventListener('submit', async (e) => {
  e.preventDefault();
  const bar = document.getElementById('bar');
  const fill = bar.firstElementChild;
  const status = document.getElementById('status');
  const error = document.getElementById('error');
  const result = document.getElementById('result');
  error.textContent = '';
  result.innerHTML = '';
  bar.style.display = 'block';
  fill.style.width = '0';

  const resp = await fetch('/api/clean/stream', { method: 'POST', body: new FormData(form) });
  if (!resp.ok) {
    const body = await resp.json().catch(() => ({}));
    error.textContent = body.error || resp.statusText;
    return;
  }
  const reader = resp.body.getReader();
  const decoder = new TextDecoder();
  let buffer = '';
  for (;;) {
    const { done, value } = await reader.read();
    if (done) break;
    buffer += decoder.decode(value, { stream: true });
    let idx;
    while ((idx = buffer.indexOf('\n\n')) >= 0) {
      const line = buffer.slice(0, idx);
      buffer = buffer.slice(idx + 2);
      if (!line.startsWith('data: ')) continue;
      handle(JSON.parse(line.slice(6)));
    }
  }

  function handle(ev) {
    if (ev.type === 'start') status.textContent = ev.message;
    if (ev.type === 'progress') {
      fill.style.width = ev.data.percent + '%';
      status.textContent = 'Extracting: ' + ev.message;
    }
    if (ev.type === 'error') {
      error.textContent = ev.message + '\n' + (ev.data && ev.data.hint || '');
      status.textContent = '';
    }
    if (ev.type === 'done') {
      fill.style.width = '100%';
      status.textContent = ev.message;
      renderPreview(ev.data);
    }
  }

  function renderPreview(data) {
    let html = '<p><a href="' + data.download_url + '">Download cleaned workbook</a></p>';
    html += '<table><tr>';
    for (const f of data.fields) html += '<th>' + f + '</th>';
    html += '</tr>';
    for (const row of data.preview) {
      html += '<tr>';
      for (const v of row) html += '<td>' + (v === null ? '' : v) + '</td>';
      html += '</tr>';
    }
    html += '</table>';
    result.innerHTML = html;
  }
});
</script>
</body>
</html>
`
