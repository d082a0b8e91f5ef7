package server

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// downloadStore keeps finished workbooks for a short window between the
// clean request and the follow-up download. Entries are single-use.
type downloadStore struct {
	mu      sync.Mutex
	entries map[string]downloadEntry
}

type downloadEntry struct {
	data     []byte
	filename string
	expires  time.Time
}

func newDownloadStore() *downloadStore {
	return &downloadStore{entries: make(map[string]downloadEntry)}
}

// put stores data under a fresh token and returns the token. Expired
// entries are swept opportunistically.
func (d *downloadStore) put(data []byte, filename string, ttl time.Duration) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now()
	for token, e := range d.entries {
		if now.After(e.expires) {
			delete(d.entries, token)
		}
	}

	token := uuid.NewString()
	d.entries[token] = downloadEntry{
		data:     data,
		filename: filename,
		expires:  now.Add(ttl),
	}
	return token
}

// take removes and returns the entry for token. Unknown and expired tokens
// report false.
func (d *downloadStore) take(token string) (downloadEntry, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, ok := d.entries[token]
	if !ok {
		return downloadEntry{}, false
	}
	delete(d.entries, token)
	if time.Now().After(e.expires) {
		return downloadEntry{}, false
	}
	return e, true
}
