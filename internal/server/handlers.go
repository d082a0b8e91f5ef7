package server

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hvaclab/mchxclean/pkg/mchxclean"
)

// previewRows is how many consolidated rows the preview returns.
const previewRows = 5

type streamEvent struct {
	Type      string      `json:"type"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

// openUpload pulls the uploaded workbook out of the multipart form,
// enforcing the configured size cap before any parsing happens.
func (s *Server) openUpload(c *gin.Context) (multipart.File, *multipart.FileHeader, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxUploadBytes)
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		return nil, nil, fmt.Errorf("no file uploaded: %w", err)
	}
	if header.Size > s.cfg.MaxUploadBytes {
		file.Close()
		return nil, nil, fmt.Errorf("file too large (%d bytes, limit %d)", header.Size, s.cfg.MaxUploadBytes)
	}
	return file, header, nil
}

// handleClean runs the pipeline and answers with a preview plus a one-time
// download token.
func (s *Server) handleClean(c *gin.Context) {
	file, header, err := s.openUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	res, err := mchxclean.Clean(file, mchxclean.DefaultOptions())
	if err != nil {
		msg, hint := mchxclean.UserMessage(err)
		s.log.WithError(err).WithField("upload", header.Filename).Warn("clean failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": msg, "hint": hint})
		return
	}

	s.log.WithFields(logrus.Fields{
		"upload": header.Filename,
		"sheets": len(res.Table.Records),
	}).Info("clean succeeded")

	token := s.downloads.put(res.Workbook.Bytes(), s.cfg.OutputFilename, s.cfg.DownloadTTL)
	c.JSON(http.StatusOK, gin.H{
		"rows":         len(res.Table.Records),
		"columns":      len(res.Table.Fields),
		"fields":       res.Table.Fields,
		"preview":      res.Table.Preview(previewRows),
		"download_url": "/api/clean/download/" + token,
	})
}

// handleCleanStream is the SSE variant: progress events while the pipeline
// runs, then a done event carrying the preview and download URL.
func (s *Server) handleCleanStream(c *gin.Context) {
	file, header, err := s.openUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	send := func(ev streamEvent) {
		ev.Timestamp = time.Now()
		b, err := json.Marshal(ev)
		if err != nil {
			return
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", b)
		flusher.Flush()
	}

	send(streamEvent{Type: "start", Message: "Reading uploaded workbook"})

	lastPercent := -1
	opts := mchxclean.DefaultOptions()
	opts.Progress = func(p mchxclean.ProgressEvent) {
		if p.Percent == lastPercent {
			return
		}
		lastPercent = p.Percent
		send(streamEvent{
			Type:    "progress",
			Message: p.Sheet,
			Data:    map[string]interface{}{"percent": p.Percent},
		})
	}

	res, err := mchxclean.Clean(file, opts)
	if err != nil {
		msg, hint := mchxclean.UserMessage(err)
		s.log.WithError(err).WithField("upload", header.Filename).Warn("clean failed")
		send(streamEvent{
			Type:    "error",
			Message: msg,
			Data:    map[string]interface{}{"hint": hint},
		})
		return
	}

	token := s.downloads.put(res.Workbook.Bytes(), s.cfg.OutputFilename, s.cfg.DownloadTTL)
	send(streamEvent{
		Type:    "done",
		Message: fmt.Sprintf("Extracted %d records", len(res.Table.Records)),
		Data: map[string]interface{}{
			"percent":      100,
			"rows":         len(res.Table.Records),
			"columns":      len(res.Table.Fields),
			"fields":       res.Table.Fields,
			"preview":      res.Table.Preview(previewRows),
			"download_url": "/api/clean/download/" + token,
		},
	})
}

// handleDownload serves a finished workbook by one-time token.
func (s *Server) handleDownload(c *gin.Context) {
	entry, ok := s.downloads.take(c.Param("token"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download expired or unknown"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", entry.filename))
	c.Data(http.StatusOK, mchxclean.OutputMIMEType, entry.data)
}
