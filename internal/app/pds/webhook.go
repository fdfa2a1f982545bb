package pds

import (
	"bytes"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// WebhookServiceImpl implementation of web.WebhookService
type WebhookServiceImpl struct {
	Downloads   DownloadService
	Connections ConnectionCatalog
}

// NewWebhookService will return a new WebhookServiceImpl
func NewWebhookService(downloads DownloadService, connections ConnectionCatalog) *WebhookServiceImpl {
	return &WebhookServiceImpl{
		Downloads:   downloads,
		Connections: connections,
	}
}

// lineRecorder collects the sink output of one download for the webhook response
type lineRecorder struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (r *lineRecorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	zap.L().Debug("downloader output", zap.String("line", strings.TrimRight(string(p), "\r\n")))
	return r.buf.Write(p)
}

// Lines returns the recorded output, one entry per line
func (r *lineRecorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	text := strings.TrimSuffix(r.buf.String(), "\n")
	if len(text) == 0 {
		return []string{}
	}
	return strings.Split(text, "\n")
}
