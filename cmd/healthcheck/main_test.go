package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		status   int
		wantCode int
		wantLog  string
	}{
		{"healthy", `{"status":"healthy","message":"API is running"}`, http.StatusOK, 0, ""},
		{"unhealthy status", `{"status":"degraded","message":"x"}`, http.StatusOK, 1, "service unhealthy"},
		{"server error", `{"error":"boom"}`, http.StatusInternalServerError, 1, "health probe failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/health", r.URL.Path)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			core, logs := observer.New(zap.DebugLevel)
			code := run(ts.URL, time.Second, zap.New(core))

			assert.Equal(t, tt.wantCode, code)
			if tt.wantLog != "" {
				assert.Equal(t, 1, logs.FilterMessage(tt.wantLog).Len())
			}
		})
	}
}

func TestRun_InvalidTarget(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	assert.Equal(t, 1, run("not a url", time.Second, zap.New(core)))
	assert.Equal(t, 1, logs.FilterMessage("invalid target").Len())
}
