package debugserver

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestHandleStats(t *testing.T) {
	s := NewServer(0, func() Stats {
		return Stats{LoadedSectors: 7, FrameSeconds: 0.016, CameraY: 2}
	})

	rec := httptest.NewRecorder()
	s.handleStats(rec, httptest.NewRequest("GET", "/stats", nil))

	if rec.Code != 200 {
		t.Fatalf("/stats returned %d", rec.Code)
	}

	var got Stats
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("stats response is not JSON: %v", err)
	}
	if got.LoadedSectors != 7 || got.CameraY != 2 {
		t.Errorf("stats = %+v", got)
	}
}

func TestHandleHealth(t *testing.T) {
	s := NewServer(0, func() Stats { return Stats{} })

	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != 200 {
		t.Fatalf("/health returned %d", rec.Code)
	}
}
