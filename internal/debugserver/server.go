// Package debugserver exposes runtime stats over HTTP while the
// viewer is running, for poking at from a second terminal.
package debugserver

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Stats is a snapshot of the viewer's state.
type Stats struct {
	LoadedSectors int     `json:"loaded_sectors"`
	FrameSeconds  float64 `json:"frame_seconds"`
	CameraX       float64 `json:"camera_x"`
	CameraY       float64 `json:"camera_y"`
	CameraZ       float64 `json:"camera_z"`
}

// Server provides HTTP endpoints for runtime stats
type Server struct {
	port     int
	snapshot func() Stats
	server   *http.Server
}

// NewServer creates a stats server. snapshot is called per request
// and must be safe to call from any goroutine.
func NewServer(port int, snapshot func() Stats) *Server {
	return &Server{
		port:     port,
		snapshot: snapshot,
	}
}

// Start starts the stats server
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/stats", s.handleStats)
	mux.HandleFunc("/health", s.handleHealth)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: mux,
	}

	fmt.Printf("Stats server starting on port %d\n", s.port)
	return s.server.ListenAndServe()
}

// Stop stops the stats server
func (s *Server) Stop() error {
	if s.server != nil {
		return s.server.Close()
	}
	return nil
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.snapshot())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}
