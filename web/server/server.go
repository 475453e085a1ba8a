package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/timothyhahn/raytracer-go/pkg/renderer"
	"github.com/timothyhahn/raytracer-go/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port     int
	upgrader websocket.Upgrader
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{
		port: port,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// RenderRequest is the first message a client sends on the render socket
type RenderRequest struct {
	Scene   string `json:"scene"`   // Scene name (e.g., "showcase")
	Width   int    `json:"width"`   // Image width
	Height  int    `json:"height"`  // Image height
	Workers int    `json:"workers"` // Render workers, 0 = one per CPU
}

// ProgressUpdate is sent to the client as rows finish. ImageData is only
// populated on the final update.
type ProgressUpdate struct {
	RowsDone   int    `json:"rowsDone"`
	TotalRows  int    `json:"totalRows"`
	ImageData  string `json:"imageData,omitempty"` // Base64 encoded PNG
	IsComplete bool   `json:"isComplete"`
	ElapsedMs  int64  `json:"elapsedMs"`
}

// ErrorMessage reports a failure to the client before the socket closes
type ErrorMessage struct {
	Error string `json:"error"`
}

// Start starts the web server
func (s *Server) Start() error {
	http.Handle("/", http.FileServer(http.Dir("static/")))

	http.HandleFunc("/ws/render", s.handleRender)
	http.HandleFunc("/api/health", s.handleHealth)
	http.HandleFunc("/api/scenes", s.handleScenes)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scene names
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(scene.Builders))
	for name := range scene.Builders {
		names = append(names, name)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string][]string{"scenes": names})
}

// handleRender upgrades to a websocket, reads one render request, and
// streams progress updates while the render runs.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Render error: websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var req RenderRequest
	if err := conn.ReadJSON(&req); err != nil {
		s.sendError(conn, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	if err := validateRequest(&req); err != nil {
		s.sendError(conn, err.Error())
		return
	}

	builder, ok := scene.Builders[req.Scene]
	if !ok {
		s.sendError(conn, "Unknown scene: "+req.Scene)
		return
	}
	sc := builder(req.Width, req.Height)

	// Row callbacks arrive from multiple render workers; serialize socket
	// writes and only forward roughly ten updates per second.
	var mu sync.Mutex
	var lastSent time.Time
	startTime := time.Now()

	canvas := sc.Camera.RenderParallel(sc.World, req.Workers, func(completed, total int) {
		mu.Lock()
		defer mu.Unlock()
		if completed < total && time.Since(lastSent) < 100*time.Millisecond {
			return
		}
		lastSent = time.Now()
		update := ProgressUpdate{
			RowsDone:  completed,
			TotalRows: total,
			ElapsedMs: time.Since(startTime).Milliseconds(),
		}
		if err := conn.WriteJSON(update); err != nil {
			log.Printf("Render update failed: %v", err)
		}
	})

	imageData, err := imageToBase64PNG(canvas)
	if err != nil {
		s.sendError(conn, fmt.Sprintf("Failed to encode image: %v", err))
		return
	}

	final := ProgressUpdate{
		RowsDone:   canvas.Height,
		TotalRows:  canvas.Height,
		ImageData:  imageData,
		IsComplete: true,
		ElapsedMs:  time.Since(startTime).Milliseconds(),
	}
	if err := conn.WriteJSON(final); err != nil {
		log.Printf("Render completion failed: %v", err)
	}
}

func validateRequest(req *RenderRequest) error {
	if req.Scene == "" {
		req.Scene = "default"
	}
	if req.Width == 0 {
		req.Width = 400
	}
	if req.Height == 0 {
		req.Height = 300
	}
	if req.Width < 16 || req.Width > 2000 {
		return fmt.Errorf("width must be between 16 and 2000, got: %d", req.Width)
	}
	if req.Height < 16 || req.Height > 2000 {
		return fmt.Errorf("height must be between 16 and 2000, got: %d", req.Height)
	}
	if req.Workers < 0 || req.Workers > 256 {
		return fmt.Errorf("workers must be between 0 and 256, got: %d", req.Workers)
	}
	return nil
}

func (s *Server) sendError(conn *websocket.Conn, message string) {
	if err := conn.WriteJSON(ErrorMessage{Error: message}); err != nil {
		log.Printf("Render error write failed: %v", err)
	}
}

// imageToBase64PNG converts a canvas to a base64-encoded PNG
func imageToBase64PNG(canvas *renderer.Canvas) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas.ToImage()); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
