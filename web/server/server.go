package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/df07/go-sphere-tracer/pkg/scene"
	"github.com/golang/glog"
)

// Publisher uploads rendered images. *publish.S3Publisher satisfies it.
type Publisher interface {
	Publish(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Server handles web requests for the sphere tracer
type Server struct {
	port      int
	publisher Publisher

	consoleChan chan ConsoleMessage
	mu          sync.Mutex
	console     []ConsoleMessage // most recent messages, oldest first
}

const consoleHistory = 200

// NewServer creates a new web server. publisher may be nil to disable uploads.
func NewServer(port int, publisher Publisher) *Server {
	return &Server{
		port:        port,
		publisher:   publisher,
		consoleChan: make(chan ConsoleMessage, consoleHistory),
	}
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/console", s.handleConsole)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server and blocks until ctx is cancelled or the listener fails
func (s *Server) Start(ctx context.Context) error {
	go s.collectConsole(ctx)

	addr := fmt.Sprintf(":%d", s.port)
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			glog.Warningf("Error while shutting down web server: %v", err)
		}
	}()

	glog.Infof("Starting web server on http://localhost%s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("while serving: %w", err)
	}
	return nil
}

// collectConsole moves logged render messages into the console history
func (s *Server) collectConsole(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-s.consoleChan:
			s.appendConsole(msg)
		}
	}
}

func (s *Server) appendConsole(msg ConsoleMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.console = append(s.console, msg)
	if len(s.console) > consoleHistory {
		s.console = s.console[len(s.console)-consoleHistory:]
	}
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListAllScenes())
}

// handleConsole returns recent render log messages
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	messages := append([]ConsoleMessage(nil), s.console...)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = defaultScene
	}

	sceneObj, err := scene.Create(sceneName)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	camera := sceneObj.CameraConfig
	trace := sceneObj.TraceConfig
	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":          camera.Cols,
			"height":         camera.Rows,
			"maxSteps":       trace.MaxSteps,
			"maxDistance":    trace.MaxDistance,
			"powerThreshold": trace.PowerThreshold,
		},
		"limits": map[string]interface{}{
			"width":    map[string]int{"min": minImageSize, "max": maxImageSize},
			"height":   map[string]int{"min": minImageSize, "max": maxImageSize},
			"maxSteps": map[string]int{"min": 1, "max": maxMarchSteps},
		},
	}

	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		glog.Warningf("Error while encoding JSON response: %v", err)
	}
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseBoolParam parses a boolean parameter from URL query
func parseBoolParam(values url.Values, key string, defaultValue bool) (bool, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
