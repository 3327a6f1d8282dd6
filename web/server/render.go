package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
	"github.com/golang/glog"
)

const (
	defaultScene  = "sphere"
	minImageSize  = 16
	maxImageSize  = 2000
	maxMarchSteps = 10000
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string // Scene name (e.g., "sphere")
	Width    int    // Image width; 0 keeps the scene default
	Height   int    // Image height; 0 keeps the scene default
	MaxSteps int    // March step budget; 0 keeps the scene default
	Format   string // "png" or "ppm"
	Publish  bool   // Upload the result as well as returning it
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: defaultScene, Format: "png"}

	if sceneName := query.Get("scene"); sceneName != "" {
		req.Scene = sceneName
	}
	if format := query.Get("format"); format != "" {
		if format != "png" && format != "ppm" {
			return nil, fmt.Errorf("format must be png or ppm, got: %s", format)
		}
		req.Format = format
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.MaxSteps, err = parseIntParam(query, "maxSteps", 0, 1, maxMarchSteps); err != nil {
		return nil, err
	}
	if req.Publish, err = parseBoolParam(query, "publish", false); err != nil {
		return nil, err
	}
	if req.Publish && s.publisher == nil {
		return nil, fmt.Errorf("publishing is not configured")
	}

	return req, nil
}

// createScene builds the requested scene with the request's size overrides applied
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	return scene.Create(req.Scene, geometry.CameraConfig{Rows: req.Height, Cols: req.Width})
}

// handleRender renders a scene synchronously and returns the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request: " + err.Error()})
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	config := sceneObj.TraceConfig
	if req.MaxSteps > 0 {
		config.MaxSteps = req.MaxSteps
	}

	renderID := fmt.Sprintf("%s-%d", req.Scene, time.Now().UnixNano())
	logger := NewWebLogger(renderID, s.consoleChan)
	tracer := renderer.NewRenderer(sceneObj, sceneObj.GetCamera(), config, logger)

	// Use request context to stop rendering when the client disconnects
	fb, stats, err := tracer.Render(r.Context())
	if err != nil {
		glog.Warningf("Render %s failed: %v", renderID, err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "Render error: " + err.Error()})
		return
	}

	data, contentType, err := fb.Encode(req.Format, req.Scene)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if req.Publish {
		key, err := s.publisher.Publish(r.Context(), renderID+"."+req.Format, data, contentType)
		if err != nil {
			glog.Errorf("Error while publishing render %s: %v", renderID, err)
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
			return
		}
		w.Header().Set("X-Published-Key", key)
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("X-Render-Hit-Pixels", strconv.Itoa(stats.HitPixels))
	w.Header().Set("X-Render-Average-Steps", strconv.FormatFloat(stats.AverageSteps, 'f', 2, 64))
	w.Header().Set("X-Render-Elapsed-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		glog.Warningf("Error while writing render %s: %v", renderID, err)
	}
}
