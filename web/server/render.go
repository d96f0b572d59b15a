package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "complete", "error"
	Data string `json:"data"` // JSON-encoded data
}

// RenderComplete is the payload of the final event of a streamed render
type RenderComplete struct {
	Scene      string `json:"scene"`
	Primitives int    `json:"primitives"` // Objects in the scene
	Lights     int    `json:"lights"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	ImageData  string `json:"imageData"` // Base64 encoded PNG
	Stats      Stats  `json:"stats"`
}

// handleRenderStream renders a frame while streaming the renderer's progress
// log to the client via SSE, then sends the image in a "complete" event
func (s *Server) handleRenderStream(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	ctx := r.Context()

	// Create unified SSE event channel for thread-safe writing
	sseEventChan := make(chan SSEEvent, 100)
	var writerDone sync.WaitGroup
	writerDone.Add(1)
	go func() {
		defer writerDone.Done()
		s.writeSSEEvents(w, ctx, sseEventChan)
	}()
	// The writer must stop before the handler returns
	defer func() {
		close(sseEventChan)
		writerDone.Wait()
	}()

	sceneObj, req, err := s.parseRenderRequest(r)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	// Setup console logging and streaming
	consoleChan, webLogger := s.setupConsoleLogging()
	var streamerDone sync.WaitGroup
	streamerDone.Add(1)
	go func() {
		defer streamerDone.Done()
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
	}()

	webLogger.Printf("Scene %s: %d primitives, %d lights\n", sceneObj.Name, sceneObj.GetPrimitiveCount(), len(sceneObj.Lights))
	raytracer := renderer.NewRaytracer(sceneObj, req.Width, req.Height, req.Config, webLogger)
	img, stats, err := raytracer.Render(ctx)

	// Render has returned, so nothing logs to the console channel any more
	close(consoleChan)
	streamerDone.Wait()

	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Render error: %v", err))
		return
	}

	imageData, err := imageToBase64PNG(img)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	data, err := json.Marshal(RenderComplete{
		Scene:      req.Scene,
		Primitives: sceneObj.GetPrimitiveCount(),
		Lights:     len(sceneObj.Lights),
		Width:      req.Width,
		Height:     req.Height,
		ImageData:  imageData,
		Stats:      newStats(stats, img),
	})
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("failed to encode result: %v", err))
		return
	}

	sendEvent(ctx, sseEventChan, SSEEvent{Type: "complete", Data: string(data)})
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	webLogger := NewWebLogger(renderID, consoleChan)
	return consoleChan, webLogger
}

// writeSSEEvents handles writing all SSE events in a single goroutine (thread-safe)
func (s *Server) writeSSEEvents(w http.ResponseWriter, ctx context.Context, sseEventChan chan SSEEvent) {
	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				return
			}

			// Write SSE event
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
				// Client disconnected during write
				return
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}
}

// streamConsoleMessages forwards console messages to the SSE channel until
// the console channel is closed
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan chan ConsoleMessage, sseEventChan chan SSEEvent) {
	for consoleMsg := range consoleChan {
		data, err := json.Marshal(consoleMsg)
		if err != nil {
			log.Printf("Error marshaling console message: %v", err)
			continue
		}

		// Skip the message rather than block rendering
		select {
		case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
		case <-ctx.Done():
		default:
		}
	}
}

// handleError sends an error event to the client
func (s *Server) handleError(ctx context.Context, sseEventChan chan SSEEvent, message string) {
	log.Printf("Render error: %s", message)
	data, _ := json.Marshal(map[string]string{"error": message})
	sendEvent(ctx, sseEventChan, SSEEvent{Type: "error", Data: string(data)})
}

// sendEvent queues an event unless the client has gone away
func sendEvent(ctx context.Context, sseEventChan chan SSEEvent, event SSEEvent) {
	select {
	case sseEventChan <- event:
	case <-ctx.Done():
	}
}
