package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/telemetry"
	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/usecases"
	"github.com/rs/cors"
)

// GenerationServer exposes content generation to the canvas UI over REST and Server-Sent Events.
type GenerationServer struct {
	Port                             int                                `config:"HTTP_PORT" default:"8080"`
	Logger                           *log.Logger                        `resolve:""`
	GenerateContentUseCase           usecases.GenerateContent           `resolve:""`
	GenerateContentStreamUseCase     usecases.GenerateContentStream     `resolve:""`
	SubscribeGenerationStreamUseCase usecases.SubscribeGenerationStream `resolve:""`
	StreamingStatus                  usecases.StreamingStatus           `resolve:""`
}

// Handler builds the routed, instrumented handler of the server.
func (api GenerationServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/projects/{projectId}/snippets/{snippetId}/generate", api.GenerateContent)
	mux.HandleFunc("POST /api/v1/projects/{projectId}/snippets/{snippetId}/generate-stream", api.GenerateContentStream)
	mux.HandleFunc("GET /api/v1/snippets/{snippetId}/generation-stream", api.GenerationStream)
	mux.HandleFunc("GET /api/v1/streaming/status", api.GetStreamingStatus)

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)

	h := telemetry.Middleware("snippet-canvas-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the GenerationServer.
func (api GenerationServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler: api.Handler(),
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("GenerationServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("GenerationServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("GenerationServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the GenerationServer is ready by querying the streaming status endpoint.
func (api GenerationServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d/api/v1/streaming/status", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
