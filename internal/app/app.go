package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/adapters/outbound/appsync"
	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/telemetry"
	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/usecases"
)

// NewSnippetCanvasApp creates the snippet canvas generation service.
// Extra initializers run before the built-in ones, which lets tests override dependencies.
func NewSnippetCanvasApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&config.InitVaultProvider{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&time.InitCurrentTimeProvider{},
			&appsync.InitAppSyncClient{},

			&usecases.InitStreamingCapability{},
			&usecases.InitGenerateContent{},
			&usecases.InitGenerateContentStream{},
			&usecases.InitSubscribeGenerationStream{},
		).
		Host(
			&http.GenerationServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
