package app

import (
	"os"

	"github.com/cleitonmarx/symbiont"
	"github.com/ribslabs/giftwise/internal/adapters/inbound/http"
	"github.com/ribslabs/giftwise/internal/adapters/inbound/mcp"
	"github.com/ribslabs/giftwise/internal/adapters/outbound/config"
	"github.com/ribslabs/giftwise/internal/adapters/outbound/log"
	"github.com/ribslabs/giftwise/internal/adapters/outbound/memory"
	"github.com/ribslabs/giftwise/internal/adapters/outbound/openai"
	"github.com/ribslabs/giftwise/internal/adapters/outbound/postgres"
	"github.com/ribslabs/giftwise/internal/telemetry"
	"github.com/ribslabs/giftwise/internal/usecases"
)

// NewGiftwiseApp creates and returns a new instance of the Giftwise application.
func NewGiftwiseApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
		).
		Initialize(catalogInitializers()...).
		Initialize(
			&openai.InitEmbeddingProvider{},

			&usecases.InitGetRecommendations{},
			&usecases.InitGetGiftDetails{},
		).
		Host(
			&http.GiftwiseServer{},
			&mcp.GiftwiseMCPServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}

// catalogInitializers selects the gift catalog backend. The in-memory catalog
// serves local development and demos without a database; postgres is the
// default.
func catalogInitializers() []symbiont.Initializer {
	if os.Getenv("CATALOG_BACKEND") == "memory" {
		return []symbiont.Initializer{
			&memory.InitGiftCatalog{},
		}
	}
	return []symbiont.Initializer{
		&postgres.InitDB{},
		&postgres.InitGiftCatalog{},
	}
}
