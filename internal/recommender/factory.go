package recommender

import (
	"fmt"

	"aravalli/internal/config"
	"aravalli/internal/port"
)

// ProviderFactory is a function that creates a Recommender from a provider config.
type ProviderFactory func(cfg *config.RecommenderConfig) (port.Recommender, error)

// registry of recommender provider factories, populated via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a recommender provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// New creates a Recommender from config using the registered factory.
func New(cfg *config.RecommenderConfig) (port.Recommender, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown recommender provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
