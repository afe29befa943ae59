package metaloadout

import (
	"github.com/agentstation/utc"
	"github.com/rs/zerolog"

	"github.com/gh6st66/metaloadout.gg/pkg/catalog"
	"github.com/gh6st66/metaloadout.gg/pkg/errors"
	"github.com/gh6st66/metaloadout.gg/pkg/logging"
	"github.com/gh6st66/metaloadout.gg/pkg/save"
	"github.com/gh6st66/metaloadout.gg/pkg/tags"
)

// Option is a function that configures a Client instance.
type Option func(*config) error

// config holds client configuration assembled from options.
type config struct {
	seedCatalog        *catalog.Catalog
	storagePath        string
	registryValidation bool
	registry           func(string) bool
	logger             zerolog.Logger
	clock              func() utc.Time
}

func defaultConfig() *config {
	return &config{
		registry: tags.Valid,
		logger:   *logging.Default(),
		clock:    utc.Now,
	}
}

// initialCatalog resolves the starting snapshot: an explicitly supplied
// catalog wins, then an existing document at the storage path, then an
// empty catalog.
func (c *config) initialCatalog() (*catalog.Catalog, error) {
	if c.seedCatalog != nil {
		return c.seedCatalog.DeepCopy(), nil
	}
	if c.storagePath != "" {
		cat, err := save.Load(c.storagePath)
		if err == nil {
			return cat, nil
		}
		if !errors.IsNotFound(err) {
			return nil, err
		}
	}
	return catalog.New(), nil
}

// WithCatalog configures the initial catalog snapshot.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *config) error {
		if cat == nil {
			return errors.New("initial catalog cannot be nil")
		}
		c.seedCatalog = cat
		return nil
	}
}

// WithStoragePath configures a JSON file the client loads the catalog
// from at startup and writes every new snapshot to.
func WithStoragePath(path string) Option {
	return func(c *config) error {
		if path == "" {
			return errors.New("storage path cannot be empty")
		}
		c.storagePath = path
		return nil
	}
}

// WithRegistryValidation enables tag validation against the closed
// vocabulary in pkg/tags. A delta carrying an unknown tag is rejected.
func WithRegistryValidation() Option {
	return func(c *config) error {
		c.registryValidation = true
		return nil
	}
}

// WithRegistry enables tag validation against a custom predicate.
func WithRegistry(valid func(string) bool) Option {
	return func(c *config) error {
		if valid == nil {
			return errors.New("registry predicate cannot be nil")
		}
		c.registryValidation = true
		c.registry = valid
		return nil
	}
}

// WithLogger configures the logger used for ingestion events.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithClock configures the timestamp source for merges. Intended for
// tests and replay tooling that need deterministic timestamps.
func WithClock(clock func() utc.Time) Option {
	return func(c *config) error {
		if clock == nil {
			return errors.New("clock cannot be nil")
		}
		c.clock = clock
		return nil
	}
}
