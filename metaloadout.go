// Package metaloadout provides the entry point for the metaloadout
// catalog ingestion engine. It wraps the delta normalizer and the
// catalog reconciler behind a single-writer client, which is the
// serialization point the merge contract requires: merges are not safe
// to interleave, so the client holds one catalog snapshot and applies
// one ingestion at a time.
//
// Example usage:
//
//	client, err := metaloadout.New(
//	    metaloadout.WithStoragePath("catalog.json"),
//	    metaloadout.WithRegistryValidation(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	entry, err := client.Ingest(rawDelta, "transcript-42")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(entry)
//
//	// Reads return deep copies and are safe at any time.
//	cat := client.Catalog()
package metaloadout

import (
	"sync"

	"github.com/gh6st66/metaloadout.gg/pkg/catalog"
	"github.com/gh6st66/metaloadout.gg/pkg/delta"
	"github.com/gh6st66/metaloadout.gg/pkg/provenance"
	"github.com/gh6st66/metaloadout.gg/pkg/reconcile"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Client manages a catalog snapshot and serialized delta ingestion.
type Client interface {
	// Catalog returns a deep copy of the current catalog snapshot.
	Catalog() *catalog.Catalog

	// Ingest normalizes raw and merges it into the current snapshot,
	// returning the provenance entry of the applied merge. On error the
	// snapshot is left exactly as it was.
	Ingest(raw *delta.Raw, source string) (*provenance.Entry, error)

	// Validate runs only the normalizer against raw, without merging.
	Validate(raw *delta.Raw) error
}

// client is the internal implementation of the Client interface.
type client struct {
	mu         sync.RWMutex
	catalog    *catalog.Catalog
	normalizer *delta.Normalizer
	reconciler *reconcile.Reconciler
	config     *config
}

// New creates a new Client with the given options. Without options the
// client starts from an empty in-memory catalog; with a storage path it
// loads the existing document if one is present.
func New(opts ...Option) (Client, error) {
	c := &client{
		config:     defaultConfig(),
		reconciler: reconcile.New(),
	}

	for _, opt := range opts {
		if err := opt(c.config); err != nil {
			return nil, err
		}
	}

	var normOpts []delta.Option
	if c.config.registryValidation {
		normOpts = append(normOpts, delta.WithRegistry(c.config.registry))
	}
	c.normalizer = delta.NewNormalizer(normOpts...)

	cat, err := c.config.initialCatalog()
	if err != nil {
		return nil, err
	}
	c.catalog = cat

	return c, nil
}
