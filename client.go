package metaloadout

import (
	"github.com/gh6st66/metaloadout.gg/pkg/catalog"
	"github.com/gh6st66/metaloadout.gg/pkg/delta"
	"github.com/gh6st66/metaloadout.gg/pkg/provenance"
	"github.com/gh6st66/metaloadout.gg/pkg/save"
)

// Catalog returns a deep copy of the current catalog snapshot.
// Reads are safe concurrently with an in-flight ingestion.
func (c *client) Catalog() *catalog.Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog.DeepCopy()
}

// Validate runs only the normalizer against raw, without merging.
func (c *client) Validate(raw *delta.Raw) error {
	_, err := c.normalizer.Normalize(raw)
	return err
}

// Ingest normalizes raw and merges it into the current snapshot.
// The whole operation is atomic from the caller's perspective: when
// persistence is configured, the snapshot only advances after the new
// document has been written out.
func (c *client) Ingest(raw *delta.Raw, source string) (*provenance.Entry, error) {
	d, err := c.normalizer.Normalize(raw)
	if err != nil {
		c.config.logger.Warn().Err(err).Str("source", source).Msg("Delta rejected")
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	desc := provenance.Descriptor{Source: source, Timestamp: c.config.clock()}
	next, err := c.reconciler.Merge(c.catalog, d, desc)
	if err != nil {
		c.config.logger.Error().Err(err).Str("source", source).Msg("Merge failed")
		return nil, err
	}

	if c.config.storagePath != "" {
		if err := save.Save(c.config.storagePath, next); err != nil {
			// Snapshot stays on the old version; the merge never happened.
			c.config.logger.Error().Err(err).Str("path", c.config.storagePath).Msg("Persisting catalog failed")
			return nil, err
		}
	}

	c.catalog = next
	entry := next.Provenance[len(next.Provenance)-1]

	c.config.logger.Info().
		Str("source", source).
		Str("version", next.Version).
		Int("tags_added", entry.TagsAdded).
		Int("notes_added", entry.NotesAdded).
		Msg("Delta merged")

	return &entry, nil
}
