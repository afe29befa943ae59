package metaloadout

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/agentstation/utc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gh6st66/metaloadout.gg/pkg/catalog"
	"github.com/gh6st66/metaloadout.gg/pkg/delta"
	"github.com/gh6st66/metaloadout.gg/pkg/errors"
	"github.com/gh6st66/metaloadout.gg/pkg/logging"
	"github.com/gh6st66/metaloadout.gg/pkg/save"
)

func fixedClock() utc.Time {
	return utc.New(time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC))
}

func sampleDelta() *delta.Raw {
	return &delta.Raw{
		Weapons: []delta.RawEntity{{
			ID:    "KS23",
			Tags:  []string{"shotgun", "close-range"},
			Notes: []string{"strong vs light"},
		}},
	}
}

func TestNewStartsEmpty(t *testing.T) {
	client, err := New(WithLogger(logging.Nop))
	require.NoError(t, err)

	cat := client.Catalog()
	assert.Equal(t, catalog.DefaultVersion, cat.Version)
	assert.Empty(t, cat.Weapons)
}

func TestIngestAdvancesSnapshot(t *testing.T) {
	client, err := New(WithLogger(logging.Nop), WithClock(fixedClock))
	require.NoError(t, err)

	entry, err := client.Ingest(sampleDelta(), "transcript-1")
	require.NoError(t, err)
	assert.Equal(t, "transcript-1", entry.Source)
	assert.Equal(t, 1, entry.Weapons.Added)

	cat := client.Catalog()
	assert.Equal(t, "0.1.1", cat.Version)
	require.Len(t, cat.Weapons, 1)
	assert.Equal(t, fixedClock(), cat.UpdatedAt)
	require.Len(t, cat.Provenance, 1)
}

func TestIngestRejectedDeltaLeavesSnapshot(t *testing.T) {
	client, err := New(WithLogger(logging.Nop))
	require.NoError(t, err)

	before := client.Catalog()
	_, err = client.Ingest(&delta.Raw{Weapons: []delta.RawEntity{{Tags: []string{"smg"}}}}, "transcript-2")
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, before, client.Catalog())
}

func TestIngestMergeErrorLeavesSnapshot(t *testing.T) {
	bad := catalog.NewWithVersion("not.a.version")
	client, err := New(WithLogger(logging.Nop), WithCatalog(bad))
	require.NoError(t, err)

	_, err = client.Ingest(sampleDelta(), "transcript-3")
	assert.True(t, errors.IsMergeError(err))
	assert.Equal(t, "not.a.version", client.Catalog().Version)
	assert.Empty(t, client.Catalog().Provenance)
}

func TestWithCatalogSeedIsCopied(t *testing.T) {
	seed := catalog.NewWithVersion("1.0.0")
	seed.Weapons = []catalog.Entity{{ID: "M60", Tags: []string{"lmg"}, Notes: []string{}}}

	client, err := New(WithLogger(logging.Nop), WithCatalog(seed))
	require.NoError(t, err)

	// Mutating the seed after construction must not affect the client.
	seed.Weapons[0].ID = "mutated"
	assert.Equal(t, "M60", client.Catalog().Weapons[0].ID)
}

func TestRegistryValidation(t *testing.T) {
	client, err := New(WithLogger(logging.Nop), WithRegistryValidation())
	require.NoError(t, err)

	_, err = client.Ingest(&delta.Raw{
		Weapons: []delta.RawEntity{{ID: "KS23", Tags: []string{"plasma-cannon"}}},
	}, "transcript-4")
	assert.True(t, errors.IsValidationError(err))

	require.NoError(t, client.Validate(sampleDelta()))
}

func TestStoragePathPersistsAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	client, err := New(WithLogger(logging.Nop), WithStoragePath(path), WithClock(fixedClock))
	require.NoError(t, err)

	_, err = client.Ingest(sampleDelta(), "transcript-5")
	require.NoError(t, err)

	// The document on disk matches the in-memory snapshot.
	onDisk, err := save.Load(path)
	require.NoError(t, err)
	assert.Equal(t, client.Catalog(), onDisk)

	// A fresh client picks up where the old one left off.
	reloaded, err := New(WithLogger(logging.Nop), WithStoragePath(path))
	require.NoError(t, err)
	assert.Equal(t, "0.1.1", reloaded.Catalog().Version)
	require.Len(t, reloaded.Catalog().Provenance, 1)
}

func TestIngestStorageFailureRollsBack(t *testing.T) {
	// Point storage at a directory that does not exist so the save fails.
	path := filepath.Join(t.TempDir(), "missing", "deep", "catalog.json")

	cl, err := New(WithLogger(logging.Nop), WithCatalog(catalog.NewWithVersion("1.0.0")))
	require.NoError(t, err)
	// Reconfigure through the concrete type to simulate a broken path.
	cl.(*client).config.storagePath = path

	_, err = cl.Ingest(sampleDelta(), "transcript-6")
	require.Error(t, err)
	assert.Equal(t, "1.0.0", cl.Catalog().Version)
	assert.Empty(t, cl.Catalog().Provenance)
}

func TestConcurrentIngestAndReads(t *testing.T) {
	cl, err := New(WithLogger(logging.Nop))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := cl.Ingest(sampleDelta(), "transcript-7")
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_ = cl.Catalog()
		}()
	}
	wg.Wait()

	cat := cl.Catalog()
	// Eight serialized merges: eight patch bumps, eight provenance entries, one weapon.
	assert.Equal(t, "0.1.8", cat.Version)
	assert.Len(t, cat.Provenance, 8)
	assert.Len(t, cat.Weapons, 1)
}

func TestOptionErrors(t *testing.T) {
	_, err := New(WithCatalog(nil))
	assert.Error(t, err)
	_, err = New(WithStoragePath(""))
	assert.Error(t, err)
	_, err = New(WithClock(nil))
	assert.Error(t, err)
	_, err = New(WithRegistry(nil))
	assert.Error(t, err)
}
