// Package save persists catalog documents to disk. The engine itself
// never touches storage; this package is the caller-side convenience
// used by the CLI and the client facade.
package save

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/gh6st66/metaloadout.gg/pkg/catalog"
	"github.com/gh6st66/metaloadout.gg/pkg/errors"
)

// Load reads a catalog document from a JSON file.
func Load(path string) (*catalog.Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from configuration, not user input
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("catalog", path)
		}
		return nil, errors.WrapIO("read", path, err)
	}

	var c catalog.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}

	return &c, nil
}

// Save writes the catalog document to a JSON file. The write is atomic:
// the document lands in a temp file first and is renamed into place, so
// a crash mid-write never leaves a truncated catalog behind.
func Save(path string, c *catalog.Catalog) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.WrapParse("json", path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".catalog-*.json")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.WrapIO("write", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.WrapIO("close", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.WrapIO("rename", path, err)
	}
	return nil
}

// ExportYAML writes the catalog as YAML for human review.
func ExportYAML(w io.Writer, c *catalog.Catalog) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.WrapParse("yaml", "", err)
	}
	if _, err := w.Write(data); err != nil {
		return errors.WrapIO("write", "", err)
	}
	return nil
}
