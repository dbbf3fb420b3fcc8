package spec

import (
	"bytes"

	"github.com/arthur-debert/treeprune/pkg/errors"
	"github.com/arthur-debert/treeprune/pkg/types"
)

// Load reads and parses the spec file at path.
func Load(filesystem types.FS, path string) ([]types.SpecEntry, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSpecRead, "failed to read spec file %s", path).
			WithDetail(errors.DetailPath, path)
	}
	return Parse(bytes.NewReader(data))
}
