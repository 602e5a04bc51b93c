package catalog

import (
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/agentstation/libris/pkg/constants"
	"github.com/agentstation/libris/pkg/errors"
	"github.com/agentstation/libris/pkg/items"
)

// LoadResult describes the outcome of a load that did not fail.
type LoadResult struct {
	// Path is the file that was read.
	Path string
	// Found is false when the file does not exist. The catalog is left
	// unchanged in that case.
	Found bool
	// Items is the number of items loaded.
	Items int
}

// Save writes the whole catalog to the backing file.
func (a *Archive) Save() error {
	return a.SaveTo(a.path)
}

// SaveTo writes the whole catalog to path, replacing any existing content.
func (a *Archive) SaveTo(path string) error {
	data, err := Encode(a.List())
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := a.fs.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}

	if err := afero.WriteFile(a.fs, path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}

	a.logger.Debug().
		Str("path", path).
		Int("items", len(a.items)).
		Msg("Catalog saved")
	return nil
}

// Load replaces the catalog with the content of the backing file.
func (a *Archive) Load() (LoadResult, error) {
	return a.LoadFrom(a.path)
}

// LoadFrom replaces the catalog with the content of path.
//
// A missing file is not an error: the result reports Found == false and the
// catalog is left as it was. Malformed content returns a ParseError and any
// other read failure an IOError; in both cases the catalog is not modified.
func (a *Archive) LoadFrom(path string) (LoadResult, error) {
	result := LoadResult{Path: path}

	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			a.logger.Debug().Str("path", path).Msg("Catalog file does not exist")
			return result, nil
		}
		return result, errors.WrapIO("read", path, err)
	}
	result.Found = true

	list, err := Decode(data)
	if err != nil {
		return result, errors.WrapParse("json", path, err)
	}

	loaded := make(map[string]items.Item, len(list))
	for _, it := range list {
		loaded[it.Info().ISBN] = it
	}
	a.items = loaded
	result.Items = len(loaded)

	a.logger.Debug().
		Str("path", path).
		Int("items", result.Items).
		Msg("Catalog loaded")
	return result, nil
}
