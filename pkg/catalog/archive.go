// Package catalog implements the libris catalog store.
//
// An Archive keeps every item in memory keyed by ISBN and rewrites its
// backing file after each successful mutation. The file is a JSON array
// of tagged records (see Encode and Decode). An Archive is not safe for
// concurrent use.
package catalog

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/libris/pkg/constants"
	"github.com/agentstation/libris/pkg/errors"
	"github.com/agentstation/libris/pkg/items"
	"github.com/agentstation/libris/pkg/logging"
)

// Archive is an in-memory catalog of items persisted to a single file.
type Archive struct {
	items  map[string]items.Item
	path   string
	fs     afero.Fs
	logger *zerolog.Logger
	hooks  hooks
}

// Option configures an Archive.
type Option func(*Archive)

// WithPath sets the backing file. Defaults to constants.DefaultCatalogFile.
func WithPath(path string) Option {
	return func(a *Archive) {
		a.path = path
	}
}

// WithFs sets the filesystem the catalog file lives on. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(a *Archive) {
		a.fs = fs
	}
}

// WithLogger sets the logger used for persistence events.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *Archive) {
		a.logger = logger
	}
}

// New creates an empty Archive. Call Load to read the backing file.
func New(opts ...Option) (*Archive, error) {
	a := &Archive{
		items:  make(map[string]items.Item),
		path:   constants.DefaultCatalogFile,
		fs:     afero.NewOsFs(),
		logger: logging.Default(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.path == "" {
		return nil, errors.NewConfigError("catalog", "catalog path cannot be empty", nil)
	}
	if a.fs == nil {
		return nil, errors.NewConfigError("catalog", "filesystem cannot be nil", nil)
	}
	if a.logger == nil {
		a.logger = logging.NewNopLogger()
	}

	return a, nil
}

// Path returns the backing file path.
func (a *Archive) Path() string {
	return a.path
}

// Len returns the number of items in the catalog.
func (a *Archive) Len() int {
	return len(a.items)
}

// AddItem inserts item under its ISBN and saves the catalog.
// It fails with an AlreadyExistsError if the ISBN is taken, and with a
// ValidationError if the item could not be saved, such as a Magazine with an
// unknown periodicity. A save failure is returned as an IOError and the item
// stays in the catalog.
func (a *Archive) AddItem(item items.Item) error {
	if item == nil {
		return errors.NewValidationError("item", nil, "cannot be nil")
	}
	if err := checkStorable(item); err != nil {
		return err
	}

	isbn := item.Info().ISBN
	if _, exists := a.items[isbn]; exists {
		return errors.NewAlreadyExistsError(constants.ResourceItem, isbn)
	}

	a.items[isbn] = item
	a.hooks.itemAdded(item)

	return a.persist("add", isbn)
}

// SearchByISBN returns the item stored under isbn.
func (a *Archive) SearchByISBN(isbn string) (items.Item, error) {
	item, ok := a.items[isbn]
	if !ok {
		return nil, errors.NewNotFoundError(constants.ResourceItem, isbn)
	}
	return item, nil
}

// RemoveItemByISBN deletes the item stored under isbn and saves the catalog.
func (a *Archive) RemoveItemByISBN(isbn string) error {
	item, ok := a.items[isbn]
	if !ok {
		return errors.NewNotFoundError(constants.ResourceItem, isbn)
	}

	delete(a.items, isbn)
	a.hooks.itemRemoved(item)

	return a.persist("remove", isbn)
}

// UpdateItemByISBN replaces the item stored under isbn with item and saves
// the catalog. The replacement is stored under isbn even when its own ISBN
// differs. Unsaveable replacements are rejected as in AddItem.
func (a *Archive) UpdateItemByISBN(isbn string, item items.Item) error {
	if item == nil {
		return errors.NewValidationError("item", nil, "cannot be nil")
	}
	if err := checkStorable(item); err != nil {
		return err
	}

	old, ok := a.items[isbn]
	if !ok {
		return errors.NewNotFoundError(constants.ResourceItem, isbn)
	}

	a.items[isbn] = item
	a.hooks.itemUpdated(old, item)

	return a.persist("update", isbn)
}

// persist saves after a mutation that has already been applied in memory.
func (a *Archive) persist(operation, isbn string) error {
	if err := a.Save(); err != nil {
		a.logger.Warn().
			Err(err).
			Str("operation", operation).
			Str("isbn", isbn).
			Str("path", a.path).
			Msg("Catalog changed in memory but could not be saved")
		return err
	}
	return nil
}
