package catalog

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/agentstation/libris/internal/utils/ptr"
	"github.com/agentstation/libris/pkg/constants"
	"github.com/agentstation/libris/pkg/errors"
	"github.com/agentstation/libris/pkg/items"
)

// Record is the stored form of an item: the discriminator, the shared
// fields, and the fields of that variant only.
type Record struct {
	Type       items.Kind `json:"type" yaml:"type"`
	items.Base `yaml:",inline"`

	// Book fields
	Author *string `json:"author,omitempty" yaml:"author,omitempty"`
	Genre  *string `json:"genre,omitempty" yaml:"genre,omitempty"`

	// Magazine fields. Kept as text so that only a Magazine record has its
	// periodicity checked.
	Periodicity *string `json:"periodicity,omitempty" yaml:"periodicity,omitempty"`
}

// NewRecord converts an item to its tagged record.
func NewRecord(item items.Item) Record {
	rec := Record{Type: item.Kind(), Base: item.Info()}

	switch v := item.(type) {
	case items.Book:
		rec.Author = ptr.To(v.Author)
		rec.Genre = ptr.To(v.Genre)
	case items.Magazine:
		if v.Periodicity != "" {
			rec.Periodicity = ptr.To(string(v.Periodicity))
		}
	}

	return rec
}

// Item rebuilds the concrete variant named by the record's discriminator.
// Fields that belong to the other variant are ignored.
func (r Record) Item() (items.Item, error) {
	switch r.Type {
	case items.KindBook:
		return items.Book{
			Base:   r.Base,
			Author: ptr.Deref(r.Author),
			Genre:  ptr.Deref(r.Genre),
		}, nil
	case items.KindMagazine:
		var p items.Periodicity
		if r.Periodicity != nil {
			if err := p.UnmarshalText([]byte(*r.Periodicity)); err != nil {
				return nil, err
			}
		}
		return items.Magazine{Base: r.Base, Periodicity: p}, nil
	case "":
		return nil, fmt.Errorf("missing item type")
	default:
		return nil, fmt.Errorf("unknown item type %q", r.Type)
	}
}

// Records converts items to records in the given order.
func Records(list []items.Item) []Record {
	records := make([]Record, 0, len(list))
	for _, it := range list {
		records = append(records, NewRecord(it))
	}
	return records
}

// Encode renders items as a pretty-printed JSON array of tagged records.
// An item that Decode would reject fails with a ValidationError.
func Encode(list []items.Item) ([]byte, error) {
	for _, it := range list {
		if err := checkStorable(it); err != nil {
			return nil, err
		}
	}

	data, err := json.MarshalIndent(Records(list), "", constants.CatalogIndent)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Decode parses a JSON array of tagged records. A record with a missing or
// unknown type, an invalid periodicity, or a repeated ISBN fails the whole
// document with a ParseError. A JSON null decodes to an empty list.
func Decode(data []byte) ([]items.Item, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.NewParseError("json", "", "empty document", nil)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewParseError("json", "", "catalog must be an array of item records: "+err.Error(), err)
	}

	list := make([]items.Item, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for i, msg := range raw {
		var rec Record
		if err := json.Unmarshal(msg, &rec); err != nil {
			return nil, recordError(i, err.Error(), err)
		}

		item, err := rec.Item()
		if err != nil {
			return nil, recordError(i, err.Error(), err)
		}

		isbn := item.Info().ISBN
		if _, dup := seen[isbn]; dup {
			return nil, recordError(i, fmt.Sprintf("duplicate isbn %q", isbn), nil)
		}
		seen[isbn] = struct{}{}

		list = append(list, item)
	}

	return list, nil
}

// checkStorable rejects a Magazine whose periodicity is set but not one of
// the stored names. An unset periodicity round-trips as a missing field.
func checkStorable(item items.Item) error {
	m, ok := item.(items.Magazine)
	if !ok || m.Periodicity == "" || m.Periodicity.IsValid() {
		return nil
	}
	return errors.NewValidationError("periodicity", m.Periodicity,
		fmt.Sprintf("item %s: unknown periodicity %q", m.ISBN, m.Periodicity))
}

func recordError(index int, message string, err error) *errors.ParseError {
	pe := errors.NewParseError("json", "", message, err)
	pe.Index = index
	return pe
}
