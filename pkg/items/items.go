// Package items defines the bibliographic entries held by a catalog.
//
// Every entry shares the fields of Base. The set of variants is closed:
// Book and Magazine are the only types that implement Item, and callers
// discover the variant with Kind or a type switch.
package items

// Kind identifies an item variant. Its value is the discriminator written
// to the catalog file.
type Kind string

// Item variants.
const (
	KindBook     Kind = "Book"
	KindMagazine Kind = "Magazine"
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	return string(k)
}

// Item is a catalog entry of one of the known variants.
type Item interface {
	// Kind reports the variant of the item.
	Kind() Kind
	// Info returns the fields shared by all variants.
	Info() Base

	sealed()
}

// Base holds the fields common to every catalog entry.
type Base struct {
	ISBN              string `json:"isbn" yaml:"isbn"`
	Title             string `json:"title" yaml:"title"`
	YearOfPublication int    `json:"yearOfPublication" yaml:"yearOfPublication"`
	NumberOfPages     int    `json:"numberOfPages" yaml:"numberOfPages"`
}

// Info returns a copy of the shared fields.
func (b Base) Info() Base {
	return b
}

// Book is a monograph with an author and a genre.
type Book struct {
	Base   `yaml:",inline"`
	Author string `json:"author" yaml:"author"`
	Genre  string `json:"genre" yaml:"genre"`
}

// NewBook creates a Book. Values are stored as given.
func NewBook(isbn, title string, year, pages int, author, genre string) Book {
	return Book{
		Base:   Base{ISBN: isbn, Title: title, YearOfPublication: year, NumberOfPages: pages},
		Author: author,
		Genre:  genre,
	}
}

// Kind implements Item.
func (Book) Kind() Kind { return KindBook }

func (Book) sealed() {}

// Magazine is a periodical published on a fixed schedule.
type Magazine struct {
	Base        `yaml:",inline"`
	Periodicity Periodicity `json:"periodicity" yaml:"periodicity"`
}

// NewMagazine creates a Magazine. Values are stored as given.
func NewMagazine(isbn, title string, year, pages int, periodicity Periodicity) Magazine {
	return Magazine{
		Base:        Base{ISBN: isbn, Title: title, YearOfPublication: year, NumberOfPages: pages},
		Periodicity: periodicity,
	}
}

// Kind implements Item.
func (Magazine) Kind() Kind { return KindMagazine }

func (Magazine) sealed() {}

// Compile-time interface checks.
var (
	_ Item = Book{}
	_ Item = Magazine{}
)
