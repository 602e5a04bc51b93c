package globals

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/libris/pkg/errors"
	"github.com/agentstation/libris/pkg/items"
)

// ItemFlags holds the field flags shared by the add and update commands.
type ItemFlags struct {
	ISBN        string
	Title       string
	Year        int
	Pages       int
	Author      string
	Genre       string
	Periodicity string
}

// AddBookFlags adds the fields of a book to a command. When withISBN is
// false the ISBN is expected as a positional argument instead.
func AddBookFlags(cmd *cobra.Command, withISBN bool) *ItemFlags {
	flags := addBaseFlags(cmd, withISBN)

	cmd.Flags().StringVar(&flags.Author, "author", "", "Author of the book")
	cmd.Flags().StringVar(&flags.Genre, "genre", "", "Genre of the book")

	return flags
}

// AddMagazineFlags adds the fields of a magazine to a command.
func AddMagazineFlags(cmd *cobra.Command, withISBN bool) *ItemFlags {
	flags := addBaseFlags(cmd, withISBN)

	cmd.Flags().StringVar(&flags.Periodicity, "periodicity", "",
		"Publication frequency: weekly, monthly, semi-annual")
	_ = cmd.MarkFlagRequired("periodicity")

	return flags
}

func addBaseFlags(cmd *cobra.Command, withISBN bool) *ItemFlags {
	flags := &ItemFlags{}

	if withISBN {
		cmd.Flags().StringVar(&flags.ISBN, "isbn", "", "ISBN of the item")
		_ = cmd.MarkFlagRequired("isbn")
	}
	cmd.Flags().StringVar(&flags.Title, "title", "", "Title of the item")
	cmd.Flags().IntVar(&flags.Year, "year", 0, "Year of publication")
	cmd.Flags().IntVar(&flags.Pages, "pages", 0, "Number of pages")

	return flags
}

// Book builds a book from the flag values.
func (f *ItemFlags) Book() items.Book {
	return items.NewBook(f.ISBN, f.Title, f.Year, f.Pages, f.Author, f.Genre)
}

// Magazine builds a magazine from the flag values.
func (f *ItemFlags) Magazine() (items.Magazine, error) {
	periodicity, err := items.ParsePeriodicity(f.Periodicity)
	if err != nil {
		return items.Magazine{}, err
	}
	return items.NewMagazine(f.ISBN, f.Title, f.Year, f.Pages, periodicity), nil
}

// ListFlags holds the flags of the list command.
type ListFlags struct {
	Kind  string
	Limit int
}

// AddListFlags adds listing flags to a command.
func AddListFlags(cmd *cobra.Command) *ListFlags {
	flags := &ListFlags{}

	cmd.Flags().StringVarP(&flags.Kind, "kind", "k", "",
		"Only list one kind of item: book, magazine")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0,
		"Limit number of results")

	return flags
}

// ParseKind maps the --kind value to an item kind. An empty value matches
// every kind.
func (f *ListFlags) ParseKind() (items.Kind, error) {
	switch f.Kind {
	case "":
		return "", nil
	case "book", "books", "Book":
		return items.KindBook, nil
	case "magazine", "magazines", "Magazine":
		return items.KindMagazine, nil
	default:
		return "", errors.NewValidationError("kind", f.Kind, "must be book or magazine")
	}
}
