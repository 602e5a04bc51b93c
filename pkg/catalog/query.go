package catalog

import (
	"sort"
	"strings"

	"github.com/agentstation/libris/pkg/items"
)

// Stats summarizes the catalog.
type Stats struct {
	Total        int        `json:"total" yaml:"total"`
	Books        int        `json:"books" yaml:"books"`
	Magazines    int        `json:"magazines" yaml:"magazines"`
	AveragePages float64    `json:"averagePages" yaml:"averagePages"`
	HighestPages items.Item `json:"highestPages,omitempty" yaml:"highestPages,omitempty"`
}

// List returns every item sorted by ISBN.
func (a *Archive) List() []items.Item {
	return a.filter(func(items.Item) bool { return true })
}

// SearchByYear returns the items published in year.
func (a *Archive) SearchByYear(year int) []items.Item {
	return a.filter(func(it items.Item) bool {
		return it.Info().YearOfPublication == year
	})
}

// SearchByTitle returns the items whose title contains substr.
// The match is case-sensitive.
func (a *Archive) SearchByTitle(substr string) []items.Item {
	return a.filter(func(it items.Item) bool {
		return strings.Contains(it.Info().Title, substr)
	})
}

// SearchByAuthor returns the books whose author equals author, ignoring case.
// Magazines never match.
func (a *Archive) SearchByAuthor(author string) []items.Book {
	books := []items.Book{}
	for _, it := range a.List() {
		if book, ok := it.(items.Book); ok && strings.EqualFold(book.Author, author) {
			books = append(books, book)
		}
	}
	return books
}

// TotalBooks returns the number of books in the catalog.
func (a *Archive) TotalBooks() int {
	return a.count(items.KindBook)
}

// TotalMagazines returns the number of magazines in the catalog.
func (a *Archive) TotalMagazines() int {
	return a.count(items.KindMagazine)
}

// ItemWithHighestPages returns the item with the most pages, or false when
// the catalog is empty. Ties go to the lowest ISBN.
func (a *Archive) ItemWithHighestPages() (items.Item, bool) {
	var highest items.Item
	for _, it := range a.List() {
		if highest == nil || it.Info().NumberOfPages > highest.Info().NumberOfPages {
			highest = it
		}
	}
	return highest, highest != nil
}

// AveragePages returns the mean page count, or 0 for an empty catalog.
func (a *Archive) AveragePages() float64 {
	if len(a.items) == 0 {
		return 0
	}

	total := 0
	for _, it := range a.items {
		total += it.Info().NumberOfPages
	}
	return float64(total) / float64(len(a.items))
}

// Stats computes the catalog aggregates in one call.
func (a *Archive) Stats() Stats {
	stats := Stats{
		Total:        a.Len(),
		Books:        a.TotalBooks(),
		Magazines:    a.TotalMagazines(),
		AveragePages: a.AveragePages(),
	}
	if highest, ok := a.ItemWithHighestPages(); ok {
		stats.HighestPages = highest
	}
	return stats
}

func (a *Archive) count(kind items.Kind) int {
	n := 0
	for _, it := range a.items {
		if it.Kind() == kind {
			n++
		}
	}
	return n
}

// filter returns the matching items sorted by ISBN.
func (a *Archive) filter(match func(items.Item) bool) []items.Item {
	result := []items.Item{}
	for _, it := range a.items {
		if match(it) {
			result = append(result, it)
		}
	}
	sortByISBN(result)
	return result
}

func sortByISBN(list []items.Item) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Info().ISBN < list[j].Info().ISBN
	})
}
