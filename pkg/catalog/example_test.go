package catalog_test

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/agentstation/libris/pkg/catalog"
	"github.com/agentstation/libris/pkg/errors"
	"github.com/agentstation/libris/pkg/items"
	"github.com/agentstation/libris/pkg/logging"
)

func Example() {
	archive, err := catalog.New(
		catalog.WithFs(afero.NewMemMapFs()),
		catalog.WithLogger(logging.NewNopLogger()),
	)
	if err != nil {
		panic(err)
	}

	result, err := archive.Load()
	if err != nil {
		panic(err)
	}
	fmt.Println("found:", result.Found)

	_ = archive.AddItem(items.NewBook("111", "Dune", 1965, 412, "Herbert", "SciFi"))
	_ = archive.AddItem(items.NewMagazine("222", "Time", 2020, 60, items.Weekly))

	err = archive.AddItem(items.NewBook("111", "Dune Messiah", 1969, 256, "Herbert", "SciFi"))
	fmt.Println("duplicate:", errors.IsAlreadyExists(err))

	fmt.Println("books:", archive.TotalBooks(), "magazines:", archive.TotalMagazines())
	fmt.Printf("average pages: %.0f\n", archive.AveragePages())
	// Output:
	// found: false
	// duplicate: true
	// books: 1 magazines: 1
	// average pages: 236
}
