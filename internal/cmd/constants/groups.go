// Package constants holds identifiers shared by the libris commands.
package constants

// Command group IDs shown in the root help.
const (
	// GroupCatalog holds the commands that read or change single items.
	GroupCatalog = "catalog"

	// GroupQuery holds the search and reporting commands.
	GroupQuery = "query"

	// GroupManagement holds export and housekeeping commands.
	GroupManagement = "management"
)
