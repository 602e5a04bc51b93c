package catalog

import "github.com/agentstation/libris/pkg/items"

// Hook function types for item events. Hooks run after the in-memory
// change and before the catalog is saved.
type (
	// ItemAddedHook is called when an item is added to the catalog.
	ItemAddedHook func(item items.Item)

	// ItemUpdatedHook is called when an item is replaced.
	ItemUpdatedHook func(old, new items.Item)

	// ItemRemovedHook is called when an item is removed from the catalog.
	ItemRemovedHook func(item items.Item)
)

type hooks struct {
	onItemAdded   []ItemAddedHook
	onItemUpdated []ItemUpdatedHook
	onItemRemoved []ItemRemovedHook
}

// OnItemAdded registers a callback for added items.
func (a *Archive) OnItemAdded(fn ItemAddedHook) {
	a.hooks.onItemAdded = append(a.hooks.onItemAdded, fn)
}

// OnItemUpdated registers a callback for replaced items.
func (a *Archive) OnItemUpdated(fn ItemUpdatedHook) {
	a.hooks.onItemUpdated = append(a.hooks.onItemUpdated, fn)
}

// OnItemRemoved registers a callback for removed items.
func (a *Archive) OnItemRemoved(fn ItemRemovedHook) {
	a.hooks.onItemRemoved = append(a.hooks.onItemRemoved, fn)
}

func (h *hooks) itemAdded(item items.Item) {
	for _, fn := range h.onItemAdded {
		fn(item)
	}
}

func (h *hooks) itemUpdated(old, new items.Item) {
	for _, fn := range h.onItemUpdated {
		fn(old, new)
	}
}

func (h *hooks) itemRemoved(item items.Item) {
	for _, fn := range h.onItemRemoved {
		fn(item)
	}
}
