package ui

import (
	"github.com/nvalla/walletview/pkg/model"
)

// CollectionViewItem pairs a collection with its view-only expanded flag.
// The flag survives refreshes keyed by the collection UID; every other
// field is replaced wholesale with the incoming data.
type CollectionViewItem struct {
	Collection model.Collection
	Expanded   bool
}

// remapPreserveExpanded maps incoming collections to view items, carrying
// over each item's expanded flag by UID lookup against the previous list.
// New UIDs default to collapsed; stale UIDs are silently dropped.
func remapPreserveExpanded(prev []CollectionViewItem, next []model.Collection) []CollectionViewItem {
	expanded := make(map[string]bool, len(prev))
	for _, it := range prev {
		if it.Expanded {
			expanded[it.Collection.UID] = true
		}
	}

	items := make([]CollectionViewItem, len(next))
	for i, c := range next {
		items[i] = CollectionViewItem{
			Collection: c,
			Expanded:   expanded[c.UID],
		}
	}
	return items
}

// toggleByUID returns a copy of items with the flagged item's expansion
// inverted. Unknown UIDs leave the list untouched.
func toggleByUID(items []CollectionViewItem, uid string) []CollectionViewItem {
	for i, it := range items {
		if it.Collection.UID == uid {
			next := append([]CollectionViewItem(nil), items...)
			next[i].Expanded = !next[i].Expanded
			return next
		}
	}
	return items
}
