package model

import (
	"fmt"
	"time"
)

// Asset represents a single NFT inside a collection.
type Asset struct {
	TokenID      string    `json:"token_id"`
	Name         string    `json:"name"`
	ImageURL     string    `json:"image_url,omitempty"`
	LastSale     float64   `json:"last_sale,omitempty"`
	AcquiredAt   time.Time `json:"acquired_at,omitempty"`
	CollectionID string    `json:"collection_id,omitempty"`
}

// Collection represents an NFT collection owned by the wallet.
type Collection struct {
	UID        string  `json:"uid"`
	Name       string  `json:"name"`
	ImageURL   string  `json:"image_url,omitempty"`
	FloorPrice float64 `json:"floor_price,omitempty"`
	Assets     []Asset `json:"assets,omitempty"`
}

// Clone creates a deep copy of the collection.
func (c Collection) Clone() Collection {
	clone := c
	if c.Assets != nil {
		clone.Assets = make([]Asset, len(c.Assets))
		copy(clone.Assets, c.Assets)
	}
	return clone
}

// Validate checks if the collection data is logically valid.
func (c *Collection) Validate() error {
	if c.UID == "" {
		return fmt.Errorf("collection UID cannot be empty")
	}
	if c.Name == "" {
		return fmt.Errorf("collection name cannot be empty")
	}
	if c.FloorPrice < 0 {
		return fmt.Errorf("floor price cannot be negative: %f", c.FloorPrice)
	}
	return nil
}

// PriceMode controls which price figure the collections view displays.
type PriceMode string

const (
	PriceLastSale PriceMode = "last_sale"
	PriceFloor    PriceMode = "floor"
	PriceHidden   PriceMode = "hidden"
)

// IsValid returns true if the price mode is a recognized value.
func (m PriceMode) IsValid() bool {
	switch m {
	case PriceLastSale, PriceFloor, PriceHidden:
		return true
	}
	return false
}

// Next cycles to the following price mode.
func (m PriceMode) Next() PriceMode {
	switch m {
	case PriceLastSale:
		return PriceFloor
	case PriceFloor:
		return PriceHidden
	default:
		return PriceLastSale
	}
}

// StateKind tags a CollectionsState.
type StateKind string

const (
	StateLoading StateKind = "loading"
	StateData    StateKind = "data"
	StateError   StateKind = "error"
)

// CollectionsState is one element of the observable collection stream.
// Exactly one of Collections or Err is meaningful, selected by Kind;
// a loading state carries neither.
type CollectionsState struct {
	Kind        StateKind
	Collections []Collection
	Err         error
}

// Loading returns a loading state.
func Loading() CollectionsState {
	return CollectionsState{Kind: StateLoading}
}

// Data returns a success state carrying the given collections.
func Data(collections []Collection) CollectionsState {
	return CollectionsState{Kind: StateData, Collections: collections}
}

// Errored returns a failure state carrying the given error.
func Errored(err error) CollectionsState {
	return CollectionsState{Kind: StateError, Err: err}
}

// RestoredAccount is the terminal result of a successful mnemonic restore:
// the validated word sequence plus the optional passphrase and chosen name.
type RestoredAccount struct {
	Name       string
	Words      []string
	Passphrase string
}
