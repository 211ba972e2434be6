// Package service exposes the collection-data service: a start/stop
// lifecycle around the catalog, a refresh operation, and an observable
// stream of loading/data/error states with last-value-wins delivery.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nvalla/walletview/pkg/catalog"
	"github.com/nvalla/walletview/pkg/model"
	"github.com/nvalla/walletview/pkg/settings"
	"github.com/nvalla/walletview/pkg/watcher"
)

// CollectionService publishes collection states to subscribers and owns the
// mutable price-display-mode property. All state transitions are full
// replacements; subscribers that fall behind see only the latest state.
type CollectionService struct {
	catalogPath  string
	settingsPath string

	mu        sync.Mutex
	store     *catalog.Store
	watch     *watcher.Watcher
	subs      map[chan model.CollectionsState]struct{}
	last      model.CollectionsState
	loading   bool
	priceMode model.PriceMode
	prefs     settings.Settings
	stopped   bool
}

// New creates a service over the catalog at catalogPath. Preferences are
// read from and persisted to settingsPath.
func New(catalogPath, settingsPath string) *CollectionService {
	return &CollectionService{
		catalogPath:  catalogPath,
		settingsPath: settingsPath,
		subs:         make(map[chan model.CollectionsState]struct{}),
		priceMode:    model.PriceLastSale,
	}
}

// Start loads preferences, opens the catalog, begins watching it for
// changes, and triggers the initial load.
func (s *CollectionService) Start(ctx context.Context) error {
	var (
		prefs settings.Settings
		store *catalog.Store
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		prefs, err = settings.Load(s.settingsPath)
		return err
	})
	g.Go(func() error {
		var err error
		store, err = catalog.Open(s.catalogPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("start collection service: %w", err)
	}

	w, err := watcher.Watch(s.catalogPath, watcher.DefaultDebounceDuration, func() {
		s.Refresh()
	})
	if err != nil {
		store.Close()
		return fmt.Errorf("watch catalog: %w", err)
	}

	s.mu.Lock()
	s.store = store
	s.watch = w
	s.prefs = prefs
	s.priceMode = prefs.PriceMode
	s.mu.Unlock()

	s.Refresh()
	return nil
}

// Stop cancels the watch, closes all subscriber channels and the catalog.
// The service cannot be restarted.
func (s *CollectionService) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	w, store := s.watch, s.store
	subs := s.subs
	s.subs = make(map[chan model.CollectionsState]struct{})
	s.mu.Unlock()

	if w != nil {
		w.Close()
	}
	if store != nil {
		store.Close()
	}
	for ch := range subs {
		close(ch)
	}
}

// Refresh reloads collections from the catalog, emitting a loading state
// first and then either data or an error. A refresh while a load is in
// flight is a no-op; the stream is last-value-wins so queued refreshes
// would be indistinguishable.
func (s *CollectionService) Refresh() {
	s.mu.Lock()
	if s.stopped || s.store == nil || s.loading {
		s.mu.Unlock()
		return
	}
	s.loading = true
	store := s.store
	s.mu.Unlock()

	s.publish(model.Loading())

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		collections, err := store.Collections(ctx)

		s.mu.Lock()
		s.loading = false
		stopped := s.stopped
		s.mu.Unlock()
		if stopped {
			return
		}

		if err != nil {
			s.publish(model.Errored(err))
			return
		}
		s.publish(model.Data(collections))
	}()
}

// Subscribe registers a new observer. The channel immediately yields the
// latest state, if any, and is closed by Unsubscribe or Stop.
func (s *CollectionService) Subscribe() <-chan model.CollectionsState {
	ch := make(chan model.CollectionsState, 1)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		close(ch)
		return ch
	}
	s.subs[ch] = struct{}{}
	if s.last.Kind != "" {
		ch <- s.last
	}
	return ch
}

// Unsubscribe releases a channel obtained from Subscribe.
func (s *CollectionService) Unsubscribe(ch <-chan model.CollectionsState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for sub := range s.subs {
		if sub == ch {
			delete(s.subs, sub)
			close(sub)
			return
		}
	}
}

// publish replaces the retained state and delivers it to every subscriber,
// displacing any undelivered previous state.
func (s *CollectionService) publish(state model.CollectionsState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.last = state
	for ch := range s.subs {
		select {
		case ch <- state:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- state:
			default:
			}
		}
	}
}

// PriceMode returns the current price display mode.
func (s *CollectionService) PriceMode() model.PriceMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.priceMode
}

// SetPriceMode replaces the price display mode and persists it.
func (s *CollectionService) SetPriceMode(m model.PriceMode) error {
	if !m.IsValid() {
		return fmt.Errorf("invalid price mode: %s", m)
	}
	s.mu.Lock()
	s.priceMode = m
	s.prefs.PriceMode = m
	prefs := s.prefs
	path := s.settingsPath
	s.mu.Unlock()

	return settings.Save(path, prefs)
}

// SetAllowThirdPartyKeyboard persists the third-party keyboard permission.
func (s *CollectionService) SetAllowThirdPartyKeyboard(allow bool) error {
	s.mu.Lock()
	s.prefs.AllowThirdPartyKeyboard = allow
	prefs := s.prefs
	path := s.settingsPath
	s.mu.Unlock()

	return settings.Save(path, prefs)
}

// Prefs returns a snapshot of the loaded preferences.
func (s *CollectionService) Prefs() settings.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}
