package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/nvalla/walletview/pkg/catalog"
	"github.com/nvalla/walletview/pkg/model"
	"github.com/nvalla/walletview/pkg/settings"
)

func seedCatalog(t *testing.T, path string, collections ...model.Collection) {
	t.Helper()
	store, err := catalog.Open(path)
	if err != nil {
		t.Fatalf("Open catalog failed: %v", err)
	}
	defer store.Close()
	for _, c := range collections {
		if err := store.Upsert(c); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}
}

// waitForData drains states until a data state arrives.
func waitForData(t *testing.T, ch <-chan model.CollectionsState) model.CollectionsState {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case st, ok := <-ch:
			if !ok {
				t.Fatal("State channel closed before data arrived")
			}
			if st.Kind == model.StateData {
				return st
			}
			if st.Kind == model.StateError {
				t.Fatalf("Unexpected error state: %v", st.Err)
			}
		case <-deadline:
			t.Fatal("Timed out waiting for data state")
		}
	}
}

func newService(t *testing.T) (*CollectionService, string) {
	t.Helper()
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "gallery.db")
	seedCatalog(t, catalogPath,
		model.Collection{UID: "punks", Name: "CryptoPunks", FloorPrice: 40},
		model.Collection{UID: "apes", Name: "Apes", FloorPrice: 12},
	)

	svc := New(catalogPath, filepath.Join(dir, "settings.yaml"))
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	t.Cleanup(svc.Stop)
	return svc, catalogPath
}

func TestStart_EmitsInitialData(t *testing.T) {
	svc, _ := newService(t)

	ch := svc.Subscribe()
	st := waitForData(t, ch)
	if len(st.Collections) != 2 {
		t.Errorf("Expected 2 collections, got %d", len(st.Collections))
	}
}

func TestRefresh_PicksUpCatalogChanges(t *testing.T) {
	svc, catalogPath := newService(t)

	ch := svc.Subscribe()
	waitForData(t, ch)

	seedCatalog(t, catalogPath, model.Collection{UID: "meebits", Name: "Meebits"})
	svc.Refresh()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case st, ok := <-ch:
			if !ok {
				t.Fatal("Channel closed while waiting for refresh")
			}
			if st.Kind == model.StateData && len(st.Collections) == 3 {
				return
			}
		case <-deadline:
			t.Fatal("Refresh never delivered the new collection")
		}
	}
}

func TestSubscribe_LateSubscriberGetsLatestState(t *testing.T) {
	svc, _ := newService(t)

	first := svc.Subscribe()
	waitForData(t, first)

	// A fresh subscriber must not have to wait for the next emission.
	late := svc.Subscribe()
	select {
	case st := <-late:
		if st.Kind == "" {
			t.Error("Late subscriber received a zero state")
		}
	case <-time.After(time.Second):
		t.Fatal("Late subscriber received nothing")
	}
}

func TestStop_ClosesSubscribers(t *testing.T) {
	svc, _ := newService(t)

	ch := svc.Subscribe()
	waitForData(t, ch)
	svc.Stop()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("Channel not closed after Stop")
		}
	}
}

func TestUnsubscribe(t *testing.T) {
	svc, _ := newService(t)

	ch := svc.Subscribe()
	waitForData(t, ch)
	svc.Unsubscribe(ch)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("Channel not closed after Unsubscribe")
		}
	}
}

func TestSetPriceMode_Persists(t *testing.T) {
	svc, _ := newService(t)

	if err := svc.SetPriceMode(model.PriceFloor); err != nil {
		t.Fatalf("SetPriceMode failed: %v", err)
	}
	if svc.PriceMode() != model.PriceFloor {
		t.Errorf("Expected floor mode, got %s", svc.PriceMode())
	}

	s, err := settings.Load(svc.settingsPath)
	if err != nil {
		t.Fatalf("Load settings failed: %v", err)
	}
	if s.PriceMode != model.PriceFloor {
		t.Errorf("Price mode not persisted, got %s", s.PriceMode)
	}
}

func TestSetPriceMode_RejectsInvalid(t *testing.T) {
	svc, _ := newService(t)
	if err := svc.SetPriceMode("bananas"); err == nil {
		t.Error("Expected error for invalid price mode")
	}
}

func TestSetAllowThirdPartyKeyboard_Persists(t *testing.T) {
	svc, _ := newService(t)

	if err := svc.SetAllowThirdPartyKeyboard(true); err != nil {
		t.Fatalf("SetAllowThirdPartyKeyboard failed: %v", err)
	}
	s, err := settings.Load(svc.settingsPath)
	if err != nil {
		t.Fatalf("Load settings failed: %v", err)
	}
	if !s.AllowThirdPartyKeyboard {
		t.Error("Keyboard permission not persisted")
	}
}
