package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nvalla/walletview/pkg/model"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.PriceMode != model.PriceLastSale {
		t.Errorf("Expected default price mode, got %s", s.PriceMode)
	}
	if s.AccountName != DefaultAccountName {
		t.Errorf("Expected default account name, got %q", s.AccountName)
	}
	if s.AllowThirdPartyKeyboard {
		t.Error("Third-party keyboard must default to disallowed")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "settings.yaml")

	in := Settings{
		CatalogPath:             "/tmp/gallery.db",
		PriceMode:               model.PriceFloor,
		AllowThirdPartyKeyboard: true,
		AccountName:             "Savings",
	}
	if err := Save(path, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out != in {
		t.Errorf("Round trip mismatch: %+v vs %+v", out, in)
	}
}

func TestLoad_NormalizesBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "price_mode: bananas\naccount_name: \"\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.PriceMode != model.PriceLastSale {
		t.Errorf("Expected invalid price mode normalized, got %s", s.PriceMode)
	}
	if s.AccountName != DefaultAccountName {
		t.Errorf("Expected empty name normalized, got %q", s.AccountName)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed settings file")
	}
}
