package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nvalla/walletview/pkg/model"
)

var chartCollections = []model.Collection{
	{UID: "punks", Name: "CryptoPunks", FloorPrice: 42.5},
	{UID: "apes", Name: "Apes", FloorPrice: 12},
	{UID: "meebits", Name: "Meebits", FloorPrice: 3.2},
}

func TestWriteSVG(t *testing.T) {
	var sb strings.Builder
	if err := WriteSVG(&sb, chartCollections); err != nil {
		t.Fatalf("WriteSVG failed: %v", err)
	}

	out := sb.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Error("Output is not an SVG document")
	}
	for _, c := range chartCollections {
		if !strings.Contains(out, c.Name) {
			t.Errorf("Chart missing collection %q", c.Name)
		}
	}
}

func TestWriteSVG_Empty(t *testing.T) {
	var sb strings.Builder
	if err := WriteSVG(&sb, nil); err == nil {
		t.Error("Expected error for empty collection list")
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	if err := WritePNG(path, chartCollections); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading chart failed: %v", err)
	}
	// PNG signature
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Error("Output is not a PNG file")
	}
}

func TestWritePNG_SingleCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	if err := WritePNG(path, chartCollections[:1]); err != nil {
		t.Fatalf("WritePNG failed for single collection: %v", err)
	}
}
