package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/nvalla/walletview/pkg/catalog"
	"github.com/nvalla/walletview/pkg/export"
	"github.com/nvalla/walletview/pkg/service"
	"github.com/nvalla/walletview/pkg/settings"
	"github.com/nvalla/walletview/pkg/ui"
)

func main() {
	catalogFlag := flag.String("catalog", "", "Path to the wallet gallery catalog (sqlite)")
	importFlag := flag.String("import", "", "Import a collections JSONL export into the catalog and exit")
	exportSVG := flag.String("export-svg", "", "Write a floor-price chart (SVG) to the given path and exit")
	exportPNG := flag.String("export-png", "", "Write a floor-price sparkline (PNG) to the given path and exit")
	restore := flag.Bool("restore", false, "Open the mnemonic restore view")
	help := flag.Bool("help", false, "Show help")
	version := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *help {
		fmt.Println("Usage: wv [options]")
		fmt.Println("\nA TUI viewer for wallet NFT collections with mnemonic restore.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *version {
		fmt.Println("wv version 0.1.0")
		os.Exit(0)
	}

	settingsPath, err := settings.DefaultPath()
	if err != nil {
		fmt.Printf("Error locating settings: %v\n", err)
		os.Exit(1)
	}
	prefs, err := settings.Load(settingsPath)
	if err != nil {
		fmt.Printf("Error loading settings: %v\n", err)
		os.Exit(1)
	}

	catalogPath := *catalogFlag
	if catalogPath == "" {
		catalogPath = prefs.CatalogPath
	}

	if *importFlag != "" {
		if catalogPath == "" {
			fmt.Println("A catalog path is required for import; pass -catalog.")
			os.Exit(1)
		}
		runImport(catalogPath, *importFlag)
		return
	}
	if *exportSVG != "" || *exportPNG != "" {
		if catalogPath == "" {
			fmt.Println("A catalog path is required for export; pass -catalog.")
			os.Exit(1)
		}
		runExport(catalogPath, *exportSVG, *exportPNG)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println("wv is interactive; run it in a terminal.")
		os.Exit(1)
	}

	// First run: ask where the catalog lives and how to name the account.
	if catalogPath == "" {
		catalogPath, prefs, err = firstRunSetup(prefs)
		if err != nil {
			fmt.Printf("Setup aborted: %v\n", err)
			os.Exit(1)
		}
		prefs.CatalogPath = catalogPath
		if err := settings.Save(settingsPath, prefs); err != nil {
			fmt.Printf("Error saving settings: %v\n", err)
			os.Exit(1)
		}
	}

	svc := service.New(catalogPath, settingsPath)
	if err := svc.Start(context.Background()); err != nil {
		fmt.Printf("Error starting collection service: %v\n", err)
		os.Exit(1)
	}
	defer svc.Stop()

	var root tea.Model
	if *restore {
		p := svc.Prefs()
		root = ui.RestoreApp{Model: ui.NewRestoreModel(svc, p.AccountName, p.AllowThirdPartyKeyboard)}
	} else {
		root = ui.CollectionsApp{Model: ui.NewCollectionsModel(svc)}
	}

	prog := tea.NewProgram(root, tea.WithAltScreen())
	final, err := prog.Run()
	if err != nil {
		fmt.Printf("Error running walletview: %v\n", err)
		os.Exit(1)
	}

	if app, ok := final.(ui.RestoreApp); ok {
		if acct := app.Model.Result(); acct != nil {
			fmt.Printf("Restored %q from a %d-word phrase.\n", acct.Name, len(acct.Words))
		}
	}
}

func runImport(catalogPath, exportPath string) {
	store, err := catalog.Open(catalogPath)
	if err != nil {
		fmt.Printf("Error opening catalog: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	n, err := store.ImportJSONL(exportPath)
	if err != nil {
		fmt.Printf("Error importing collections: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Imported %d collections into %s\n", n, catalogPath)
}

func runExport(catalogPath, svgPath, pngPath string) {
	store, err := catalog.Open(catalogPath)
	if err != nil {
		fmt.Printf("Error opening catalog: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	collections, err := store.Collections(context.Background())
	if err != nil {
		fmt.Printf("Error reading collections: %v\n", err)
		os.Exit(1)
	}

	if svgPath != "" {
		if err := export.WriteSVGFile(svgPath, collections); err != nil {
			fmt.Printf("Error writing SVG chart: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", svgPath)
	}
	if pngPath != "" {
		if err := export.WritePNG(pngPath, collections); err != nil {
			fmt.Printf("Error writing PNG chart: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", pngPath)
	}
}

// firstRunSetup collects the catalog location and account name.
func firstRunSetup(prefs settings.Settings) (string, settings.Settings, error) {
	catalogPath := ""
	name := prefs.AccountName

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Catalog path").
				Description("Location of the wallet gallery database (sqlite).").
				Placeholder("~/.wallet/gallery.db").
				Value(&catalogPath).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("a catalog path is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Account name").
				Value(&name),
		),
	)
	if err := form.Run(); err != nil {
		return "", prefs, err
	}

	prefs.AccountName = name
	return catalogPath, prefs, nil
}
