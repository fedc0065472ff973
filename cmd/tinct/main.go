package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/tinct/internal/colorspec"
	"github.com/unkn0wn-root/tinct/internal/config"
	"github.com/unkn0wn-root/tinct/internal/theme"
	"github.com/unkn0wn-root/tinct/internal/ui"
	"github.com/unkn0wn-root/tinct/internal/watcher"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type dirList []string

func (d *dirList) String() string {
	return strings.Join(*d, ",")
}

func (d *dirList) Set(value string) error {
	*d = append(*d, value)
	return nil
}

func main() {
	var (
		themeDirs   dirList
		themeName   string
		profileName string
		swatch      bool
		showVersion bool
	)

	flag.Var(&themeDirs, "themes", "Additional directory to scan for theme files (repeatable)")
	flag.StringVar(&themeName, "theme", "", "Theme key to select")
	flag.StringVar(&profileName, "profile", "", "Color profile: auto, ascii, ansi, ansi256, truecolor")
	flag.BoolVar(&swatch, "swatch", false, "Print the selected theme's swatches and exit")
	flag.BoolVar(&showVersion, "version", false, "Show tinct version")
	flag.Usage = usage
	flag.Parse()

	if showVersion {
		fmt.Printf("tinct %s (commit %s, built %s)\n", version, commit, date)
		return
	}

	settings, _, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}

	if profileName == "" {
		profileName = settings.Profile
	}
	profile, err := colorspec.ParseProfile(profileName)
	if err != nil {
		log.Fatalf("%v", err)
	}
	caps := colorspec.ForProfile(profile)

	dirs := append([]string{}, settings.ThemeDirs...)
	dirs = append(dirs, themeDirs...)

	catalog, err := theme.LoadCatalog(dirs, caps)
	if err != nil {
		// Broken theme files are reported but never block the rest.
		log.Printf("warning: %v", err)
	}

	if themeName == "" {
		themeName = settings.DefaultTheme
	}
	def, ok := catalog.Get(themeName)
	if !ok {
		log.Fatalf("theme %q not found (have: %s)", themeName, strings.Join(catalog.Keys(), ", "))
	}

	if swatch {
		fmt.Print(ui.Swatches(def))
		return
	}

	watch := watcher.New(watcher.Options{})
	for _, dir := range dirs {
		watch.Watch(dir)
	}
	watch.Start()
	defer watch.Stop()

	model := ui.NewModel(dirs, catalog, caps).
		WithSelected(def.Key).
		WithWatcher(watch)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("run preview: %v", err)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, heredoc.Doc(`
		tinct - terminal theme preview

		Loads theme files (TOML, JSON or YAML), resolves each color's
		fallback list against the terminal's color profile and shows the
		resulting palette. Base color names always render; low-res and hex
		values degrade to the next fallback on limited terminals.

		Usage:
		  tinct [flags]

		Flags:
	`))
	flag.PrintDefaults()
}
