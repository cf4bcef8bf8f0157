package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/meur/pokedex/internal/config"
	"github.com/meur/pokedex/internal/logging"
	"github.com/meur/pokedex/internal/models"
	"github.com/meur/pokedex/internal/pokeapi"
	"github.com/meur/pokedex/internal/pokedex"
	"github.com/meur/pokedex/internal/theme"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
)

const barWidth = 30

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s✗ Failed to load config: %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}

	limit := flag.Int("limit", cfg.PageSize, "Number of pokemon to list")
	name := flag.String("name", "", "Show the details screen for one pokemon")
	noColor := flag.Bool("no-color", false, "Disable ANSI colors")
	flag.Parse()

	logger, _ := logging.Setup(os.Stderr, cfg.LogLevel, *noColor)

	client := pokeapi.New(cfg.BaseURL, pokeapi.WithTimeout(cfg.HTTPTimeout))
	dex := pokedex.NewService(client, client, pokedex.Options{
		PageSize:         cfg.PageSize,
		FetchConcurrency: cfg.FetchConcurrency,
		Logger:           logger,
	})

	p := &printer{w: os.Stdout, color: !*noColor}
	chrome := theme.DefaultChrome()
	ctx := context.Background()

	var status models.Status
	if *name != "" {
		fmt.Fprintf(os.Stderr, "%s%s%s\n", colorCyan, chrome.LoadingText, colorReset)
		screen := dex.LoadDetails(ctx, *name)
		status = screen.Status
		p.details(chrome, screen)
	} else {
		screen := dex.LoadList(ctx, *limit)
		status = screen.Status
		p.list(chrome, screen)
	}

	if status != models.StatusLoaded {
		os.Exit(1)
	}
}

type printer struct {
	w     io.Writer
	color bool
}

func (p *printer) paint(hex, s string) string {
	if !p.color {
		return s
	}
	r, g, b, ok := parseHex(hex)
	if !ok {
		return s
	}
	return fmt.Sprintf("\033[38;2;%d;%d;%dm%s%s", r, g, b, s, colorReset)
}

func (p *printer) badge(hex, s string) string {
	if !p.color {
		return "[" + s + "]"
	}
	r, g, b, ok := parseHex(hex)
	if !ok {
		return "[" + s + "]"
	}
	return fmt.Sprintf("\033[48;2;%d;%d;%dm\033[97m %s %s", r, g, b, s, colorReset)
}

func (p *printer) bold(s string) string {
	if !p.color {
		return s
	}
	return colorBold + s + colorReset
}

func (p *printer) list(chrome models.Chrome, screen models.ListScreen) {
	fmt.Fprintf(p.w, "%s\n\n", p.paint(chrome.HeaderColor, p.bold(chrome.ListTitle)))

	if screen.Status != models.StatusLoaded {
		fmt.Fprintf(p.w, "%s✗ Could not load the list (load %s)%s\n", colorRed, screen.LoadID, colorReset)
		return
	}

	for _, v := range screen.Pokemon {
		badges := make([]string, 0, len(v.Types))
		for _, t := range v.Types {
			badges = append(badges, p.badge(t.Color, t.Name))
		}
		fmt.Fprintf(p.w, "%s %s\n", p.paint(v.AccentColor, p.bold(fmt.Sprintf("%-12s", v.Name))), strings.Join(badges, " "))
		fmt.Fprintf(p.w, "  %s\n  %s\n", v.FrontImage, v.BackImage)
	}
	fmt.Fprintf(p.w, "\n%s✓ %d pokemon%s\n", colorGreen, len(screen.Pokemon), colorReset)
}

func (p *printer) details(chrome models.Chrome, screen models.DetailsScreen) {
	fmt.Fprintf(p.w, "%s\n\n", p.paint(chrome.HeaderColor, p.bold(chrome.DetailsTitle)))

	switch screen.Status {
	case models.StatusNotFound:
		fmt.Fprintln(p.w, chrome.NotFoundText)
		return
	case models.StatusFailed:
		fmt.Fprintf(p.w, "%s✗ Could not load %q (load %s)%s\n", colorRed, screen.Name, screen.LoadID, colorReset)
		return
	}

	d := screen.Details
	fmt.Fprintf(p.w, "%s\n", p.paint(d.PrimaryColor, p.bold(d.DisplayName)))

	badges := make([]string, 0, len(d.Types))
	for _, t := range d.Types {
		badges = append(badges, p.badge(t.Color, t.Label))
	}
	fmt.Fprintf(p.w, "%s\n\n", strings.Join(badges, " "))
	fmt.Fprintf(p.w, "  %s\n  %s\n\n", d.FrontImage, d.BackImage)

	fmt.Fprintln(p.w, p.bold("Base Stats"))
	for _, s := range d.Stats {
		filled := int(s.Percent*barWidth + 0.5)
		bar := p.paint(d.PrimaryColor, strings.Repeat("█", filled)) + strings.Repeat("░", barWidth-filled)
		fmt.Fprintf(p.w, "  %-8s %s %3d\n", s.Label, bar, s.Value)
	}

	fmt.Fprintf(p.w, "\n%s\n", p.bold("Abilities"))
	for _, a := range d.Abilities {
		fmt.Fprintf(p.w, "  %s\n", p.paint(d.PrimaryColor, "▌")+" "+a)
	}
}

// parseHex reads #RRGGBB
func parseHex(hex string) (r, g, b int, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
