package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/meur/pokedex/internal/models"
	"github.com/meur/pokedex/internal/pokeapi/pokeapitest"
	"github.com/meur/pokedex/internal/pokedex"
	"github.com/meur/pokedex/internal/theme"
)

func TestParseHex(t *testing.T) {
	r, g, b, ok := parseHex("#EE8130")
	if !ok || r != 0xEE || g != 0x81 || b != 0x30 {
		t.Fatalf("unexpected %d %d %d %v", r, g, b, ok)
	}
	for _, bad := range []string{"", "#fff", "#GG0000", "#EE813020"} {
		if _, _, _, ok := parseHex(bad); ok {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestPrintList(t *testing.T) {
	bulba := pokeapitest.Pokemon("bulbasaur", "grass", "poison")
	var buf bytes.Buffer
	p := &printer{w: &buf}
	p.list(theme.DefaultChrome(), models.ListScreen{
		Status:  models.StatusLoaded,
		Pokemon: []models.PokemonView{pokedex.Project(&bulba)},
	})

	out := buf.String()
	for _, want := range []string{"Pokedex", "bulbasaur", "[grass] [poison]", "1 pokemon"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestPrintDetails(t *testing.T) {
	char := pokeapitest.Pokemon("charmander", "fire")
	d, err := pokedex.ProjectDetails(&char)
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	var buf bytes.Buffer
	p := &printer{w: &buf}
	p.details(theme.DefaultChrome(), models.DetailsScreen{Status: models.StatusLoaded, Name: "charmander", Details: d})

	out := buf.String()
	for _, want := range []string{"Pokemon Details", "Charmander", "[Fire]", "Sp. Atk", "Overgrow", "Chlorophyll"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestPrintDetailsNotFound(t *testing.T) {
	var buf bytes.Buffer
	p := &printer{w: &buf}
	p.details(theme.DefaultChrome(), models.DetailsScreen{Status: models.StatusNotFound, Name: "agumon"})
	if !strings.Contains(buf.String(), "Pokemon not found") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
