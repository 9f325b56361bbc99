package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/fontroute/pkg/catalog"
)

func browseCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat := catalog.New()
	for _, f := range []struct{ name, tag string }{
		{"Noto Sans", "Latn"},
		{"Noto Naskh Arabic", "Arab"},
		{"Amiri", "Arab"},
	} {
		if err := cat.AddFont(f.name, f.tag); err != nil {
			t.Fatal(err)
		}
	}
	for _, r := range [][3]string{
		{"Noto Sans", "Noto Naskh Arabic", "Arab"},
		{"Noto Naskh Arabic", "Amiri", "Arab"},
	} {
		if _, err := cat.AddRoute(r[0], r[1], r[2]); err != nil {
			t.Fatal(err)
		}
	}
	return cat
}

func press(m BrowseModel, keys ...tea.KeyMsg) BrowseModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(BrowseModel)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	keyShTab = tea.KeyMsg{Type: tea.KeyShiftTab}
)

func TestBrowseModel_Navigation(t *testing.T) {
	m := NewBrowseModel(browseCatalog(t))

	m = press(m, keyUp)
	if m.Cursor != 0 {
		t.Errorf("Cursor after up at top = %d, want 0", m.Cursor)
	}

	m = press(m, keyDown, keyDown, keyDown)
	if m.Cursor != 2 {
		t.Errorf("Cursor after 3 downs = %d, want 2 (clamped)", m.Cursor)
	}
	if got := m.Font().Name; got != "Amiri" {
		t.Errorf("Font() = %q, want %q", got, "Amiri")
	}
}

func TestBrowseModel_TagCycling(t *testing.T) {
	m := NewBrowseModel(browseCatalog(t))

	if got := m.Tag(); got != "Latn" {
		t.Fatalf("Tag() = %q, want %q", got, "Latn")
	}
	m = press(m, keyTab)
	if got := m.Tag(); got != "Arab" {
		t.Errorf("Tag() after tab = %q, want %q", got, "Arab")
	}
	m = press(m, keyTab)
	if got := m.Tag(); got != "Latn" {
		t.Errorf("Tag() after wrap = %q, want %q", got, "Latn")
	}
	m = press(m, keyShTab)
	if got := m.Tag(); got != "Arab" {
		t.Errorf("Tag() after shift+tab = %q, want %q", got, "Arab")
	}
}

func TestBrowseModel_Quit(t *testing.T) {
	m := NewBrowseModel(browseCatalog(t))
	if _, cmd := m.Update(keyQuit); cmd == nil {
		t.Error("Update(q) should return tea.Quit")
	}
}

func TestBrowseModel_View(t *testing.T) {
	m := press(NewBrowseModel(browseCatalog(t)), keyTab)

	view := m.View()
	for _, want := range []string{"Font Fallbacks", "Noto Sans", "Noto Naskh Arabic", "Amiri", "direct", "chain"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	m = press(m, keyDown, keyDown)
	if !strings.Contains(m.View(), "no fallbacks") {
		t.Error("View() for a font without fallbacks should say so")
	}
}
