package memorize

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/chemiz/chemiz/internal/illustration"
	"github.com/chemiz/chemiz/internal/screen"
	"github.com/chemiz/chemiz/internal/substance"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(scr screen.Screen, text string) screen.Screen {
	for _, r := range text {
		scr, _ = scr.Update(keyPress(r))
	}
	return scr
}

func TestNew_ListsEverything(t *testing.T) {
	ds := substance.Default()
	s := New(ds, illustration.Embedded{})

	if len(s.Rows()) != ds.Len() {
		t.Errorf("rows = %d, want %d", len(s.Rows()), ds.Len())
	}
	sel, ok := s.Selected()
	if !ok || sel.Name != ds.At(0).Name {
		t.Errorf("Selected = %q, %v; want first substance", sel.Name, ok)
	}
}

func TestSearch_FiltersLive(t *testing.T) {
	s := New(substance.Default(), illustration.Embedded{})

	typeText(s, "hcho")

	rows := s.Rows()
	if len(rows) != 1 || rows[0].Name != "포름알데히드" {
		t.Fatalf("rows = %v, want only 포름알데히드", rows)
	}

	// Clearing the query restores the full list.
	var scr screen.Screen = s
	for range "hcho" {
		scr, _ = scr.Update(specialKey(tea.KeyBackspace))
	}
	if len(s.Rows()) != substance.Default().Len() {
		t.Errorf("rows after clearing = %d", len(s.Rows()))
	}
}

func TestSearch_NoMatch(t *testing.T) {
	s := New(substance.Default(), nil)
	typeText(s, "우라늄")

	if len(s.Rows()) != 0 {
		t.Fatalf("rows = %d, want 0", len(s.Rows()))
	}
	if _, ok := s.Selected(); ok {
		t.Error("expected no selection on an empty list")
	}
	if !strings.Contains(s.View(100, 40), "검색 결과가 없습니다") {
		t.Error("expected empty-result message")
	}
}

func TestArrows_MoveSelection(t *testing.T) {
	ds := substance.Default()
	s := New(ds, nil)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyUp))
	if s.selected != 0 {
		t.Errorf("selected = %d after up at top", s.selected)
	}
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	sel, _ := s.Selected()
	if sel.Name != ds.At(2).Name {
		t.Errorf("selected = %q, want %q", sel.Name, ds.At(2).Name)
	}

	for i := 0; i < ds.Len()+5; i++ {
		scr, _ = scr.Update(specialKey(tea.KeyDown))
	}
	if s.selected != ds.Len()-1 {
		t.Errorf("selected = %d, want clamp at %d", s.selected, ds.Len()-1)
	}
}

func TestTab_CyclesCategory(t *testing.T) {
	s := New(substance.Default(), nil)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyTab))
	for _, sub := range s.Rows() {
		if sub.Category != substance.CategoryInorganic {
			t.Fatalf("row %q has category %q", sub.Name, sub.Category)
		}
	}

	for range categories[1:] {
		scr, _ = scr.Update(specialKey(tea.KeyTab))
	}
	if len(s.Rows()) != substance.Default().Len() {
		t.Error("expected a full cycle back to every category")
	}
}

func TestPreview_IllustrationOrDescription(t *testing.T) {
	ds := substance.Default()
	s := New(ds, illustration.Embedded{})

	h2o, _ := ds.ByFormula("H2O")
	art, ok := illustration.Embedded{}.Lookup("H2O")
	if !ok {
		t.Fatal("embedded H2O diagram missing")
	}
	firstLine := strings.Split(art.Render(), "\n")[0]
	if !strings.Contains(s.renderPreview(h2o), strings.TrimSpace(firstLine)) {
		t.Error("expected H2O diagram in preview")
	}

	nacl, _ := ds.ByFormula("NaCl")
	if !strings.Contains(s.renderPreview(nacl), "구조 특징: "+nacl.Structure) {
		t.Error("expected description fallback for NaCl")
	}

	// Without a provider every preview falls back.
	bare := New(ds, nil)
	if !strings.Contains(bare.renderPreview(h2o), "그림 준비되지 않은 분자입니다") {
		t.Error("expected fallback without a provider")
	}
}
