package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{200, 60, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestMetricsRate(t *testing.T) {
	if r := (Metrics{}).Rate(); r != 0 {
		t.Errorf("empty rate = %v", r)
	}
	if r := (Metrics{Score: 3, Total: 4}).Rate(); r != 0.75 {
		t.Errorf("rate = %v, want 0.75", r)
	}
}

func TestRenderHeader(t *testing.T) {
	wide := RenderHeader("테스트", Metrics{Score: 3, Total: 4, Streak: 2}, 120)
	for _, want := range []string{"Chemiz", "테스트", "3/4", "75%", "2연속"} {
		if !strings.Contains(wide, want) {
			t.Errorf("header missing %q:\n%s", want, wide)
		}
	}

	narrow := RenderHeader("홈", Metrics{}, 80)
	if strings.Contains(narrow, "Chemiz") {
		t.Error("compact header should drop the brand")
	}
	if strings.Contains(narrow, "%") {
		t.Error("rate should be hidden before the first grading")
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "채점"}, {Key: "Esc", Description: "홈"}}, 100)
	for _, want := range []string{"Enter", "채점", "Esc"} {
		if !strings.Contains(f, want) {
			t.Errorf("footer missing %q", want)
		}
	}
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	h := RenderHeader("홈", Metrics{}, 90)
	f := RenderFooter(nil, 90)
	frame := RenderFrame(h, "body", f, 90, 30)
	if got := lipgloss.Height(frame); got != 30 {
		t.Errorf("frame height = %d, want 30", got)
	}
}
