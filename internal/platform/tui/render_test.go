package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderScreenContent(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "Score", core.ColorBrightWhite)
	s.SetColored(2, 1, '●', core.ColorBrightRed)
	s.SetColored(3, 2, 'v', core.ColorBrightGreen)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, want := range []string{"Score", "●", "v"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}

func TestRenderScreenUnknownColor(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetColored(0, 0, 'x', core.Color(200))

	if !strings.Contains(RenderScreen(s), "x") {
		t.Error("unknown colors should fall back to the default style")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("abc", 9); got != "   abc" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText should not truncate, got %q", got)
	}
}
