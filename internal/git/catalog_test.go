package git

import (
	"strings"
	"testing"
)

func TestCatalogs(t *testing.T) {
	if len(CommitMessages) < 10 {
		t.Errorf("Expected at least 10 commit messages, got %d", len(CommitMessages))
	}
	if len(ContentTemplates) < 10 {
		t.Errorf("Expected at least 10 content templates, got %d", len(ContentTemplates))
	}

	for _, msg := range CommitMessages {
		if strings.TrimSpace(msg) == "" {
			t.Error("Empty commit message in catalog")
		}
	}
	for _, tpl := range ContentTemplates {
		if strings.Count(tpl, "%s") != 1 || strings.Count(tpl, "%") != 1 {
			t.Errorf("Template %q must contain exactly one %%s verb", tpl)
		}
	}
}

func TestRenderContent(t *testing.T) {
	got := RenderContent("Daily update at %s", "2026-03-14 09:30:00")
	if got != "Daily update at 2026-03-14 09:30:00" {
		t.Errorf("Unexpected content %q", got)
	}
}

func TestChooseBetween(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi int
		pick   int
		want   int
	}{
		{"lowest", 1, 10, 0, 1},
		{"highest", 1, 10, 9, 10},
		{"zero range", 0, 0, 0, 0},
		{"single value", 3, 3, 0, 3},
		{"inverted range", 5, 2, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotN int
			c := ChooserFunc(func(n int) int {
				gotN = n
				return tt.pick
			})

			if got := ChooseBetween(c, tt.lo, tt.hi); got != tt.want {
				t.Errorf("ChooseBetween(%d, %d) = %d, want %d", tt.lo, tt.hi, got, tt.want)
			}
			if tt.hi > tt.lo && gotN != tt.hi-tt.lo+1 {
				t.Errorf("Chooser called with n=%d, want %d", gotN, tt.hi-tt.lo+1)
			}
		})
	}
}

func TestRandomChooserStaysInRange(t *testing.T) {
	c := RandomChooser()
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		v := ChooseBetween(c, 2, 4)
		if v < 2 || v > 4 {
			t.Fatalf("Value %d outside [2, 4]", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("Expected every value in [2, 4] to appear, saw %v", seen)
	}
}
