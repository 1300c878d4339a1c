package renderer

import (
	"strings"
	"testing"

	"bluemanor/pkg/game/tiles"
)

func TestApplyMarkup_ExpandsTags(t *testing.T) {
	InitColors()

	cases := []struct {
		in   string
		want string
	}{
		{"Built the ROOM{Vault}.", "Vault"},
		{"Found ITEM{3 coins}!", "3 coins"},
		{"Press ACTION{enter} to continue", "enter"},
		{"DENIED{Unknown command}.", "Unknown command"},
		{"plain text stays put", "plain text stays put"},
	}
	for _, c := range cases {
		got := ApplyMarkup("%s", c.in)
		if !strings.Contains(got, c.want) {
			t.Errorf("ApplyMarkup(%q) = %q, should contain %q", c.in, got, c.want)
		}
		if strings.Contains(got, "{") {
			t.Errorf("ApplyMarkup(%q) = %q, markup braces survived", c.in, got)
		}
	}
}

func TestApplyMarkup_FormatsOperands(t *testing.T) {
	InitColors()
	got := ApplyMarkup("Found ITEM{%d %s}.", 5, "coins")
	if !strings.Contains(got, "5 coins") {
		t.Errorf("ApplyMarkup with format operands = %q, should contain %q", got, "5 coins")
	}
}

func TestApplyMarkup_UnknownTagKeepsOperand(t *testing.T) {
	InitColors()
	got := ApplyMarkup("%s", "a WEIRD{thing} here")
	if !strings.Contains(got, "thing") || strings.Contains(got, "WEIRD{") {
		t.Errorf("unknown tags should degrade to their operand, got %q", got)
	}
}

func TestTileIcon_FallsBackToPlaceholder(t *testing.T) {
	InitColors()

	known := &tiles.Tile{Name: "Vault", ImageID: "vault"}
	if got := tileIcon(known); got != "$" {
		t.Errorf("tileIcon for a registered asset = %q, want $", got)
	}

	unknown := &tiles.Tile{Name: "Observatory", ImageID: "no_such_asset"}
	if got := tileIcon(unknown); got != "O" {
		t.Errorf("tileIcon placeholder = %q, want the first letter O", got)
	}

	nameless := &tiles.Tile{}
	if got := tileIcon(nameless); got != IconFallback {
		t.Errorf("tileIcon for a nameless tile = %q, want %q", got, IconFallback)
	}
}
