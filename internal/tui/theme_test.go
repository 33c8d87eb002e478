package tui

import (
	"reflect"
	"testing"
)

func TestThemeNamesSorted(t *testing.T) {
	if got := ThemeNames(); !reflect.DeepEqual(got, []string{"default", "dracula"}) {
		t.Fatalf("ThemeNames = %v", got)
	}
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme("default") })
	if SetTheme("missing") {
		t.Fatalf("expected unknown theme to be rejected")
	}
	if CurrentThemeName() != "default" {
		t.Fatalf("unknown theme should not change current theme")
	}
	if !SetTheme("dracula") {
		t.Fatalf("expected dracula to be accepted")
	}
	if CurrentTheme.Name != "Dracula" || CurrentThemeName() != "dracula" {
		t.Fatalf("theme not applied: %s/%s", CurrentTheme.Name, CurrentThemeName())
	}
}

func TestNextThemeWraps(t *testing.T) {
	if got := NextTheme("default"); got != "dracula" {
		t.Fatalf("NextTheme(default) = %q", got)
	}
	if got := NextTheme("dracula"); got != "default" {
		t.Fatalf("NextTheme(dracula) = %q", got)
	}
	if got := NextTheme("unknown"); got != "default" {
		t.Fatalf("NextTheme(unknown) = %q", got)
	}
}
