package main

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/goalpad/internal/goals"
	"github.com/akyairhashvil/goalpad/internal/tui"
)

func TestEnvOr(t *testing.T) {
	t.Setenv("GOALPAD_TEST_VALUE", "  dracula ")
	if got := envOr("GOALPAD_TEST_VALUE", "default"); got != "dracula" {
		t.Fatalf("envOr = %q, want dracula", got)
	}
	t.Setenv("GOALPAD_TEST_VALUE", "   ")
	if got := envOr("GOALPAD_TEST_VALUE", "default"); got != "default" {
		t.Fatalf("envOr blank = %q, want default", got)
	}
}

func TestPrepareBuildsStore(t *testing.T) {
	t.Cleanup(func() { tui.SetTheme("default") })
	store, err := prepare(&app{Theme: "dracula", IDs: "counter"})
	if err != nil {
		t.Fatalf("prepare failed: %v", err)
	}
	if tui.CurrentThemeName() != "dracula" {
		t.Fatalf("expected theme to be applied, got %s", tui.CurrentThemeName())
	}
	if g := store.Add("first"); g.ID != "goal-1" {
		t.Fatalf("expected counter ids, got %q", g.ID)
	}
}

func TestPrepareRejectsUnknownTheme(t *testing.T) {
	_, err := prepare(&app{Theme: "neon", IDs: "uuid"})
	if err == nil || !strings.Contains(err.Error(), "unknown theme") {
		t.Fatalf("expected unknown theme error, got %v", err)
	}
}

func TestPrepareRejectsUnknownIDScheme(t *testing.T) {
	_, err := prepare(&app{Theme: "default", IDs: "random"})
	if !errors.Is(err, goals.ErrUnknownIDScheme) {
		t.Fatalf("expected ErrUnknownIDScheme, got %v", err)
	}
}

func TestRootCmdFlagDefaultsFromEnv(t *testing.T) {
	t.Setenv("GOALPAD_THEME", "dracula")
	t.Setenv("GOALPAD_IDS", "counter")
	cmd := newRootCmd()
	theme, err := cmd.PersistentFlags().GetString("theme")
	if err != nil || theme != "dracula" {
		t.Fatalf("theme flag = %q, %v", theme, err)
	}
	ids, err := cmd.PersistentFlags().GetString("ids")
	if err != nil || ids != "counter" {
		t.Fatalf("ids flag = %q, %v", ids, err)
	}
}

func TestRootCmdInvalidThemeFails(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--theme", "neon"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}

func TestVersionCmd(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "goalpad ") {
		t.Fatalf("unexpected version output %q", out.String())
	}
}

func TestSetupLoggingToFile(t *testing.T) {
	prev := log.Writer()
	t.Cleanup(func() { log.SetOutput(prev) })

	path := filepath.Join(t.TempDir(), "goalpad.log")
	closer, err := setupLogging(path)
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	log.Print("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("expected log line in file, got %q", string(data))
	}
}

func TestSetupLoggingDiscardsWithoutPath(t *testing.T) {
	prev := log.Writer()
	t.Cleanup(func() { log.SetOutput(prev) })

	closer, err := setupLogging("")
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	if log.Writer() != io.Discard {
		t.Fatalf("expected logs to be discarded")
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}
