package prefs

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/interpretive-systems/diffpane/internal/scrollsync"
)

// Prefs represents persisted viewer preferences.
type Prefs struct {
	Mode    scrollsync.Mode
	ModeSet bool
}

const keyMode = "diffpane.mode"

// Load reads preferences from git local config. Missing or invalid values
// leave the corresponding Set flag false.
func Load(repoRoot string) Prefs {
	var p Prefs
	if s, ok := get(repoRoot, keyMode); ok {
		if m, err := scrollsync.ParseMode(s); err == nil {
			p.Mode = m
			p.ModeSet = true
		}
	}
	return p
}

// SaveMode persists the view mode.
func SaveMode(repoRoot string, m scrollsync.Mode) error {
	return set(repoRoot, keyMode, m.String())
}

func get(repoRoot, key string) (string, bool) {
	cmd := exec.Command("git", "-C", repoRoot, "config", "--get", key)
	b, err := cmd.Output()
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(b)), true
}

func set(repoRoot, key, value string) error {
	cmd := exec.Command("git", "-C", repoRoot, "config", "--local", key, value)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git config %s: %w: %s", key, err, string(out))
	}
	return nil
}
