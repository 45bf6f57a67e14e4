// Package settings persists the small set of values that should survive
// between runs (last server address, last username) as a plain
// key=value text file, independent of the richer YAML config in
// pkg/config.
package settings

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const fileName = "gyra.settings"

// Settings is the persisted key-value store. Fields are loaded at
// startup and rewritten at shutdown.
type Settings struct {
	ServerAddress string
	Username      string
}

// dir resolves the directory settings are stored in: GYRA_CONFIG_DIR if
// set, otherwise the platform user-config directory.
func dir() (string, error) {
	if override := os.Getenv("GYRA_CONFIG_DIR"); override != "" {
		return override, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("settings: resolve config dir: %w", err)
	}
	return filepath.Join(base, "gyra"), nil
}

func path() (string, error) {
	d, err := dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, fileName), nil
}

// Load reads the settings file. A missing file is not an error: it
// returns a zero-value Settings, as on first run.
func Load() (*Settings, error) {
	p, err := path()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if os.IsNotExist(err) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("settings: open %s: %w", p, err)
	}
	defer f.Close()

	s := &Settings{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "server_address":
			s.ServerAddress = strings.TrimSpace(value)
		case "username":
			s.Username = strings.TrimSpace(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("settings: scan %s: %w", p, err)
	}
	return s, nil
}

// Save rewrites the settings file in full.
func (s *Settings) Save() error {
	p, err := path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("settings: mkdir: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "server_address=%s\n", s.ServerAddress)
	fmt.Fprintf(&b, "username=%s\n", s.Username)

	if err := os.WriteFile(p, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("settings: write %s: %w", p, err)
	}
	return nil
}
