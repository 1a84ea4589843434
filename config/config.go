// Package config loads logradar's TOML configuration file and resolves it
// into the profile table the UI selects from.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/ftahirops/logradar/model"
)

// ProfileConfig is one [profiles.<name>] table in the config file.
type ProfileConfig struct {
	MinLevel   string   `toml:"min_level"`
	Theme      string   `toml:"theme"`
	Highlights []string `toml:"highlights"`
}

// File is the raw shape of logradar.toml.
type File struct {
	DefaultProfile string                   `toml:"default_profile"`
	Profiles       map[string]ProfileConfig `toml:"profiles"`
}

// Default returns an empty config: no profile overrides, "default" active.
func Default() File {
	return File{DefaultProfile: "default"}
}

// Path resolves the config file location using the documented precedence:
// an explicit --config flag value, then ./logradar.toml in the current
// directory, then $XDG_CONFIG_HOME/logradar/config.toml (or
// ~/.config/logradar/config.toml). Returns "" if none exist and no
// explicit path was given.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat("logradar.toml"); err == nil {
		return "logradar.toml"
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "" // refuse to fall back to /tmp
		}
		dir = filepath.Join(home, ".config")
	}
	candidate := filepath.Join(dir, "logradar", "config.toml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}

// Load reads and parses the config file at path. A missing, unreadable or
// unparsable file is not fatal: it falls back to Default(), logging a
// warning for an unreadable or unparsable file (a missing one is silent).
func Load(path string) File {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("logradar: warning: reading config %s: %v", path, err)
		}
		return Default()
	}
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		log.Printf("logradar: warning: parsing config %s: %v", path, err)
		return Default()
	}
	if f.DefaultProfile == "" {
		f.DefaultProfile = "default"
	}
	return f
}

// Profiles merges the config file's [profiles.*] tables onto the built-in
// profile table: a name that matches a built-in overrides its fields, and
// any other name is appended as a new profile.
func (f File) Profiles() []model.Profile {
	out := model.BuiltinProfiles()
	byName := make(map[string]int, len(out))
	for i, p := range out {
		byName[p.Name] = i
	}
	for name, pc := range f.Profiles {
		p := model.Profile{
			Name:       name,
			MinLevel:   parseLevel(pc.MinLevel),
			Theme:      nonEmpty(pc.Theme, "matrix"),
			Highlights: pc.Highlights,
		}
		if idx, ok := byName[name]; ok {
			out[idx] = p
		} else {
			byName[name] = len(out)
			out = append(out, p)
		}
	}
	return out
}

// Resolve picks the active profile by name (the config's default_profile,
// overridden by an explicit --profile flag), returning an error the CLI
// should exit nonzero on if the name doesn't exist.
func (f File) Resolve(explicitProfile string) (model.Profile, error) {
	name := f.DefaultProfile
	if explicitProfile != "" {
		name = explicitProfile
	}
	for _, p := range f.Profiles() {
		if p.Name == name {
			return p, nil
		}
	}
	return model.Profile{}, fmt.Errorf("unknown profile %q", name)
}

func parseLevel(s string) model.Severity {
	if s == "" {
		return model.Info
	}
	return model.ParseSeverity(s)
}

func nonEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
