// ABOUTME: Theme resolution from a built-in name or a YAML theme file
// ABOUTME: Colours are given by name; unset fields inherit from the default theme

package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/boxwidth/pkg/tui/screen"
)

// ErrUnknownTheme is returned when a name is neither built in nor a file.
var ErrUnknownTheme = errors.New("unknown theme")

// ErrUnknownColor is returned when a theme file names a colour that does not exist.
var ErrUnknownColor = errors.New("unknown colour")

type yamlTheme struct {
	Name   string `yaml:"name"`
	Border string `yaml:"border"`
	Label  string `yaml:"label"`
}

// Resolve returns the built-in theme called ref, or loads ref as a theme file
// when it looks like a path. The empty string resolves to the default theme.
func Resolve(ref string) (*Theme, error) {
	if ref == "" {
		return Default(), nil
	}
	if t := Builtin(ref); t != nil {
		return t, nil
	}
	if strings.ContainsRune(ref, filepath.Separator) || filepath.Ext(ref) == ".yaml" || filepath.Ext(ref) == ".yml" {
		return LoadFile(ref)
	}
	return nil, fmt.Errorf("%w %q (built-in: %s)", ErrUnknownTheme, ref, strings.Join(BuiltinNames(), ", "))
}

// LoadFile reads a YAML theme file and returns a Theme.
// Missing fields fall back to the default theme.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var yt yamlTheme
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	t := Default()
	t.Name = yt.Name
	if t.Name == "" {
		t.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if t.Border, err = colorOr(yt.Border, t.Border); err != nil {
		return nil, fmt.Errorf("theme %s border: %w", t.Name, err)
	}
	if t.Label, err = colorOr(yt.Label, t.Label); err != nil {
		return nil, fmt.Errorf("theme %s label: %w", t.Name, err)
	}
	return t, nil
}

func colorOr(name string, fallback screen.Color) (screen.Color, error) {
	if name == "" {
		return fallback, nil
	}
	c, ok := screen.ParseColor(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownColor, name)
	}
	return c, nil
}
