// ABOUTME: Built-in themes: default, ocean, forest, mono
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

import "github.com/mauromedda/boxwidth/pkg/tui/screen"

var builtins = map[string]*Theme{
	"default": Default(),
	"ocean":   {Name: "ocean", Border: screen.Blue, Label: screen.Cyan},
	"forest":  {Name: "forest", Border: screen.Green, Label: screen.Magenta},
	"mono":    {Name: "mono", Border: screen.White, Label: screen.White},
}

// Builtin returns a copy of a built-in theme by name, or nil if unknown.
func Builtin(name string) *Theme {
	t, ok := builtins[name]
	if !ok {
		return nil
	}
	c := *t
	return &c
}

// BuiltinNames returns the names of all built-in themes.
func BuiltinNames() []string {
	return []string{"default", "ocean", "forest", "mono"}
}
