// ABOUTME: Environment variable expansion in config string fields other than phrases
// ABOUTME: Replaces ${VAR} patterns with os.Getenv values; unset vars become empty

package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in the string fields of c.
// Phrases are measured verbatim and never expanded.
func ResolveEnvVars(c *Config) {
	c.SizeProvider = expandEnv(c.SizeProvider)
	c.Theme = expandEnv(c.Theme)
	c.LogFile = expandEnv(c.LogFile)

	for i, name := range c.Tests {
		c.Tests[i] = expandEnv(name)
	}
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
