package template

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// ParseVars parses key=value arguments into a variable set. Each argument
// must contain an '=' with a non-empty key; the value may itself contain
// '=' characters. Later duplicate keys overwrite earlier ones.
func ParseVars(args []string) (map[string]string, error) {
	vars := make(map[string]string, len(args))

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid variable format: %q (expected key=value)", arg)
		}
		vars[key] = value
	}

	return vars, nil
}

// Render substitutes every {{key}} placeholder in text with its value from
// vars. Placeholders with no matching key are left untouched. Each key is
// applied as an independent full pass over the evolving string, so a value
// that contains a {{other}} shaped substring will itself be substituted if
// "other" happens to be processed afterwards; the cross-key order is map
// iteration order and is not guaranteed.
func Render(text string, vars map[string]string) string {
	result := text
	for key, value := range vars {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return result
}

// RenderFile reads the template at path and renders it with vars.
func RenderFile(path string, vars map[string]string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template file %s: %w", path, err)
	}

	return Render(string(content), vars), nil
}

// SortedKeys returns the variable names in lexical order, for deterministic
// diagnostic output.
func SortedKeys(vars map[string]string) []string {
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
