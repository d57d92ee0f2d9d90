package template

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseVars(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected map[string]string
		wantErr  bool
	}{
		{
			name:     "single pair",
			args:     []string{"port=8080"},
			expected: map[string]string{"port": "8080"},
		},
		{
			name:     "value containing equals",
			args:     []string{"query=a=b=c"},
			expected: map[string]string{"query": "a=b=c"},
		},
		{
			name:     "empty value allowed",
			args:     []string{"host="},
			expected: map[string]string{"host": ""},
		},
		{
			name:     "later duplicate wins",
			args:     []string{"port=8080", "port=9090"},
			expected: map[string]string{"port": "9090"},
		},
		{
			name:     "no arguments",
			args:     []string{},
			expected: map[string]string{},
		},
		{
			name:    "missing separator",
			args:    []string{"novalue"},
			wantErr: true,
		},
		{
			name:    "empty key",
			args:    []string{"=value"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars, err := ParseVars(tt.args)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error but got none")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !reflect.DeepEqual(vars, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, vars)
			}
		})
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		vars     map[string]string
		expected string
	}{
		{
			name:     "single placeholder",
			text:     "listen :{{port}}",
			vars:     map[string]string{"port": "8080"},
			expected: "listen :8080",
		},
		{
			name:     "placeholder occurring twice",
			text:     "{{host}}:{{port}} -> {{host}}",
			vars:     map[string]string{"host": "localhost", "port": "80"},
			expected: "localhost:80 -> localhost",
		},
		{
			name:     "unmatched placeholder left untouched",
			text:     "{{host}}:{{port}}",
			vars:     map[string]string{"host": "localhost"},
			expected: "localhost:{{port}}",
		},
		{
			name:     "empty variable set is the identity",
			text:     "no {{change}} at all",
			vars:     map[string]string{},
			expected: "no {{change}} at all",
		},
		{
			name:     "value may be empty",
			text:     "a{{gap}}b",
			vars:     map[string]string{"gap": ""},
			expected: "ab",
		},
		{
			name:     "partial braces are not placeholders",
			text:     "{port} {{port} {{port}}",
			vars:     map[string]string{"port": "80"},
			expected: "{port} {{port} 80",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Render(tt.text, tt.vars)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

// A key's replacement is a single scan: text the replacement itself inserts
// is not re-substituted within the same key's pass.
func TestRenderSingleScanPerKey(t *testing.T) {
	result := Render("{{a}}", map[string]string{"a": "{{a}}-v"})
	if result != "{{a}}-v" {
		t.Errorf("expected %q, got %q", "{{a}}-v", result)
	}
}

func TestRenderFile(t *testing.T) {
	tempDir := t.TempDir()

	templatePath := filepath.Join(tempDir, "Caddyfile.template")
	if err := os.WriteFile(templatePath, []byte("{{name}}.localhost {\n}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := RenderFile(templatePath, map[string]string{"name": "app"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "app.localhost {\n}\n"
	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestRenderFile_Missing(t *testing.T) {
	_, err := RenderFile(filepath.Join(t.TempDir(), "nope.template"), nil)
	if err == nil {
		t.Fatal("expected error for missing template file")
	}
}

func TestSortedKeys(t *testing.T) {
	vars := map[string]string{"zeta": "1", "alpha": "2", "mid": "3"}

	keys := SortedKeys(vars)

	expected := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(keys, expected) {
		t.Errorf("expected %v, got %v", expected, keys)
	}
}
