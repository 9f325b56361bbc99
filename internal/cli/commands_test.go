package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/fontroute/pkg/errors"
)

const testFallbacks = `
[[fonts]]
name = "Noto Sans"
tags = ["Latn"]

[[fonts]]
name = "Noto Naskh Arabic"
tags = ["Arab"]

[[fonts]]
name = "Amiri"
tags = ["Arab"]

[[routes]]
from = "Noto Sans"
to = "Noto Naskh Arabic"
tag = "Arab"

[[routes]]
from = "Noto Naskh Arabic"
to = "Amiri"
tag = "Arab"

[[routes]]
from = "Amiri"
to = "Noto Sans"
tag = "arab"
`

// writeFallbacks writes the test fallback file into a temp dir.
func writeFallbacks(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fallbacks.toml")
	if err := os.WriteFile(path, []byte(testFallbacks), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the root command with args in an isolated environment and
// returns what the command wrote to its output stream.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCheckCommand(t *testing.T) {
	path := writeFallbacks(t)

	if _, err := execute(t, "check", path); err != nil {
		t.Errorf("check: %v", err)
	}

	_, err := execute(t, "check", "--strict", path)
	if got := errors.GetCode(err); got != errors.ErrCodeRouteCycle {
		t.Errorf("check --strict code = %q, want %q (err %v)", got, errors.ErrCodeRouteCycle, err)
	}
}

func TestCheckCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "check", filepath.Join(t.TempDir(), "missing.toml"))
	if got := errors.GetCode(err); got != errors.ErrCodeNotFound {
		t.Errorf("check missing code = %q, want %q", got, errors.ErrCodeNotFound)
	}
}

func TestQueryCommand(t *testing.T) {
	path := writeFallbacks(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"direct", []string{"query", path, "Noto Sans", "Arab"}, "Noto Naskh Arabic\n"},
		{"chain", []string{"query", path, "Noto Sans", "arab", "--chain"}, "Noto Naskh Arabic\nAmiri\n"},
		{"chain limited", []string{"query", path, "Noto Sans", "Arab", "--chain", "-n", "1"}, "Noto Naskh Arabic\n"},
		{"unattached tag", []string{"query", path, "Amiri", "Latn"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("query: %v", err)
			}
			if out != tt.want {
				t.Errorf("query output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestQueryCommand_UnknownFont(t *testing.T) {
	_, err := execute(t, "query", writeFallbacks(t), "Missing", "Arab")
	if got := errors.GetCode(err); got != errors.ErrCodeFontNotFound {
		t.Errorf("query code = %q, want %q", got, errors.ErrCodeFontNotFound)
	}
}

func TestExportCommand(t *testing.T) {
	path := writeFallbacks(t)

	out, err := execute(t, "export", path)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var doc struct {
		Fonts  []json.RawMessage `json:"fonts"`
		Routes []json.RawMessage `json:"routes"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("export output is not JSON: %v\n%s", err, out)
	}
	if len(doc.Fonts) != 3 || len(doc.Routes) != 2 {
		t.Errorf("export = %d fonts, %d routes; want 3, 2", len(doc.Fonts), len(doc.Routes))
	}

	target := filepath.Join(t.TempDir(), "out.toml")
	if _, err := execute(t, "export", path, "-o", target); err != nil {
		t.Fatalf("export -o: %v", err)
	}
	if _, err := os.Stat(target); err != nil {
		t.Errorf("export -o did not write %s: %v", target, err)
	}
}

func TestRenderCommand_DOT(t *testing.T) {
	path := writeFallbacks(t)
	target := filepath.Join(t.TempDir(), "graph.dot")

	if _, err := execute(t, "render", path, "--format", "dot", "--no-cache", "-o", target); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "digraph") {
		t.Errorf("render output = %q, want DOT digraph", data)
	}
	if !strings.Contains(string(data), `"Noto Sans" -> "Noto Naskh Arabic"`) {
		t.Errorf("render output missing route edge:\n%s", data)
	}
}

func TestRenderCommand_InvalidFormat(t *testing.T) {
	_, err := execute(t, "render", writeFallbacks(t), "--format", "gif")
	if got := errors.GetCode(err); got != errors.ErrCodeInvalidFormat {
		t.Errorf("render code = %q, want %q", got, errors.ErrCodeInvalidFormat)
	}
}

func TestConfigFlag(t *testing.T) {
	path := writeFallbacks(t)
	cfg := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfg, []byte("default_limit = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--config", cfg, "query", path, "Noto Sans", "Arab", "--chain")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if out != "Noto Naskh Arabic\n" {
		t.Errorf("query with default_limit = 1 output = %q, want one line", out)
	}

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "version")
	if err == nil {
		t.Error("explicit missing config should fail")
	}
}
