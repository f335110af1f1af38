package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildTestBinary builds the command into a temp dir.
func buildTestBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go tool not available")
	}

	name := "richmark_test"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	bin := filepath.Join(t.TempDir(), name)

	build := exec.Command("go", "build", "-ldflags", "-X main.version=9.9.9", "-o", bin, ".")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, out)
	}
	return bin
}

func run(t *testing.T, bin string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(bin, args...)
	cmd.Env = append(os.Environ(), "RICHMARK_CONFIG="+filepath.Join(t.TempDir(), "config.yaml"))
	out, err := cmd.Output()
	return string(out), err
}

func TestBinary(t *testing.T) {
	bin := buildTestBinary(t)
	sample := filepath.Join("testdata", "sample.html")

	t.Run("version", func(t *testing.T) {
		out, err := run(t, bin, "version")
		if err != nil {
			t.Fatalf("version failed: %v", err)
		}
		if strings.TrimSpace(out) != "richmark 9.9.9" {
			t.Errorf("unexpected version output: %q", out)
		}
	})

	t.Run("normalize", func(t *testing.T) {
		out, err := run(t, bin, "normalize", sample, "--sanitize")
		if err != nil {
			t.Fatalf("normalize failed: %v", err)
		}
		want := "<h1>Release notes</h1>" +
			"<p>This release adds <strong>bold</strong>, <em>italic</em> and <code>inline code</code>.</p>" +
			"<blockquote>Keep it simple.</blockquote>" +
			"<ul><li>first</li><li><u>second</u></li></ul>" +
			"<p>Thanks for reading</p>"
		if strings.TrimSpace(out) != want {
			t.Errorf("unexpected output:\n got: %s\nwant: %s", out, want)
		}
	})

	t.Run("parse and export", func(t *testing.T) {
		value := filepath.Join(t.TempDir(), "value.json")
		if _, err := run(t, bin, "parse", sample, "--sanitize", "-q", "-o", value); err != nil {
			t.Fatalf("parse failed: %v", err)
		}

		data, err := os.ReadFile(value)
		if err != nil {
			t.Fatalf("failed to read parse output: %v", err)
		}
		for _, want := range []string{`"heading-one"`, `"block-quote"`, `"bulleted-list"`, `"underline": true`} {
			if !strings.Contains(string(data), want) {
				t.Errorf("expected %s in parse output", want)
			}
		}

		out, err := run(t, bin, "export", value)
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		if !strings.HasPrefix(out, "<h1>Release notes</h1>") {
			t.Errorf("unexpected export output: %s", out)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := run(t, bin, "convert", "does-not-exist.html"); err == nil {
			t.Error("expected non-zero exit for missing file")
		}
	})
}
