package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jmylchreest/colourmaster/internal/version"
	"github.com/jmylchreest/colourmaster/pkg/colour"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
		want string
	}{
		{name: "hex to hsl", args: []string{"convert", "#ff8000", "--to", "hsl"}, want: "hsla(30, 100%, 50%, 1.0)\n"},
		{name: "keeps input format", args: []string{"convert", "hsl(190, 60%, 60%)"}, want: "hsla(190, 60%, 60%, 1.0)\n"},
		{name: "hinted bare values", args: []string{"convert", "--from", "hsl", "190, 60, 60", "--to", "hex", "--alpha=false"}, want: "#5cc2d6\n"},
		{name: "hint from environment", args: []string{"convert", "190, 60, 60", "--to", "hex", "--alpha=false"}, env: map[string]string{"COLOURMASTER_FROM": "hsl"}, want: "#5cc2d6\n"},
		{name: "split arguments", args: []string{"convert", "rgb(255,", "0,", "0)", "--to", "hex"}, want: "#ff0000ff\n"},
		{name: "several colours", args: []string{"convert", "red", "lime", "-t", "hex", "--alpha=false"}, want: "#ff0000\n#00ff00\n"},
		{name: "precision", args: []string{"convert", "#ff0000", "--to", "xyz", "-p", "2,2,2"}, want: "color(xyza 41.24, 21.26, 1.93, 1.0)\n"},
		{name: "cmyk", args: []string{"convert", "#ff8000", "--to", "cmyk", "--alpha=false"}, want: "cmyk(0, 50, 100, 0)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COLOURMASTER_FROM", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			out, _, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("convert failed: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "invalid colour", args: []string{"convert", "nope"}, want: `invalid colour "nope"`},
		{name: "invalid from", args: []string{"convert", "--from", "oklab", "red"}, want: "invalid --from"},
		{name: "invalid to", args: []string{"convert", "red", "--to", "oklab"}, want: "unknown colour format"},
		{name: "missing argument", args: []string{"convert"}, want: "requires at least 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestAdjustCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "hue by", args: []string{"adjust", "hsla(190, 60%, 60%, 0.6)", "--hue-by", "50"}, want: "hsla(240, 60%, 60%, 0.6)\n"},
		{name: "lighter then alpha", args: []string{"adjust", "hsla(190, 60%, 60%, 0.6)", "--lighter", "20", "--alpha-to", "1"}, want: "hsla(190, 60%, 80%, 1.0)\n"},
		{name: "invert with alpha", args: []string{"adjust", "hsla(190, 60%, 60%, 0.6)", "--invert-alpha"}, want: "hsla(10, 60%, 40%, 0.4)\n"},
		{name: "invert to hex", args: []string{"adjust", "red", "--invert", "--to", "hex", "--alpha=false"}, want: "#00ffff\n"},
		{name: "grayscale keeps hue", args: []string{"adjust", "hsla(190, 60%, 60%, 0.6)", "--grayscale"}, want: "hsla(190, 0%, 60%, 0.6)\n"},
		{name: "web safe", args: []string{"adjust", "hsla(3, 97%, 47%, 0.7)", "--web-safe"}, want: "hsla(0, 100%, 50%, 0.7)\n"},
		{name: "negative value", args: []string{"adjust", "hsl(190, 60%, 60%)", "--hue-by=-100", "--alpha=false"}, want: "hsl(90, 60%, 60%)\n"},
		{name: "no adjustments", args: []string{"adjust", "#ff0000"}, want: "#ff0000ff\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("adjust failed: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestInspectTable(t *testing.T) {
	out, _, err := run(t, "inspect", "red")
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}

	for _, want := range []string{"SPACE", "#ff0000ff", "hsla(0, 100%, 50%, 1.0)", "cmyka(0, 100, 100, 0, 1.0)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if last := lines[len(lines)-1]; !strings.HasPrefix(last, "name") || !strings.HasSuffix(last, "red") {
		t.Errorf("last row = %q, want the colour name", last)
	}
}

func TestInspectJSON(t *testing.T) {
	out, _, err := run(t, "inspect", "--format", "json", "hsl(120, 100%, 25%)")
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}

	var got struct {
		Input   string            `json:"input"`
		Format  string            `json:"format"`
		Name    string            `json:"name"`
		RGBA    colour.RGBA       `json:"rgba"`
		Strings map[string]string `json:"strings"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}

	if got.Format != "hsl" {
		t.Errorf("format = %q, want hsl", got.Format)
	}
	if got.Name != "green" {
		t.Errorf("name = %q, want green", got.Name)
	}
	if diff := cmp.Diff(colour.RGBA{R: 0, G: 127.5, B: 0, A: 1}, got.RGBA, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("rgba mismatch (-want +got):\n%s", diff)
	}
	if got.Strings["hex"] != "#008000ff" {
		t.Errorf("hex = %q, want #008000ff", got.Strings["hex"])
	}
	if len(got.Strings) != 12 {
		t.Errorf("got %d renderings, want 12", len(got.Strings))
	}
}

func TestInspectErrors(t *testing.T) {
	if _, _, err := run(t, "inspect", "--format", "xml", "red"); err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("error = %v, want unsupported format", err)
	}
	if _, _, err := run(t, "inspect", "red", "blue"); err == nil {
		t.Error("expected an error for two colours")
	}
}

func TestRandomCommand(t *testing.T) {
	out, _, err := run(t, "random", "--count", "3", "--to", "hex", "--opaque")
	if err != nil {
		t.Fatalf("random failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d colours, want 3", len(lines))
	}
	for _, line := range lines {
		if len(line) != 9 || !strings.HasPrefix(line, "#") || !strings.HasSuffix(line, "ff") {
			t.Errorf("unexpected colour %q", line)
		}
	}

	if _, _, err := run(t, "random", "--count", "0"); err == nil {
		t.Error("expected an error for --count 0")
	}
}

func TestSpacesCommand(t *testing.T) {
	out, _, err := run(t, "spaces")
	if err != nil {
		t.Fatalf("spaces failed: %v", err)
	}
	for _, want := range []string{"FORMAT", "rgba(255, 128, 0, 1.0)", "#ff8000ff", "cmyka(0, 50, 100, 0, 1.0)", "Light Sea Green"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "colourmaster version ") {
		t.Errorf("output = %q", out)
	}
}

func TestVersionJSON(t *testing.T) {
	out, _, err := run(t, "version", "--json")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}

	var info version.Info
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if diff := cmp.Diff(version.GetInfo(), info); diff != "" {
		t.Errorf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestLogging(t *testing.T) {
	t.Setenv("COLOURMASTER_LOG_LEVEL", "trace")

	_, stderr, err := run(t, "convert", "red")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if !strings.Contains(stderr, "parser accepted input") {
		t.Errorf("trace output missing parser logs:\n%s", stderr)
	}

	_, stderr, err = run(t, "convert", "red", "--quiet")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if stderr != "" {
		t.Errorf("quiet run wrote %q", stderr)
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colourmaster.yaml")
	if err := os.WriteFile(path, []byte("from: hsv\nlog-level: debug\n"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	out, stderr, err := run(t, "convert", "--config", path, "0, 0, 100", "--to", "hex", "--alpha=false")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if out != "#ffffff\n" {
		t.Errorf("output = %q, want #ffffff", out)
	}
	if !strings.Contains(stderr, "parsed colour") {
		t.Errorf("debug output missing from config log level:\n%s", stderr)
	}

	t.Run("flag overrides file", func(t *testing.T) {
		out, _, err := run(t, "convert", "--config", path, "--from", "rgb", "0, 0, 100", "--to", "hex", "--alpha=false")
		if err != nil {
			t.Fatalf("convert failed: %v", err)
		}
		if out != "#000064\n" {
			t.Errorf("output = %q, want #000064", out)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := run(t, "convert", "--config", filepath.Join(t.TempDir(), "absent.yaml"), "red")
		if err == nil || !strings.Contains(err.Error(), "failed to read config") {
			t.Errorf("error = %v, want a config error", err)
		}
	})
}

func TestJoinArgs(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{args: []string{"red", "blue"}, want: []string{"red", "blue"}},
		{args: []string{"rgb(1,", "2,", "3)", "#fff"}, want: []string{"rgb(1, 2, 3)", "#fff"}},
		{args: []string{"hsl(1,", "2"}, want: []string{"hsl(1, 2"}},
		{args: []string{"a)", "b"}, want: []string{"a)", "b"}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, joinArgs(tt.args)); diff != "" {
			t.Errorf("joinArgs(%q) mismatch (-want +got):\n%s", tt.args, diff)
		}
	}
}

func TestSwatch(t *testing.T) {
	c := colour.From(colour.RGBA{R: 255, G: 127.6, B: 0, A: 0.5})

	if got, want := swatch(c, 2), "\033[48;2;255;128;0m  \033[0m"; got != want {
		t.Errorf("swatch() = %q, want %q", got, want)
	}

	var buf bytes.Buffer
	if got := withSwatch(&buf, true, c, "text"); got != "text" {
		t.Errorf("withSwatch() on a non-terminal = %q, want plain text", got)
	}
}
