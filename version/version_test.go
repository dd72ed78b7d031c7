package version

import (
	"strings"
	"testing"

	"github.com/jongio/browser-core/testutil"
)

func TestNewDefaults(t *testing.T) {
	info := New("browsers")
	if info.Version != "0.0.0-dev" {
		t.Errorf("Version = %q", info.Version)
	}
	if info.Name != "browsers" {
		t.Errorf("Name = %q", info.Name)
	}
}

func TestString(t *testing.T) {
	info := New("browsers")
	s := info.String()
	for _, want := range []string{"browsers", "0.0.0-dev", "commit:"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestCommandQuiet(t *testing.T) {
	cmd := NewCommand(New("browsers"), nil)
	cmd.SetArgs([]string{"--quiet"})

	out := testutil.CaptureOutput(t, cmd.Execute)
	if strings.TrimSpace(out) != "0.0.0-dev" {
		t.Errorf("quiet output = %q", out)
	}
}

func TestCommandJSON(t *testing.T) {
	format := "json"
	cmd := NewCommand(New("browsers"), &format)
	cmd.SetArgs([]string{})

	out := testutil.CaptureOutput(t, cmd.Execute)
	if !strings.Contains(out, `"version": "0.0.0-dev"`) {
		t.Errorf("json output = %q", out)
	}
}
