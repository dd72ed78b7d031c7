//go:build linux

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browsers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jongio/browser-core/logutil"
)

// scriptedRunner answers probe invocations from a canned table keyed on the
// shell command line.
type scriptedRunner struct {
	stdout map[string]string
	delay  time.Duration
}

func (r *scriptedRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if r.delay > 0 {
		select {
		case <-time.After(r.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	command := args[len(args)-1]
	out, ok := r.stdout[command]
	if !ok {
		return nil, fmt.Errorf("command not found: %s", command)
	}
	return []byte(out), nil
}

func writeDesktopEntry(t *testing.T, dir, basename, name, exec string) {
	t.Helper()
	appDir := filepath.Join(dir, "applications")
	require.NoError(t, os.MkdirAll(appDir, 0o755))
	content := fmt.Sprintf("[Desktop Entry]\nType=Application\nName=%s\nExec=%s\nCategories=Network;WebBrowser;\n", name, exec)
	require.NoError(t, os.WriteFile(filepath.Join(appDir, basename+".desktop"), []byte(content), 0o644))
}

func newTestLinuxSource(dataDir string, runner CommandRunner) *linuxSource {
	return &linuxSource{
		runner:       runner,
		probeTimeout: DefaultProbeTimeout,
		dataDirs:     []string{dataDir},
		log:          logutil.NewLogger("desktop-entries"),
	}
}

func enumerateAll(s metadataSource) []Browser {
	var out []Browser
	s.enumerate(context.Background(), func(b Browser) bool {
		out = append(out, b)
		return true
	})
	return out
}

func TestLinuxEnumerateKnownEntries(t *testing.T) {
	dir := t.TempDir()
	writeDesktopEntry(t, dir, "firefox", "Firefox Web Browser", "/usr/lib/firefox/firefox %u")
	writeDesktopEntry(t, dir, "google-chrome", "Google Chrome", "/opt/google/chrome/google-chrome")
	writeDesktopEntry(t, dir, "gimp", "GNU Image Manipulation Program", "gimp-2.10 %U")

	runner := &scriptedRunner{stdout: map[string]string{
		"/usr/lib/firefox/firefox --version":         "Mozilla Firefox 141.0.2\n",
		"/opt/google/chrome/google-chrome --version": "Google Chrome 139.0.7258.66 \n",
	}}

	got := enumerateAll(newTestLinuxSource(dir, runner))
	require.Len(t, got, 2, "non-browser desktop entries must be skipped")

	byType := map[string]Browser{}
	for _, b := range got {
		byType[b.Type] = b
	}

	firefox := byType["firefox"]
	assert.Equal(t, "/usr/lib/firefox/firefox", firefox.Path, "trailing %%u must be stripped")
	assert.Equal(t, "Firefox Web Browser", firefox.DisplayName)
	assert.Equal(t, "141.0.2", firefox.Version)

	chrome := byType["chrome"]
	assert.Equal(t, "/opt/google/chrome/google-chrome", chrome.Path)
	assert.Equal(t, "139.0.7258.66", chrome.Version)
}

func TestLinuxBothNamingConventionsMapToSameType(t *testing.T) {
	assert.Equal(t, desktopEntryTypes["brave-browser"], desktopEntryTypes["brave_brave"])
	assert.Equal(t, desktopEntryTypes["firefox"], desktopEntryTypes["firefox_firefox"])
	assert.Equal(t, desktopEntryTypes["chromium"], desktopEntryTypes["chromium_chromium"])
}

func TestLinuxUppercasePlaceholderStripped(t *testing.T) {
	dir := t.TempDir()
	writeDesktopEntry(t, dir, "chromium", "Chromium", "/usr/bin/chromium %U")

	runner := &scriptedRunner{stdout: map[string]string{}}
	got := enumerateAll(newTestLinuxSource(dir, runner))
	require.Len(t, got, 1)
	assert.Equal(t, "/usr/bin/chromium", got[0].Path)
}

func TestLinuxProbeFailureDegradesVersion(t *testing.T) {
	dir := t.TempDir()
	writeDesktopEntry(t, dir, "firefox", "Firefox", "/nonexistent/firefox")

	runner := &scriptedRunner{stdout: map[string]string{}}
	got := enumerateAll(newTestLinuxSource(dir, runner))
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Version)
}

func TestLinuxProbeWithoutNumericTokenDegradesVersion(t *testing.T) {
	dir := t.TempDir()
	writeDesktopEntry(t, dir, "firefox", "Firefox", "/usr/bin/firefox")

	runner := &scriptedRunner{stdout: map[string]string{
		"/usr/bin/firefox --version": "no version here\n",
	}}
	got := enumerateAll(newTestLinuxSource(dir, runner))
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Version)
}

func TestLinuxProbeTimeoutBoundsHangingBinary(t *testing.T) {
	dir := t.TempDir()
	writeDesktopEntry(t, dir, "firefox", "Firefox", "/usr/bin/firefox")

	runner := &scriptedRunner{
		stdout: map[string]string{"/usr/bin/firefox --version": "Mozilla Firefox 141.0\n"},
		delay:  200 * time.Millisecond,
	}
	src := newTestLinuxSource(dir, runner)
	src.probeTimeout = 10 * time.Millisecond

	start := time.Now()
	got := enumerateAll(src)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Version, "timed-out probe must degrade version")
	assert.Less(t, time.Since(start), 150*time.Millisecond)
}

func TestLinuxUnreadableEntrySkipped(t *testing.T) {
	dir := t.TempDir()
	appDir := filepath.Join(dir, "applications")
	require.NoError(t, os.MkdirAll(appDir, 0o755))
	// firefox.desktop is a directory: unreadable as an entry, skipped.
	require.NoError(t, os.MkdirAll(filepath.Join(appDir, "firefox.desktop"), 0o755))
	writeDesktopEntry(t, dir, "chromium", "Chromium", "/usr/bin/chromium")

	runner := &scriptedRunner{stdout: map[string]string{}}
	got := enumerateAll(newTestLinuxSource(dir, runner))
	require.Len(t, got, 1)
	assert.Equal(t, "chromium", got[0].Type)
}

func TestLinuxVersionTokenExtraction(t *testing.T) {
	tests := []struct {
		banner string
		want   string
	}{
		{"Mozilla Firefox 141.0.2", "141.0.2"},
		{"Chromium 139.0.7258.66 built on Debian", "139.0.7258.66"},
		{"Opera 112.0", "112.0"},
		{"version 7", ""},
		{"", ""},
	}
	for _, tt := range tests {
		got := ""
		if m := versionToken.FindStringSubmatch(tt.banner); m != nil {
			got = m[1]
		}
		assert.Equal(t, tt.want, got, "banner %q", tt.banner)
	}
}
