// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"slices"
	"testing"
)

func TestXDGDataDirsDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_DATA_DIRS", "")

	dirs := XDGDataDirs()
	if len(dirs) == 0 {
		t.Fatal("XDGDataDirs returned no paths")
	}
	if !slices.Contains(dirs, "/usr/share") {
		t.Errorf("default dirs missing /usr/share: %v", dirs)
	}
	if !slices.Contains(dirs, "/usr/local/share") {
		t.Errorf("default dirs missing /usr/local/share: %v", dirs)
	}
}

func TestXDGDataDirsEnvOverride(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	t.Setenv("XDG_DATA_DIRS", "/a:/b::/c")

	dirs := XDGDataDirs()
	want := []string{"/custom/data", "/a", "/b", "/c"}
	if !slices.Equal(dirs, want) {
		t.Errorf("XDGDataDirs() = %v, want %v", dirs, want)
	}
}

func TestFindToolInPathMissingTool(t *testing.T) {
	if got := FindToolInPath("definitely-not-a-real-tool-9000"); got != "" {
		t.Errorf("FindToolInPath returned %q for a missing tool", got)
	}
}
