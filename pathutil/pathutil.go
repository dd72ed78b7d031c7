// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// XDGDataDirs returns the XDG base-directory search paths for shared
// application data, most specific first: $XDG_DATA_HOME (default
// ~/.local/share) followed by each entry of $XDG_DATA_DIRS (default
// /usr/local/share:/usr/share). Empty entries are dropped.
//
// Desktop entries live under the "applications" subdirectory of each
// returned path.
func XDGDataDirs() []string {
	var dirs []string

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dataHome = filepath.Join(home, ".local", "share")
		}
	}
	if dataHome != "" {
		dirs = append(dirs, dataHome)
	}

	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}
	for _, dir := range strings.Split(dataDirs, ":") {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}

	return dirs
}

// FindToolInPath searches for a tool executable in the system PATH.
// Returns the full path to the executable if found, empty string otherwise.
func FindToolInPath(toolName string) string {
	// Add .exe extension on Windows if not present
	searchName := toolName
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(toolName), ".exe") {
		searchName = toolName + ".exe"
	}

	path, err := exec.LookPath(searchName)
	if err != nil {
		return ""
	}

	return path
}
