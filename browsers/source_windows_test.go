//go:build windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowsDisplayNameTable(t *testing.T) {
	tests := []struct {
		displayName string
		wantType    string
	}{
		{"Google Chrome", "chrome"},
		{"Mozilla Firefox", "firefox"},
		{"Microsoft Edge", "msedge"},
		{"Internet Explorer", "msie"},
		{"Opera Stable", "opera"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.wantType, registryDisplayTypes[tt.displayName])
	}

	_, known := registryDisplayTypes["Some Random Program"]
	assert.False(t, known, "unknown display names must not resolve to a type")
}

func TestWindowsFileVersionMissingResource(t *testing.T) {
	// A path with no version resource (or no file at all) degrades to "",
	// never an error.
	assert.Empty(t, fileVersion(`C:\does\not\exist.exe`))
}
