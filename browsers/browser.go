// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browsers

// Browser describes one installed web browser. It is a plain value with no
// identity beyond its fields; discovery constructs a fresh set on every query.
type Browser struct {
	// Type is the canonical lowercase-hyphenated identifier for the
	// browser product and channel (for example "chrome-canary"). It is
	// stable across platforms and always comes from the platform mapping
	// table; an installed application absent from that table is never
	// surfaced.
	Type string `json:"browserType"`

	// Path is the invocable entry point: an executable path on Windows and
	// Linux, an executable inside the app bundle on macOS, or the bundle
	// directory itself for Safari.
	Path string `json:"path"`

	// DisplayName is the human-readable name reported by the OS. When the
	// OS reports none it falls back to Type.
	DisplayName string `json:"displayName"`

	// Version is the version string in whatever granularity the OS
	// surfaces. Empty when unavailable; never an error.
	Version string `json:"version"`
}

// normalize applies the platform-independent fallbacks to a raw candidate.
func normalize(b Browser) Browser {
	if b.DisplayName == "" {
		b.DisplayName = b.Type
	}
	return b
}
