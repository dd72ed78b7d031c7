// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package browsers discovers web browsers installed on the host and can
// launch a chosen one with arguments. It reports normalized metadata for
// each browser found: a stable type identifier, the executable path, the
// OS-reported display name, and a version string.
//
// # Discovery
//
// Each supported platform exposes installed applications through a different
// native mechanism, and one metadata source per platform turns that
// mechanism into a uniform stream of Browser records:
//
//   - macOS: the Spotlight index is queried per known bundle identifier and
//     each bundle's Info.plist supplies name, executable, and version.
//   - Windows: the StartMenuInternet registry tree is walked and versions
//     are read from each executable's embedded version resource.
//   - Linux: desktop entries under the XDG application directories are
//     parsed, and versions come from running the entry's command with
//     "--version" under a bounded timeout.
//
// Only applications present in the compiled-in platform mapping tables are
// ever surfaced. Metadata failures on a single candidate skip that candidate
// and never abort discovery.
//
// # Querying
//
// A Finder carries three case-insensitive glob patterns: a type pattern
// (matched against type or display name), a version pattern, and an exclude
// pattern (matched against type only). Finder values are immutable; the
// With methods derive variants:
//
//	seq, err := browsers.NewFinder().
//		WithType("chrome*").
//		ExcludeType("chrome-canary").
//		All(ctx)
//
// All returns a lazy, single-pass sequence; every call re-enumerates the OS.
// Results hold no order guarantee beyond platform enumeration order.
//
// # Launching
//
// Launch resolves the first match and starts it with an OS-appropriate
// invocation: direct exec on Windows and macOS (except Safari, which goes
// through the open(1) helper), and a shell on Linux where desktop-entry
// commands may carry their own syntax. The started process is returned to
// the caller; this package does not manage its lifetime afterwards.
package browsers
