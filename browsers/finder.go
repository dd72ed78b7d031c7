// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browsers

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/jongio/browser-core/globutil"
)

// DefaultProbeTimeout bounds each external "--version" probe during Linux
// enumeration. Without a bound a single misbehaving binary could stall the
// whole query.
const DefaultProbeTimeout = 3 * time.Second

// Finder is an immutable discovery configuration. The zero value is not
// usable; start from NewFinder and derive variants with the With methods,
// each of which returns a modified copy.
//
// A Finder holds no results between queries. Every call to All re-enumerates
// the operating system, so two calls may observe different sets if browsers
// are installed or removed in between.
type Finder struct {
	typePattern    string
	versionPattern string
	excludePattern string
	probeTimeout   time.Duration

	// test seams; nil means the real platform implementations
	source metadataSource
	runner CommandRunner
}

// NewFinder returns a Finder with default patterns: any type ("*"), any
// version ("*"), excluding nothing ("").
func NewFinder() Finder {
	return Finder{
		typePattern:    "*",
		versionPattern: "*",
		excludePattern: "",
		probeTimeout:   DefaultProbeTimeout,
	}
}

// WithType returns a copy of f that matches pattern against each browser's
// type or display name. The pattern is not validated here; All reports
// ErrInvalidPattern for malformed patterns.
func (f Finder) WithType(pattern string) Finder {
	f.typePattern = pattern
	return f
}

// WithVersion returns a copy of f that matches pattern against each
// browser's version string. The default "*" also matches browsers whose
// version is unavailable (empty).
func (f Finder) WithVersion(pattern string) Finder {
	f.versionPattern = pattern
	return f
}

// ExcludeType returns a copy of f that drops any browser whose type matches
// pattern. Exclusion tests the type only, never the display name.
func (f Finder) ExcludeType(pattern string) Finder {
	f.excludePattern = pattern
	return f
}

// WithProbeTimeout returns a copy of f with the per-candidate version probe
// timeout set to d. Only the Linux source probes; the setting is inert
// elsewhere.
func (f Finder) WithProbeTimeout(d time.Duration) Finder {
	if d > 0 {
		f.probeTimeout = d
	}
	return f
}

// WithCommandRunner returns a copy of f that uses r for external probes.
func (f Finder) WithCommandRunner(r CommandRunner) Finder {
	f.runner = r
	return f
}

func (f Finder) platformSource() metadataSource {
	if f.source != nil {
		return f.source
	}
	runner := f.runner
	if runner == nil {
		runner = DefaultCommandRunner{}
	}
	return newPlatformSource(runner, f.probeTimeout)
}

// All runs discovery and returns the matching browsers as a lazy, finite,
// single-pass sequence in platform enumeration order. Iterating the sequence
// performs the OS enumeration; to get a fresh view of OS state, call All
// again rather than re-ranging the same sequence.
//
// The three patterns are compiled eagerly: a malformed pattern is reported
// here as ErrInvalidPattern before any enumeration happens. Candidates whose
// metadata cannot be read are skipped silently (logged at debug level).
func (f Finder) All(ctx context.Context) (iter.Seq[Browser], error) {
	typePat, err := globutil.Compile(f.typePattern)
	if err != nil {
		return nil, fmt.Errorf("%w: type pattern %q: %v", ErrInvalidPattern, f.typePattern, err)
	}
	versionPat, err := globutil.Compile(f.versionPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: version pattern %q: %v", ErrInvalidPattern, f.versionPattern, err)
	}
	excludePat, err := globutil.Compile(f.excludePattern)
	if err != nil {
		return nil, fmt.Errorf("%w: exclude pattern %q: %v", ErrInvalidPattern, f.excludePattern, err)
	}

	source := f.platformSource()
	seq := func(yield func(Browser) bool) {
		start := time.Now()
		matched := 0
		source.enumerate(ctx, func(raw Browser) bool {
			b := normalize(raw)
			if !matches(b, typePat, versionPat, excludePat) {
				return true
			}
			matched++
			return yield(b)
		})
		observeDiscovery(time.Since(start), matched)
	}
	return seq, nil
}

// matches applies the combined filter predicate: not excluded by type,
// version matches, and the type pattern matches either the type or the
// display name.
func matches(b Browser, typePat, versionPat, excludePat globutil.Matcher) bool {
	return !excludePat.Match(b.Type) &&
		versionPat.Match(b.Version) &&
		(typePat.Match(b.Type) || typePat.Match(b.DisplayName))
}

// First returns the first browser discovery yields under the current
// configuration, or ErrNotFound when there is none.
func (f Finder) First(ctx context.Context) (Browser, error) {
	seq, err := f.All(ctx)
	if err != nil {
		return Browser{}, err
	}
	for b := range seq {
		return b, nil
	}
	return Browser{}, fmt.Errorf("%w: type %q version %q", ErrNotFound, f.typePattern, f.versionPattern)
}

// Discover enumerates installed browsers matched by the given patterns.
// Empty typePattern and versionPattern default to "*"; excludePattern ""
// excludes nothing.
func Discover(ctx context.Context, typePattern, versionPattern, excludePattern string) (iter.Seq[Browser], error) {
	f := NewFinder()
	if typePattern != "" {
		f = f.WithType(typePattern)
	}
	if versionPattern != "" {
		f = f.WithVersion(versionPattern)
	}
	f = f.ExcludeType(excludePattern)
	return f.All(ctx)
}

// FindOne returns the first installed browser whose type or display name
// matches browserType and whose version matches version (empty means any).
// It returns ErrNotFound when nothing matches.
func FindOne(ctx context.Context, browserType, version string) (Browser, error) {
	f := NewFinder().WithType(browserType)
	if version != "" {
		f = f.WithVersion(version)
	}
	return f.First(ctx)
}
