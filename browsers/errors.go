// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browsers

import "errors"

var (
	// ErrInvalidPattern is returned when a configured glob pattern does
	// not compile. It is reported when a query runs, not when the pattern
	// is set.
	ErrInvalidPattern = errors.New("invalid glob pattern")

	// ErrNotFound is returned by operations that require at least one
	// matching browser when discovery yields none.
	ErrNotFound = errors.New("no matching browser found")

	// ErrLaunchFailed wraps the OS error when spawning a resolved browser
	// fails. Launch failures are surfaced, never retried.
	ErrLaunchFailed = errors.New("browser launch failed")
)
