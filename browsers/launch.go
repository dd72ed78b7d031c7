// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browsers

import (
	"context"
	"fmt"
	"os/exec"
)

// Launch resolves the first browser matching the current configuration and
// starts it with args appended to its invocation. It returns the started
// process handle along with the resolved Browser; the caller owns waiting on
// or releasing the process.
//
// Resolution failures surface as ErrNotFound and spawn failures as
// ErrLaunchFailed wrapping the OS error. Nothing is retried.
func (f Finder) Launch(ctx context.Context, args []string) (*exec.Cmd, Browser, error) {
	b, err := f.First(ctx)
	if err != nil {
		return nil, Browser{}, err
	}

	cmd := launchCommand(ctx, b, args)
	if err := cmd.Start(); err != nil {
		observeLaunch(b.Type, "error")
		return nil, Browser{}, fmt.Errorf("%w: %s: %v", ErrLaunchFailed, b.Type, err)
	}
	observeLaunch(b.Type, "ok")
	return cmd, b, nil
}

// Launch starts the first installed browser whose type or display name
// matches browserType, with the version constraint applied when non-empty.
func Launch(ctx context.Context, browserType, version string, args []string) (*exec.Cmd, Browser, error) {
	f := NewFinder().WithType(browserType)
	if version != "" {
		f = f.WithVersion(version)
	}
	return f.Launch(ctx, args)
}
