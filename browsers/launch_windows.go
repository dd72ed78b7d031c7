//go:build windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browsers

import (
	"context"
	"os/exec"
)

// launchCommand builds the spawn command for b. Registry open-command paths
// are directly executable, so no shell is involved.
func launchCommand(ctx context.Context, b Browser, args []string) *exec.Cmd {
	return exec.CommandContext(ctx, b.Path, args...)
}
