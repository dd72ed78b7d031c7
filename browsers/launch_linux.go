//go:build linux

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browsers

import (
	"context"
	"os/exec"
	"strings"
)

// launchCommand builds the spawn command for b. Desktop-entry Exec lines may
// contain flags or shell syntax of their own, so the command line and caller
// args are joined into one string and run through a shell.
func launchCommand(ctx context.Context, b Browser, args []string) *exec.Cmd {
	parts := append([]string{b.Path}, args...)
	return exec.CommandContext(ctx, "sh", "-c", strings.Join(parts, " "))
}
