//go:build darwin

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browsers

import (
	"context"
	"os/exec"
)

// launchCommand builds the spawn command for b. Safari's discovered path is
// the app bundle directory, which is not independently executable, so it
// goes through the open(1) helper; everything else execs its path directly.
func launchCommand(ctx context.Context, b Browser, args []string) *exec.Cmd {
	if b.Type == "safari" {
		openArgs := append([]string{"--wait-apps", "--new", "--fresh", "-a", b.Path}, args...)
		return exec.CommandContext(ctx, "open", openArgs...)
	}
	return exec.CommandContext(ctx, b.Path, args...)
}
