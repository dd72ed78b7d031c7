// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browsers

import (
	"context"
	"os/exec"
	"strings"
)

// CommandRunner runs an external command and returns its standard output.
// The platform sources use it for their side-effecting probes (Spotlight
// queries on macOS, "--version" probes on Linux) so tests can stub them.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// DefaultCommandRunner executes commands with os/exec.
type DefaultCommandRunner struct{}

// Run executes a command and returns its standard output.
func (DefaultCommandRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// metadataSource enumerates raw installed-browser candidates on the host.
// Exactly one implementation exists per GOOS, chosen by build tags; nothing
// downstream of a source branches on the operating system.
//
// enumerate calls yield for each candidate in platform enumeration order and
// stops early when yield returns false. Candidates whose metadata cannot be
// read are skipped, never fatal.
type metadataSource interface {
	enumerate(ctx context.Context, yield func(Browser) bool)
}

// stripQuotes removes one pair of surrounding double quotes, if present.
// Registry open-command values typically quote the executable path.
func stripQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}
