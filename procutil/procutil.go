// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"github.com/shirou/gopsutil/v4/process"
)

// IsProcessRunning checks if a process with the given PID is running.
// Works cross-platform (Windows and Unix); gopsutil queries the OS process
// table directly, which is reliable on Windows where os.FindProcess and
// Signal(0) are not.
func IsProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}

	running, err := process.PidExists(int32(pid))
	if err != nil {
		return false
	}
	return running
}

// ProcessName returns the executable name of the process with the given PID,
// or empty string if the process does not exist or cannot be inspected.
func ProcessName(pid int) string {
	if pid <= 0 {
		return ""
	}

	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return ""
	}
	name, err := proc.Name()
	if err != nil {
		return ""
	}
	return name
}
