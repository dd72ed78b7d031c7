// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"os"
	"testing"
)

func TestIsProcessRunning(t *testing.T) {
	tests := []struct {
		name string
		pid  int
		want bool
	}{
		{"current process", os.Getpid(), true},
		{"zero pid", 0, false},
		{"negative pid", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsProcessRunning(tt.pid); got != tt.want {
				t.Errorf("IsProcessRunning(%d) = %v, want %v", tt.pid, got, tt.want)
			}
		})
	}
}

func TestProcessNameCurrentProcess(t *testing.T) {
	if name := ProcessName(os.Getpid()); name == "" {
		t.Error("ProcessName for the current process returned empty string")
	}
}

func TestProcessNameInvalidPid(t *testing.T) {
	if name := ProcessName(-1); name != "" {
		t.Errorf("ProcessName(-1) = %q, want empty", name)
	}
}
