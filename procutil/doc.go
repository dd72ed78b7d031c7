// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package procutil provides process inspection helpers used after a browser
// has been launched: liveness checks and name lookup by PID.
package procutil
