// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package testutil provides common testing utilities: helpers for capturing
// output and writing fixture file trees. It has no dependency on the
// packages under test and may be imported from any package's tests.
package testutil
