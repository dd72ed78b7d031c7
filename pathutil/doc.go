// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package pathutil provides filesystem path helpers: XDG base-directory
// resolution used by desktop-entry discovery, and executable lookup in PATH.
package pathutil
