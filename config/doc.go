// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package config loads optional YAML defaults for browser discovery: the
// three filter patterns and the version-probe timeout. It exists for the CLI
// and other embedders; the browsers package itself takes configuration only
// through its Finder API.
package config
