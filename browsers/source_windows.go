//go:build windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browsers

import (
	"context"
	"time"

	"golang.org/x/sys/windows/registry"

	"github.com/jongio/browser-core/logutil"
)

// registryKeyPath enumerates the browsers Windows registers as internet
// clients.
const registryKeyPath = `Software\Clients\StartMenuInternet`

// registryDisplayTypes maps StartMenuInternet display names to canonical
// browser types. Programs with unrecognized display names are not browsers
// this package knows about and are skipped.
var registryDisplayTypes = map[string]string{
	"Ablaze Floorp":             "floorp",
	"Basilisk":                  "basilisk",
	"Brave":                     "brave",
	"Brave Beta":                "brave-beta",
	"Brave Nightly":             "brave-nightly",
	"Chromium":                  "chromium",
	"Firefox Developer Edition": "firefox-developer",
	"Firefox Nightly":           "firefox-nightly",
	"Google Chrome":             "chrome",
	"Google Chrome Canary":      "chrome-canary",
	"Internet Explorer":         "msie",
	"LibreWolf":                 "librewolf",
	"Microsoft Edge":            "msedge",
	"Microsoft Edge Beta":       "msedge-beta",
	"Microsoft Edge Dev":        "msedge-dev",
	"Microsoft Edge Canary":     "msedge-canary",
	"Mozilla Firefox":           "firefox",
	"Opera Stable":              "opera",
	"Opera beta":                "opera-beta",
	"Opera developer":           "opera-developer",
	"Pale Moon":                 "pale-moon",
	"Waterfox":                  "waterfox",
}

// windowsSource enumerates browsers through the StartMenuInternet registry
// tree.
type windowsSource struct {
	log *logutil.ComponentLogger
}

func newPlatformSource(_ CommandRunner, _ time.Duration) metadataSource {
	return &windowsSource{
		log: logutil.NewLogger("registry"),
	}
}

func (s *windowsSource) enumerate(ctx context.Context, yield func(Browser) bool) {
	smi, err := registry.OpenKey(registry.LOCAL_MACHINE, registryKeyPath, registry.READ)
	if err != nil {
		s.log.Debug("StartMenuInternet key unavailable", "error", err)
		return
	}
	defer smi.Close()

	names, err := smi.ReadSubKeyNames(-1)
	if err != nil {
		s.log.Debug("cannot list registered internet clients", "error", err)
		return
	}

	for _, name := range names {
		if ctx.Err() != nil {
			return
		}

		b, ok := s.readClient(smi, name)
		if !ok {
			continue
		}
		if !yield(b) {
			return
		}
	}
}

// readClient reads one registered internet-client key. Unknown programs and
// keys whose open command cannot be read are skipped, never fatal.
func (s *windowsSource) readClient(smi registry.Key, name string) (Browser, bool) {
	client, err := registry.OpenKey(smi, name, registry.READ)
	if err != nil {
		s.log.Debug("cannot open client key", "key", name, "error", err)
		return Browser{}, false
	}
	displayName, _, err := client.GetStringValue("")
	client.Close()
	if err != nil {
		displayName = name
	}

	browserType, ok := registryDisplayTypes[displayName]
	if !ok {
		return Browser{}, false
	}

	command, err := registry.OpenKey(smi, name+`\shell\open\command`, registry.READ)
	if err != nil {
		s.log.Debug("client has no open command", "key", name, "error", err)
		return Browser{}, false
	}
	path, _, err := command.GetStringValue("")
	command.Close()
	if err != nil {
		s.log.Debug("cannot read open command", "key", name, "error", err)
		return Browser{}, false
	}
	path = stripQuotes(path)

	return Browser{
		Type:        browserType,
		Path:        path,
		DisplayName: displayName,
		Version:     fileVersion(path),
	}, true
}
