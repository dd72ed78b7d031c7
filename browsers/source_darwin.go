//go:build darwin

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browsers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"howett.net/plist"

	"github.com/jongio/browser-core/logutil"
)

// bundleEntry ties a canonical browser type to its macOS bundle identifier
// and the Info.plist key that bundle family reports its version under.
type bundleEntry struct {
	browserType string
	bundleID    string
	versionKey  string
}

var bundleEntries = []bundleEntry{
	{"basilisk", "org.mozilla.basilisk", "CFBundleShortVersionString"},
	{"brave", "com.brave.Browser", "CFBundleVersion"},
	{"brave-beta", "com.brave.Browser.beta", "CFBundleVersion"},
	{"brave-dev", "com.brave.Browser.dev", "CFBundleVersion"},
	{"brave-nightly", "com.brave.Browser.nightly", "CFBundleVersion"},
	{"chrome", "com.google.Chrome", "CFBundleShortVersionString"},
	{"chrome-beta", "com.google.Chrome.beta", "CFBundleShortVersionString"},
	{"chrome-canary", "com.google.Chrome.canary", "CFBundleShortVersionString"},
	{"chrome-dev", "com.google.Chrome.dev", "CFBundleShortVersionString"},
	{"chrome-test", "com.google.chrome.for.testing", "CFBundleShortVersionString"},
	{"chromium", "org.chromium.Chromium", "CFBundleShortVersionString"},
	{"duckduckgo", "com.duckduckgo.macos.browser", "CFBundleShortVersionString"},
	{"epic", "com.hiddenreflex.Epic", "CFBundleShortVersionString"},
	{"firefox", "org.mozilla.firefox", "CFBundleShortVersionString"},
	{"firefox-developer", "org.mozilla.firefoxdeveloperedition", "CFBundleShortVersionString"},
	{"firefox-nightly", "org.mozilla.nightly", "CFBundleShortVersionString"},
	{"floorp", "org.mozilla.floorp", "CFBundleShortVersionString"},
	{"librewolf", "org.mozilla.librewolf", "CFBundleShortVersionString"},
	{"midori", "org.mozilla.midori", "CFBundleShortVersionString"},
	{"msedge", "com.microsoft.edgemac", "CFBundleShortVersionString"},
	{"msedge-beta", "com.microsoft.edgemac.Beta", "CFBundleShortVersionString"},
	{"msedge-dev", "com.microsoft.edgemac.Dev", "CFBundleShortVersionString"},
	{"msedge-canary", "com.microsoft.edgemac.Canary", "CFBundleShortVersionString"},
	{"opera", "com.operasoftware.Opera", "CFBundleVersion"},
	{"opera-beta", "com.operasoftware.OperaNext", "CFBundleVersion"},
	{"opera-developer", "com.operasoftware.OperaDeveloper", "CFBundleVersion"},
	{"opera-gx", "com.operasoftware.OperaGX", "CFBundleVersion"},
	{"opera-neon", "com.opera.Neon", "CFBundleShortVersionString"},
	{"pale-moon", "org.mozilla.pale moon", "CFBundleShortVersionString"},
	{"safari", "com.apple.Safari", "CFBundleShortVersionString"},
	{"safari-technology-preview", "com.apple.SafariTechnologyPreview", "CFBundleShortVersionString"},
	{"servo", "org.servo.Servo", "CFBundleShortVersionString"},
	{"vivaldi", "com.vivaldi.Vivaldi", "CFBundleShortVersionString"},
	{"waterfox", "net.waterfox.waterfox", "CFBundleShortVersionString"},
	{"yandex", "ru.yandex.desktop.yandex-browser", "CFBundleShortVersionString"},
	{"zen", "app.zen-browser.zen", "CFBundleShortVersionString"},
}

// darwinSource enumerates browsers through the Spotlight application index.
type darwinSource struct {
	runner CommandRunner
	log    *logutil.ComponentLogger
}

func newPlatformSource(runner CommandRunner, _ time.Duration) metadataSource {
	return &darwinSource{
		runner: runner,
		log:    logutil.NewLogger("bundle-index"),
	}
}

func (s *darwinSource) enumerate(ctx context.Context, yield func(Browser) bool) {
	for _, entry := range bundleEntries {
		if ctx.Err() != nil {
			return
		}

		// An app may be installed in several locations; mdfind reports one
		// bundle path per line and each becomes its own candidate.
		query := fmt.Sprintf("kMDItemCFBundleIdentifier=='%s'", entry.bundleID)
		out, err := s.runner.Run(ctx, "mdfind", query)
		if err != nil {
			s.log.Debug("spotlight query failed", "bundleID", entry.bundleID, "error", err)
			continue
		}

		for line := range strings.Lines(string(out)) {
			appPath := strings.TrimSpace(line)
			if appPath == "" {
				continue
			}
			b, err := readBundle(appPath, entry)
			if err != nil {
				s.log.Debug("skipping unreadable bundle", "path", appPath, "error", err)
				continue
			}
			if !yield(b) {
				return
			}
		}
	}
}

// readBundle extracts browser metadata from an app bundle's Info.plist.
func readBundle(appPath string, entry bundleEntry) (Browser, error) {
	raw, err := os.ReadFile(filepath.Join(appPath, "Contents", "Info.plist"))
	if err != nil {
		return Browser{}, err
	}

	var info map[string]any
	if _, err := plist.Unmarshal(raw, &info); err != nil {
		return Browser{}, err
	}
	str := func(key string) string {
		v, _ := info[key].(string)
		return v
	}

	displayName := str("CFBundleDisplayName")
	if displayName == "" {
		displayName = str("CFBundleName")
	}

	// Safari's launch target is the bundle directory itself; every other
	// browser exposes an executable inside Contents/MacOS.
	path := appPath
	if entry.browserType != "safari" {
		path = filepath.Join(appPath, "Contents", "MacOS", str("CFBundleExecutable"))
	}

	return Browser{
		Type:        entry.browserType,
		Path:        path,
		DisplayName: displayName,
		Version:     str(entry.versionKey),
	}, nil
}
