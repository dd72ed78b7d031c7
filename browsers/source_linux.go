//go:build linux

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browsers

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/go-ini/ini"

	"github.com/jongio/browser-core/logutil"
	"github.com/jongio/browser-core/pathutil"
)

// desktopEntryTypes maps desktop-entry file basenames to canonical browser
// types. Some vendors ship under two naming conventions (hyphenated and
// underscore-joined, e.g. snap packaging); both map to the same type.
var desktopEntryTypes = map[string]string{
	"brave-browser":                   "brave",
	"brave_brave":                     "brave",
	"brave-browser-beta":              "brave-beta",
	"brave-browser-nightly":           "brave-nightly",
	"chromium":                        "chromium",
	"chromium_chromium":               "chromium",
	"falkon_falkon":                   "falkon",
	"firefox":                         "firefox",
	"firefox_firefox":                 "firefox",
	"google-chrome":                   "chrome",
	"konqueror_konqueror":             "konqueror",
	"microsoft-edge":                  "msedge",
	"opera_opera":                     "opera",
	"opera-beta_opera-beta":           "opera-beta",
	"opera-developer_opera-developer": "opera-developer",
	"vivaldi_vivaldi-stable":          "vivaldi",
}

// versionToken matches the first dotted numeric run of a --version banner,
// e.g. "Mozilla Firefox 139.0.1" -> "139.0.1".
var versionToken = regexp.MustCompile(`\b(\d+(\.\d+)+)\b`)

// linuxSource enumerates browsers through freedesktop desktop entries.
type linuxSource struct {
	runner       CommandRunner
	probeTimeout time.Duration
	dataDirs     []string
	log          *logutil.ComponentLogger
}

func newPlatformSource(runner CommandRunner, probeTimeout time.Duration) metadataSource {
	return &linuxSource{
		runner:       runner,
		probeTimeout: probeTimeout,
		dataDirs:     pathutil.XDGDataDirs(),
		log:          logutil.NewLogger("desktop-entries"),
	}
}

func (s *linuxSource) enumerate(ctx context.Context, yield func(Browser) bool) {
	for _, dir := range s.dataDirs {
		appDir := filepath.Join(dir, "applications")
		entries, err := os.ReadDir(appDir)
		if err != nil {
			// search path may simply not exist on this host
			continue
		}

		for _, entry := range entries {
			if ctx.Err() != nil {
				return
			}
			name := entry.Name()
			if !strings.HasSuffix(name, ".desktop") {
				continue
			}
			browserType, ok := desktopEntryTypes[strings.TrimSuffix(name, ".desktop")]
			if !ok {
				continue
			}

			b, err := s.readEntry(ctx, filepath.Join(appDir, name), browserType)
			if err != nil {
				s.log.Debug("skipping unreadable desktop entry", "path", name, "error", err)
				continue
			}
			if !yield(b) {
				return
			}
		}
	}
}

// readEntry parses one desktop entry and probes the command for a version.
func (s *linuxSource) readEntry(ctx context.Context, path, browserType string) (Browser, error) {
	// Desktop entries are INI-shaped; Exec lines may contain ";" so inline
	// comment handling must stay off.
	cfg, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, path)
	if err != nil {
		return Browser{}, err
	}

	section := cfg.Section("Desktop Entry")
	displayName := section.Key("Name").String()
	command := strings.TrimSpace(section.Key("Exec").String())

	// Strip the trailing URL placeholder; the launch path supplies its own
	// arguments.
	if lower := strings.ToLower(command); strings.HasSuffix(lower, "%u") {
		command = strings.TrimSpace(command[:len(command)-2])
	}

	return Browser{
		Type:        browserType,
		Path:        command,
		DisplayName: displayName,
		Version:     s.probeVersion(ctx, command),
	}, nil
}

// probeVersion runs "<command> --version" through a shell under the probe
// timeout and extracts the first dotted numeric token from stdout. Every
// failure mode (missing binary, crash, hang, no token) degrades to "".
func (s *linuxSource) probeVersion(ctx context.Context, command string) string {
	if command == "" {
		return ""
	}

	probeCtx, cancel := context.WithTimeout(ctx, s.probeTimeout)
	defer cancel()

	out, err := s.runner.Run(probeCtx, "sh", "-c", command+" --version")
	if err != nil {
		s.log.Debug("version probe failed", "command", command, "error", err)
		return ""
	}
	if m := versionToken.FindSubmatch(out); m != nil {
		return string(m[1])
	}
	return ""
}
