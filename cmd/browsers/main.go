// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Command browsers lists installed web browsers and launches them.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jongio/browser-core/browsers"
	"github.com/jongio/browser-core/cliout"
	"github.com/jongio/browser-core/config"
	"github.com/jongio/browser-core/logutil"
	"github.com/jongio/browser-core/procutil"
	"github.com/jongio/browser-core/version"
)

var versionInfo = version.New("browsers")

func main() {
	if err := newRootCommand().Execute(); err != nil {
		cliout.Error("%v", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		outputFormat string
		debug        bool
		configPath   string
	)

	root := &cobra.Command{
		Use:           "browsers",
		Short:         "Discover and launch installed web browsers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetupLogger(debug, false)
			return cliout.SetFormat(outputFormat)
		},
	}

	// Flag names are case-insensitive for parity with the glob filters.
	root.PersistentFlags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ToLower(name))
	})

	root.PersistentFlags().StringVarP(&outputFormat, "output", "o", "default", "Output format (default, json)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to a browsers.yaml config file")

	root.AddCommand(newListCommand(&configPath))
	root.AddCommand(newLaunchCommand(&configPath))
	root.AddCommand(newOpenCommand())
	root.AddCommand(version.NewCommand(versionInfo, &outputFormat))

	return root
}

// loadFinder builds a Finder from the config file (explicit path, env
// override, or defaults) before command flags are layered on top.
func loadFinder(configPath string) (browsers.Finder, error) {
	if configPath != "" {
		cfg, err := config.LoadFrom(configPath)
		if err != nil {
			return browsers.Finder{}, err
		}
		return cfg.Finder(), nil
	}
	cfg, err := config.Load()
	if err != nil {
		return browsers.Finder{}, err
	}
	return cfg.Finder(), nil
}

func newListCommand(configPath *string) *cobra.Command {
	var (
		typePattern    string
		versionPattern string
		excludePattern string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed browsers",
		RunE: func(cmd *cobra.Command, args []string) error {
			finder, err := loadFinder(*configPath)
			if err != nil {
				return err
			}
			if typePattern != "" {
				finder = finder.WithType(typePattern)
			}
			if versionPattern != "" {
				finder = finder.WithVersion(versionPattern)
			}
			if excludePattern != "" {
				finder = finder.ExcludeType(excludePattern)
			}

			seq, err := finder.All(cmd.Context())
			if err != nil {
				return err
			}
			var found []browsers.Browser
			for b := range seq {
				found = append(found, b)
			}

			if cliout.IsJSON() {
				return cliout.PrintJSON(found)
			}

			if len(found) == 0 {
				cliout.Warning("no browsers found")
				return nil
			}
			cliout.Header(fmt.Sprintf("Installed Browsers (%d)", len(found)))
			for _, b := range found {
				cliout.Item("%-20s %-12s %s", b.Type, b.Version, b.Path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&typePattern, "type", "t", "", "Glob matched against browser type or display name")
	cmd.Flags().StringVar(&versionPattern, "with-version", "", "Glob matched against browser version")
	cmd.Flags().StringVarP(&excludePattern, "exclude", "e", "", "Glob of browser types to exclude")

	return cmd
}

func newLaunchCommand(configPath *string) *cobra.Command {
	var (
		versionPattern string
		wait           bool
	)

	cmd := &cobra.Command{
		Use:   "launch <type> [args...]",
		Short: "Launch the first browser matching a type pattern",
		Long: `Launch the first browser matching a type pattern.

Arguments after the type pattern are passed to the browser, so URLs can be
opened directly:

  browsers launch firefox https://example.com`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			finder, err := loadFinder(*configPath)
			if err != nil {
				return err
			}
			finder = finder.WithType(args[0])
			if versionPattern != "" {
				finder = finder.WithVersion(versionPattern)
			}

			proc, b, err := finder.Launch(cmd.Context(), args[1:])
			if err != nil {
				return err
			}

			pid := proc.Process.Pid
			cliout.Success("launched %s %s (pid %d)", b.DisplayName, b.Version, pid)

			if wait {
				return proc.Wait()
			}

			// Releasing keeps the browser independent of this process.
			// A brief liveness check catches immediate startup crashes.
			time.Sleep(100 * time.Millisecond)
			if !procutil.IsProcessRunning(pid) {
				cliout.Warning("process %d exited immediately", pid)
			}
			return proc.Process.Release()
		},
	}

	cmd.Flags().StringVar(&versionPattern, "with-version", "", "Glob matched against browser version")
	cmd.Flags().BoolVar(&wait, "wait", false, "Wait for the browser process to exit")

	return cmd
}

func newOpenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "open <url>",
		Short: "Open a URL in the system default browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return browser.OpenURL(args[0])
		},
	}
}
