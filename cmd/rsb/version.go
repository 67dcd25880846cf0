package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=... -X main.commit=... -X main.date=..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		info := buildVersion(debug.ReadBuildInfo)
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "rsb %s\ncommit: %s\nbuilt: %s\ngo: %s\n",
			info.Version, info.Commit, info.Date, info.GoVersion)
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// versionInfo describes the running binary
type versionInfo struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
}

// buildVersion prefers the ldflags values and falls back to module and VCS build info
func buildVersion(readBuildInfo func() (*debug.BuildInfo, bool)) versionInfo {
	info := versionInfo{
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
	}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}

	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.Commit == "none" {
				info.Commit = setting.Value
			}
		case "vcs.time":
			if info.Date == "unknown" {
				info.Date = setting.Value
			}
		}
	}

	return info
}
