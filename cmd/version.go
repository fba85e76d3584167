package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// develVersion is what the Go toolchain records for builds outside a module download.
const develVersion = "(devel)"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the unitgen version",
		Long:  "Print the unitgen module version, its VCS revision when known, and the Go toolchain it was built with.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, line := range versionLines(debug.ReadBuildInfo()) {
				cmd.Println(line)
			}
		},
	}
}

// versionLines formats build metadata; ok mirrors debug.ReadBuildInfo.
func versionLines(info *debug.BuildInfo, ok bool) []string {
	if !ok || info == nil {
		return []string{"unitgen version unknown (no build info)"}
	}

	version := info.Main.Version
	if version == "" {
		version = develVersion
	}

	lines := []string{"unitgen " + version}

	var revision, modified string

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		}
	}

	if revision != "" {
		if len(revision) > 12 {
			revision = revision[:12]
		}

		if modified == "true" {
			revision += "-dirty"
		}

		lines = append(lines, "revision "+revision)
	}

	lines = append(lines, fmt.Sprintf("built with %s", info.GoVersion))

	return lines
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
