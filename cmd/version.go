package cmd

import (
	"os"
	"runtime"
	"strings"

	"github.com/flixstream/flixstream/color"
	"github.com/flixstream/flixstream/constant"
	"github.com/flixstream/flixstream/style"
	"github.com/flixstream/flixstream/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Only print the version number")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify()

		rows := [][2]string{
			{"Version", constant.Version},
			{"Git Commit", constant.Revision},
			{"Build Date", strings.TrimSpace(constant.BuiltAt)},
			{"Built By", constant.BuiltBy},
			{"Platform", runtime.GOOS + "/" + runtime.GOARCH},
			{"Player", "mpv (JSON IPC)"},
		}

		label := style.New().Faint(true).Width(16).Render

		cmd.Printf("%s %s\n\n", style.Fg(color.Purple)("▇▇▇"), style.Fg(color.Purple)(constant.Flixstream))
		for _, row := range rows {
			cmd.Printf("  %s%s\n", label(row[0]), style.Bold(row[1]))
		}
	},
}
