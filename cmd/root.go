// Package cmd implements the command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/flixstream/flixstream/aggregate"
	"github.com/flixstream/flixstream/color"
	"github.com/flixstream/flixstream/constant"
	"github.com/flixstream/flixstream/icon"
	"github.com/flixstream/flixstream/key"
	"github.com/flixstream/flixstream/log"
	"github.com/flixstream/flixstream/network"
	"github.com/flixstream/flixstream/provider"
	"github.com/flixstream/flixstream/style"
	"github.com/flixstream/flixstream/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Save watched videos to the history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnPlay, rootCmd.PersistentFlags().Lookup("write-history")))

	rootCmd.PersistentFlags().StringP("source", "S", "", "Source to use instead of the configured default")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("source", completionSources))
	lo.Must0(viper.BindPFlag(key.DefaultSource, rootCmd.PersistentFlags().Lookup("source")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

func completionSources(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(provider.Builtins(), func(p *provider.Provider, _ int) string {
		return string(p.ID)
	}), cobra.ShellCompDirectiveNoFileComp
}

var rootCmd = &cobra.Command{
	Use:   constant.Flixstream,
	Short: "Search video sites and play the best quality in mpv",
	Long: style.New().Bold(true).Foreground(color.HiRed).Render(constant.Flixstream) + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Search video sites and play the best quality in mpv"),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		network.Setup()
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute runs the command tree.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newAggregator builds the aggregator over the configured client.
// It must be called after network.Setup.
func newAggregator() *aggregate.Aggregator {
	return aggregate.New(network.Client)
}

// sourceName is the --source flag, falling back to the configured default.
func sourceName() string {
	return viper.GetString(key.DefaultSource)
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
