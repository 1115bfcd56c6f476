package cmd

import (
	"fmt"
	"strings"

	"github.com/flixstream/flixstream/icon"
	"github.com/flixstream/flixstream/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func clearable(l *location) bool {
	return l.clear.IsPresent()
}

func init() {
	rootCmd.AddCommand(clearCmd)

	addLocationFlags(clearCmd, "to clear", clearable)
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear history, remembered queries, logs or the cache",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		targets := lo.Filter(locations, func(l *location, _ int) bool {
			return clearable(l) && lo.Must(cmd.Flags().GetBool(l.flag))
		})

		if len(targets) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, target := range targets {
			name := strings.ToLower(target.name)

			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Mark), name))
			err := target.clear.MustGet()()
			erase()

			handleErr(err)
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(name))
		}
	},
}
