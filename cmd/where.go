package cmd

import (
	"os"

	"github.com/flixstream/flixstream/color"
	"github.com/flixstream/flixstream/history"
	"github.com/flixstream/flixstream/query"
	"github.com/flixstream/flixstream/style"
	"github.com/flixstream/flixstream/util"
	"github.com/flixstream/flixstream/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// location is a file or directory the application owns.
type location struct {
	name  string
	flag  string
	short mo.Option[string]
	path  func() string
	// clear empties the location. None means it cannot be cleared.
	clear mo.Option[func() error]
	// hidden locations are printed only when asked for by flag.
	hidden bool
}

func deleteAt(path func() string) mo.Option[func() error] {
	return mo.Some(func() error { return util.Delete(path()) })
}

var locations = []*location{
	{name: "Config", flag: "config", short: mo.Some("c"), path: where.Config},
	{name: "History", flag: "history", short: mo.Some("s"), path: where.History, clear: mo.Some(history.Clear)},
	{name: "Logs", flag: "logs", short: mo.Some("l"), path: where.Logs, clear: deleteAt(where.Logs)},
	{name: "Queries", flag: "queries", short: mo.Some("q"), path: where.Queries, clear: mo.Some(query.Clear), hidden: true},
	{name: "Cache", flag: "cache", path: where.Cache, clear: deleteAt(where.Cache), hidden: true},
	{name: "Sockets", flag: "temp", path: where.Temp, hidden: true},
}

// addLocationFlags adds a boolean flag per location accepted by keep.
func addLocationFlags(cmd *cobra.Command, help string, keep func(*location) bool) {
	for _, l := range lo.Filter(locations, func(l *location, _ int) bool { return keep(l) }) {
		if short, ok := l.short.Get(); ok {
			cmd.Flags().BoolP(l.flag, short, false, l.name+" "+help)
		} else {
			cmd.Flags().Bool(l.flag, false, l.name+" "+help)
		}
	}
}

func init() {
	rootCmd.AddCommand(whereCmd)
	whereCmd.SetOut(os.Stdout)

	addLocationFlags(whereCmd, "path", func(*location) bool { return true })
	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l *location, _ int) string { return l.flag })...)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where config, history and logs are kept",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, l := range locations {
			if lo.Must(cmd.Flags().GetBool(l.flag)) {
				cmd.Println(l.path())
				return
			}
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		visible := lo.Filter(locations, func(l *location, _ int) bool { return !l.hidden })

		for i, l := range visible {
			if i > 0 {
				cmd.Println()
			}
			cmd.Printf("%s %s\n", header(l.name+"?"), style.Fg(color.Yellow)("--"+l.flag))
			cmd.Println(l.path())
		}
	},
}
