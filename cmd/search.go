package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/flixstream/flixstream/color"
	"github.com/flixstream/flixstream/icon"
	"github.com/flixstream/flixstream/inline"
	"github.com/flixstream/flixstream/query"
	"github.com/flixstream/flixstream/style"
	"github.com/flixstream/flixstream/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntP("page", "p", 1, "Result page, starting from 1")
	searchCmd.Flags().BoolP("all", "a", false, "Search every source concurrently")
	searchCmd.Flags().StringSlice("sources", []string{}, "Search these sources concurrently")
	searchCmd.Flags().StringP("pick", "P", "", "Only output some results: first, last, all, N, N-M or @text@")
	searchCmd.Flags().BoolP("variants", "V", false, "Include the playable renditions of every output result")
	searchCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	searchCmd.Flags().StringP("output", "o", "", "Write the output to a file")

	searchCmd.MarkFlagsMutuallyExclusive("all", "sources")
	lo.Must0(searchCmd.RegisterFlagCompletionFunc("sources", completionSources))

	searchCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search a source for videos",
	Long: `Search one source, or several at once, and print the results.

Plain output has one line per result: source, identifier and title.
The identifier is what "sources variants" and "play" take.`,
	Example: `  flixstream search "some query"
  flixstream search --source hamster --page 2 "some query"
  flixstream search --all --pick first --variants --json "some query"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		q := strings.Join(args, " ")

		options := &inline.Options{
			Out:        os.Stdout,
			Aggregator: newAggregator(),
			Sources:    []string{sourceName()},
			Query:      q,
			Page:       lo.Must(cmd.Flags().GetInt("page")),
			Json:       lo.Must(cmd.Flags().GetBool("json")),
			Variants:   lo.Must(cmd.Flags().GetBool("variants")),
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("all")):
			options.Sources = nil
		case cmd.Flags().Changed("sources"):
			options.Sources = lo.Must(cmd.Flags().GetStringSlice("sources"))
		}

		if pick := lo.Must(cmd.Flags().GetString("pick")); pick != "" {
			picker, err := inline.ParsePicker(pick)
			handleErr(err)
			options.Picker = mo.Some(picker)
		}

		if !options.Json {
			options.Hints = cmd.ErrOrStderr()
			options.Suggest = query.Suggest
			if width, _, err := util.TerminalSize(); err == nil {
				options.Width = width / 2
			}
		}

		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := os.Create(output)
			handleErr(err)
			defer util.Ignore(file.Close)
			options.Out = file
		}

		handleErr(inline.Run(context.Background(), options))
		handleErr(query.Remember(q, 1))

		if options.Out != os.Stdout {
			cmd.PrintErrf("%s wrote results to %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), lo.Must(cmd.Flags().GetString("output")))
		}
	},
}
