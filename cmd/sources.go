package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/flixstream/flixstream/color"
	"github.com/flixstream/flixstream/icon"
	"github.com/flixstream/flixstream/provider"
	"github.com/flixstream/flixstream/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List sources and inspect the renditions they offer",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "Print only the source IDs")
	sourcesListCmd.SetOut(os.Stdout)
}

var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available sources",
	Run: func(cmd *cobra.Command, args []string) {
		raw := lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render

		if !raw {
			cmd.Println(headerStyle("Sources:"))
		}

		current := sourceName()
		for _, p := range provider.Builtins() {
			if raw {
				cmd.Println(p.ID)
				continue
			}

			line := string(p.ID) + " " + style.Faint(p.Endpoint())
			if string(p.ID) == current {
				line = style.Fg(color.Green)(icon.Get(icon.Mark)) + " " + line
			}
			cmd.Println(line)
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesVariantsCmd)

	sourcesVariantsCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	sourcesVariantsCmd.SetOut(os.Stdout)
}

var sourcesVariantsCmd = &cobra.Command{
	Use:   "variants <identifier>",
	Short: "List the playable renditions of a video, best first",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		variants, err := newAggregator().Variants(context.Background(), args[0], sourceName())
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(variants))
			return
		}

		for _, variant := range variants {
			cmd.Printf("%s\t%s\n", style.Fg(color.Yellow)(variant.Quality), variant.URL)
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesBestCmd)
	sourcesBestCmd.SetOut(os.Stdout)
}

var sourcesBestCmd = &cobra.Command{
	Use:   "best <identifier>",
	Short: "Print the URL of the highest quality rendition",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		best, err := newAggregator().HighestQuality(context.Background(), args[0], sourceName())
		handleErr(err)

		url, ok := best.Get()
		if !ok {
			cmd.PrintErrln(icon.Get(icon.Fail) + " no renditions")
			os.Exit(1)
		}
		cmd.Println(url)
	},
}
