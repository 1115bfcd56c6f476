package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/flixstream/flixstream/color"
	"github.com/flixstream/flixstream/history"
	"github.com/flixstream/flixstream/icon"
	"github.com/flixstream/flixstream/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.SetOut(os.Stdout)

	historyCmd.Flags().BoolP("json", "j", false, "Output as JSON")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show watched videos, most recent first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := history.List()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(entries))
			return
		}

		if len(entries) == 0 {
			cmd.Println(style.Faint("nothing watched yet"))
			return
		}

		for i, entry := range entries {
			cmd.Printf("%s %s\n", style.Fg(color.Purple)(strconv.Itoa(i+1)), entry)
		}
	},
}

func init() {
	historyCmd.AddCommand(historyRemoveCmd)
}

var historyRemoveCmd = &cobra.Command{
	Use:   "remove [index | source/identifier]",
	Short: "Forget a single watched video",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := history.List()
		handleErr(err)

		entry, ok := findEntry(entries, args[0])
		if !ok {
			handleErr(fmt.Errorf("%s is not in the history", args[0]))
		}

		handleErr(history.Remove(entry))
		cmd.Printf("%s removed %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), entry.Title)
	},
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget every watched video",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(history.Clear())
		cmd.Printf("%s history cleared\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

// findEntry resolves a 1-based index as printed by "history" or a source/identifier pair.
func findEntry(entries []*history.Entry, ref string) (*history.Entry, bool) {
	if index, err := strconv.Atoi(ref); err == nil {
		if index < 1 || index > len(entries) {
			return nil, false
		}
		return entries[index-1], true
	}

	source, identifier, found := strings.Cut(ref, "/")
	if !found {
		return nil, false
	}

	return lo.Find(entries, func(e *history.Entry) bool {
		return strings.EqualFold(e.Source, source) && e.Identifier == identifier
	})
}
