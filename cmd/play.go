package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/flixstream/flixstream/constant"
	"github.com/flixstream/flixstream/history"
	"github.com/flixstream/flixstream/icon"
	"github.com/flixstream/flixstream/key"
	"github.com/flixstream/flixstream/log"
	"github.com/flixstream/flixstream/player"
	"github.com/flixstream/flixstream/provider"
	"github.com/flixstream/flixstream/source"
	"github.com/flixstream/flixstream/style"
	"github.com/flixstream/flixstream/tui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringP("quality", "q", "", "Quality to play, e.g. 720p. Defaults to the configured preference, else the best")
	playCmd.Flags().BoolP("choose", "c", false, "Choose the quality interactively")
	playCmd.Flags().StringP("title", "t", "", "Window title")
	playCmd.Flags().BoolP("continue", "C", false, "Resume the most recently watched video")
	playCmd.Flags().Bool("no-remote", false, "Do not show the terminal remote")

	playCmd.MarkFlagsMutuallyExclusive("quality", "choose")
}

var playCmd = &cobra.Command{
	Use:   "play [identifier]",
	Short: "Play a video in mpv with a terminal remote",
	Long: `Play a video by the identifier "search" printed for it.

The terminal remote mirrors the player controls:
space/k play, j/l or arrows seek 5s, f fullscreen, t theater, i mini player,
m mute, s speed, 1-9 switch quality. Drag on the top row to scrub.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var entry *history.Entry

		if lo.Must(cmd.Flags().GetBool("continue")) {
			entries, err := history.List()
			handleErr(err)
			if len(entries) == 0 {
				handleErr(errors.New("history is empty"))
			}
			entry = entries[0]
		} else {
			if len(args) == 0 {
				handleErr(errors.New("an identifier is required unless --continue is set"))
			}

			id, err := provider.ParseID(sourceName())
			handleErr(err)

			title := lo.Must(cmd.Flags().GetString("title"))
			entry = history.NewEntry(&source.Summary{ID: args[0], Title: lo.Ternary(title != "", title, args[0]), Source: string(id)}, "")
		}

		handleErr(play(cmd, entry))
	},
}

func play(cmd *cobra.Command, entry *history.Entry) error {
	ctx := context.Background()

	variants, err := newAggregator().Variants(ctx, entry.Identifier, entry.Source)
	if err != nil {
		return err
	}
	if len(variants) == 0 {
		return fmt.Errorf("%s has no playable renditions", entry.Identifier)
	}

	variant, err := pickVariant(cmd, variants, entry.Quality)
	if err != nil {
		return err
	}

	name := viper.GetString(key.Player)
	if _, err := exec.LookPath(name); err != nil {
		printMissingDependencyError(name)
		os.Exit(1)
	}

	p, err := player.New(name)
	if err != nil {
		return err
	}
	defer p.Close()

	if entry.Position > 0 {
		p.ResumeAt(entry.Position)
	}

	log.WithField("quality", variant.Quality).Infof("playing %s from %s", entry.Identifier, entry.Source)
	if err := p.Start(variant.URL, entry.Title); err != nil {
		return err
	}

	controller := player.NewController(p, player.WithQuality(variant.Quality))
	defer controller.Close()

	listener := player.NewEventListener(p.Socket(), controller.Observe)
	if err := listener.Start(); err != nil {
		log.Warnf("player events unavailable: %s", err)
	}
	defer listener.Stop()

	if viper.GetBool(key.PlayerRemote) && !lo.Must(cmd.Flags().GetBool("no-remote")) {
		err = tui.Run(&tui.Options{
			Controller: controller,
			Title:      entry.Title,
			Variants:   variants,
			Done:       p.Wait(),
		})
	} else {
		cmd.PrintErrf("%s %s %s\n", icon.Get(icon.Play), entry.Title, style.Faint(variant.Quality))
		<-p.Wait()
	}

	if !viper.GetBool(key.HistorySaveOnPlay) {
		return err
	}

	state := controller.Snapshot()
	entry.Quality = state.Quality
	if state.Position > 0 {
		entry.Position = state.Position
	}
	if state.Duration > 0 {
		entry.Duration = state.Duration
	}

	if saveErr := history.Save(entry); saveErr != nil {
		log.Errorf("saving history: %s", saveErr)
	}
	return err
}

// pickVariant chooses by --choose, --quality, the remembered quality, the configured preference, then the best.
func pickVariant(cmd *cobra.Command, variants []*source.Variant, remembered string) (*source.Variant, error) {
	if lo.Must(cmd.Flags().GetBool("choose")) {
		labels := lo.Map(variants, func(v *source.Variant, _ int) string { return v.Quality })

		var index int
		if err := survey.AskOne(&survey.Select{
			Message: "Quality",
			Options: labels,
		}, &index); err != nil {
			return nil, err
		}
		return variants[index], nil
	}

	for _, want := range []string{
		lo.Must(cmd.Flags().GetString("quality")),
		remembered,
		viper.GetString(key.PlayerPreferredQuality),
	} {
		if want == "" {
			continue
		}

		if variant, ok := lo.Find(variants, func(v *source.Variant) bool { return v.Quality == want }); ok {
			return variant, nil
		}
		log.Infof("quality %s unavailable", want)
	}

	return variants[0], nil
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case constant.Darwin:
		installCmd = "brew install mpv"
	case constant.Linux:
		installCmd = "sudo apt install mpv"
	case constant.Windows:
		installCmd = "scoop install mpv"
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The player '%s' was not found in your PATH.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
