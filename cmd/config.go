package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/flixstream/flixstream/color"
	"github.com/flixstream/flixstream/config"
	"github.com/flixstream/flixstream/constant"
	"github.com/flixstream/flixstream/filesystem"
	"github.com/flixstream/flixstream/icon"
	"github.com/flixstream/flixstream/style"
	"github.com/flixstream/flixstream/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// lookupField returns the registered field for name, suggesting the closest key otherwise.
func lookupField(name string) (config.Field, error) {
	if field, ok := config.Default[name]; ok {
		return field, nil
	}

	closest := lo.MinBy(lo.Keys(config.Default), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})

	return config.Field{}, fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(name),
		style.Fg(color.Yellow)(closest),
	)
}

func configFile() string {
	return filepath.Join(where.Config(), constant.Flixstream+".toml")
}

// persistConfig writes viper's state, creating the file on first use.
func persistConfig() error {
	err := viper.WriteConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return viper.SafeWriteConfigAs(configFile())
	}
	return err
}

func completionConfigKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func printDone(format string, args ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInfoCmd, configGetCmd, configSetCmd, configResetCmd, configWriteCmd, configDeleteCmd)

	configInfoCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	configInfoCmd.ValidArgsFunction = func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
	}

	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change settings",
	Long: fmt.Sprintf(`Inspect and change settings.

Settings live in %s.toml under "%s where --config".
Every key can also be set through the environment, see "%s env".`, constant.Flixstream, constant.Flixstream, constant.Flixstream),
}

var configInfoCmd = &cobra.Command{
	Use:   "info [keys...]",
	Short: "Describe settings with their current and default values",
	Run: func(cmd *cobra.Command, args []string) {
		var fields []config.Field

		if len(args) == 0 {
			fields = lo.Values(config.Default)
		}

		for _, name := range args {
			field, err := lookupField(name)
			handleErr(err)
			fields = append(fields, field)
		}

		slices.SortFunc(fields, func(a, b config.Field) int {
			switch {
			case a.Key < b.Key:
				return -1
			case a.Key > b.Key:
				return 1
			}
			return 0
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			pointers := lo.Map(fields, func(f config.Field, _ int) *config.Field { return &f })
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(pointers))
			return
		}

		for i := range fields {
			if i > 0 {
				cmd.Println()
			}
			cmd.Println(fields[i].Pretty())
		}
	},
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print the current value of a setting",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := lookupField(args[0])
		handleErr(err)

		cmd.Println(viper.Get(field.Key))
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value...>",
	Short: "Change a setting and save it",
	Example: fmt.Sprintf(`  %[1]s config set sources.default hamster
  %[1]s config set network.requests_per_second 2.5`, constant.Flixstream),
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := lookupField(args[0])
		handleErr(err)

		value, err := field.Parse(args[1:])
		handleErr(err)

		viper.Set(field.Key, value)
		handleErr(persistConfig())

		printDone("set %s to %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(value)))
	},
}

var configResetCmd = &cobra.Command{
	Use:               "reset [key]",
	Short:             "Restore a setting, or all of them with --all, to the default",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))

		switch {
		case all && len(args) > 0:
			handleErr(fmt.Errorf("either a key or --all, not both"))
		case all:
			for name, field := range config.Default {
				viper.Set(name, field.Value)
			}
		case len(args) == 1:
			field, err := lookupField(args[0])
			handleErr(err)
			viper.Set(field.Key, field.Value)
		default:
			handleErr(fmt.Errorf("a key or --all is required"))
		}

		handleErr(persistConfig())

		if all {
			printDone("reset every setting")
		} else {
			printDone("reset %s to %s", style.Fg(color.Purple)(args[0]), style.Fg(color.Yellow)(fmt.Sprint(config.Default[args[0]].Value)))
		}
	},
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Save the current settings to the config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path := configFile()

		if lo.Must(cmd.Flags().GetBool("force")) {
			exists, err := filesystem.API().Exists(path)
			handleErr(err)
			if exists {
				handleErr(filesystem.API().Remove(path))
			}
		}

		handleErr(viper.SafeWriteConfigAs(path))
		printDone("wrote config to %s", path)
	},
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete the config file",
	Aliases: []string{"remove"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFile()))
		printDone("deleted config")
	},
}
