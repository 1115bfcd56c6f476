package version

import (
	"fmt"

	"github.com/flixstream/flixstream/color"
	"github.com/flixstream/flixstream/constant"
	"github.com/flixstream/flixstream/icon"
	"github.com/flixstream/flixstream/key"
	"github.com/flixstream/flixstream/style"
	"github.com/flixstream/flixstream/util"
	"github.com/spf13/viper"
)

// Notify prints a notice when a newer release is out.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Mark)))
	version, err := Latest()
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(version, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint(fmt.Sprintf("https://github.com/%s/releases/tag/v%s", constant.Repository, version)),
	)
}
