package icon

import "github.com/flixstream/flixstream/style"

// Icon identifies a symbol rendered in the CLI and the player remote.
type Icon int

const (
	Fail Icon = iota + 1
	Success
	Question
	Mark
	Search
	Source
	Quality
	Play
	Pause
	Fullscreen
	Theater
	Mini
	Muted
	VolumeLow
	VolumeHigh
)

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    style.Fg(style.ErrorColor)(""),
		plain:   style.Fg(style.ErrorColor)("X"),
		kaomoji: style.Fg(style.ErrorColor)("(╥﹏╥)"),
		squares: style.Fg(style.ErrorColor)("🟥"),
	},
	Success: {
		emoji:   "🎉",
		nerd:    style.Fg(style.SuccessColor)(""),
		plain:   style.Fg(style.SuccessColor)("✓"),
		kaomoji: style.Fg(style.SuccessColor)("(ᵔ◡ᵔ)"),
		squares: style.Fg(style.SuccessColor)("🟩"),
	},
	Question: {
		emoji:   "🤨",
		nerd:    style.Fg(style.WarningColor)(""),
		plain:   style.Fg(style.WarningColor)("?"),
		kaomoji: style.Fg(style.WarningColor)("(・・ )?"),
		squares: style.Fg(style.WarningColor)("🟨"),
	},
	Mark: {
		emoji:   "🔖",
		nerd:    style.Fg(style.AccentColor)(""),
		plain:   style.Fg(style.AccentColor)("*"),
		kaomoji: style.Fg(style.AccentColor)("★"),
		squares: style.Fg(style.AccentColor)("🟪"),
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   ">",
		kaomoji: "(⊙_⊙)",
		squares: "🟦",
	},
	Source: {
		emoji:   "🌐",
		nerd:    "",
		plain:   "@",
		kaomoji: "(o_o)",
		squares: "🟫",
	},
	Quality: {
		emoji:   "📺",
		nerd:    "",
		plain:   "#",
		kaomoji: "[▪▪]",
		squares: "⬛",
	},
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "(ノ◕ヮ◕)ノ",
		squares: "▶",
	},
	Pause: {
		emoji:   "⏸️",
		nerd:    "",
		plain:   "||",
		kaomoji: "(－_－) zzZ",
		squares: "⏸",
	},
	Fullscreen: {
		emoji:   "🖥️",
		nerd:    "",
		plain:   "[F]",
		kaomoji: "[F]",
		squares: "⬜",
	},
	Theater: {
		emoji:   "🎭",
		nerd:    "",
		plain:   "[T]",
		kaomoji: "[T]",
		squares: "▭",
	},
	Mini: {
		emoji:   "🪟",
		nerd:    "",
		plain:   "[P]",
		kaomoji: "[P]",
		squares: "▫",
	},
	Muted: {
		emoji:   "🔇",
		nerd:    "",
		plain:   "mute",
		kaomoji: "(・_・;)",
		squares: "◻",
	},
	VolumeLow: {
		emoji:   "🔉",
		nerd:    "",
		plain:   "vol-",
		kaomoji: "(￣～￣)",
		squares: "◼",
	},
	VolumeHigh: {
		emoji:   "🔊",
		nerd:    "",
		plain:   "vol+",
		kaomoji: "(≧▽≦)",
		squares: "⬛",
	},
}
