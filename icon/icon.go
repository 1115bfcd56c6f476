// Package icon renders status and player symbols in the variant the user picked.
package icon

import (
	"github.com/flixstream/flixstream/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Variant is a family of symbols: emoji, nerd-font glyphs, plain ASCII, kaomoji or squares.
type Variant string

const (
	Emoji   Variant = "emoji"
	Nerd    Variant = "nerd"
	Plain   Variant = "plain"
	Kaomoji Variant = "kaomoji"
	Squares Variant = "squares"
)

var variants = []Variant{Emoji, Nerd, Plain, Kaomoji, Squares}

// AvailableVariants lists the accepted values of the icons setting.
func AvailableVariants() []string {
	return lo.Map(variants, func(v Variant, _ int) string { return string(v) })
}

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) in(variant Variant) string {
	switch variant {
	case Emoji:
		return d.emoji
	case Nerd:
		return d.nerd
	case Plain:
		return d.plain
	case Kaomoji:
		return d.kaomoji
	case Squares:
		return d.squares
	}
	return ""
}

// Get renders i in the configured variant. Unknown variants render nothing.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.in(Variant(viper.GetString(key.IconsVariant)))
}
