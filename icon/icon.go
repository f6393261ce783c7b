// Package icon renders the status symbols of the CLI in the variant chosen by icons.variant.
package icon

import (
	"github.com/Ceeox/proxer-go/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the accepted values of icons.variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get renders i in the configured variant. An unknown variant renders nothing.
func Get(i Icon) string {
	return icons[i].Get()
}

// Icon identifies a symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Search
	Link
	Mark
	Lock
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "\uf00c",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💥",
		nerd:    "\uf00d",
		plain:   "✗",
		kaomoji: "(╯°□°）╯",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "\uf250",
		plain:   "…",
		kaomoji: "(・_・ヾ",
		squares: "🟦",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "\uf002",
		plain:   "?",
		kaomoji: "(・・ )?",
		squares: "🟪",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "\uf0c1",
		plain:   "~",
		kaomoji: "(∩^o^)⊃━☆",
		squares: "🟧",
	},
	Mark: {
		emoji:   "📌",
		nerd:    "\uf08d",
		plain:   "*",
		kaomoji: "(•̀ᴗ•́)و",
		squares: "🟨",
	},
	Lock: {
		emoji:   "🔒",
		nerd:    "\uf023",
		plain:   "#",
		kaomoji: "(¬_¬)",
		squares: "⬛",
	},
}
