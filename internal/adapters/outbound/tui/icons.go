package tui

import "github.com/moneywise/moneywise/internal/domain"

var glyphs = map[domain.IconID]string{
	domain.IconHome:        "⌂",
	domain.IconBarChart:    "▥",
	domain.IconWallet:      "▣",
	domain.IconRefresh:     "↻",
	domain.IconSettings:    "⚙",
	domain.IconBell:        "◉",
	domain.IconSearch:      "⌕",
	domain.IconUserCircle:  "◍",
	domain.IconLogout:      "⇥",
	domain.IconMenu:        "☰",
	domain.IconClose:       "✕",
	domain.IconSettingsAlt: "⚙",
}

// Glyph resolves an icon id to a single terminal glyph. Unknown ids render
// as a bullet.
func Glyph(id domain.IconID) string {
	if g, ok := glyphs[id]; ok {
		return g
	}
	return "•"
}
