package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// bannerLines are drawn top to bottom with bannerColors.
var bannerLines = []string{
	"  _        _ _       ",
	" | |_ __ _| | |_  _  ",
	" |  _/ _` | | | || | ",
	"  \\__\\__,_|_|_|\\_, | ",
	"               |__/  ",
}

var bannerColors = []string{"#34d399", "#2dd4bf", "#22d3ee", "#38bdf8", "#60a5fa"}

// PrintBanner writes the Tally banner using the color profile of the terminal.
func PrintBanner(w io.Writer) {
	PrintBannerWithProfile(w, termenv.ColorProfile())
}

// PrintBannerWithProfile writes the banner with an explicit color profile.
func PrintBannerWithProfile(w io.Writer, p termenv.Profile) {
	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, termenv.String(line).Foreground(p.Color(bannerColors[i])))
	}
	fmt.Fprintln(w)
}
