// Command handviewer is a small desktop viewer over the hand-analysis core:
// type a closed hand and (optionally) a winning tile, and it renders the
// parsed tile faces, every waiting decomposition, and — once a winning tile
// is given — the full scored Agari candidate list. It has no notion of a
// wall, turns, or other players; it is a window onto one hand at a time.
package main

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"

	"riichi-go/decomp"
)

func main() {
	cfg := loadConfig(configPath())

	a := app.New()
	if cfg.DarkTheme {
		a.Settings().SetTheme(theme.DarkTheme())
	}

	c := decomp.BuildCTable()
	w := decomp.BuildWTable(c)
	dec := decomp.NewDecomposer(c, w)

	win := a.NewWindow("Riichi Hand Viewer")
	win.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	win.SetContent(buildUI(dec))
	win.ShowAndRun()
}

func configPath() string {
	return filepath.Join(".", "handviewer.toml")
}
