package main

import (
	"fmt"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"riichi-go/agari"
	"riichi-go/decomp"
	"riichi-go/rules"
	"riichi-go/tile"
)

var windNames = []string{"East", "South", "West", "North"}

func windTile(name string) tile.Tile {
	for i, n := range windNames {
		if n == name {
			t, _ := tile.FromWind(i)
			return t
		}
	}
	t, _ := tile.FromWind(0)
	return t
}

// buildUI assembles the viewer's single screen: hand/winning-tile entries,
// a few situational toggles, and a results pane. dec is shared across every
// analysis the user runs (its tables never change).
func buildUI(dec *decomp.Decomposer) fyne.CanvasObject {
	handEntry := widget.NewEntry()
	handEntry.SetPlaceHolder("closed hand, e.g. 234m22m345p678s45s")

	winEntry := widget.NewEntry()
	winEntry.SetPlaceHolder("winning tile, e.g. 6s (leave blank for waits only)")

	seatSelect := widget.NewSelect(windNames, nil)
	seatSelect.SetSelected("East")
	roundSelect := widget.NewSelect(windNames, nil)
	roundSelect.SetSelected("East")

	dealerCheck := widget.NewCheck("Dealer", nil)
	tsumoCheck := widget.NewCheck("Tsumo", nil)
	riichiCheck := widget.NewCheck("Riichi", nil)

	tileRow := container.NewHBox()
	results := widget.NewRichText()
	results.Wrapping = fyne.TextWrapWord

	status := widget.NewLabel("")

	run := func() {
		status.SetText("")
		tiles, err := tile.ParseHandString(strings.TrimSpace(handEntry.Text))
		if err != nil {
			status.SetText("hand: " + err.Error())
			return
		}

		tileRow.RemoveAll()
		for _, t := range tiles {
			img, err := rasterizeTile(t, 64)
			if err != nil {
				continue
			}
			ci := canvas.NewImageFromImage(img)
			ci.SetMinSize(fyne.NewSize(36, 50))
			ci.FillMode = canvas.ImageFillContain
			tileRow.Add(ci)
		}
		tileRow.Refresh()

		var closed tile.Set37
		for _, t := range tiles {
			closed.Add(t)
		}

		winStr := strings.TrimSpace(winEntry.Text)
		if winStr == "" {
			results.ParseMarkdown(renderWaitingInfo(dec, closed))
			return
		}

		winTile, err := tile.Parse(winStr)
		if err != nil {
			status.SetText("winning tile: " + err.Error())
			return
		}

		action := agari.ActionDiscard
		if tsumoCheck.Checked {
			action = agari.ActionSelfDraw
		}
		buttonSeat, winnerSeat, contributorSeat := 1, 0, 2
		if dealerCheck.Checked {
			buttonSeat = 0
		}

		in := agari.AgariInput{
			RoundWind:       windTile(roundSelect.Selected),
			SeatWind:        windTile(seatSelect.Selected),
			ButtonSeat:      buttonSeat,
			WinnerSeat:      winnerSeat,
			ContributorSeat: contributorSeat,
			Action:          action,
			ClosedHand:      closed,
			WinningTile:     winTile,
			Riichi:          agari.RiichiState{Active: riichiCheck.Checked},
		}

		candidates, err := agari.Analyze(rules.NewDefault(), dec, in)
		if err != nil {
			status.SetText("analyze: " + err.Error())
			return
		}
		results.ParseMarkdown(renderCandidates(candidates))
	}

	analyzeButton := widget.NewButton("Analyze", run)

	form := container.NewVBox(
		handEntry,
		winEntry,
		container.NewHBox(widget.NewLabel("Seat"), seatSelect, widget.NewLabel("Round"), roundSelect),
		container.NewHBox(dealerCheck, tsumoCheck, riichiCheck),
		analyzeButton,
		status,
	)

	return container.NewBorder(
		container.NewVBox(form, tileRow),
		nil, nil, nil,
		container.NewScroll(results),
	)
}

// renderWaitingInfo formats every RegularWait/IrregularWait for a tenpai
// (not-yet-won) hand as markdown bullet points.
func renderWaitingInfo(dec *decomp.Decomposer, closed tile.Set37) string {
	keys := closed.ToSet34().Packed34()
	info := decomp.BuildWaitingInfo(dec, keys)

	var b strings.Builder
	b.WriteString("### Waits\n\n")
	if len(info.RegularWaits) == 0 && info.Irregular == nil {
		b.WriteString("No valid waiting decomposition for this tile count/shape.\n")
		return b.String()
	}
	seen := map[string]bool{}
	for _, rw := range info.RegularWaits {
		wt := rw.WaitingTile.String()
		if seen[wt] {
			continue
		}
		seen[wt] = true
		fmt.Fprintf(&b, "- **%s** (%s)\n", wt, waitKindName(rw.Kind))
	}
	if info.Irregular != nil {
		fmt.Fprintf(&b, "- **%s** (%s)\n", info.Irregular.Tile.String(), irregularKindName(info.Irregular.Kind))
	}
	return b.String()
}

func waitKindName(k decomp.WaitingKind) string {
	switch k {
	case decomp.Tanki:
		return "tanki"
	case decomp.Shanpon:
		return "shanpon"
	case decomp.Kanchan:
		return "kanchan"
	case decomp.RyanmenLow, decomp.RyanmenHigh, decomp.RyanmenBoth:
		return "ryanmen/penchan"
	default:
		return "?"
	}
}

func irregularKindName(k decomp.IrregularKind) string {
	switch k {
	case decomp.SevenPairs:
		return "seven pairs"
	case decomp.ThirteenOrphans, decomp.ThirteenOrphansAll:
		return "thirteen orphans"
	default:
		return "?"
	}
}

// renderCandidates formats every scored AgariCandidate, highest BasicPoints
// first, as markdown.
func renderCandidates(candidates []agari.AgariCandidate) string {
	if len(candidates) == 0 {
		return "### No winning decomposition\n\nThis tile does not complete the hand (no Yaku-qualifying shape found)."
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Scoring.BasicPoints > candidates[j].Scoring.BasicPoints
	})

	var b strings.Builder
	fmt.Fprintf(&b, "### %d candidate decomposition(s)\n\n", len(candidates))
	for i, c := range candidates {
		fmt.Fprintf(&b, "**#%d** — %d han / %d fu / %d points\n\n", i+1, c.Scoring.Han, c.Scoring.Fu, c.Scoring.BasicPoints)
		names := make([]string, 0, len(c.Yaku))
		for y, v := range c.Yaku {
			names = append(names, fmt.Sprintf("%s (%d)", y.String(), v))
		}
		sort.Strings(names)
		b.WriteString(strings.Join(names, ", "))
		b.WriteString("\n\n")
	}
	return b.String()
}
