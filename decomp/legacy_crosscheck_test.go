package decomp

import (
	"fmt"
	"sort"
	"testing"

	"riichi-go/legacy"
	"riichi-go/tile"
)

// toLegacyTile bridges the packed tile.Tile encoding back to the teacher's
// string-keyed legacy.Tile, so the naive FindTenpaiWaits/IsTenpai reference
// can be exercised against the same hands the new Decomposer analyzes.
// ID is the tile's *kind* (0-36, matching tile.Tile's own encoding, so a red
// five gets a distinct ID from its normal sibling) rather than a per-physical
// -tile identity, since IsChiitoitsu groups by ID to spot pairs.
func toLegacyTile(t tile.Tile) legacy.Tile {
	n := t.NormalNum()
	id := int(t.Encoding())
	switch t.Suit() {
	case tile.SuitMan:
		name := fmt.Sprintf("Man %d", n)
		if t.IsRed() {
			name = "Red " + name
		}
		return legacy.Tile{Suit: "Man", Value: n, Name: name, IsRed: t.IsRed(), ID: id}
	case tile.SuitPin:
		name := fmt.Sprintf("Pin %d", n)
		if t.IsRed() {
			name = "Red " + name
		}
		return legacy.Tile{Suit: "Pin", Value: n, Name: name, IsRed: t.IsRed(), ID: id}
	case tile.SuitSou:
		name := fmt.Sprintf("Sou %d", n)
		if t.IsRed() {
			name = "Red " + name
		}
		return legacy.Tile{Suit: "Sou", Value: n, Name: name, IsRed: t.IsRed(), ID: id}
	default:
		e := t.NormalEncoding()
		if e <= 30 {
			names := []string{"East", "South", "West", "North"}
			idx := int(e - 27)
			return legacy.Tile{Suit: "Wind", Value: idx + 1, Name: names[idx], ID: id}
		}
		names := []string{"White", "Green", "Red"}
		idx := int(e - 31)
		return legacy.Tile{Suit: "Dragon", Value: idx + 1, Name: names[idx], ID: id}
	}
}

func toLegacyHand(t *testing.T, hand string) []legacy.Tile {
	t.Helper()
	tiles, err := tile.ParseHandString(hand)
	if err != nil {
		t.Fatalf("ParseHandString(%q): %v", hand, err)
	}
	out := make([]legacy.Tile, len(tiles))
	for i, tl := range tiles {
		out[i] = toLegacyTile(tl)
	}
	return out
}

// legacyWaitEncodings maps the waits returned by the teacher's brute-force
// FindTenpaiWaits back onto the new encoding space for comparison.
func legacyWaitEncodings(waits []legacy.Tile) []int {
	seen := map[int]bool{}
	var out []int
	for _, w := range waits {
		var suit int
		switch w.Suit {
		case "Man":
			suit = tile.SuitMan
		case "Pin":
			suit = tile.SuitPin
		case "Sou":
			suit = tile.SuitSou
		case "Wind":
			out = appendUnique(out, seen, 27+(w.Value-1))
			continue
		case "Dragon":
			out = appendUnique(out, seen, 31+(w.Value-1))
			continue
		default:
			continue
		}
		nt, err := tile.FromNumSuit(w.Value, suit)
		if err != nil {
			continue
		}
		out = appendUnique(out, seen, int(nt.NormalEncoding()))
	}
	return out
}

func appendUnique(out []int, seen map[int]bool, e int) []int {
	if seen[e] {
		return out
	}
	seen[e] = true
	return append(out, e)
}

// TestLegacyCrossCheckRegularWaits compares the teacher's naive
// FindTenpaiWaits (which tries all 34 tile kinds against IsCompleteHand)
// against the new table-driven Decomposer, on hands whose waits were traced
// by hand against both readings.
func TestLegacyCrossCheckRegularWaits(t *testing.T) {
	dec, _, _ := buildTestDecomposer(t)

	cases := []string{
		"123m456m789m11p22p", // shanpon, waits 1p/2p
		"234m22m345p678s45s", // flexible sou run, waits 3s/6s/9s
		"123m123p123s11z22z", // shanpon on honors, waits 1z/2z
	}

	for _, hand := range cases {
		t.Run(hand, func(t *testing.T) {
			keys := packKeys(t, hand)
			got := BuildWaitingInfo(dec, keys)

			legacyHand := toLegacyHand(t, hand)
			legacyWaits := legacy.FindTenpaiWaits(legacyHand, nil)
			wantEncodings := legacyWaitEncodings(legacyWaits)

			var gotEncodings []int
			for e := 0; e < 34; e++ {
				if got.WaitingTiles.Test(e) {
					gotEncodings = append(gotEncodings, e)
				}
			}
			sort.Ints(gotEncodings)
			sort.Ints(wantEncodings)

			if !equalInts(gotEncodings, wantEncodings) {
				t.Errorf("hand %s: Decomposer waits %v, legacy.FindTenpaiWaits waits %v", hand, gotEncodings, wantEncodings)
			}
			if !legacy.IsTenpai(legacyHand, nil) {
				t.Errorf("hand %s: legacy.IsTenpai reports not tenpai, but Decomposer found waits", hand)
			}
		})
	}
}

// TestLegacyCrossCheckIrregular compares the teacher's IsChiitoitsu/
// IsKokushiMusou on completed 14-tile hands against the new DetectIrregular
// on the same hands without their last tile (the 13-tile waiting shape).
func TestLegacyCrossCheckIrregular(t *testing.T) {
	sevenPairsHand := "11m22m33m44m55m66m77p"
	sevenPairsWaiting := "11m22m33m44m55m66m7p"
	legacyHand := toLegacyHand(t, sevenPairsHand)
	if !legacy.IsChiitoitsu(legacyHand) {
		t.Fatalf("legacy.IsChiitoitsu should accept %s", sevenPairsHand)
	}
	keys := packKeys(t, sevenPairsWaiting)
	irr, ok := DetectIrregular(keys)
	if !ok || irr.Kind != SevenPairs {
		t.Errorf("DetectIrregular should classify %s as seven pairs, got %+v ok=%v", sevenPairsWaiting, irr, ok)
	}

	kokushiHand := "119m19p19s1234567z"
	kokushiWaiting := "19m19p19s1234567z"
	legacyKokushi := toLegacyHand(t, kokushiHand)
	if !legacy.IsKokushiMusou(legacyKokushi) {
		t.Fatalf("legacy.IsKokushiMusou should accept %s", kokushiHand)
	}
	keys = packKeys(t, kokushiWaiting)
	irr, ok = DetectIrregular(keys)
	if !ok || (irr.Kind != ThirteenOrphans && irr.Kind != ThirteenOrphansAll) {
		t.Errorf("DetectIrregular should classify %s as thirteen orphans, got %+v ok=%v", kokushiWaiting, irr, ok)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
