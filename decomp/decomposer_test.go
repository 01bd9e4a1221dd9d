package decomp

import (
	"testing"

	"riichi-go/tile"
)

func buildTestDecomposer(t *testing.T) (*Decomposer, Table, WTable) {
	t.Helper()
	c := BuildCTable()
	if len(c) != NumKeys {
		t.Fatalf("C-table has %d keys, want %d", len(c), NumKeys)
	}
	w := BuildWTable(c)
	if len(w) != WNumKeys {
		t.Fatalf("W-table has %d keys, want %d", len(w), WNumKeys)
	}
	return NewDecomposer(c, w), c, w
}

func packKeys(t *testing.T, hand string) [4]uint32 {
	t.Helper()
	tiles, err := tile.ParseHandString(hand)
	if err != nil {
		t.Fatalf("ParseHandString(%q): %v", hand, err)
	}
	return tile.NewSet34(tiles).Packed34()
}

func TestCTableKeyInvariants(t *testing.T) {
	c := BuildCTable()
	for key := range c {
		if tile.KeyIsOverflow(key) {
			t.Fatalf("C-table contains an overflowing key %o", key)
		}
		if s := tile.KeySum(key) % 3; s != 0 && s != 2 {
			t.Errorf("C-table key %o has sum mod 3 = %d, want 0 or 2", key, s)
		}
	}
}

func TestWTableKeyInvariants(t *testing.T) {
	c := BuildCTable()
	w := BuildWTable(c)
	for key := range w {
		if s := tile.KeySum(key) % 3; s != 1 {
			t.Errorf("W-table key %o has sum mod 3 = %d, want 1", key, s)
		}
	}
}

func TestShanpon(t *testing.T) {
	d, _, _ := buildTestDecomposer(t)
	keys := packKeys(t, "111222333m44z55z")
	waits := d.Decompose(keys)
	waitTiles := map[string]bool{}
	for _, rw := range waits {
		waitTiles[rw.WaitingTile.String()] = true
	}
	if !waitTiles["4z"] || !waitTiles["5z"] {
		t.Fatalf("expected waits on 4z and 5z, got %v", waitTiles)
	}
}

func TestNineGates(t *testing.T) {
	d, _, _ := buildTestDecomposer(t)
	keys := packKeys(t, "1112345678999m")
	waits := d.Decompose(keys)
	seen := map[string]bool{}
	for _, rw := range waits {
		seen[rw.WaitingTile.String()] = true
	}
	for n := 1; n <= 9; n++ {
		want := tile.Tile(n - 1).String()
		if !seen[want] {
			t.Errorf("nine-gates should wait on %s, got %v", want, seen)
		}
	}
	if len(seen) != 9 {
		t.Errorf("expected 9 distinct waiting tiles, got %d: %v", len(seen), seen)
	}
}

func TestSevenPairsIrregular(t *testing.T) {
	keys := packKeys(t, "11m22m33m44p55p66s7z")
	irr, ok := DetectIrregular(keys)
	if !ok {
		t.Fatal("expected seven-pairs irregular wait to be detected")
	}
	if irr.Kind != SevenPairs {
		t.Fatalf("expected SevenPairs, got %v", irr.Kind)
	}
	if irr.Tile.String() != "7z" {
		t.Errorf("expected waiting tile 7z, got %v", irr.Tile)
	}
}

func TestThirteenOrphans(t *testing.T) {
	keys := packKeys(t, "19m19p19s1234567z")
	irr, ok := DetectIrregular(keys)
	if !ok {
		t.Fatal("expected thirteen-orphans to be detected")
	}
	if irr.Kind != ThirteenOrphansAll {
		t.Fatalf("expected ThirteenOrphansAll, got %v", irr.Kind)
	}

	keys2 := packKeys(t, "11m9m1p9p1s9s123456z")
	irr2, ok := DetectIrregular(keys2)
	if !ok {
		t.Fatal("expected one-sided thirteen-orphans to be detected")
	}
	if irr2.Kind != ThirteenOrphans {
		t.Fatalf("expected ThirteenOrphans, got %v", irr2.Kind)
	}
	if irr2.Tile.String() != "7z" {
		t.Errorf("expected missing tile 7z, got %v", irr2.Tile)
	}
}

func TestBuildWaitingInfoMergesRegularAndIrregular(t *testing.T) {
	d, _, _ := buildTestDecomposer(t)
	keys := packKeys(t, "11m22m33m44p55p66s7z")
	info := BuildWaitingInfo(d, keys)
	if info.Irregular == nil {
		t.Fatal("expected an irregular wait to be present")
	}
	if !info.WaitingTiles.Test(int(tile.Tile(33).NormalEncoding())) {
		t.Errorf("expected waiting tile set to include 7z")
	}
}
