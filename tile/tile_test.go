package tile

import "testing"

func TestEncodingRoundTrip(t *testing.T) {
	for e := uint8(0); e <= uint8(Max); e++ {
		tl, err := FromEncoding(e)
		if err != nil {
			t.Fatalf("FromEncoding(%d): %v", e, err)
		}
		s := tl.String()
		parsed, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if parsed != tl {
			t.Errorf("round trip mismatch: encoding %d -> %q -> %d", e, s, parsed)
		}
	}
}

func TestTotalOrder(t *testing.T) {
	want, err := ParseHandString("1234m")
	if err != nil {
		t.Fatal(err)
	}
	zero, _ := Parse("0m")
	five, _ := Parse("5m")
	six, _ := Parse("6m")
	seq := append(append([]Tile{}, want...), zero, five, six)
	for i := 0; i < len(seq)-1; i++ {
		if !seq[i].Less(seq[i+1]) {
			t.Errorf("expected %v < %v", seq[i], seq[i+1])
		}
	}
	lastSou, _ := Parse("9s")
	firstHonor, _ := Parse("1z")
	lastHonor, _ := Parse("7z")
	if !lastSou.Less(firstHonor) {
		t.Errorf("expected 9s < 1z")
	}
	if !firstHonor.Less(lastHonor) {
		t.Errorf("expected 1z < 7z")
	}
}

func TestIndicatedDora(t *testing.T) {
	cases := []struct{ indicator, want string }{
		{"9m", "1m"}, {"1m", "2m"}, {"9p", "1p"}, {"9s", "1s"},
		{"4z", "1z"}, {"3z", "4z"}, {"7z", "5z"}, {"6z", "7z"},
		{"0m", "6m"}, {"0p", "6p"}, {"0s", "6s"},
	}
	for _, c := range cases {
		ind, err := Parse(c.indicator)
		if err != nil {
			t.Fatal(err)
		}
		want, err := Parse(c.want)
		if err != nil {
			t.Fatal(err)
		}
		if got := ind.IndicatedDora(); got != want {
			t.Errorf("IndicatedDora(%s) = %v, want %v", c.indicator, got, want)
		}
	}
}

func TestParseHandString(t *testing.T) {
	tiles, err := ParseHandString("1112345678999m")
	if err != nil {
		t.Fatal(err)
	}
	if len(tiles) != 13 {
		t.Fatalf("expected 13 tiles, got %d", len(tiles))
	}
	for _, tl := range tiles {
		if tl.Suit() != SuitMan {
			t.Errorf("expected all man tiles, got %v", tl)
		}
	}

	tiles2, err := ParseHandString("11m22m33m44p55p66s77z")
	if err != nil {
		t.Fatal(err)
	}
	if len(tiles2) != 14 {
		t.Fatalf("expected 14 tiles, got %d", len(tiles2))
	}

	if _, err := ParseHandString("9x"); err == nil {
		t.Error("expected error for invalid suit")
	}
}

func TestPackedKeysAndOverflow(t *testing.T) {
	tiles, err := ParseHandString("1112345678999m")
	if err != nil {
		t.Fatal(err)
	}
	set := NewSet34(tiles)
	keys := set.Packed34()
	if KeyIsOverflow(keys[0]) {
		t.Error("expected no overflow for a valid 13-tile hand")
	}
	if KeySum(keys[0]) != 13 {
		t.Errorf("KeySum = %d, want 13", KeySum(keys[0]))
	}

	// Five counts of the same numeral overflow.
	overflowKey := uint32(5)
	if !KeyIsOverflow(overflowKey) {
		t.Error("expected overflow for a count of 5 in one slot")
	}
}

func TestSuccPred(t *testing.T) {
	one, _ := Parse("1m")
	if _, ok := one.Pred(); ok {
		t.Error("1m should have no predecessor")
	}
	nine, _ := Parse("9m")
	if _, ok := nine.Succ(); ok {
		t.Error("9m should have no successor")
	}
	two, _ := one.Succ()
	want, _ := Parse("2m")
	if two != want {
		t.Errorf("Succ(1m) = %v, want 2m", two)
	}
}
