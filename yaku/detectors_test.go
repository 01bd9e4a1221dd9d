package yaku

import (
	"riichi-go/decomp"
	"riichi-go/meld"
	"riichi-go/tile"
	"testing"
)

func mustParse(t *testing.T, s string) []tile.Tile {
	t.Helper()
	ts, err := tile.ParseHandString(s)
	if err != nil {
		t.Fatalf("ParseHandString(%q): %v", s, err)
	}
	return ts
}

func newBuilder() *Builder {
	return NewBuilder(map[Yaku]struct{}{Renhou: {}}, map[Yaku]struct{}{})
}

func TestDetectTanyao(t *testing.T) {
	ctx := &HandContext{
		Tiles:             tile.NewSet34(mustParse(t, "234456678m55p")),
		OpenTanyaoAllowed: true,
	}
	b := newBuilder()
	detectTanyao(ctx, b)
	if _, ok := b.Build()[Tanyaochuu]; !ok {
		t.Error("expected Tanyaochuu on an all-simples hand")
	}

	ctx2 := &HandContext{Tiles: tile.NewSet34(mustParse(t, "123456678m55p")), OpenTanyaoAllowed: true}
	b2 := newBuilder()
	detectTanyao(ctx2, b2)
	if _, ok := b2.Build()[Tanyaochuu]; ok {
		t.Error("did not expect Tanyaochuu when a terminal is present")
	}
}

func TestDetectYakuhaiSeatAndRoundWind(t *testing.T) {
	east, _ := tile.FromWind(0)
	ctx := &HandContext{
		Groups: []ContextGroup{
			{Group: meld.HandGroup{Kind: meld.GroupKoutsu, Tile: east}, Source: SourcePon},
		},
		SeatWind:  east,
		RoundWind: east,
	}
	b := newBuilder()
	detectYakuhai(ctx, b)
	vals := b.Build()
	if _, ok := vals[JikazehaiAny]; !ok {
		t.Error("expected JikazehaiAny for a seat-wind triplet")
	}
	if _, ok := vals[BakazehaiAny]; !ok {
		t.Error("expected BakazehaiAny for a round-wind (double east) triplet")
	}
}

func TestDetectYakuhaiDragon(t *testing.T) {
	haku, _ := tile.FromNumSuit(5, tile.SuitHonor)
	ctx := &HandContext{
		Groups: []ContextGroup{
			{Group: meld.HandGroup{Kind: meld.GroupKoutsu, Tile: haku}, Source: SourceClosed},
		},
	}
	b := newBuilder()
	detectYakuhai(ctx, b)
	if _, ok := b.Build()[SangenpaiHaku]; !ok {
		t.Error("expected SangenpaiHaku for a white dragon triplet")
	}
}

func TestDetectToitoihou(t *testing.T) {
	man1, _ := tile.FromNumSuit(1, tile.SuitMan)
	pin2, _ := tile.FromNumSuit(2, tile.SuitPin)
	ctx := &HandContext{
		Groups: []ContextGroup{
			{Group: meld.HandGroup{Kind: meld.GroupKoutsu, Tile: man1}, Source: SourceClosed},
			{Group: meld.HandGroup{Kind: meld.GroupKoutsu, Tile: pin2}, Source: SourcePon},
		},
	}
	b := newBuilder()
	detectToitoihou(ctx, b)
	if _, ok := b.Build()[Toitoihou]; !ok {
		t.Error("expected Toitoihou when every group is a koutsu")
	}

	man2, _ := tile.FromNumSuit(2, tile.SuitMan)
	ctx2 := &HandContext{
		Groups: []ContextGroup{
			{Group: meld.HandGroup{Kind: meld.GroupKoutsu, Tile: man1}, Source: SourceClosed},
			{Group: meld.HandGroup{Kind: meld.GroupShuntsu, Tile: man2}, Source: SourceClosed},
		},
	}
	b2 := newBuilder()
	detectToitoihou(ctx2, b2)
	if _, ok := b2.Build()[Toitoihou]; ok {
		t.Error("did not expect Toitoihou when a shuntsu is present")
	}
}

func TestDetectSanankouSuuankou(t *testing.T) {
	man1, _ := tile.FromNumSuit(1, tile.SuitMan)
	pin2, _ := tile.FromNumSuit(2, tile.SuitPin)
	sou3, _ := tile.FromNumSuit(3, tile.SuitSou)
	east, _ := tile.FromWind(0)
	ctx := &HandContext{
		Tsumo:    true,
		WaitKind: decomp.Shanpon,
		Groups: []ContextGroup{
			{Group: meld.HandGroup{Kind: meld.GroupKoutsu, Tile: man1}, Source: SourceClosed},
			{Group: meld.HandGroup{Kind: meld.GroupKoutsu, Tile: pin2}, Source: SourceClosed},
			{Group: meld.HandGroup{Kind: meld.GroupKoutsu, Tile: sou3}, Source: SourceClosedWin},
			{Group: meld.HandGroup{Kind: meld.GroupKoutsu, Tile: east}, Source: SourceAnkan},
		},
	}
	b := newBuilder()
	detectSanankouSuuankou(ctx, b)
	if _, ok := b.Build()[Suuankou]; !ok {
		t.Error("expected Suuankou: four concealed triplets completed by tsumo")
	}

	// Same shape but the winning triplet was completed by Ron: only 3
	// concealed triplets count, so this should be Sanankou instead.
	ctx.Tsumo = false
	b2 := newBuilder()
	detectSanankouSuuankou(ctx, b2)
	vals := b2.Build()
	if _, ok := vals[Suuankou]; ok {
		t.Error("a ron-completed triplet should not count toward Suuankou")
	}
	if _, ok := vals[Sanankou]; !ok {
		t.Error("expected Sanankou when only three triplets are concealed")
	}
}

func TestDetectSuuankouTankiRespectsDoubleYakumanAllowed(t *testing.T) {
	man1, _ := tile.FromNumSuit(1, tile.SuitMan)
	pin2, _ := tile.FromNumSuit(2, tile.SuitPin)
	sou3, _ := tile.FromNumSuit(3, tile.SuitSou)
	east, _ := tile.FromWind(0)
	ctx := &HandContext{
		Tsumo:    true,
		WaitKind: decomp.Tanki,
		Groups: []ContextGroup{
			{Group: meld.HandGroup{Kind: meld.GroupKoutsu, Tile: man1}, Source: SourceClosed},
			{Group: meld.HandGroup{Kind: meld.GroupKoutsu, Tile: pin2}, Source: SourceClosed},
			{Group: meld.HandGroup{Kind: meld.GroupKoutsu, Tile: sou3}, Source: SourceClosed},
			{Group: meld.HandGroup{Kind: meld.GroupKoutsu, Tile: east}, Source: SourceAnkan},
		},
	}

	b := newBuilder()
	detectSanankouSuuankou(ctx, b)
	if v := b.Build()[SuuankouTanki]; v != -1 {
		t.Errorf("SuuankouTanki = %d han, want -1 (single yakuman) when DoubleYakumanAllowed is false", v)
	}

	ctx.DoubleYakumanAllowed = true
	b2 := newBuilder()
	detectSanankouSuuankou(ctx, b2)
	if v := b2.Build()[SuuankouTanki]; v != -2 {
		t.Errorf("SuuankouTanki = %d han, want -2 (double yakuman) when DoubleYakumanAllowed is true", v)
	}
}

func TestDetectFirstChanceLuck(t *testing.T) {
	cases := []struct {
		name     string
		tsumo    bool
		isDealer bool
		want     Yaku
	}{
		{"dealer tsumo is tenhou", true, true, Tenhou},
		{"non-dealer tsumo is chiihou", true, false, Chiihou},
		{"non-dealer ron is renhou", false, false, Renhou},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := &HandContext{FirstChance: true, Tsumo: c.tsumo, IsDealer: c.isDealer}
			b := newBuilder()
			detectFirstChanceLuck(ctx, b)
			if _, ok := b.Build()[c.want]; !ok {
				t.Errorf("expected %v", c.want)
			}
		})
	}
}

func TestDetectChantaJunchan(t *testing.T) {
	man1, _ := tile.FromNumSuit(1, tile.SuitMan)
	man3, _ := tile.FromNumSuit(3, tile.SuitMan)
	pin1, _ := tile.FromNumSuit(1, tile.SuitPin)
	sou7, _ := tile.FromNumSuit(7, tile.SuitSou)
	ctx := &HandContext{
		Closed: true,
		Pair:   man1,
		Groups: []ContextGroup{
			{Group: meld.HandGroup{Kind: meld.GroupShuntsu, Tile: man1}, Source: SourceClosed},
			{Group: meld.HandGroup{Kind: meld.GroupShuntsu, Tile: pin1}, Source: SourceClosed},
			{Group: meld.HandGroup{Kind: meld.GroupShuntsu, Tile: sou7}, Source: SourceClosed},
			{Group: meld.HandGroup{Kind: meld.GroupKoutsu, Tile: man3}, Source: SourceClosed},
		},
	}
	// man3 koutsu doesn't touch a terminal, so this should NOT qualify.
	b := newBuilder()
	detectChantaJunchan(ctx, b)
	if _, ok := b.Build()[Junchantaiyaochuu]; ok {
		t.Error("did not expect Junchantaiyaochuu when one group has no terminal")
	}
}

func TestDetectHonChinIitsu(t *testing.T) {
	east, _ := tile.FromWind(0)
	ctx := &HandContext{Closed: true, Tiles: tile.NewSet34(append(mustParse(t, "123456789m"), east, east))}
	b := newBuilder()
	detectHonChinIitsu(ctx, b)
	if _, ok := b.Build()[Honniisou]; !ok {
		t.Error("expected Honniisou for a single-suit-plus-honors hand")
	}

	ctx2 := &HandContext{Closed: true, Tiles: tile.NewSet34(mustParse(t, "11123456789m"))}
	b2 := newBuilder()
	detectHonChinIitsu(ctx2, b2)
	if _, ok := b2.Build()[Chinniisou]; !ok {
		t.Error("expected Chinniisou for a pure single-suit hand")
	}
}
