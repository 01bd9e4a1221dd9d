package yaku

import (
	"riichi-go/decomp"
	"riichi-go/meld"
	"riichi-go/tile"
)

// GroupSource names where one of a hand's four groups came from, which
// several detectors (yakuhai melds, sanankou's concealment rule, chanta,
// honitsu) need alongside its shape.
type GroupSource uint8

const (
	SourceClosed    GroupSource = iota // from the closed-hand decomposition, does not contain the winning tile
	SourceClosedWin                    // from the closed-hand decomposition, contains the winning tile
	SourceChii
	SourcePon
	SourceKakan
	SourceDaiminkan
	SourceAnkan
)

// IsOpenCall reports whether this group's source exposes the hand (breaks
// menzen). Ankan does not: a concealed quad never opens a hand.
func (s GroupSource) IsOpenCall() bool {
	switch s {
	case SourceChii, SourcePon, SourceKakan, SourceDaiminkan:
		return true
	default:
		return false
	}
}

// ContextGroup is one of the four groups of a regular (non-chiitoitsu,
// non-kokushi) winning hand, carrying both its shape and its provenance.
type ContextGroup struct {
	Group  meld.HandGroup
	Source GroupSource
}

// IsConcealedTriplet reports whether this group counts as a concealed
// triplet for Sanankou/Suuankou: any koutsu that isn't from an open call,
// with the one exception that a closed triplet completed by Ron (rather
// than Tsumo) does not count concealed.
func (g ContextGroup) IsConcealedTriplet(tsumo bool) bool {
	if g.Group.Kind != meld.GroupKoutsu {
		return false
	}
	switch g.Source {
	case SourceAnkan, SourceClosed:
		return true
	case SourceClosedWin:
		return tsumo
	default:
		return false
	}
}

// HandContext is the input a detector battery runs against: one candidate
// interpretation of a winning hand (one RegularWait, or the irregular
// pattern), plus the situational flags every Yaku needs. agari.Analyze
// builds one HandContext per candidate decomposition.
type HandContext struct {
	Tiles tile.Set34 // the complete 14-tile hand: closed hand + melds + winning tile

	Groups            []ContextGroup // nil when Irregular != nil
	Pair              tile.Tile
	WinningTile       tile.Tile
	WinningGroupIndex int // index into Groups containing the winning tile, -1 for Tanki
	WaitKind          decomp.WaitingKind
	PatternTile       tile.Tile // anchor tile of the waiting pattern, for penchan detection

	Irregular *decomp.IrregularWait

	Closed bool
	Tsumo  bool

	// ExtraFu is the non-base Fu total computed by the scorer (meld Fu,
	// doubled closed/wait-group Fu, wait-shape bonus, yakuhai-pair Fu). Pinfu
	// requires this to be exactly zero.
	ExtraFu int

	SeatWind  tile.Tile
	RoundWind tile.Tile

	RiichiActive bool
	DoubleRiichi bool
	Ippatsu      bool

	Rinshan  bool // won on a kan draw
	Chankan  bool // won by robbing a kan
	LastTile bool // won on the wall's final tile (haitei if Tsumo, houtei if not)

	FirstChance bool // still within the first uninterrupted go-around
	IsDealer    bool

	OpenTanyaoAllowed bool
	// DoubleYakumanAllowed lets Kokushi13/SuuankouTanki/Junseichuurenpoutou/
	// Daisuushi score as a double yakuman (-2) instead of being capped at a
	// single yakuman (-1).
	DoubleYakumanAllowed bool
}

// yakumanValue returns -2 when ctx's ruleset allows a double yakuman for
// this pattern, otherwise -1.
func (c *HandContext) yakumanValue() int8 {
	if c.DoubleYakumanAllowed {
		return -2
	}
	return -1
}

// concealedTripletCount counts concealed koutsu/kan groups, per
// ContextGroup.IsConcealedTriplet.
func (c *HandContext) concealedTripletCount() int {
	n := 0
	for _, g := range c.Groups {
		if g.IsConcealedTriplet(c.Tsumo) {
			n++
		}
	}
	return n
}

// DetectAll runs every detector against ctx, recording results into b.
// Detectors are independent pure functions; all ordering effects are
// resolved by Builder's block discipline, not by call order here.
func DetectAll(ctx *HandContext, b *Builder) {
	detectRiichiFamily(ctx, b)
	detectMenzenTsumo(ctx, b)
	detectRinshan(ctx, b)
	detectChankan(ctx, b)
	detectHaiteiHoutei(ctx, b)
	detectFirstChanceLuck(ctx, b)
	detectTanyao(ctx, b)
	detectHonChinIitsu(ctx, b)
	detectHonroutouChinroutouTsuuRyuu(ctx, b)
	detectChuurenpoutou(ctx, b)

	if ctx.Irregular != nil {
		detectIrregularShape(ctx, b)
		return
	}

	detectPinfu(ctx, b)
	detectIipeikouRyanpeikou(ctx, b)
	detectIkkitsuukan(ctx, b)
	detectSanshoku(ctx, b)
	detectYakuhai(ctx, b)
	detectToitoihou(ctx, b)
	detectSanankouSuuankou(ctx, b)
	detectKantsuCount(ctx, b)
	detectDaisangenShousangen(ctx, b)
	detectDaisuushiShousuushi(ctx, b)
	detectChantaJunchan(ctx, b)
}

func detectRiichiFamily(ctx *HandContext, b *Builder) {
	if !ctx.RiichiActive {
		return
	}
	if ctx.DoubleRiichi {
		b.Add(DoubleRiichi, 2)
	} else {
		b.Add(Riichi, 1)
	}
	if ctx.Ippatsu {
		b.Add(Ippatsu, 1)
	}
}

func detectMenzenTsumo(ctx *HandContext, b *Builder) {
	if ctx.Closed && ctx.Tsumo {
		b.Add(Menzenchintsumohou, 1)
	}
}

func detectRinshan(ctx *HandContext, b *Builder) {
	if ctx.Rinshan {
		b.Add(Rinshankaihou, 1)
	}
}

func detectChankan(ctx *HandContext, b *Builder) {
	if ctx.Chankan {
		b.Add(Chankan, 1)
	}
}

func detectHaiteiHoutei(ctx *HandContext, b *Builder) {
	if !ctx.LastTile {
		return
	}
	if ctx.Tsumo {
		b.Add(Haiteimouyue, 1)
	} else {
		b.Add(Houteiraoyui, 1)
	}
}

func detectFirstChanceLuck(ctx *HandContext, b *Builder) {
	if !ctx.FirstChance {
		return
	}
	switch {
	case ctx.Tsumo && ctx.IsDealer:
		b.Add(Tenhou, -1)
	case ctx.Tsumo && !ctx.IsDealer:
		b.Add(Chiihou, -1)
	case !ctx.Tsumo && !ctx.IsDealer:
		b.Add(Renhou, 4)
	}
}

func detectPinfu(ctx *HandContext, b *Builder) {
	if ctx.Closed && ctx.ExtraFu == 0 {
		b.Add(Pinfu, 1)
	}
}

// eachPresentTile calls f for every tile kind present with nonzero count, used by the
// composition-only detectors (tanyao, honitsu/chinitsu, honroutou family).
func (c *HandContext) eachPresentTile(f func(t tile.Tile, count uint8)) {
	for e := 0; e < 34; e++ {
		if n := c.Tiles.Count(e); n > 0 {
			f(tile.Tile(e), n)
		}
	}
}

func detectTanyao(ctx *HandContext, b *Builder) {
	if !ctx.OpenTanyaoAllowed && !ctx.Closed {
		return
	}
	allSimple := true
	ctx.eachPresentTile(func(t tile.Tile, _ uint8) {
		if t.IsTerminal() {
			allSimple = false
		}
	})
	if allSimple {
		b.Add(Tanyaochuu, 1)
	}
}

func detectHonChinIitsu(ctx *HandContext, b *Builder) {
	suits := map[int]bool{}
	hasHonor := false
	ctx.eachPresentTile(func(t tile.Tile, _ uint8) {
		if t.IsHonor() {
			hasHonor = true
		} else {
			suits[t.Suit()] = true
		}
	})
	if len(suits) != 1 {
		return
	}
	if hasHonor {
		if ctx.Closed {
			b.Add(Honniisou, 3)
		} else {
			b.Add(Honniisou, 2)
		}
	} else {
		if ctx.Closed {
			b.Add(Chinniisou, 6)
		} else {
			b.Add(Chinniisou, 5)
		}
	}
}

func detectHonroutouChinroutouTsuuRyuu(ctx *HandContext, b *Builder) {
	allTerminalOrHonor := true
	allHonor := true
	allGreen := true
	hasHonor := false
	ctx.eachPresentTile(func(t tile.Tile, _ uint8) {
		if !t.IsTerminal() {
			allTerminalOrHonor = false
		}
		if !t.IsHonor() {
			allHonor = false
		} else {
			hasHonor = true
		}
		if !isGreenTile(t) {
			allGreen = false
		}
	})
	if allHonor {
		b.Add(Tsuuiisou, -1)
	}
	if allGreen {
		b.Add(Ryuuiisou, -1)
	}
	if allTerminalOrHonor {
		if hasHonor {
			b.Add(Honroutou, 2)
		} else {
			b.Add(Chinroutou, -1)
		}
	}
}

// isGreenTile reports whether t is one of the six tiles Ryuuiisou allows:
// 2,3,4,6,8 of bamboo and the green dragon.
func isGreenTile(t tile.Tile) bool {
	switch t {
	case tile.Tile(19), tile.Tile(20), tile.Tile(21), tile.Tile(23), tile.Tile(25), tile.Tile(32):
		return true
	default:
		return false
	}
}

func detectChuurenpoutou(ctx *HandContext, b *Builder) {
	if !ctx.Closed {
		return
	}
	suit := -1
	ok := true
	ctx.eachPresentTile(func(t tile.Tile, _ uint8) {
		if t.IsHonor() {
			ok = false
			return
		}
		if suit == -1 {
			suit = t.Suit()
		} else if t.Suit() != suit {
			ok = false
		}
	})
	if !ok || suit == -1 {
		return
	}
	var counts [9]uint8
	for n := 1; n <= 9; n++ {
		e, _ := tile.FromNumSuit(n, suit)
		counts[n-1] = ctx.Tiles.Count(int(e))
	}
	if counts[0] < 3 || counts[8] < 3 {
		return
	}
	for n := 2; n <= 8; n++ {
		if counts[n-1] < 1 {
			return
		}
	}
	total := 0
	for _, c := range counts {
		total += int(c)
	}
	if total != 14 {
		return
	}
	// Pure: with the winning tile removed, the remaining 13 tiles are
	// exactly the base 1112345678999 shape (every position at its minimum).
	pre := counts
	if ctx.WinningTile.Suit() == suit {
		pre[ctx.WinningTile.NormalNum()-1]--
	}
	pure := pre[0] == 3 && pre[8] == 3
	for n := 2; n <= 8 && pure; n++ {
		if pre[n-1] != 1 {
			pure = false
		}
	}
	if pure {
		b.Add(Junseichuurenpoutou, ctx.yakumanValue())
	} else {
		b.Add(Chuurenpoutou, -1)
	}
}

func detectIipeikouRyanpeikou(ctx *HandContext, b *Builder) {
	if !ctx.Closed {
		return
	}
	type key struct {
		suit, pos int
	}
	counts := map[key]int{}
	for _, g := range ctx.Groups {
		if g.Group.Kind != meld.GroupShuntsu {
			continue
		}
		counts[key{g.Group.Tile.Suit(), g.Group.Tile.NormalNum()}]++
	}
	pairs := 0
	for _, n := range counts {
		pairs += n / 2
	}
	switch pairs {
	case 1:
		b.Add(Iipeikou, 1)
	case 2:
		b.Add(Ryanpeikou, 3)
	}
}

func detectIkkitsuukan(ctx *HandContext, b *Builder) {
	have := map[int]map[int]bool{}
	for _, g := range ctx.Groups {
		if g.Group.Kind != meld.GroupShuntsu {
			continue
		}
		suit := g.Group.Tile.Suit()
		if have[suit] == nil {
			have[suit] = map[int]bool{}
		}
		have[suit][g.Group.Tile.NormalNum()] = true
	}
	for _, starts := range have {
		if starts[1] && starts[4] && starts[7] {
			if ctx.Closed {
				b.Add(Ikkitsuukan, 2)
			} else {
				b.Add(Ikkitsuukan, 1)
			}
			return
		}
	}
}

func detectSanshoku(ctx *HandContext, b *Builder) {
	shuntsuPos := map[int]map[int]bool{} // num -> set of suits
	koutsuNum := map[int]map[int]bool{}  // num -> set of suits
	for _, g := range ctx.Groups {
		suit := g.Group.Tile.Suit()
		if suit == tile.SuitHonor {
			continue
		}
		n := g.Group.Tile.NormalNum()
		switch g.Group.Kind {
		case meld.GroupShuntsu:
			if shuntsuPos[n] == nil {
				shuntsuPos[n] = map[int]bool{}
			}
			shuntsuPos[n][suit] = true
		case meld.GroupKoutsu:
			if koutsuNum[n] == nil {
				koutsuNum[n] = map[int]bool{}
			}
			koutsuNum[n][suit] = true
		}
	}
	for _, suits := range shuntsuPos {
		if len(suits) == 3 {
			if ctx.Closed {
				b.Add(Sanshokudoujun, 2)
			} else {
				b.Add(Sanshokudoujun, 1)
			}
			break
		}
	}
	for _, suits := range koutsuNum {
		if len(suits) == 3 {
			b.Add(Sanshokudoukou, 2)
			break
		}
	}
}

func detectYakuhai(ctx *HandContext, b *Builder) {
	for _, g := range ctx.Groups {
		if g.Group.Kind != meld.GroupKoutsu {
			continue
		}
		t := g.Group.Tile
		switch {
		case t.IsDragon():
			switch t.NormalEncoding() {
			case 31:
				b.Add(SangenpaiHaku, 1)
			case 32:
				b.Add(SangenpaiHatsu, 1)
			case 33:
				b.Add(SangenpaiChun, 1)
			}
		case t.IsWind():
			if t == ctx.SeatWind {
				addSeatWind(b, t)
			}
			if t == ctx.RoundWind {
				addRoundWind(b, t)
			}
		}
	}
}

func addSeatWind(b *Builder, t tile.Tile) {
	b.Add(JikazehaiAny, 1)
	switch t.NormalEncoding() {
	case 27:
		b.Add(JikazehaiE, 0)
	case 28:
		b.Add(JikazehaiS, 0)
	case 29:
		b.Add(JikazehaiW, 0)
	case 30:
		b.Add(JikazehaiN, 0)
	}
}

func addRoundWind(b *Builder, t tile.Tile) {
	b.Add(BakazehaiAny, 1)
	switch t.NormalEncoding() {
	case 27:
		b.Add(BakazehaiE, 0)
	case 28:
		b.Add(BakazehaiS, 0)
	case 29:
		b.Add(BakazehaiW, 0)
	case 30:
		b.Add(BakazehaiN, 0)
	}
}

func detectToitoihou(ctx *HandContext, b *Builder) {
	for _, g := range ctx.Groups {
		if g.Group.Kind != meld.GroupKoutsu {
			return
		}
	}
	b.Add(Toitoihou, 2)
}

func detectSanankouSuuankou(ctx *HandContext, b *Builder) {
	n := ctx.concealedTripletCount()
	switch {
	case n >= 4:
		if ctx.WaitKind == decomp.Tanki {
			b.Add(SuuankouTanki, ctx.yakumanValue())
		} else {
			b.Add(Suuankou, -1)
		}
	case n == 3:
		b.Add(Sanankou, 2)
	}
}

func detectKantsuCount(ctx *HandContext, b *Builder) {
	n := 0
	for _, g := range ctx.Groups {
		switch g.Source {
		case SourceAnkan, SourceKakan, SourceDaiminkan:
			n++
		}
	}
	switch {
	case n >= 4:
		b.Add(Suukantsu, -1)
	case n == 3:
		b.Add(Sankantsu, 2)
	}
}

func detectDaisangenShousangen(ctx *HandContext, b *Builder) {
	triplets := 0
	pairIsDragon := ctx.Pair.IsDragon()
	for _, g := range ctx.Groups {
		if g.Group.Kind == meld.GroupKoutsu && g.Group.Tile.IsDragon() {
			triplets++
		}
	}
	switch {
	case triplets == 3:
		b.Add(Daisangen, -1)
	case triplets == 2 && pairIsDragon:
		b.Add(Shousangen, 2)
	}
}

func detectDaisuushiShousuushi(ctx *HandContext, b *Builder) {
	triplets := 0
	pairIsWind := ctx.Pair.IsWind()
	for _, g := range ctx.Groups {
		if g.Group.Kind == meld.GroupKoutsu && g.Group.Tile.IsWind() {
			triplets++
		}
	}
	switch {
	case triplets == 4:
		b.Add(Daisuushi, ctx.yakumanValue())
	case triplets == 3 && pairIsWind:
		b.Add(Shousuushi, -1)
	}
}

// touchesTerminal reports whether g includes a terminal or honor tile: for a
// koutsu, the repeated tile itself; for a shuntsu, only the 123 or 789 run.
func touchesTerminal(g meld.HandGroup) bool {
	if g.Kind == meld.GroupKoutsu {
		return g.Tile.IsTerminal()
	}
	n := g.Tile.NormalNum()
	return n == 1 || n == 7
}

func detectChantaJunchan(ctx *HandContext, b *Builder) {
	if !ctx.Pair.IsTerminal() {
		return
	}
	hasHonor := ctx.Pair.IsHonor()
	for _, g := range ctx.Groups {
		if !touchesTerminal(g.Group) {
			return
		}
		if g.Group.Kind == meld.GroupKoutsu && g.Group.Tile.IsHonor() {
			hasHonor = true
		}
	}
	if hasHonor {
		if ctx.Closed {
			b.Add(Honchantaiyaochuu, 2)
		} else {
			b.Add(Honchantaiyaochuu, 1)
		}
	} else {
		if ctx.Closed {
			b.Add(Junchantaiyaochuu, 3)
		} else {
			b.Add(Junchantaiyaochuu, 2)
		}
	}
}

// detectIrregularShape handles the two irregular hand patterns' own Yaku
// (Chiitoitsu, Kokushi); the composition-only detectors above (tanyao,
// honitsu, honroutou family, chuuren) already ran against ctx.Tiles and are
// naturally no-ops for an irregular hand's actual shape except Chiitoitsu
// itself, which this completes.
func detectIrregularShape(ctx *HandContext, b *Builder) {
	switch ctx.Irregular.Kind {
	case decomp.SevenPairs:
		b.Add(Chiitoitsu, 2)
	case decomp.ThirteenOrphans:
		b.Add(Kokushi, -1)
	case decomp.ThirteenOrphansAll:
		b.Add(Kokushi13, ctx.yakumanValue())
	}
}
