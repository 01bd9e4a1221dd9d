package agari

import (
	"riichi-go/decomp"
	"riichi-go/meld"
	"riichi-go/rules"
	"riichi-go/scoring"
	"riichi-go/tile"
	"riichi-go/yaku"
)

// HandCommon is the tile-level view shared by every candidate decomposition
// of one winning hand: the merged tile multiset and dora hit counts. Built
// once per AgariInput and reused across every RegularWait/irregular
// candidate, since none of it depends on which decomposition is chosen.
type HandCommon struct {
	Tiles37 tile.Set37
	Tiles34 tile.Set34

	DoraHits    int
	UraDoraHits int
	RedDoraHits int
}

// buildHandCommon merges the closed hand, every meld's tiles, and the
// winning tile into one multiset, and tallies dora hits: normal dora
// indicators always count, ura-dora only under riichi, red fives always.
func buildHandCommon(in AgariInput) HandCommon {
	var hc HandCommon
	hc.Tiles37 = in.ClosedHand
	hc.Tiles37.Add(in.WinningTile)
	for _, m := range in.Melds {
		for _, t := range meldTiles(m) {
			hc.Tiles37.Add(t)
		}
	}
	hc.Tiles34 = hc.Tiles37.ToSet34()

	for _, ind := range in.DoraIndicators {
		dora := ind.IndicatedDora()
		hc.DoraHits += int(hc.Tiles34.Count(int(dora.NormalEncoding())))
	}
	if in.Riichi.Active {
		for _, ind := range in.UraDoraIndicators {
			dora := ind.IndicatedDora()
			hc.UraDoraHits += int(hc.Tiles34.Count(int(dora.NormalEncoding())))
		}
	}
	for e := 34; e <= 36; e++ {
		hc.RedDoraHits += int(hc.Tiles37[e])
	}
	return hc
}

// meldTiles returns every physical tile a meld is made of (for merging into
// the full hand multiset).
func meldTiles(m meld.Meld) []tile.Tile {
	switch m.Kind {
	case meld.KindChii:
		return []tile.Tile{m.Chii.Own[0], m.Chii.Own[1], m.Chii.Called}
	case meld.KindPon:
		return []tile.Tile{m.Pon.Own[0], m.Pon.Own[1], m.Pon.Called}
	case meld.KindKakan:
		return []tile.Tile{m.Kakan.Pon.Own[0], m.Kakan.Pon.Own[1], m.Kakan.Pon.Called, m.Kakan.Added}
	case meld.KindDaiminkan:
		return []tile.Tile{m.Daiminkan.Own[0], m.Daiminkan.Own[1], m.Daiminkan.Own[2], m.Daiminkan.Called}
	case meld.KindAnkan:
		return m.Ankan.Own[:]
	default:
		return nil
	}
}

func meldSource(k meld.Kind) yaku.GroupSource {
	switch k {
	case meld.KindChii:
		return yaku.SourceChii
	case meld.KindPon:
		return yaku.SourcePon
	case meld.KindKakan:
		return yaku.SourceKakan
	case meld.KindDaiminkan:
		return yaku.SourceDaiminkan
	default:
		return yaku.SourceAnkan
	}
}

// AgariCandidate is one scored interpretation of a winning hand: a choice of
// regular decomposition (or the irregular pattern), its Yaku, and the
// resulting Scoring. Analyze returns one per viable decomposition; callers
// pick the maximum BasicPoints among them.
type AgariCandidate struct {
	RegularWait *decomp.RegularWait // nil for an irregular win
	Irregular   *decomp.IrregularWait
	Yaku        yaku.Values
	Scoring     scoring.Scoring
}

// TotalHan sums every positive Yaku value plus dora/ura-dora/red-dora hits;
// it is meaningless (and unused for scoring) once a yakuman is present.
func (c AgariCandidate) TotalHan(hc HandCommon) int {
	h := hc.DoraHits + hc.UraDoraHits + hc.RedDoraHits
	for _, v := range c.Yaku {
		if v > 0 {
			h += int(v)
		}
	}
	return h
}

// YakumanMultiplier sums the magnitude of every negative (yakuman) Yaku
// value recorded.
func (c AgariCandidate) YakumanMultiplier() int {
	m := 0
	for _, v := range c.Yaku {
		if v < 0 {
			m += -int(v)
		}
	}
	return m
}

// Analyze runs the full candidate enumeration of spec.md §4.5: build
// HandCommon, enumerate every regular/irregular decomposition whose waiting
// tile is the actual winning tile, run the Yaku battery, and score each one.
// Returns no error and an empty slice for a structurally valid but
// non-winning hand (no Yaku, or no decomposition completes on WinningTile);
// only a malformed AgariInput is an error.
func Analyze(rs rules.Ruleset, dec *decomp.Decomposer, in AgariInput) ([]AgariCandidate, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	hc := buildHandCommon(in)
	closedKeys := in.ClosedHand.ToSet34().Packed34()
	info := decomp.BuildWaitingInfo(dec, closedKeys)

	var candidates []AgariCandidate
	winningEncoding := int(in.WinningTile.NormalEncoding())

	for i := range info.RegularWaits {
		rw := info.RegularWaits[i]
		if int(rw.WaitingTile.NormalEncoding()) != winningEncoding {
			continue
		}
		ctx := buildRegularContext(rs, in, hc, rw)
		b := rs.NewBuilder()
		yaku.DetectAll(ctx, b)
		if c, ok := scoreCandidate(rs, &rw, nil, b.Build(), ctx, hc); ok {
			candidates = append(candidates, c)
		}
	}

	if info.Irregular != nil && info.Irregular.ToWaitingSet().Test(winningEncoding) {
		ctx := buildIrregularContext(rs, in, hc, *info.Irregular)
		b := rs.NewBuilder()
		yaku.DetectAll(ctx, b)
		if c, ok := scoreCandidate(rs, nil, info.Irregular, b.Build(), ctx, hc); ok {
			candidates = append(candidates, c)
		}
	}

	return candidates, nil
}

func buildRegularContext(rs rules.Ruleset, in AgariInput, hc HandCommon, rw decomp.RegularWait) *yaku.HandContext {
	groups := make([]yaku.ContextGroup, 0, 4)
	for _, m := range in.Melds {
		groups = append(groups, yaku.ContextGroup{Group: m.ToEquivalentGroup(), Source: meldSource(m.Kind)})
	}
	// The decomposer appends the group completed by the waiting tile last;
	// a Tanki wait completes the pair, so no group is marked.
	winIdx := -1
	last := len(rw.Groups) - 1
	for i, rg := range rw.Groups {
		hg := meld.HandGroup{Kind: resolvedKindToHandGroupKind(rg.Kind), Tile: rg.Min()}
		src := yaku.SourceClosed
		if rw.Kind != decomp.Tanki && i == last && containsTile(rg, rw.WaitingTile) {
			src = yaku.SourceClosedWin
			winIdx = len(groups)
		}
		groups = append(groups, yaku.ContextGroup{Group: hg, Source: src})
	}

	ctx := &yaku.HandContext{
		Tiles:                hc.Tiles34,
		Groups:               groups,
		Pair:                 rw.Pair.ToNormal(),
		WinningTile:          in.WinningTile.ToNormal(),
		WinningGroupIndex:    winIdx,
		WaitKind:             rw.Kind,
		PatternTile:          rw.PatternTile.ToNormal(),
		Closed:               in.IsClosed(),
		Tsumo:                in.Action.IsTsumo(),
		SeatWind:             in.SeatWind.ToNormal(),
		RoundWind:            in.RoundWind.ToNormal(),
		RiichiActive:         in.Riichi.Active,
		DoubleRiichi:         in.Riichi.Active && in.Riichi.Double,
		Ippatsu:              in.Riichi.Active && in.Riichi.IppatsuValid,
		Rinshan:              in.RinshanDraw,
		Chankan:              resolveChankan(rs, in, false),
		LastTile:             in.LastTile,
		FirstChance:          in.FirstChance,
		IsDealer:             in.IsDealer(),
		OpenTanyaoAllowed:    rs.OpenTanyaoAllowed,
		DoubleYakumanAllowed: rs.DoubleYakumanAllowed,
	}
	ctx.ExtraFu = computeExtraFu(ctx)
	return ctx
}

// resolveChankan decides whether this win's triggering action actually
// counts as Chankan. Robbing an ordinary Kakan always does; robbing a
// player's own concealed Ankan only validates the kokushi exception, and
// only when the ruleset's ChankanOnConcealedKokushi toggle permits it.
func resolveChankan(rs rules.Ruleset, in AgariInput, isKokushiShape bool) bool {
	switch in.Action {
	case ActionAddedKan:
		return true
	case ActionConcealedKan:
		return isKokushiShape && rs.ChankanOnConcealedKokushi
	default:
		return false
	}
}

func buildIrregularContext(rs rules.Ruleset, in AgariInput, hc HandCommon, irr decomp.IrregularWait) *yaku.HandContext {
	isKokushiShape := irr.Kind == decomp.ThirteenOrphans || irr.Kind == decomp.ThirteenOrphansAll
	return &yaku.HandContext{
		Tiles:                hc.Tiles34,
		Irregular:            &irr,
		WinningTile:          in.WinningTile.ToNormal(),
		WinningGroupIndex:    -1,
		Closed:               true, // both irregular shapes require a fully closed hand
		Tsumo:                in.Action.IsTsumo(),
		SeatWind:             in.SeatWind.ToNormal(),
		RoundWind:            in.RoundWind.ToNormal(),
		RiichiActive:         in.Riichi.Active,
		DoubleRiichi:         in.Riichi.Active && in.Riichi.Double,
		Ippatsu:              in.Riichi.Active && in.Riichi.IppatsuValid,
		Rinshan:              in.RinshanDraw,
		Chankan:              resolveChankan(rs, in, isKokushiShape),
		DoubleYakumanAllowed: rs.DoubleYakumanAllowed,
		LastTile:             in.LastTile,
		FirstChance:          in.FirstChance,
		IsDealer:             in.IsDealer(),
		OpenTanyaoAllowed:    rs.OpenTanyaoAllowed,
	}
}

func resolvedKindToHandGroupKind(k decomp.GroupKind) meld.HandGroupKind {
	if k == decomp.Koutsu {
		return meld.GroupKoutsu
	}
	return meld.GroupShuntsu
}

func containsTile(rg decomp.ResolvedGroup, t tile.Tile) bool {
	want := t.ToNormal()
	for _, x := range rg.Tiles() {
		if x == want {
			return true
		}
	}
	return false
}

// computeExtraFu implements spec.md §4.5's extra-Fu rule: meld Fu, closed-
// group Fu (doubled), waiting-group Fu (doubled only on Tsumo), a 2-Fu wait
// bonus for kanchan/penchan/tanki, and yakuhai-pair Fu.
func computeExtraFu(ctx *yaku.HandContext) int {
	fu := 0
	for i, g := range ctx.Groups {
		fu += groupFu(ctx, g, i)
	}
	fu += waitShapeFu(ctx)
	fu += pairFu(ctx)
	return fu
}

func openTripletBaseFu(t tile.Tile, isKan bool) int {
	simple := !t.IsTerminal()
	switch {
	case isKan && simple:
		return 8
	case isKan && !simple:
		return 16
	case !isKan && simple:
		return 2
	default:
		return 4
	}
}

func groupFu(ctx *yaku.HandContext, g yaku.ContextGroup, idx int) int {
	if g.Group.Kind != meld.GroupKoutsu {
		return 0
	}
	isKan := g.Source == yaku.SourceAnkan || g.Source == yaku.SourceKakan || g.Source == yaku.SourceDaiminkan
	base := openTripletBaseFu(g.Group.Tile, isKan)

	if g.Source == yaku.SourceAnkan {
		return base * 2
	}
	if idx == ctx.WinningGroupIndex {
		if ctx.Tsumo {
			return base * 2
		}
		return base
	}
	if g.Source == yaku.SourceClosed {
		return base * 2
	}
	return base // open call (Pon/Kakan/Daiminkan), not the waiting group
}

func waitShapeFu(ctx *yaku.HandContext) int {
	switch ctx.WaitKind {
	case decomp.Tanki, decomp.Kanchan:
		return 2
	case decomp.RyanmenLow, decomp.RyanmenHigh, decomp.RyanmenBoth:
		n := ctx.PatternTile.NormalNum()
		if n == 1 || n == 8 {
			return 2 // penchan
		}
	}
	return 0
}

func pairFu(ctx *yaku.HandContext) int {
	if ctx.Pair.IsDragon() {
		return 2
	}
	if !ctx.Pair.IsWind() {
		return 0
	}
	fu := 0
	if ctx.Pair == ctx.SeatWind {
		fu += 2
	}
	if ctx.Pair == ctx.RoundWind {
		fu += 2
	}
	return fu
}

// scoreCandidate scores one decomposition and reports whether it actually
// qualifies as a win: ruleset.MinimumQualifyingHan is the fewest Yaku han
// (dora excluded) a hand needs to be Agari at all; a hand with any yakuman
// Yaku qualifies regardless. A decomposition that falls short (most commonly: no
// Yaku fired at all) is not a win and the caller should drop it rather than
// score it.
func scoreCandidate(rs rules.Ruleset, rw *decomp.RegularWait, irr *decomp.IrregularWait, values yaku.Values, ctx *yaku.HandContext, hc HandCommon) (AgariCandidate, bool) {
	c := AgariCandidate{RegularWait: rw, Irregular: irr, Yaku: values}
	isSevenPairs := irr != nil && irr.Kind == decomp.SevenPairs
	yakuHan := 0
	yakumanMult := 0
	for _, v := range values {
		if v > 0 {
			yakuHan += int(v)
		} else if v < 0 {
			yakumanMult += -int(v)
		}
	}
	if yakumanMult == 0 && yakuHan < rs.MinimumQualifyingHan {
		return AgariCandidate{}, false
	}
	han := yakuHan + hc.DoraHits + hc.UraDoraHits + hc.RedDoraHits
	kind := scoring.Ron
	if ctx.Tsumo {
		kind = scoring.Tsumo
	}
	fu := scoring.ComputeFu(ctx.ExtraFu, kind, ctx.Closed, isSevenPairs)
	basic := scoring.BasicPoints(han, yakumanMult, fu)
	if rs.KiriageMangan && yakumanMult == 0 && ((han == 4 && fu == 30) || (han == 3 && fu == 60)) {
		basic = 2000
	}
	c.Scoring = scoring.Scoring{Han: han, YakumanMultiplier: yakumanMult, Fu: fu, BasicPoints: basic}
	return c, true
}
