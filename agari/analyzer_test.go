package agari

import (
	"testing"

	"riichi-go/decomp"
	"riichi-go/rules"
	"riichi-go/tile"
	"riichi-go/yaku"
)

func testDecomposer(t *testing.T) *decomp.Decomposer {
	t.Helper()
	c := decomp.BuildCTable()
	w := decomp.BuildWTable(c)
	return decomp.NewDecomposer(c, w)
}

func TestAnalyzePinfuTanyaoRon(t *testing.T) {
	dec := testDecomposer(t)
	east, _ := tile.FromWind(0)
	closed := closedHandFromString(t, "234m22m345p678s45s")
	winningTile, _ := tile.FromNumSuit(6, tile.SuitSou)

	in := AgariInput{
		RoundWind:       east,
		SeatWind:        east,
		ButtonSeat:      0,
		WinnerSeat:      1,
		ContributorSeat: 2,
		Action:          ActionDiscard,
		ClosedHand:      closed,
		WinningTile:     winningTile,
	}

	candidates, err := Analyze(rules.NewDefault(), dec, in)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(candidates) == 0 {
		t.Fatal("expected at least one winning candidate")
	}

	var best *AgariCandidate
	for i := range candidates {
		if _, ok := candidates[i].Yaku[yaku.Pinfu]; ok {
			best = &candidates[i]
			break
		}
	}
	if best == nil {
		t.Fatalf("expected a Pinfu candidate among %v", candidates)
	}
	if _, ok := best.Yaku[yaku.Tanyaochuu]; !ok {
		t.Error("expected Tanyaochuu alongside Pinfu for an all-simples hand")
	}
	if best.Scoring.Fu != 30 {
		t.Errorf("Fu = %d, want 30 for a closed-ron pinfu hand", best.Scoring.Fu)
	}
	if best.Scoring.Han != 2 {
		t.Errorf("Han = %d, want 2 (pinfu + tanyao)", best.Scoring.Han)
	}
	if best.Scoring.BasicPoints != 480 {
		t.Errorf("BasicPoints = %d, want 480", best.Scoring.BasicPoints)
	}
}

func TestAnalyzeNoMatchingWaitReturnsEmpty(t *testing.T) {
	dec := testDecomposer(t)
	east, _ := tile.FromWind(0)
	closed := closedHandFromString(t, "234m22m345p678s45s")
	// This hand's only flexible shape is the 4-8s run, which waits on
	// 3s/6s/9s depending on how it's split; 1z touches nothing in the hand
	// and completes no decomposition.
	winningTile, _ := tile.FromNumSuit(1, tile.SuitHonor)

	in := AgariInput{
		RoundWind:   east,
		SeatWind:    east,
		Action:      ActionDiscard,
		ClosedHand:  closed,
		WinningTile: winningTile,
	}
	candidates, err := Analyze(rules.NewDefault(), dec, in)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("expected no candidates for a non-completing tile, got %d", len(candidates))
	}
}

func TestResolveChankanRespectsChankanOnConcealedKokushiAndShape(t *testing.T) {
	in := AgariInput{Action: ActionConcealedKan}

	rsOn := rules.NewDefault() // ChankanOnConcealedKokushi defaults to true
	if !resolveChankan(rsOn, in, true) {
		t.Error("expected a concealed-kan robbery to count as Chankan for a thirteen-orphans shape when the ruleset allows it")
	}
	if resolveChankan(rsOn, in, false) {
		t.Error("expected a concealed-kan robbery to never count as Chankan for a regular (non-kokushi) shape")
	}

	rsOff := rules.NewDefault()
	rsOff.ChankanOnConcealedKokushi = false
	if resolveChankan(rsOff, in, true) {
		t.Error("expected no Chankan once ChankanOnConcealedKokushi is disabled, even for a thirteen-orphans shape")
	}

	in.Action = ActionAddedKan
	if !resolveChankan(rsOff, in, false) {
		t.Error("robbing an ordinary added kan should always count as Chankan regardless of the kokushi toggle")
	}
}

func TestScoreCandidateRejectsBelowMinimumQualifyingHan(t *testing.T) {
	rs := rules.NewDefault()
	ctx := &yaku.HandContext{Closed: true, Tsumo: false}
	hc := HandCommon{DoraHits: 3} // dora-only, no Yaku at all

	if _, ok := scoreCandidate(rs, nil, nil, yaku.Values{}, ctx, hc); ok {
		t.Error("a hand with dora but no Yaku should not qualify as Agari")
	}
}

func TestScoreCandidateAppliesKiriageMangan(t *testing.T) {
	ctx := &yaku.HandContext{Closed: true, Tsumo: false, ExtraFu: 0}
	values := yaku.Values{yaku.Riichi: 4} // contrived: 4 han exactly, 30 fu from a closed ron base

	rs := rules.NewDefault()
	c, ok := scoreCandidate(rs, nil, nil, values, ctx, HandCommon{})
	if !ok {
		t.Fatal("expected the candidate to qualify")
	}
	if c.Scoring.Fu != 30 || c.Scoring.Han != 4 {
		t.Fatalf("test setup error: got %d han/%d fu, want 4 han/30 fu", c.Scoring.Han, c.Scoring.Fu)
	}
	if c.Scoring.BasicPoints != 1920 {
		t.Errorf("BasicPoints = %d, want 1920 without KiriageMangan", c.Scoring.BasicPoints)
	}

	rs.KiriageMangan = true
	c2, _ := scoreCandidate(rs, nil, nil, values, ctx, HandCommon{})
	if c2.Scoring.BasicPoints != 2000 {
		t.Errorf("BasicPoints = %d, want 2000 (kiriage mangan) for a 4-han-30-fu hand", c2.Scoring.BasicPoints)
	}
}

func TestAnalyzeInvalidInputErrors(t *testing.T) {
	dec := testDecomposer(t)
	in := AgariInput{ClosedHand: closedHandFromString(t, "123m")}
	if _, err := Analyze(rules.NewDefault(), dec, in); err == nil {
		t.Error("expected an error for a structurally invalid hand")
	}
}
