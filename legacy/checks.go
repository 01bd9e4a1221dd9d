package legacy

import (
	"fmt"
	"sort"
	"strings"
)

// ==========================================================
// Hand Completion & Structure Checks
// ==========================================================

// IsCompleteHand checks if a hand forms a valid winning shape (Standard, Chiitoi, Kokushi).
// `handTilesForCheck` should be the concealed tiles (including the 14th winning tile).
// `melds` are the player's existing melds.
func IsCompleteHand(handTilesForCheck []Tile, melds []Meld) bool {
	numMelds := len(melds)
	groupsNeeded := 4 - numMelds
	pairsNeeded := 1 // Standard hand always needs 1 pair

	if groupsNeeded < 0 { // More than 4 melds (shouldn't happen with valid Kan logic)
		// fmt.Printf("Debug Warning: IsCompleteHand called with >4 melds (%d).\n", numMelds)
		return false
	}
	expectedHandTiles := groupsNeeded*3 + pairsNeeded*2
	if len(handTilesForCheck) != expectedHandTiles {
		// This check is vital. If the tile count is off, it cannot form the required structure.
		// fmt.Printf("Debug Warning: IsCompleteHand inconsistent tile count. Hand: %d, Expected: %d (for %d groups, %d pair from %d melds).\n",
		// 	len(handTilesForCheck), expectedHandTiles, groupsNeeded, pairsNeeded, numMelds)
		return false
	}

	// Create a mutable copy for recursive checks, ensure it's sorted.
	handCopy := make([]Tile, len(handTilesForCheck))
	copy(handCopy, handTilesForCheck)
	sort.Sort(BySuitValue(handCopy))

	// Check Special Hands (Kokushi, Chiitoitsu)
	// These require a fully concealed hand (only Ankans allowed as "melds" which are part of hand)
	// and exactly 14 tiles in the `handTilesForCheck` if no melds exist.
	isEffectivelyConcealed := true
	if numMelds > 0 { // If there are melds, check if all are Ankan
		for _, m := range melds {
			if m.Type != "Ankan" { // Ankan is considered part of a concealed hand for these purposes
				isEffectivelyConcealed = false
				break
			}
		}
	}

	if isEffectivelyConcealed && numMelds == 0 && len(handTilesForCheck) == 14 { // Must be 14 tiles in hand if no melds
		if IsKokushiMusou(handCopy) {
			return true
		}
		if IsChiitoitsu(handCopy) {
			return true
		}
	}

	// Check Standard Hand (4 Groups + 1 Pair)
	// `groupsNeeded` and `pairsNeeded` were calculated based on existing `melds`.
	// `handCopy` contains the tiles that need to form these remaining groups/pair.
	return CheckStandardHandRecursive(handCopy, groupsNeeded, pairsNeeded)
}

// CheckStandardHandRecursive attempts to find `groupsNeeded` groups (Pung/Chi)
// and `pairsNeeded` pairs from the `currentHand` tiles. Assumes `currentHand` is sorted.
func CheckStandardHandRecursive(currentHand []Tile, groupsNeeded int, pairsNeeded int) bool {
	// Base Case: Success
	if len(currentHand) == 0 && groupsNeeded == 0 && pairsNeeded == 0 {
		return true
	}
	// Base Case: Failure (impossible to form remaining with leftover tiles, or negative counts)
	if groupsNeeded < 0 || pairsNeeded < 0 || len(currentHand) < (groupsNeeded*3+pairsNeeded*2) {
		return false
	}
	// Base Case: No tiles left but still need groups/pairs
	if len(currentHand) == 0 && (groupsNeeded > 0 || pairsNeeded > 0) {
		return false
	}

	// 1. Try Removing a Pair (if needed)
	if pairsNeeded > 0 && len(currentHand) >= 2 {
		// Check if first two tiles form a pair (Suit/Value match)
		if currentHand[0].Suit == currentHand[1].Suit && currentHand[0].Value == currentHand[1].Value {
			if CheckStandardHandRecursive(currentHand[2:], groupsNeeded, pairsNeeded-1) {
				return true
			}
		}
	}

	// 2. Try Removing a Pung (Triplet) (if needed)
	if groupsNeeded > 0 && len(currentHand) >= 3 {
		if currentHand[0].Suit == currentHand[1].Suit && currentHand[0].Value == currentHand[1].Value &&
			currentHand[0].Suit == currentHand[2].Suit && currentHand[0].Value == currentHand[2].Value {
			if CheckStandardHandRecursive(currentHand[3:], groupsNeeded-1, pairsNeeded) {
				return true
			}
		}
	}

	// 3. Try Removing a Chi (Sequence) (if needed)
	if groupsNeeded > 0 && len(currentHand) >= 3 && IsSimple(currentHand[0]) || IsTerminal(currentHand[0]) && currentHand[0].Value <= 7 {
		// Sequences only for Man, Pin, Sou and starting tile must allow for a sequence (e.g., not 8 or 9 for some)
		if currentHand[0].Suit != "Wind" && currentHand[0].Suit != "Dragon" {
			v1, s1 := currentHand[0].Value, currentHand[0].Suit
			idx2, idx3 := -1, -1

			for k := 1; k < len(currentHand); k++ { // Find v1+1
				if currentHand[k].Suit == s1 && currentHand[k].Value == v1+1 {
					idx2 = k; break
				}
			}
			if idx2 != -1 {
				for k := idx2 + 1; k < len(currentHand); k++ { // Find v1+2
					if currentHand[k].Suit == s1 && currentHand[k].Value == v1+2 {
						idx3 = k; break
					}
				}
			}

			if idx3 != -1 { // Found sequence 0, idx2, idx3
				remainingHand := []Tile{}
				indicesUsed := map[int]bool{0: true, idx2: true, idx3: true}
				for k := 0; k < len(currentHand); k++ {
					if !indicesUsed[k] {
						remainingHand = append(remainingHand, currentHand[k])
					}
				}
				if CheckStandardHandRecursive(remainingHand, groupsNeeded-1, pairsNeeded) {
					return true
				}
			}
		}
	}
	return false // No path found from current state with greedy choices
}

// IsKokushiMusou checks for the 13 Orphans hand (14 tiles version - pair wait).
func IsKokushiMusou(hand []Tile) bool {
	if len(hand) != 14 { return false }
	terminalsAndHonors := map[string]int{
		"Man 1": 0, "Man 9": 0, "Pin 1": 0, "Pin 9": 0, "Sou 1": 0, "Sou 9": 0,
		"East": 0, "South": 0, "West": 0, "North": 0,
		"White": 0, "Green": 0, "Red": 0,
	}
	requiredTypes := len(terminalsAndHonors)
	foundTypes, hasPair := 0, false
	tileCountsByName := make(map[string]int)
	for _, tile := range hand {
		baseName := strings.TrimPrefix(tile.Name, "Red ") // Red fives don't affect Kokushi
		tileCountsByName[baseName]++
	}
	for name, count := range tileCountsByName {
		_, isRequired := terminalsAndHonors[name]
		if isRequired {
			if count > 2 { return false } // Max 2 of any required type (for the pair)
			if count >= 1 {
				if terminalsAndHonors[name] == 0 { foundTypes++ } // Count unique type found
				terminalsAndHonors[name] = count
			}
			if count == 2 {
				if hasPair { return false } // Only one pair allowed
				hasPair = true
			}
		} else { return false } // Contains a tile not part of Kokushi set
	}
	return foundTypes == requiredTypes && hasPair
}

// IsChiitoitsu checks for the Seven Pairs hand (14 tiles).
func IsChiitoitsu(hand []Tile) bool {
	if len(hand) != 14 { return false }
	tileCountsByID := make(map[int]int) // Use specific tile ID for Chiitoitsu (e.g. Red 5m is different from normal 5m)
	for _, t := range hand { tileCountsByID[t.ID]++ }
	pairCountByID := 0
	for _, count := range tileCountsByID {
		if count == 2 { pairCountByID++ } else if count == 4 { pairCountByID += 2 // 4 identical tiles = 2 pairs
		} else if count != 0 { return false } // Any other count (1, 3) invalidates
	}
	return pairCountByID == 7
}

// IsTenpai checks if a 13-tile hand state (currentHand + melds) is one tile away from being complete.
func IsTenpai(currentHand []Tile, melds []Meld) bool {
	numKans := 0
	for _, m := range melds { if strings.Contains(m.Type, "Kan") { numKans++ } }
	
	// Expected number of tiles in currentHand (concealed part) for a 13-tile state
	// A 13-tile hand means total 13 tiles *before* drawing the 14th.
	// So, HandSize (13) - (tiles_in_melds_not_kans*3) - (tiles_in_kans*4) + kans.
	// Simpler: expectedHandSize = HandSize (13) - (number of tiles in melds that are not the pair).
	// If player has 1 meld (3 tiles), hand should have 10. Total 13.
	// If player has 1 Kan (4 tiles), hand should have 9. Total 13.
	// This means player.Hand should have 13 - (tiles_in_melds_effectively).
	// For Tenpai check, currentHand + melds should effectively be 13 tiles.
	// If a Kan exists, currentHand will be smaller.
	// The number of tiles in currentHand should be HandSize - numKans.

	// This check might be too restrictive if IsTenpai is called in intermediate states.
	// The core logic relies on adding a test tile to form 14 and checking IsCompleteHand.
	// expectedConcealedTilesForTenpaiCheck := HandSize - numKans
	// if len(currentHand) != expectedConcealedTilesForTenpaiCheck {
	//  fmt.Printf("Debug IsTenpai: currentHand len %d, expected %d (HandSize %d - Kans %d)\n",
	// 	len(currentHand), expectedConcealedTilesForTenpaiCheck, HandSize, numKans)
	// // return false // Can be too strict if called at odd times.
	// }


	possibleTiles := GetAllPossibleTiles() // Unique 34 types
	for _, testTile := range possibleTiles {
		tempConcealedHandWithTestTile := append([]Tile{}, currentHand...)
		tempConcealedHandWithTestTile = append(tempConcealedHandWithTestTile, testTile)
		// sort.Sort(BySuitValue(tempConcealedHandWithTestTile)) // IsCompleteHand will sort its copy

		// IsCompleteHand expects the concealed part (which now includes the test tile, making it 14-equivalent)
		// and the existing melds.
		if IsCompleteHand(tempConcealedHandWithTestTile, melds) {
			return true // Found a tile that completes the hand
		}
	}
	return false // No tile completes the hand
}

// FindTenpaiWaits returns a list of *unique tile types* that would complete the hand.
// Expects a 13-tile hand state (currentHand + melds).
func FindTenpaiWaits(currentHand []Tile, melds []Meld) []Tile {
	waits := []Tile{}
	possibleTiles := GetAllPossibleTiles()     // Unique 34 types
	seenWaits := make(map[string]bool)         // Track waits by Suit-Value

	for _, testTile := range possibleTiles {
		tempConcealedHandWithTestTile := append([]Tile{}, currentHand...)
		tempConcealedHandWithTestTile = append(tempConcealedHandWithTestTile, testTile)
		// sort.Sort(BySuitValue(tempConcealedHandWithTestTile)) // IsCompleteHand sorts

		if IsCompleteHand(tempConcealedHandWithTestTile, melds) {
			// Use non-red version for wait key to group red/non-red waits
			waitKeyTile := testTile 
			if waitKeyTile.IsRed { // Create a non-red equivalent for the key
				waitKeyTile.IsRed = false
				waitKeyTile.Name = strings.TrimPrefix(waitKeyTile.Name, "Red ")
			}
			waitKey := fmt.Sprintf("%s-%d", waitKeyTile.Suit, waitKeyTile.Value)
			if !seenWaits[waitKey] {
				waits = append(waits, testTile) // Add the actual tile (can be red or not)
				seenWaits[waitKey] = true
			}
		}
	}
	sort.Sort(BySuitValue(waits)) // Sort the waits for display/consistency
	return waits
}
