package legacy

import (
	"fmt"
	"strings"
)

// Tile represents a mahjong tile
type Tile struct {
	Suit  string // "Man", "Pin", "Sou", "Wind", "Dragon"
	Value int    // 1-9 for suits, 1-4 for Winds (E=1, S=2, W=3, N=4), 1-3 for Dragons (W=1, G=2, R=3)
	Name  string // User-friendly name, e.g., "Man 5", "East", "Red Dragon", "Red Pin 5"
	IsRed bool   // Is it a red five?
	ID    int    // ID for easy comparison/sorting if needed (GetAllPossibleTiles assigns -1 to -34)
}

// Meld represents an open or closed set of tiles (Chi, Pon, Kan)
type Meld struct {
	Type        string // "Chi", "Pon", "Ankan", "Daiminkan", "Shouminkan"
	Tiles       []Tile // Tiles in the meld, usually sorted
	CalledOn    Tile   // Which tile was called (for open melds) - For Shouminkan, it's the added tile.
	FromPlayer  int    // Index of the player the tile was called from (-1 for Ankan, Shouminkan uses original Pon source)
	IsConcealed bool   // True for Ankan
}

// --- Sorting Tiles ---

// BySuitValue implements sort.Interface for []Tile based on suit then value
type BySuitValue []Tile

func (a BySuitValue) Len() int      { return len(a) }
func (a BySuitValue) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a BySuitValue) Less(i, j int) bool {
	suitOrder := map[string]int{"Man": 1, "Pin": 2, "Sou": 3, "Wind": 4, "Dragon": 5}
	s1 := a[i].Suit
	s2 := a[j].Suit
	v1 := a[i].Value
	v2 := a[j].Value

	order1, ok1 := suitOrder[s1]
	order2, ok2 := suitOrder[s2]

	if !ok1 || !ok2 { // Handle potential unexpected suits gracefully
		return fmt.Sprintf("%s%d", s1, v1) < fmt.Sprintf("%s%d", s2, v2)
	}

	if order1 != order2 {
		return order1 < order2
	}

	// Same suit
	if s1 == "Wind" || s1 == "Dragon" {
		// Use canonical order for honors, not necessarily Value
		nameOrder := map[string]int{
			"East": 1, "South": 2, "West": 3, "North": 4,
			"White": 5, "Green": 6, "Red": 7,
		}
		nameI := strings.TrimPrefix(a[i].Name, "Red ")
		nameJ := strings.TrimPrefix(a[j].Name, "Red ")
		orderNameI, okI := nameOrder[nameI]
		orderNameJ, okJ := nameOrder[nameJ]
		if okI && okJ {
			return orderNameI < orderNameJ
		}
		return a[i].Name < a[j].Name
	}

	// For numbered suits, sort by value
	return v1 < v2
}
