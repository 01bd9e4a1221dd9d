package legacy

import (
	"fmt"
	"sort"
)

// NewTile creates a new tile instance
func NewTile(suit string, value int, name string, isRed bool, id int) Tile {
	return Tile{Suit: suit, Value: value, Name: name, IsRed: isRed, ID: id}
}

// GetAllPossibleTiles returns a sorted list of all 34 unique tile types (ignoring duplicates/reds).
func GetAllPossibleTiles() []Tile {
	uniqueTiles := []Tile{}
	suits := []string{"Man", "Pin", "Sou"}
	winds := []string{"East", "South", "West", "North"}
	dragons := []string{"White", "Green", "Red"}
	idCounter := -1

	for _, suit := range suits {
		for value := 1; value <= 9; value++ {
			tileName := fmt.Sprintf("%s %d", suit, value)
			uniqueTiles = append(uniqueTiles, NewTile(suit, value, tileName, false, idCounter))
			idCounter--
		}
	}
	for i, wind := range winds {
		uniqueTiles = append(uniqueTiles, NewTile("Wind", i+1, wind, false, idCounter))
		idCounter--
	}
	for i, dragonName := range dragons {
		uniqueTiles = append(uniqueTiles, NewTile("Dragon", i+1, dragonName, false, idCounter))
		idCounter--
	}

	sort.Sort(BySuitValue(uniqueTiles))
	return uniqueTiles
}
