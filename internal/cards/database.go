// Package cards holds the static base-set card registry. The engine treats
// it as read-only; effect scripts are registered separately by card id.
package cards

import (
	"fmt"
	"sort"

	"github.com/lukev/innovation_server/internal/models"
)

const (
	// TotalCards is the base-set card count.
	TotalCards = 105
	// MaxAge is the highest supply pile age.
	MaxAge = 10
)

var (
	byID  map[int]*models.CardDef
	byAge map[int][]int
)

func init() {
	byID = make(map[int]*models.CardDef, TotalCards)
	byAge = make(map[int][]int)
	for i := range baseSet {
		def := &baseSet[i]
		if _, dup := byID[def.ID]; dup {
			panic(fmt.Sprintf("cards: duplicate card id %d", def.ID))
		}
		byID[def.ID] = def
		byAge[def.Age] = append(byAge[def.Age], def.ID)
	}
	if len(byID) != TotalCards {
		panic(fmt.Sprintf("cards: expected %d cards, have %d", TotalCards, len(byID)))
	}
	for age := 1; age <= MaxAge; age++ {
		sort.Ints(byAge[age])
	}
}

// Get returns the definition for a card id, or nil if unknown.
func Get(id int) *models.CardDef {
	return byID[id]
}

// MustGet returns the definition for a card id and panics on unknown ids.
// Unknown ids inside the engine are invariant violations, not user errors.
func MustGet(id int) *models.CardDef {
	def := byID[id]
	if def == nil {
		panic(fmt.Sprintf("cards: unknown card id %d", id))
	}
	return def
}

// IDsForAge returns the card ids of an age in ascending id order.
func IDsForAge(age int) []int {
	ids := byAge[age]
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}

// HasIcon reports whether the card's four positions include the icon.
func HasIcon(id int, icon models.Icon) bool {
	def := byID[id]
	return def != nil && def.HasIcon(icon)
}
