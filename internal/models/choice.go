package models

// ChoiceKind tags the shape of a pending choice.
type ChoiceKind string

const (
	ChoiceSelectCards  ChoiceKind = "select_cards"
	ChoiceSelectPile   ChoiceKind = "select_pile"
	ChoiceOrderCards   ChoiceKind = "order_cards"
	ChoiceYesNo        ChoiceKind = "yes_no"
	ChoiceSelectPlayer ChoiceKind = "select_player"
)

// Choice is a pending decision the host must answer before the dogma
// resolver can continue. Only the fields matching Kind are set.
type Choice struct {
	ID       int        `json:"id"`
	PlayerID int        `json:"playerId"`
	Kind     ChoiceKind `json:"kind"`
	Prompt   string     `json:"prompt"`
	Source   int        `json:"source"` // card id whose dogma is asking

	// select_cards
	FromZone Zone  `json:"fromZone,omitempty"`
	Cards    []int `json:"cards,omitempty"` // candidate card ids
	MinCards int   `json:"minCards,omitempty"`
	MaxCards int   `json:"maxCards,omitempty"`

	// select_pile
	AvailableColors []Color `json:"availableColors,omitempty"`
	Operation       string  `json:"operation,omitempty"`

	// order_cards
	OrderCards  []int  `json:"orderCards,omitempty"`
	Instruction string `json:"instruction,omitempty"`

	// yes_no
	YesText string `json:"yesText,omitempty"`
	NoText  string `json:"noText,omitempty"`

	// select_player
	AvailablePlayers []int `json:"availablePlayers,omitempty"`
}

// ChoiceAnswer answers a pending choice. Only the field matching the
// choice kind is consulted.
type ChoiceAnswer struct {
	ChoiceID int `json:"choiceId"`
	PlayerID int `json:"playerId"`

	Cards  []int  `json:"cards,omitempty"`
	Color  *Color `json:"color,omitempty"`
	Order  []int  `json:"order,omitempty"`
	Yes    *bool  `json:"yes,omitempty"`
	Player *int   `json:"player,omitempty"`
}
