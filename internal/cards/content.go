package cards

import "github.com/lukev/innovation_server/internal/models"

// Icon slot order is top, left, middle, right; non marks the card image
// position, which never counts as an icon.
const (
	non   = models.IconNone
	leaf  = models.IconLeaf
	bulb  = models.IconLightbulb
	crown = models.IconCrown
	tower = models.IconCastle
	fact  = models.IconFactory
	clock = models.IconClock
)

const (
	yellow = models.ColorYellow
	red    = models.ColorRed
	purple = models.ColorPurple
	green  = models.ColorGreen
	blue   = models.ColorBlue
)

func card(id int, name string, age int, color models.Color, top, left, middle, right, dogmaIcon models.Icon, dogmas ...models.DogmaDef) models.CardDef {
	return models.CardDef{
		ID:        id,
		Name:      name,
		Age:       age,
		Color:     color,
		Positions: [models.NumPositions]models.Icon{top, left, middle, right},
		DogmaIcon: dogmaIcon,
		Dogmas:    dogmas,
	}
}

func nd(text string) models.DogmaDef { return models.DogmaDef{Text: text} }
func dd(text string) models.DogmaDef { return models.DogmaDef{Demand: true, Text: text} }

// baseSet is the 105-card base game. IDs run alphabetically within each age:
// 1-15 are age 1, then ten cards per age up to 105.
var baseSet = []models.CardDef{
	// Age 1
	card(1, "Agriculture", 1, yellow, non, leaf, leaf, leaf, leaf,
		nd("You may return a card from your hand. If you do, draw and score a card of value one higher than the card you returned.")),
	card(2, "Archery", 1, red, tower, bulb, non, tower, tower,
		dd("I demand you draw a 1, then transfer the highest card in your hand to my hand!")),
	card(3, "City States", 1, purple, non, crown, crown, tower, crown,
		dd("I demand you transfer a top card with a Castle from your board to my board if you have at least four Castles on your board! If you do, draw a 1!")),
	card(4, "Clothing", 1, green, non, crown, leaf, leaf, leaf,
		nd("Meld a card from your hand of different color from any card on your board."),
		nd("Draw and score a 1 for each color present on your board not present on any opponent's board.")),
	card(5, "Code of Laws", 1, purple, non, crown, crown, leaf, crown,
		nd("You may tuck a card from your hand of the same color as any card on your board. If you do, you may splay that color of your cards left.")),
	card(6, "Domestication", 1, yellow, tower, crown, non, tower, tower,
		nd("Meld the lowest card in your hand. Draw a 1.")),
	card(7, "Masonry", 1, yellow, tower, non, tower, tower, tower,
		nd("You may meld any number of cards from your hand, each with a Castle. If you melded four or more cards, claim the Monument achievement.")),
	card(8, "Metalworking", 1, red, tower, tower, non, tower, tower,
		nd("Draw and reveal a 1. If it has a Castle, score it and repeat this dogma effect. Otherwise, keep it.")),
	card(9, "Mysticism", 1, purple, non, tower, tower, tower, tower,
		nd("Draw a 1. If it is the same color as any card on your board, meld it and draw a 1.")),
	card(10, "Oars", 1, red, tower, crown, non, tower, tower,
		dd("I demand you transfer a card with a Crown from your hand to my score pile! If you do, draw a 1!"),
		nd("If no cards were transferred due to this demand, draw a 1.")),
	card(11, "Pottery", 1, blue, non, leaf, leaf, leaf, leaf,
		nd("You may return up to three cards from your hand. If you returned any cards, draw and score a card of value equal to the number of cards you returned."),
		nd("Draw a 1.")),
	card(12, "Sailing", 1, green, crown, crown, non, leaf, crown,
		nd("Draw and meld a 1.")),
	card(13, "The Wheel", 1, green, non, tower, tower, tower, tower,
		nd("Draw two 1s.")),
	card(14, "Tools", 1, blue, non, bulb, bulb, tower, bulb,
		nd("You may return three cards from your hand. If you do, draw and meld a 3."),
		nd("You may return a 3 from your hand. If you do, draw three 1s.")),
	card(15, "Writing", 1, blue, non, bulb, bulb, crown, bulb,
		nd("Draw two 2s.")),

	// Age 2
	card(16, "Calendar", 2, blue, non, leaf, leaf, bulb, leaf,
		nd("If you have more cards in your score pile than in your hand, draw two 3s.")),
	card(17, "Canal Building", 2, yellow, non, crown, leaf, crown, crown,
		nd("You may exchange all the highest cards in your hand with all the highest cards in your score pile.")),
	card(18, "Construction", 2, red, tower, non, tower, tower, tower,
		dd("I demand you transfer two cards from your hand to my hand, then draw a 2!"),
		nd("If you are the only player with five top cards, claim the Empire achievement.")),
	card(19, "Currency", 2, green, leaf, crown, non, crown, crown,
		nd("You may return any number of cards from your hand. If you do, draw and score a 2 for every different value of card you returned.")),
	card(20, "Fermenting", 2, yellow, leaf, leaf, non, tower, leaf,
		nd("Draw a 2 for every two Leaves on your board.")),
	card(21, "Mapmaking", 2, green, non, crown, crown, tower, crown,
		dd("I demand you transfer a 1 from your score pile, if it has any, to my score pile!"),
		nd("If any card was transferred due to the demand, draw and score a 1.")),
	card(22, "Mathematics", 2, blue, non, bulb, crown, bulb, bulb,
		nd("You may return a card from your hand. If you do, draw and meld a card of value one higher than the card you returned.")),
	card(23, "Monotheism", 2, purple, non, tower, tower, tower, tower,
		dd("I demand you transfer a top card on your board of a different color from any card on my board to my score pile! If you do, draw and tuck a 1!"),
		nd("Draw and tuck a 1.")),
	card(24, "Philosophy", 2, purple, non, bulb, bulb, bulb, bulb,
		nd("You may splay left any one color of your cards."),
		nd("You may score a card from your hand.")),
	card(25, "Road Building", 2, red, tower, tower, non, tower, tower,
		nd("Meld one or two cards from your hand. If you melded two, you may transfer your top red card to another player's board. If you do, transfer that player's top green card to your board.")),

	// Age 3
	card(26, "Alchemy", 3, blue, non, leaf, tower, tower, tower,
		nd("Draw and reveal a 4 for every three Castles on your board. If any of the drawn cards are red, return the cards drawn and all cards in your hand. Otherwise, keep them."),
		nd("Meld a card from your hand, then score a card from your hand.")),
	card(27, "Compass", 3, green, non, crown, crown, leaf, crown,
		dd("I demand you transfer a top non-green card with a Leaf from your board to my board, and then transfer a top card without a Leaf from my board to your board!")),
	card(28, "Education", 3, purple, bulb, bulb, non, bulb, bulb,
		nd("You may return the highest card from your score pile. If you do, draw a card of value two higher than the highest card remaining in your score pile.")),
	card(29, "Engineering", 3, red, tower, non, bulb, tower, tower,
		dd("I demand you transfer all top cards with a Castle from your board to my score pile!"),
		nd("You may splay your red cards left.")),
	card(30, "Feudalism", 3, purple, non, tower, leaf, tower, tower,
		dd("I demand you transfer a card with a Castle from your hand to my hand!"),
		nd("You may splay your yellow or purple cards left.")),
	card(31, "Machinery", 3, yellow, leaf, leaf, non, tower, leaf,
		dd("I demand you exchange all the cards in your hand with all the highest cards in my hand!"),
		nd("Score a card from your hand with a Castle. You may splay your red cards left.")),
	card(32, "Medicine", 3, yellow, crown, leaf, leaf, non, leaf,
		dd("I demand you exchange the highest card in your score pile with the lowest card in my score pile!")),
	card(33, "Optics", 3, red, crown, crown, crown, non, crown,
		nd("Draw and meld a 3. If it has a Crown, draw and score a 4. Otherwise, transfer a card from your score pile to the score pile of an opponent with fewer points than you.")),
	card(34, "Paper", 3, green, non, bulb, bulb, crown, bulb,
		nd("You may splay your green or blue cards left."),
		nd("Draw a 4 for every color you have splayed left.")),
	card(35, "Translation", 3, blue, non, crown, crown, crown, crown,
		nd("You may meld all the cards in your score pile. If you meld one, you must meld them all."),
		nd("If each top card on your board has a Crown, claim the World achievement.")),

	// Age 4
	card(36, "Anatomy", 4, yellow, leaf, leaf, leaf, non, leaf,
		dd("I demand you return a card from your score pile! If you do, return a top card of equal value from your board!")),
	card(37, "Colonialism", 4, red, non, fact, bulb, fact, fact,
		nd("Draw and tuck a 3. If it has a Crown, repeat this dogma effect.")),
	card(38, "Enterprise", 4, purple, non, crown, crown, crown, crown,
		dd("I demand you transfer a top non-purple card with a Crown from your board to my board! If you do, draw and meld a 4!"),
		nd("You may splay your green cards right.")),
	card(39, "Experimentation", 4, blue, non, bulb, bulb, bulb, bulb,
		nd("Draw and meld a 5.")),
	card(40, "Gunpowder", 4, red, non, fact, crown, fact, fact,
		dd("I demand you transfer a top card with a Castle from your board to my score pile!"),
		nd("If any card was transferred due to the demand, draw and score a 2.")),
	card(41, "Invention", 4, green, non, bulb, bulb, fact, bulb,
		nd("You may splay right any one color of your cards currently splayed left. If you do, draw and score a 4."),
		nd("If you have five colors splayed, each in any direction, claim the Wonder achievement.")),
	card(42, "Navigation", 4, green, non, crown, crown, crown, crown,
		dd("I demand you transfer a 2 or a 3 from your score pile, if it has any, to my score pile!")),
	card(43, "Perspective", 4, yellow, non, bulb, bulb, leaf, bulb,
		nd("You may return a card from your hand. If you do, score a card from your hand for every two Lightbulbs on your board.")),
	card(44, "Printing Press", 4, blue, non, bulb, bulb, crown, bulb,
		nd("You may return a card from your score pile. If you do, draw a card of value two higher than the top purple card on your board."),
		nd("You may splay your blue cards right.")),
	card(45, "Reformation", 4, purple, leaf, leaf, non, leaf, leaf,
		nd("You may tuck a card from your hand for every two Leaves on your board."),
		nd("You may splay your yellow or purple cards right.")),

	// Age 5
	card(46, "Astronomy", 5, purple, crown, bulb, bulb, non, bulb,
		nd("Draw and reveal a 6. If the card is green or blue, meld it and repeat this dogma effect."),
		nd("If all the non-purple top cards on your board are of value 6 or higher, claim the Universe achievement.")),
	card(47, "Banking", 5, green, fact, crown, non, crown, crown,
		dd("I demand you transfer a top non-green card with a Factory from your board to my board! If you do, draw and score a 5!"),
		nd("You may splay your green cards right.")),
	card(48, "Chemistry", 5, blue, fact, bulb, non, bulb, fact,
		nd("You may splay your blue cards right."),
		nd("Draw and score a card of value one higher than the highest top card on your board, then return a card from your score pile.")),
	card(49, "Coal", 5, red, fact, fact, fact, non, fact,
		nd("Draw and tuck a 5."),
		nd("You may splay your red cards right."),
		nd("You may score any one of your top cards. If you do, also score the card beneath it.")),
	card(50, "Measurement", 5, green, bulb, leaf, non, bulb, bulb,
		nd("You may return a card from your hand. If you do, splay any one color of your cards right, and draw a card of value equal to the number of cards of that color on your board.")),
	card(51, "Physics", 5, blue, fact, bulb, bulb, non, bulb,
		nd("Draw and reveal three 6s. If two or more of the drawn cards are the same color, return the drawn cards and all cards in your hand. Otherwise, keep them.")),
	card(52, "Societies", 5, purple, crown, non, bulb, crown, crown,
		dd("I demand you transfer a top card with a Lightbulb from your board to my board! If you do, draw a 5!")),
	card(53, "Statistics", 5, yellow, leaf, bulb, leaf, non, leaf,
		dd("I demand you draw the highest card in your score pile into your hand!"),
		nd("You may splay your yellow cards right.")),
	card(54, "Steam Engine", 5, yellow, non, fact, crown, fact, fact,
		nd("Draw and tuck two 4s, then score your bottom yellow card.")),
	card(55, "The Pirate Code", 5, red, crown, fact, crown, non, crown,
		dd("I demand you transfer two cards of value 4 or less from your score pile to my score pile!"),
		nd("If any cards were transferred due to the demand, score the lowest top card with a Crown from your board.")),

	// Age 6
	card(56, "Atomic Theory", 6, blue, bulb, bulb, non, bulb, bulb,
		nd("You may splay your blue cards right."),
		nd("Draw and meld a 7.")),
	card(57, "Canning", 6, yellow, non, fact, leaf, fact, leaf,
		nd("You may draw and tuck a 6. If you do, score all your top cards without a Factory."),
		nd("You may splay your yellow cards right.")),
	card(58, "Classification", 6, green, bulb, bulb, bulb, non, bulb,
		nd("Reveal the color of a card from your hand. Take into your hand all cards of that color from all other players' hands. Then meld all cards of that color from your hand.")),
	card(59, "Democracy", 6, purple, crown, bulb, bulb, non, bulb,
		nd("You may return any number of cards from your hand. If you have returned more cards than any other player due to Democracy, draw and score an 8.")),
	card(60, "Emancipation", 6, purple, fact, bulb, fact, non, fact,
		dd("I demand you transfer a card from your hand to my score pile! If you do, draw a 6!"),
		nd("You may splay your red or purple cards right.")),
	card(61, "Encyclopedia", 6, blue, non, crown, crown, crown, crown,
		nd("You may meld all the highest cards in your score pile. If you meld one of the highest, you must meld all of the highest.")),
	card(62, "Industrialization", 6, red, crown, fact, fact, non, fact,
		nd("Draw and tuck a 6 for every two Factories on your board."),
		nd("You may splay your red or purple cards right.")),
	card(63, "Machine Tools", 6, yellow, fact, fact, non, fact, fact,
		nd("Draw and score a card of value equal to the highest card in your score pile.")),
	card(64, "Metric System", 6, green, non, fact, crown, crown, crown,
		nd("If your green cards are splayed right, you may splay any one color of your cards right."),
		nd("You may splay your green cards right.")),
	card(65, "Vaccination", 6, yellow, leaf, fact, leaf, non, leaf,
		dd("I demand you return all the lowest cards in your score pile! If you returned any, draw and meld a 6!"),
		nd("If any card was returned as a result of the demand, draw and meld a 7.")),

	// Age 7
	card(66, "Bicycle", 7, green, crown, crown, clock, non, crown,
		nd("You may exchange all the cards in your hand with all the cards in your score pile. If you exchange one, you must exchange them all.")),
	card(67, "Combustion", 7, red, crown, crown, fact, non, crown,
		dd("I demand you transfer two cards from your score pile to my score pile!")),
	card(68, "Electricity", 7, green, bulb, fact, non, fact, fact,
		nd("Return all your top cards without a Factory, then draw an 8 for each card you returned.")),
	card(69, "Evolution", 7, blue, non, bulb, bulb, leaf, bulb,
		nd("You may choose to either draw and score an 8 and then return a card from your score pile, or draw a card of value one higher than the highest card in your score pile.")),
	card(70, "Explosives", 7, red, non, fact, fact, fact, fact,
		dd("I demand you transfer the three highest cards from your hand to my hand! If you transferred any, draw a 7!")),
	card(71, "Lighting", 7, purple, non, leaf, clock, leaf, leaf,
		nd("You may tuck up to three cards from your hand. If you do, draw and score a 7 for every different value of card you tucked.")),
	card(72, "Publications", 7, blue, non, bulb, clock, bulb, bulb,
		nd("You may rearrange the order of one color of cards on your board."),
		nd("You may splay your yellow or blue cards up.")),
	card(73, "Railroad", 7, purple, clock, fact, clock, non, clock,
		nd("Return all the cards from your hand, then draw three 6s."),
		nd("You may splay up any one color of your cards currently splayed right.")),
	card(74, "Refrigeration", 7, yellow, non, leaf, leaf, clock, leaf,
		dd("I demand you return half, rounded down, of the cards in your hand!"),
		nd("You may score a card from your hand.")),
	card(75, "Sanitation", 7, yellow, leaf, leaf, non, clock, leaf,
		dd("I demand you exchange the two highest cards in your hand with the two lowest cards in my hand!")),

	// Age 8
	card(76, "Antibiotics", 8, yellow, leaf, leaf, leaf, non, leaf,
		nd("You may return up to three cards from your hand. For every different value of card you returned, draw two 8s.")),
	card(77, "Corporations", 8, green, non, fact, fact, crown, fact,
		dd("I demand you transfer a top non-green card with a Factory from your board to my score pile! If you do, draw and meld an 8!"),
		nd("Draw and meld an 8.")),
	card(78, "Empiricism", 8, purple, bulb, bulb, bulb, non, bulb,
		nd("Choose two colors, then draw and reveal a 9. If it is either of the colors you chose, meld it and you may splay your cards of that color up."),
		nd("If you have twenty or more Lightbulbs on your board, you win.")),
	card(79, "Flight", 8, red, crown, non, clock, crown, crown,
		nd("If your red cards are splayed up, you may splay any one color of your cards up."),
		nd("You may splay your red cards up.")),
	card(80, "Mass Media", 8, green, bulb, non, clock, bulb, bulb,
		nd("You may return a card from your hand. If you do, choose a value, and return all cards of that value from all score piles."),
		nd("You may splay your purple cards up.")),
	card(81, "Mobility", 8, red, fact, clock, fact, non, fact,
		dd("I demand you transfer your two highest non-red top cards without a Factory from your board to my score pile! If you transferred any cards, draw an 8!")),
	card(82, "Quantum Theory", 8, blue, clock, clock, non, bulb, clock,
		nd("You may return up to two cards from your hand. If you returned two, draw a 10, then draw and score a 10.")),
	card(83, "Rocketry", 8, blue, clock, clock, non, clock, clock,
		nd("Return a card in any other player's score pile for every two Clocks on your board.")),
	card(84, "Skyscrapers", 8, yellow, non, fact, crown, crown, crown,
		dd("I demand you transfer a top non-yellow card with a Clock from your board to my board! If you do, score the card beneath it, and return all other cards from that pile!")),
	card(85, "Socialism", 8, purple, leaf, non, leaf, leaf, leaf,
		nd("You may tuck all the cards from your hand. If you tuck one, you must tuck them all. If you tucked at least one purple card, take all the lowest cards in every other player's hand into your hand.")),

	// Age 9
	card(86, "Collaboration", 9, green, non, crown, clock, crown, crown,
		dd("I demand you draw two 9s and reveal them! Transfer the one of my choice to my board!"),
		nd("If you have ten or more green cards on your board, you win.")),
	card(87, "Composites", 9, red, fact, fact, non, fact, fact,
		dd("I demand you transfer all but one card from your hand to my hand! Also, transfer the highest card from your score pile to my score pile!")),
	card(88, "Computers", 9, blue, clock, non, clock, fact, clock,
		nd("You may splay your red or green cards up."),
		nd("Draw and meld a 10, then execute its non-demand dogma effects for yourself only.")),
	card(89, "Ecology", 9, yellow, leaf, bulb, bulb, non, bulb,
		nd("You may return a card from your hand. If you do, score a card from your hand and draw two 10s.")),
	card(90, "Fission", 9, red, non, clock, clock, clock, clock,
		dd("I demand you draw a 10! If it is red, remove all hands, boards, and score piles from the game!"),
		nd("Return a top card other than Fission from any player's board.")),
	card(91, "Genetics", 9, blue, bulb, bulb, bulb, non, bulb,
		nd("Draw and meld a 10. Score all cards beneath it on your board.")),
	card(92, "Satellites", 9, green, non, clock, clock, clock, clock,
		nd("Return all the cards from your hand, then draw three 8s."),
		nd("You may splay your purple cards up."),
		nd("Meld a card from your hand, then execute each of its non-demand dogma effects for yourself only.")),
	card(93, "Services", 9, purple, leaf, leaf, leaf, non, leaf,
		dd("I demand you transfer all the highest cards from your score pile to my hand! If you transferred any cards, take a top card from my board without a Lightbulb into your hand!")),
	card(94, "Specialization", 9, purple, non, fact, leaf, fact, fact,
		nd("Reveal a card from your hand. Take into your hand the top card of that color from all other players' boards."),
		nd("You may splay your yellow or blue cards up.")),
	card(95, "Suburbia", 9, yellow, non, crown, leaf, leaf, leaf,
		nd("You may tuck any number of cards from your hand. Draw and score a 1 for each card you tucked.")),

	// Age 10
	card(96, "A.I.", 10, purple, bulb, bulb, clock, non, bulb,
		nd("Draw and score a 10."),
		nd("If Robotics and Software are top cards on any board, the single player with the lowest score wins.")),
	card(97, "Bioengineering", 10, blue, bulb, clock, clock, non, clock,
		nd("Transfer a top card with a Leaf from any other player's board to your score pile."),
		nd("If any player has fewer than three Leaves on their board, the single player with the most Leaves on their board wins.")),
	card(98, "Databases", 10, green, non, clock, clock, clock, clock,
		dd("I demand you return half, rounded up, of the cards in your score pile!")),
	card(99, "Globalization", 10, yellow, non, fact, fact, fact, fact,
		dd("I demand you return a top card with a Leaf from your board!"),
		nd("Draw and score a 6. If no player has more Leaves than Factories on their board, the single player with the most points wins.")),
	card(100, "Miniaturization", 10, red, non, bulb, clock, bulb, bulb,
		nd("You may return a card from your hand. If you returned a 10, draw a 10 for every different value of card in your score pile.")),
	card(101, "Robotics", 10, red, non, fact, clock, fact, fact,
		nd("Score your top green card. Draw and meld a 10, then execute its non-demand dogma effects for yourself only.")),
	card(102, "Self Service", 10, green, non, crown, crown, crown, crown,
		nd("Execute the non-demand dogma effects of any other top card on your board for yourself only."),
		nd("If you have more achievements than each other player, you win.")),
	card(103, "Software", 10, blue, clock, clock, clock, non, clock,
		nd("Draw and score a 10."),
		nd("Draw and meld two 10s, then execute the second card's non-demand dogma effects for yourself only.")),
	card(104, "Stem Cells", 10, yellow, non, leaf, leaf, leaf, leaf,
		nd("You may score all the cards from your hand. If you score one, you must score them all.")),
	card(105, "The Internet", 10, purple, non, clock, clock, bulb, clock,
		nd("You may splay your green cards up."),
		nd("Draw and score a 10."),
		nd("Draw and meld a 10 for every two Clocks on your board.")),
}
