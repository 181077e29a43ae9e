package game

import (
	"github.com/lukev/innovation_server/internal/cards"
	"github.com/lukev/innovation_server/internal/models"
)

// Card effects follow a continuation contract. Each invocation receives
// the execution context, the effect's opaque state from the previous step,
// and the answer when resuming from a choice. It returns one of:
//
//   - complete: the effect is done; the resolver moves on.
//   - continueWith: re-enter the same effect immediately with new state
//     (multi-step pipelines without artificial choices).
//   - needChoice: suspend; the game enters AwaitingChoice carrying the
//     effect state and the choice descriptor.
type effectFunc func(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error)

type effectState = map[string]any

type resultKind int

const (
	resultComplete resultKind = iota
	resultContinue
	resultNeedChoice
)

type effectResult struct {
	kind   resultKind
	next   effectState
	choice *models.Choice
}

func complete() *effectResult {
	return &effectResult{kind: resultComplete}
}

func continueWith(st effectState) *effectResult {
	return &effectResult{kind: resultContinue, next: st}
}

func needChoice(choice *models.Choice, st effectState) *effectResult {
	return &effectResult{kind: resultNeedChoice, choice: choice, next: st}
}

// effectContext is the frozen execution context of one dogma effect run.
// player is the executor of the current step (a sharing opponent executes
// before the activator); sharing and affected were computed once when the
// dogma action started and do not change mid-resolution.
type effectContext struct {
	gs        *GameState
	card      int
	player    int
	activator int
	dogmaIcon models.Icon
	sharing   []int
	affected  []int

	// demandChanged reports whether any earlier demand execution of this
	// dogma action changed state (consumed by "if any card was
	// transferred due to the demand" follow-ups).
	demandChanged bool

	source string
}

func (ctx *effectContext) me() *Player {
	return ctx.gs.GetPlayer(ctx.player)
}

func (ctx *effectContext) opponent() int {
	return Opponent(ctx.player)
}

// newChoice allocates a choice descriptor addressed to the executor.
func (ctx *effectContext) newChoice(kind models.ChoiceKind, prompt string) *models.Choice {
	ctx.gs.NextChoiceID++
	return &models.Choice{
		ID:       ctx.gs.NextChoiceID,
		PlayerID: ctx.player,
		Kind:     kind,
		Prompt:   prompt,
		Source:   ctx.card,
	}
}

// Effect state helpers. The state map survives JSON round trips, so
// numbers may come back as float64.

func stInt(st effectState, key string, def int) int {
	switch v := st[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return def
	}
}

func stBool(st effectState, key string) bool {
	v, _ := st[key].(bool)
	return v
}

func stString(st effectState, key string) string {
	v, _ := st[key].(string)
	return v
}

func stInts(st effectState, key string) []int {
	switch v := st[key].(type) {
	case []int:
		return v
	case []any:
		out := make([]int, 0, len(v))
		for _, e := range v {
			switch n := e.(type) {
			case int:
				out = append(out, n)
			case float64:
				out = append(out, int(n))
			}
		}
		return out
	default:
		return nil
	}
}

// effectRegistry maps card id to its dogma effect scripts, one per dogma
// definition. Built at init; never mutated afterwards.
var effectRegistry = map[int][]effectFunc{}

// initialStates seeds the first effect-state for cards whose scripts need
// more than an empty map to start. Everything else begins with {}.
var initialStates = map[int]map[int]effectState{}

func registerEffects(cardID int, fns ...effectFunc) {
	def := cards.Get(cardID)
	if def == nil {
		panic(invariant("registering effects for unknown card %d", cardID))
	}
	if len(fns) != len(def.Dogmas) {
		panic(invariant("card %d (%s) declares %d dogmas, registered %d scripts", cardID, def.Name, len(def.Dogmas), len(fns)))
	}
	effectRegistry[cardID] = fns
}

func registerInitialState(cardID, effectIndex int, st effectState) {
	if initialStates[cardID] == nil {
		initialStates[cardID] = map[int]effectState{}
	}
	initialStates[cardID][effectIndex] = st
}

func effectFor(cardID, effectIndex int) effectFunc {
	if fns, ok := effectRegistry[cardID]; ok && effectIndex < len(fns) {
		return fns[effectIndex]
	}
	return unimplementedEffect
}

func initialEffectState(cardID, effectIndex int) effectState {
	if per, ok := initialStates[cardID]; ok {
		if st, ok := per[effectIndex]; ok {
			return cloneJSONMap(st)
		}
	}
	return effectState{}
}

// unimplementedEffect stands in for cards without a script: the dogma
// action emits only dogma_activated and completes without state change.
func unimplementedEffect(ctx *effectContext, st effectState, ans *models.ChoiceAnswer) (*effectResult, error) {
	return complete(), nil
}

// UnimplementedCards lists the card ids that resolve through the
// unimplemented stand-in, for host diagnostics.
func UnimplementedCards() []int {
	var out []int
	for id := 1; id <= cards.TotalCards; id++ {
		if _, ok := effectRegistry[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// CardImplemented reports whether the card has a registered script.
func CardImplemented(id int) bool {
	_, ok := effectRegistry[id]
	return ok
}
