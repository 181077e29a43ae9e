package game

import (
	"github.com/lukev/innovation_server/internal/cards"
	"github.com/lukev/innovation_server/internal/models"
)

// startDogma begins resolving a card's dogma effects for the activating
// player. Sharing and demand eligibility are computed once, from the
// card's dogma icon, and stay frozen for the whole action even if icon
// counts change mid-resolution.
func startDogma(gs *GameState, player, cardID int) error {
	def := cards.MustGet(cardID)
	count := CountIcons(gs, player, def.DogmaIcon)

	var sharing, affected []int
	// Opponents in clockwise order; with two players that is just the
	// other seat.
	opp := Opponent(player)
	if CountIcons(gs, opp, def.DogmaIcon) >= count {
		sharing = append(sharing, opp)
	} else {
		affected = append(affected, opp)
	}

	gs.emit(def.Name, models.EventDogmaActivated, map[string]any{
		"player":    player,
		"card":      cardID,
		"icon":      def.DogmaIcon.String(),
		"iconCount": count,
	})

	// Cards without a script resolve as observed in the source: the
	// activation is logged and nothing else happens.
	if !CardImplemented(cardID) {
		return nil
	}

	gs.ActiveEffect = &ActiveEffect{
		CardID:    cardID,
		Activator: player,
		Sharing:   sharing,
		Affected:  affected,
	}
	return driveDogma(gs, nil)
}

// driveDogma advances the active dogma action until it completes or
// suspends on a choice. Effects run in declared order; a demand resolves
// against each affected opponent, a non-demand runs for each sharing
// opponent first and the activator last. The answer is consumed by the
// first effect step and nil afterwards.
func driveDogma(gs *GameState, answer *models.ChoiceAnswer) error {
	ae := gs.ActiveEffect
	if ae == nil {
		return invariant("driveDogma without an active effect")
	}
	def := cards.MustGet(ae.CardID)

	for ae.EffectIndex < len(def.Dogmas) {
		dogma := def.Dogmas[ae.EffectIndex]

		if ae.Executors == nil {
			if dogma.Demand {
				ae.Executors = append([]int{}, ae.Affected...)
			} else {
				ae.Executors = append(append([]int{}, ae.Sharing...), ae.Activator)
			}
			ae.ExecIndex = 0
		}

		for ae.ExecIndex < len(ae.Executors) {
			executor := ae.Executors[ae.ExecIndex]

			if !ae.Started {
				if dogma.Demand {
					gs.emit(def.Name, models.EventDemandIssued, map[string]any{
						"fromPlayer": ae.Activator,
						"toPlayer":   executor,
						"card":       ae.CardID,
					})
				}
				// Change detection counts events from here on; the
				// demand_issued marker itself is not a change.
				ae.EventMark = len(gs.EventLog)
				ae.EffectState = initialEffectState(ae.CardID, ae.EffectIndex)
				ae.Started = true
			}

			ctx := &effectContext{
				gs:            gs,
				card:          ae.CardID,
				player:        executor,
				activator:     ae.Activator,
				dogmaIcon:     def.DogmaIcon,
				sharing:       ae.Sharing,
				affected:      ae.Affected,
				demandChanged: ae.DemandChanged,
				source:        def.Name,
			}

			fn := effectFor(ae.CardID, ae.EffectIndex)
			for {
				res, err := fn(ctx, ae.EffectState, answer)
				answer = nil
				if err != nil {
					return err
				}
				if res == nil {
					return invariant("card %d effect %d returned nil result", ae.CardID, ae.EffectIndex)
				}

				if gs.Phase == PhaseGameOver {
					// A draw ran past age 10 mid-effect; the game ended
					// on score and the rest of the dogma is moot.
					gs.ActiveEffect = nil
					return nil
				}

				switch res.kind {
				case resultNeedChoice:
					if res.choice == nil {
						return invariant("card %d effect %d suspended without a choice", ae.CardID, ae.EffectIndex)
					}
					ae.EffectState = res.next
					ae.Choice = res.choice
					gs.Phase = PhaseAwaitingChoice
					return nil
				case resultContinue:
					ae.EffectState = res.next
					continue
				case resultComplete:
				default:
					return invariant("card %d effect %d returned unknown result kind", ae.CardID, ae.EffectIndex)
				}
				break
			}

			changed := len(gs.EventLog) > ae.EventMark
			if dogma.Demand {
				if changed {
					ae.DemandChanged = true
				}
			} else if executor != ae.Activator && changed {
				ae.OpponentChanged = true
			}

			ae.ExecIndex++
			ae.Started = false
			ae.EffectState = nil
			ae.Choice = nil
		}

		ae.EffectIndex++
		ae.Executors = nil
	}

	// Sharing bonus: any state change by a sharing opponent earns the
	// activator a free draw at their highest top card age.
	if ae.OpponentChanged {
		gs.emit(def.Name, models.EventSharedEffect, map[string]any{
			"player": ae.Activator,
			"card":   ae.CardID,
		})
		gs.emit(def.Name, models.EventDrawBonus, map[string]any{
			"player": ae.Activator,
		})
		age := gs.GetPlayer(ae.Activator).HighestTopAge()
		if _, err := Draw(gs, ae.Activator, age, def.Name); err != nil {
			return err
		}
	}

	gs.ActiveEffect = nil
	if gs.Phase == PhaseAwaitingChoice {
		gs.Phase = PhaseAwaitingAction
	}
	return nil
}
