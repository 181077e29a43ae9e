package replay

import (
	"fmt"

	"github.com/lukev/innovation_server/internal/cards"
	"github.com/lukev/innovation_server/internal/game"
	"github.com/lukev/innovation_server/internal/models"
)

// ValidationIssue describes one discrepancy found during validation.
type ValidationIssue struct {
	EntryIndex int    `json:"entryIndex"`
	Detail     string `json:"detail"`
}

func (v ValidationIssue) String() string {
	return fmt.Sprintf("entry %d: %s", v.EntryIndex, v.Detail)
}

// ValidationReport summarizes a full replay validation run.
type ValidationReport struct {
	GameID       string            `json:"gameId"`
	EntriesRun   int               `json:"entriesRun"`
	Issues       []ValidationIssue `json:"issues"`
	FinalChecksum string           `json:"finalChecksum"`
}

// OK reports whether the replay validated cleanly.
func (r *ValidationReport) OK() bool {
	return len(r.Issues) == 0
}

// ValidateRecord replays a recorded game from its seed and checks the
// engine guarantees after every entry: card conservation, zone
// uniqueness, event-log monotonicity, and the phase/active-effect
// agreement. When expectChecksum is non-empty the final state must hash
// to it.
func ValidateRecord(record *game.GameRecord, expectChecksum string) (*ValidationReport, error) {
	sim, err := NewGameSimulator(record)
	if err != nil {
		return nil, err
	}

	report := &ValidationReport{GameID: record.GameID}
	for i := 0; i < len(record.Log); i++ {
		if err := sim.StepForward(); err != nil {
			report.Issues = append(report.Issues, ValidationIssue{EntryIndex: i, Detail: err.Error()})
			break
		}
		report.EntriesRun++
		for _, detail := range checkState(sim.GetState()) {
			report.Issues = append(report.Issues, ValidationIssue{EntryIndex: i, Detail: detail})
		}
	}

	sum, err := game.ComputeChecksum(sim.GetState())
	if err != nil {
		return nil, err
	}
	report.FinalChecksum = sum
	if expectChecksum != "" && sum != expectChecksum {
		report.Issues = append(report.Issues, ValidationIssue{
			EntryIndex: len(record.Log) - 1,
			Detail:     fmt.Sprintf("final checksum %s does not match expected %s", sum, expectChecksum),
		})
	}
	return report, nil
}

// checkState runs the universal invariants against one state.
func checkState(gs *game.GameState) []string {
	var issues []string

	seen := make(map[int]bool)
	total := 0
	add := func(ids []int, where string) {
		for _, id := range ids {
			if seen[id] {
				issues = append(issues, fmt.Sprintf("card %d appears twice (%s)", id, where))
				continue
			}
			seen[id] = true
			total++
		}
	}
	for age := range gs.Supply {
		add(gs.Supply[age], "supply")
	}
	for age := 1; age < len(gs.AvailableAchievements); age++ {
		if id := gs.AvailableAchievements[age]; id != 0 {
			add([]int{id}, "achievement pool")
		}
	}
	for _, p := range gs.Players {
		add(p.Hand, "hand")
		for c := range p.Stacks {
			add(p.Stacks[c].Cards, "board")
		}
		add(p.Score, "score")
		add(p.NormalAchievements, "claimed")
	}
	if total != cards.TotalCards {
		issues = append(issues, fmt.Sprintf("card conservation broken: %d cards accounted for", total))
	}

	if gs.ActionsRemaining < 0 || gs.ActionsRemaining > 2 {
		issues = append(issues, fmt.Sprintf("actions remaining out of bounds: %d", gs.ActionsRemaining))
	}

	for i := 1; i < len(gs.EventLog); i++ {
		if gs.EventLog[i].ID <= gs.EventLog[i-1].ID {
			issues = append(issues, fmt.Sprintf("event ids not strictly increasing at index %d", i))
			break
		}
	}

	for _, p := range gs.Players {
		for c := range p.Stacks {
			if len(p.Stacks[c].Cards) < 2 && p.Stacks[c].EffectiveSplay() != models.SplayNone {
				issues = append(issues, "short stack reports a splay")
			}
		}
	}

	if (gs.Phase == game.PhaseAwaitingChoice) != (gs.ActiveEffect != nil) {
		issues = append(issues, fmt.Sprintf("active effect presence disagrees with phase %v", gs.Phase))
	}

	return issues
}
