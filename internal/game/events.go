package game

import (
	"time"

	"github.com/lukev/innovation_server/internal/models"
)

// emit appends an event to the log with the next id. Event ids increase
// strictly; timestamps are wall-clock and excluded from checksums.
func (gs *GameState) emit(source string, typ models.EventType, data map[string]any) models.Event {
	gs.NextEventID++
	ev := models.Event{
		ID:        gs.NextEventID,
		Timestamp: time.Now(),
		Source:    source,
		Type:      typ,
		Data:      data,
	}
	gs.EventLog = append(gs.EventLog, ev)
	return ev
}

// eventsSince returns a copy of the log entries appended after mark.
func (gs *GameState) eventsSince(mark int) []models.Event {
	if mark >= len(gs.EventLog) {
		return nil
	}
	out := make([]models.Event, len(gs.EventLog)-mark)
	copy(out, gs.EventLog[mark:])
	return out
}
