package lobby

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndJoin(t *testing.T) {
	m := NewManager()
	g := m.CreateGame("evening game", "Alice", 99)

	assert.Equal(t, "Alice", g.Seats[0])
	assert.False(t, g.Full())

	seat, ok := m.JoinGame(g.ID, "Bob")
	require.True(t, ok)
	assert.Equal(t, 1, seat)
	assert.True(t, g.Full())
}

func TestJoinRejectsDuplicatesAndFullGames(t *testing.T) {
	m := NewManager()
	g := m.CreateGame("g", "Alice", 1)

	_, ok := m.JoinGame(g.ID, "Alice")
	assert.False(t, ok, "same player cannot take both seats")

	_, ok = m.JoinGame(g.ID, "Bob")
	require.True(t, ok)

	_, ok = m.JoinGame(g.ID, "Carol")
	assert.False(t, ok, "two-seat game cannot take a third player")
}

func TestLeaveReopensSeat(t *testing.T) {
	m := NewManager()
	g := m.CreateGame("g", "Alice", 1)
	_, ok := m.JoinGame(g.ID, "Bob")
	require.True(t, ok)

	require.True(t, m.LeaveGame(g.ID, "Bob"))
	assert.False(t, g.Full())

	seat, ok := m.JoinGame(g.ID, "Carol")
	require.True(t, ok)
	assert.Equal(t, 1, seat)
}

func TestStartedGameRefusesChanges(t *testing.T) {
	m := NewManager()
	g := m.CreateGame("g", "Alice", 1)
	_, ok := m.JoinGame(g.ID, "Bob")
	require.True(t, ok)

	m.MarkStarted(g.ID)
	assert.False(t, m.LeaveGame(g.ID, "Bob"))
	_, ok = m.JoinGame(g.ID, "Carol")
	assert.False(t, ok)
}
