package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drainDeck(t *testing.T, d *Deck) []Card {
	t.Helper()
	cards := make([]Card, 0, d.Size())
	for d.Size() > 0 {
		card, err := d.RemoveTop()
		require.NoError(t, err)
		cards = append(cards, card)
	}
	return cards
}

func TestNewDeckHas52UniqueCards(t *testing.T) {
	d := NewDeck()
	require.Equal(t, DeckSize, d.Size())

	cards := drainDeck(t, d)

	seen := make(map[Card]bool)
	perRank := make(map[Rank]int)
	for _, card := range cards {
		assert.False(t, seen[card], "duplicate card %s", card)
		seen[card] = true
		perRank[card.Rank]++
	}

	require.Len(t, seen, DeckSize)
	for rank := Two; rank <= Ace; rank++ {
		assert.Equal(t, 4, perRank[rank], "rank %s should appear once per suit", rank)
	}
}

func TestRemoveTopFailsOnEmptyDeck(t *testing.T) {
	d := NewDeck()
	drainDeck(t, d)

	_, err := d.RemoveTop()
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestRebuildRestoresFullDeck(t *testing.T) {
	d := NewDeck()
	for i := 0; i < 10; i++ {
		_, err := d.RemoveTop()
		require.NoError(t, err)
	}
	require.Equal(t, DeckSize-10, d.Size())

	d.Rebuild()
	require.Equal(t, DeckSize, d.Size())

	seen := make(map[Card]bool)
	for _, card := range drainDeck(t, d) {
		seen[card] = true
	}
	assert.Len(t, seen, DeckSize)
}

func TestShuffleOrderVaries(t *testing.T) {
	first := drainDeck(t, NewDeck())
	second := drainDeck(t, NewDeck())

	// Two independent shuffles agreeing on all 52 positions is
	// practically impossible.
	assert.NotEqual(t, first, second)
}
