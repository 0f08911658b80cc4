package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerSlotOther(t *testing.T) {
	assert.Equal(t, Player2, Player1.Other())
	assert.Equal(t, Player1, Player2.Other())
	assert.Equal(t, "P1", Player1.String())
	assert.Equal(t, "P2", Player2.String())
}

func TestRackCounts(t *testing.T) {
	rack := Rack{}
	rack.Add('1', '=', '1', '+')

	assert.Equal(t, 4, rack.Len())
	assert.Equal(t, 2, rack.Count('1'))
	assert.Equal(t, 1, rack.EqualsCount())
	assert.Equal(t, 3, rack.OtherCount())
	assert.True(t, rack.Contains('+'))
	assert.False(t, rack.Contains('-'))
	assert.Equal(t, "1=1+", rack.String())
}

func TestRackRemovePreservesOrder(t *testing.T) {
	rack := Rack{Tiles: []rune("12=3")}

	require.True(t, rack.Remove('='))
	assert.Equal(t, "123", rack.String())
	assert.False(t, rack.Remove('='))
}

func TestRackContainsAllCountsDuplicates(t *testing.T) {
	rack := Rack{Tiles: []rune("1123")}

	assert.True(t, rack.ContainsAll([]rune("11")))
	assert.False(t, rack.ContainsAll([]rune("111")))
	assert.True(t, rack.ContainsAll(nil))
}

func TestRackRemoveAllIsAtomic(t *testing.T) {
	rack := Rack{Tiles: []rune("12+")}

	err := rack.RemoveAll([]rune("1-"))
	assert.ErrorIs(t, err, ErrTileNotInRack)
	assert.Equal(t, "12+", rack.String())

	require.NoError(t, rack.RemoveAll([]rune("+1")))
	assert.Equal(t, "2", rack.String())
}
