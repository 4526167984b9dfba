package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePositionKey(t *testing.T) {
	tests := []struct {
		input   string
		want    PositionKey
		wantErr bool
	}{
		{input: "1", want: "1"},
		{input: " 29 ", want: "29"},
		{input: "4.1", want: "4.1"},
		{input: "28.1", want: "28.1"},
		{input: "", wantErr: true},
		{input: "x", wantErr: true},
		{input: "4.", wantErr: true},
		{input: ".1", wantErr: true},
		{input: "-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePositionKey(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPositionKey_Base(t *testing.T) {
	assert.Equal(t, PositionKey("15"), PositionKey("15.1").Base())
	assert.Equal(t, PositionKey("7"), PositionKey("7").Base())
	assert.True(t, MonthKey.IsSecondary())
	assert.False(t, Key(12).IsSecondary())
}

func TestSortKeys(t *testing.T) {
	keys := []PositionKey{"10", "4.1", "2", "28.1", "4", "28", "2.1", "1"}
	SortKeys(keys)
	assert.Equal(t, []PositionKey{"1", "2", "2.1", "4", "4.1", "10", "28", "28.1"}, keys)
}

func TestPositions_Keys(t *testing.T) {
	p := Positions{"3": 1, "1": 5, "2.1": 7}
	assert.Equal(t, []PositionKey{"1", "2.1", "3"}, p.Keys())

	v, ok := p.Get("1")
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = p.Get("9")
	assert.False(t, ok)
}

func TestParseSpreadType(t *testing.T) {
	tests := map[string]SpreadType{
		"individual": SpreadIndividual,
		"Shadow":     SpreadShadow,
		"karma":      SpreadKarma,
		"karmic":     SpreadKarma,
	}
	for input, want := range tests {
		got, err := ParseSpreadType(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParseSpreadType("tarot")
	assert.Error(t, err)
}

func TestSpreadType_Next(t *testing.T) {
	assert.Equal(t, SpreadShadow, SpreadIndividual.Next())
	assert.Equal(t, SpreadKarma, SpreadShadow.Next())
	assert.Equal(t, SpreadIndividual, SpreadKarma.Next())
}
