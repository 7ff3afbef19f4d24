package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRack(t *testing.T) {
	tests := []struct {
		in   string
		want Rack
	}{
		{"abc", Rack{'A', 'B', 'C'}},
		{"A?*", Rack{'A', Blank, Blank}},
		{" a, b ", Rack{'A', 'B'}},
		{"", nil},
	}
	for _, tt := range tests {
		got, err := ParseRack(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseRackErrors(t *testing.T) {
	_, err := ParseRack("AB1")
	require.ErrorIs(t, err, ErrInvalidLetter)

	_, err = ParseRack("ABCDEFGH")
	require.ErrorIs(t, err, ErrRackTooLarge)
}

func TestRackBlanks(t *testing.T) {
	assert.Equal(t, 2, Rack{'A', Blank, 'B', Blank}.Blanks())
	assert.Zero(t, Rack{'A'}.Blanks())
}

func TestRackWithout(t *testing.T) {
	r := Rack{'A', 'B', 'A'}

	out, ok := r.Without('A')
	assert.True(t, ok)
	assert.Equal(t, Rack{'B', 'A'}, out)
	assert.Equal(t, Rack{'A', 'B', 'A'}, r, "original rack must be untouched")

	out, ok = r.Without('Z')
	assert.False(t, ok)
	assert.Equal(t, r, out)
}

func TestRackRemove(t *testing.T) {
	r := Rack{'A', 'B', Blank, 'A'}

	out, err := r.Remove([]Letter{'A', Blank})
	require.NoError(t, err)
	assert.Equal(t, Rack{'B', 'A'}, out)

	_, err = r.Remove([]Letter{'B', 'B'})
	assert.ErrorIs(t, err, ErrTileNotInRack)
}

func TestRackCloneIsIndependent(t *testing.T) {
	r := Rack{'A', 'B'}
	c := r.Clone()
	c[0] = 'Z'
	assert.Equal(t, Letter('A'), r[0])
	assert.Nil(t, Rack(nil).Clone())
}

func TestRackJSON(t *testing.T) {
	data, err := json.Marshal(Rack{'É', Blank})
	require.NoError(t, err)
	assert.JSONEq(t, `"É?"`, string(data))

	var r Rack
	require.NoError(t, json.Unmarshal([]byte(`"ab?"`), &r))
	assert.Equal(t, Rack{'A', 'B', Blank}, r)
}

func TestLetterText(t *testing.T) {
	var l Letter
	require.NoError(t, l.UnmarshalText([]byte("e")))
	assert.Equal(t, Letter('E'), l)

	require.NoError(t, l.UnmarshalText([]byte("*")))
	assert.True(t, l.IsBlank())

	assert.ErrorIs(t, l.UnmarshalText([]byte("ab")), ErrInvalidLetter)
	assert.ErrorIs(t, l.UnmarshalText(nil), ErrInvalidLetter)
}

func TestLetterKeysJSONObjects(t *testing.T) {
	data, err := json.Marshal(map[Letter]int{'A': 2, Blank: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"A":2,"?":1}`, string(data))
}
