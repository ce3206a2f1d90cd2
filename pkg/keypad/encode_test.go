package keypad

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresses(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"c", 3},
		{"bob", 7},
		{"s", 4},
		{"z", 4},
		{"hello", 2 + 2 + 3 + 3 + 3},
	}

	kp := Default()
	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			got, err := kp.Presses(tc.word)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPressesUnknownLetter(t *testing.T) {
	_, err := Default().Presses("a1b")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownLetter)

	var unknown *UnknownLetterError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, '1', unknown.Letter)
	assert.Equal(t, 1, unknown.Index)
}

func TestPressesIsCaseSensitive(t *testing.T) {
	_, err := Default().Presses("Bob")
	assert.ErrorIs(t, err, ErrUnknownLetter)
}

func TestNumber(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"", ""},
		{"bob", "262"},
		{"hello", "43556"},
		{"pqrs", "7777"},
		{"wxyz", "9999"},
	}

	kp := Default()
	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			got, err := kp.Number(tc.word)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Len(t, got, len(tc.word))
		})
	}
}

func TestNumberUnknownLetter(t *testing.T) {
	_, err := Default().Number("hi there")
	var unknown *UnknownLetterError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, ' ', unknown.Letter)
	assert.Equal(t, 2, unknown.Index)
}
