package commitment

import (
	"testing"

	"github.com/colorfulnotion/commitreveal/commiterrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	for in, want := range map[string]Choice{
		"0":      Heads,
		"1":      Tails,
		"2":      2,
		"255":    255,
		"heads":  Heads,
		"TAILS":  Tails,
		" 1 ":    Tails,
		"Heads ": Heads,
	} {
		got, err := ParseChoice(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "256", "-1", "edge", "0x01"} {
		_, err := ParseChoice(in)
		assert.ErrorIs(t, err, commiterrors.ErrInvalidChoice, in)
	}
}

func TestChoiceNames(t *testing.T) {
	assert.Equal(t, "HEADS", Heads.Name())
	assert.Equal(t, "TAILS", Tails.Name())
	assert.Equal(t, "CHOICE_7", Choice(7).Name())
	assert.True(t, Tails.IsCoinSide())
	assert.False(t, Choice(2).IsCoinSide())
	assert.Equal(t, "255", Choice(255).String())
}

func TestParseNonce(t *testing.T) {
	n, err := ParseNonce("0x000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	require.NoError(t, err)
	assert.Equal(t, seqNonce(), n)

	n, err = ParseNonce("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	require.NoError(t, err)
	assert.Equal(t, seqNonce(), n)

	_, err = ParseNonce("0x0001")
	assert.ErrorIs(t, err, commiterrors.ErrInvalidNonce)
	assert.Contains(t, err.Error(), "got 2 bytes, want 32")
	assert.Equal(t, "C3", commiterrors.GetErrorCode(err))

	var back Nonce
	text, err := seqNonce().MarshalText()
	require.NoError(t, err)
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, seqNonce(), back)
}
