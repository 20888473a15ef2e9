package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariantKey(t *testing.T) {
	key, err := ParseVariantKey("BLACK", "MEDIUM")
	require.NoError(t, err)
	assert.Equal(t, ColorBlack, key.Color)
	assert.Equal(t, SizeMedium, key.Size)
}

func TestParseVariantKeyRejectsUnknownValues(t *testing.T) {
	_, err := ParseVariantKey("MAUVE", "MEDIUM")
	assert.ErrorContains(t, err, "invalid color")

	_, err = ParseVariantKey("BLACK", "TINY")
	assert.ErrorContains(t, err, "invalid size")

	// lowercase is not normalised; the wire format is the enum value
	_, err = ParseVariantKey("black", "MEDIUM")
	assert.Error(t, err)

	_, err = ParseVariantKey("", "")
	assert.Error(t, err)
}
