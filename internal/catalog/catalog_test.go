package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Living Room", "living-room"},
		{"  Sofas ", "sofas"},
		{"Master Bedroom Sets", "master-bedroom-sets"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}

func TestParseCollection(t *testing.T) {
	c, err := ParseCollection(" Furniture ")
	require.NoError(t, err)
	assert.Equal(t, Furniture, c)

	c, err = ParseCollection("interiors")
	require.NoError(t, err)
	assert.Equal(t, Interiors, c)

	_, err = ParseCollection("gallery")
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestValidateName(t *testing.T) {
	name, err := ValidateName("  Sofas ")
	require.NoError(t, err)
	assert.Equal(t, "Sofas", name)

	_, err = ValidateName("   ")
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestCollectionTitle(t *testing.T) {
	assert.Equal(t, "Furniture", Furniture.Title())
	assert.Equal(t, "Interiors", Interiors.Title())
}
