package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/arambha/showroom/internal/ui/testutil"
)

func TestApplyBoldGradient_KeepsText(t *testing.T) {
	out := ApplyBoldGradient("Arambha", T().Primary, T().Secondary)
	assert.Equal(t, "Arambha", testutil.StripANSI(out))
	assert.Empty(t, ApplyBoldGradient("", T().Primary, T().Secondary))
}

func TestBlendColors_Endpoints(t *testing.T) {
	colors := blendColors(5, lipgloss.Color("#000000"), lipgloss.Color("#ffffff"))
	assert.Len(t, colors, 5)
	assert.Equal(t, "#000000", colors[0].Hex())
	assert.Equal(t, "#ffffff", colors[4].Hex())
}

func TestBlendColors_AnsiFallsBackToGray(t *testing.T) {
	colors := blendColors(1, lipgloss.Color("212"), lipgloss.Color("240"))
	assert.Equal(t, "#808080", colors[0].Hex())
}
