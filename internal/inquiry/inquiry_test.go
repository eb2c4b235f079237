package inquiry

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arambha/showroom/internal/catalog"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "", FormatPrice(0))
	assert.Equal(t, "₹950", FormatPrice(950))
	assert.Equal(t, "₹125,000", FormatPrice(125000))
}

func TestMessage(t *testing.T) {
	p := catalog.Product{Name: "Lounge Chair", Description: "Teak frame", ImageURL: "file:///c.jpg", Price: 42000}
	msg := Message(catalog.Furniture, p)

	assert.Contains(t, msg, "from your Furniture collection")
	assert.Contains(t, msg, "Product: Lounge Chair\n")
	assert.Contains(t, msg, "Description: Teak frame\n")
	assert.Contains(t, msg, "Price: ₹42,000\n")
	assert.Contains(t, msg, "Image: file:///c.jpg")
}

func TestMessage_OmitsMissingPrice(t *testing.T) {
	msg := Message(catalog.Interiors, catalog.Product{Name: "Modular Kitchen"})
	assert.NotContains(t, msg, "Price:")
	assert.Contains(t, msg, "Interiors collection")
}

func TestOrderLink(t *testing.T) {
	p := catalog.Product{Name: "Sofa & Ottoman"}
	link := OrderLink("+91 99999-99999", catalog.Furniture, p)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/919999999999", u.Path)
	assert.Equal(t, Message(catalog.Furniture, p), u.Query().Get("text"))
}
