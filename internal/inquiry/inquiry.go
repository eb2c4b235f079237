// Package inquiry builds the WhatsApp order links shown next to products.
package inquiry

import (
	"net/url"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/arambha/showroom/internal/catalog"
)

// FormatPrice renders a rupee amount, or "" when the price is on request.
func FormatPrice(price int64) string {
	if price <= 0 {
		return ""
	}
	return "₹" + humanize.Comma(price)
}

// Message returns the order text sent for a product.
func Message(collection catalog.Collection, p catalog.Product) string {
	var b strings.Builder
	b.WriteString("Hello, I am interested in buying the following product from your ")
	b.WriteString(collection.Title())
	b.WriteString(" collection:\n\n")
	b.WriteString("Product: " + p.Name + "\n")
	b.WriteString("Description: " + p.Description + "\n")
	if price := FormatPrice(p.Price); price != "" {
		b.WriteString("Price: " + price + "\n")
	}
	b.WriteString("Image: " + p.ImageURL)
	return b.String()
}

// OrderLink returns a wa.me link that opens a chat with phone pre-filled
// with the order message. Non-digits are stripped from phone.
func OrderLink(phone string, collection catalog.Collection, p catalog.Product) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + digits,
		RawQuery: url.Values{"text": {Message(collection, p)}}.Encode(),
	}
	return u.String()
}
