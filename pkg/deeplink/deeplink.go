// Package deeplink builds pre-filled outbound links for external apps.
// Both are fire-and-forget; there is no delivery confirmation.
package deeplink

import (
	"net/url"
	"strings"
)

// Mailto builds a mailto: link with subject and body pre-filled.
func Mailto(to, subject, body string) string {
	var b strings.Builder
	b.WriteString("mailto:")
	b.WriteString(url.PathEscape(to))
	params := url.Values{}
	if subject != "" {
		params.Set("subject", subject)
	}
	if body != "" {
		params.Set("body", body)
	}
	if encoded := params.Encode(); encoded != "" {
		b.WriteString("?")
		// mailto expects %20 for spaces, not '+'
		b.WriteString(strings.ReplaceAll(encoded, "+", "%20"))
	}
	return b.String()
}

// WhatsApp builds a wa.me link carrying the encoded message text.
func WhatsApp(text string) string {
	return "https://wa.me/?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
