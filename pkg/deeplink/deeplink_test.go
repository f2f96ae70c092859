package deeplink_test

import (
	"testing"

	"linkgen-gcc-backend/pkg/deeplink"

	"github.com/stretchr/testify/assert"
)

func TestMailto(t *testing.T) {
	link := deeplink.Mailto("hiring-manager@company.com", "Application for NEOM", "Dear Hiring Manager,\n\nBest")

	assert.Contains(t, link, "mailto:hiring-manager@company.com")
	assert.Contains(t, link, "subject=Application%20for%20NEOM")
	assert.Contains(t, link, "body=Dear%20Hiring%20Manager")
	// mailto uses %20 for spaces, never '+'
	assert.NotContains(t, link, "+")
}

func TestMailtoEmptyParts(t *testing.T) {
	assert.Equal(t, "mailto:a@b.com", deeplink.Mailto("a@b.com", "", ""))
}

func TestWhatsApp(t *testing.T) {
	link := deeplink.WhatsApp("Salam, great role!")

	assert.Contains(t, link, "https://wa.me/?text=")
	assert.Contains(t, link, "Salam%2C%20great%20role%21")
	assert.NotContains(t, link, "+")
}
