package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/creator-commerce/config"
)

func TestRenderWelcome(t *testing.T) {
	cfg := &config.Config{AppName: "Kiln", CompanyName: "Kiln Ltd"}
	subject, text, html, err := Render(Welcome, NewWelcomeData(cfg, "Ana", "ana@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Kiln, Ana", subject)
	assert.Contains(t, text, "ana@example.com")
	assert.Contains(t, html, "<strong>ana@example.com</strong>")
}

func TestRenderOrderPlaced(t *testing.T) {
	cfg := &config.Config{AppName: "Kiln"}
	data := NewOrderPlacedData(cfg, "", "ana@example.com", "ord-1", "$90.00", []string{"2 x Bowl"})
	subject, text, _, err := Render(OrderPlaced, data)
	require.NoError(t, err)
	assert.Equal(t, "Order ord-1 confirmed", subject)
	assert.Contains(t, text, "Hi there,")
	assert.Contains(t, text, "- 2 x Bowl")
	assert.Contains(t, text, "Total: $90.00")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, _, err := Render("missing", nil)
	assert.Error(t, err)
}

func TestNamesListsCompleteTemplates(t *testing.T) {
	assert.Equal(t, []string{OrderPlaced, Welcome}, Names())
	assert.True(t, Has(Welcome))
	assert.False(t, Has("missing"))
}
