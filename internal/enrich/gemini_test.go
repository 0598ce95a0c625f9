package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBrandDomain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"bluebottlecoffee.com", "bluebottlecoffee.com"},
		{"  Bluebottlecoffee.com\n", "bluebottlecoffee.com"},
		{"www.sweetgreen.com", "sweetgreen.com"},
		{"The domain is shakeshack.com.", "shakeshack.com"},
		{"none", ""},
		{"None that I can find.", ""},
		{"", ""},
		{"no domain here", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseBrandDomain(tt.in), "input %q", tt.in)
	}
}

func TestParseSubtaskTitles(t *testing.T) {
	got := parseSubtaskTitles("1. Book flights\n2. Reserve hotel\n- Pack bags\n\n* Print itinerary")
	assert.Equal(t, []string{
		"Book flights", "Reserve hotel", "Pack bags", "Print itinerary",
	}, got)
}

func TestParseSubtaskTitles_CapsAtFive(t *testing.T) {
	got := parseSubtaskTitles("a\nb\nc\nd\ne\nf\ng")
	assert.Len(t, got, 5)
}

func TestParseSubtaskTitles_EmptyOutput(t *testing.T) {
	assert.Empty(t, parseSubtaskTitles("\n\n  \n"))
}
