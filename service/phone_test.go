package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "bare digits", input: "5551234567", want: "5551234567"},
		{name: "formatted", input: "(555) 123-4567", want: "5551234567"},
		{name: "dotted", input: "555.123.4567", want: "5551234567"},
		{name: "country code", input: "+1 555 123 4567", want: "5551234567"},
		{name: "eleven digits leading one", input: "15551234567", want: "5551234567"},
		{name: "too short", input: "555-1234", wantErr: true},
		{name: "too long", input: "555123456789", wantErr: true},
		{name: "eleven digits no leading one", input: "25551234567", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "letters only", input: "call me", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPhone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(555) 123-4567", FormatPhone("5551234567"))

	// Anything not normalized passes through untouched.
	assert.Equal(t, "555", FormatPhone("555"))
}

func TestPhoneRoundTrip(t *testing.T) {
	// Formatting a normalized number and normalizing it again is stable.
	normalized, err := NormalizePhone("(212) 555-0177")
	require.NoError(t, err)

	again, err := NormalizePhone(FormatPhone(normalized))
	require.NoError(t, err)
	assert.Equal(t, normalized, again)
}
