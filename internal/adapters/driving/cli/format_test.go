package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/zenith/internal/core/domain"
)

// captureOutput runs fn with the root command writing to a buffer.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	defer rootCmd.SetOut(nil)
	fn()
	return buf.String()
}

func mustInstant(t *testing.T, v string) time.Time {
	t.Helper()
	at, err := parseInstant(v)
	require.NoError(t, err)
	return at
}

func indexOf(s, sub string) int {
	return strings.Index(s, sub)
}

func TestMotion(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		want  string
	}{
		{"stationary or unknown", 0, ""},
		{"direct", 0.9856, "+0.986°/d"},
		{"retrograde", -0.25, "-0.250°/d R"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, motion(domain.BodyPosition{Speed: tt.speed}))
		})
	}
}

func TestIsTerminal_Buffer(t *testing.T) {
	out := captureOutput(t, func() {
		assert.False(t, isTerminal(rootCmd))
		header(rootCmd, "Plain")
		warn(rootCmd, "careful %d", 1)
		assert.Equal(t, "Label:", label(rootCmd, "Label:"))
	})

	assert.Equal(t, "Plain\ncareful 1\n", out)
}

func TestOutputJSON(t *testing.T) {
	out := captureOutput(t, func() {
		require.NoError(t, outputJSON(rootCmd, map[string]int{"house": 10}))
	})

	assert.Equal(t, "{\n  \"house\": 10\n}\n", out)
}

func TestPrintPositions(t *testing.T) {
	positions := []domain.BodyPosition{
		{Body: domain.BodySun, Longitude: 280.5, Speed: 1.019, House: 4, Precision: domain.PrecisionSeries},
		{Body: domain.BodyVesta, Precision: domain.PrecisionUnavailable, Note: "no elements"},
	}

	out := captureOutput(t, func() { printPositions(rootCmd, positions) })

	assert.Contains(t, out, "10°30' Capricorn")
	assert.Contains(t, out, "H4")
	assert.Contains(t, out, "+1.019°/d")
	assert.Contains(t, out, "unavailable")
	assert.Contains(t, out, "no elements")
}
