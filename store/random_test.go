package store

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountIDFormat(t *testing.T) {
	stuPattern := regexp.MustCompile(`^STU[1-9]\d{3}$`)
	admPattern := regexp.MustCompile(`^ADM[1-9]\d{3}$`)

	for i := 0; i < 200; i++ {
		require.Regexp(t, stuPattern, NewAccountID("STU"))
		require.Regexp(t, admPattern, NewAccountID("ADM"))
	}
}

func TestRandomAttendanceRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		got := RandomAttendance()
		assert.GreaterOrEqual(t, got, 60)
		assert.LessOrEqual(t, got, 100)
	}
}

func TestRandomGPATiers(t *testing.T) {
	inTier := func(g float64) bool {
		return (g >= 3.5 && g <= 4.0) || (g >= 3.0 && g <= 3.4) || (g >= 2.0 && g <= 2.9)
	}

	for i := 0; i < 200; i++ {
		got := RandomGPA()
		require.True(t, inTier(got), "gpa %v outside every tier", got)
		// one fractional digit
		require.InDelta(t, math.Round(got*10), got*10, 1e-9)
	}
}
