package store

import (
	"math"
	"math/rand"
	"strconv"
)

// NewAccountID returns the role tag followed by a 4-digit number. No
// uniqueness check is made here; collisions surface as a primary-key
// violation at insert time and are retried by the caller.
func NewAccountID(tag string) string {
	return tag + strconv.Itoa(1000+rand.Intn(9000))
}

// RandomAttendance draws a percentage in [60,100].
func RandomAttendance() int {
	return 60 + rand.Intn(41)
}

// RandomGPA draws from three tiers: 33% in [3.5,4.0], 33% in [3.0,3.4],
// 34% in [2.0,2.9], rounded to one decimal.
func RandomGPA() float64 {
	var gpa float64
	switch chance := rand.Float64(); {
	case chance < 0.33:
		gpa = 3.5 + rand.Float64()*0.5
	case chance < 0.66:
		gpa = 3.0 + rand.Float64()*0.4
	default:
		gpa = 2.0 + rand.Float64()*0.9
	}
	return math.Round(gpa*10) / 10
}
