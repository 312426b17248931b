package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrdinalSuffix(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0, "0th"},
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{2.9, "3rd"}, // rounds to the nearest grade
		{8.21, "8th"},
		{11.2, "11th"},
		{12, "12th"},
		{13, "13th"},
		{21, "21st"},
		{22.4, "22nd"},
		{103, "103rd"},
		{111, "111th"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, OrdinalSuffix(tc.score), "score %v", tc.score)
	}
}
