package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatusBands(t *testing.T) {
	cases := []struct {
		current, initial float64
		want             StockStatus
	}{
		{0, 60, StatusCritical},
		{6, 60, StatusCritical},  // exactly 10%
		{6.1, 60, StatusLow},     // just over the critical cut
		{15, 60, StatusLow},      // exactly 25%
		{30, 60, StatusMedium},   // exactly 50%
		{30.1, 60, StatusGood},   // just over
		{60, 60, StatusGood},
		{10, 0, StatusCritical},  // degenerate lot
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DeriveStatus(tc.current, tc.initial),
			"current=%.1f initial=%.1f", tc.current, tc.initial)
	}
}
