package utils

import "testing"

func TestCalculateGrowth(t *testing.T) {
	cases := []struct {
		today, yesterday, want float64
	}{
		{0, 0, 0},
		{100, 0, 100},
		{150, 100, 50},
		{50, 100, -50},
	}
	for _, c := range cases {
		if got := CalculateGrowth(c.today, c.yesterday); got != c.want {
			t.Errorf("CalculateGrowth(%v, %v) = %v, want %v", c.today, c.yesterday, got, c.want)
		}
	}
}
