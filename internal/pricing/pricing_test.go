package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name        string
		hourlyRate  float64
		sessionType string
		minutes     int
		want        float64
	}{
		{"video full hour", 25, TypeVideo, 60, 25},
		{"in-person full hour adds surcharge", 25, TypeInPerson, 60, 35},
		{"video half hour", 28, TypeVideo, 30, 14},
		{"in-person ninety minutes", 22, TypeInPerson, 90, 48},
		{"zero minutes", 25, TypeVideo, 0, 0},
		{"rounds to two decimals", 25, TypeVideo, 50, 20.83},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Price(tt.hourlyRate, tt.sessionType, tt.minutes))
		})
	}
}

func TestPriceInPersonAlwaysCostsMore(t *testing.T) {
	for _, minutes := range []int{15, 30, 60, 90, 120} {
		video := Price(20, TypeVideo, minutes)
		inPerson := Price(20, TypeInPerson, minutes)
		assert.Greater(t, inPerson, video, "minutes=%d", minutes)
	}
}
