//go:build unit

package booking_test

import (
	"testing"

	"tutor-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPriceCalculator(t *testing.T) {
	calc := booking.NewDefaultPriceCalculator()

	tests := []struct {
		name     string
		size     booking.ClassSize
		duration booking.Duration
		want     int64
	}{
		{name: "solo one hour", size: booking.SizeSolo, duration: booking.DurationOneHour, want: 2500},
		{name: "solo ninety minutes", size: booking.SizeSolo, duration: booking.DurationNinetyMin, want: 3750},
		{name: "duo one hour", size: booking.SizeDuo, duration: booking.DurationOneHour, want: 4000},
		{name: "trio two hours", size: booking.SizeTrio, duration: booking.DurationTwoHours, want: 9000},
		{name: "quadrio two and a half hours", size: booking.SizeQuadrio, duration: booking.DurationTwoHalfHours, want: 12500},
		{name: "unknown size falls back to solo", size: booking.ClassSize("Octet"), duration: booking.DurationOneHour, want: 2500},
		{name: "unknown duration falls back to one hour", size: booking.SizeDuo, duration: booking.Duration("3 hours"), want: 4000},
		{name: "missing size and duration", size: "", duration: "", want: 2500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.CalculatePrice(tt.size, tt.duration)
			assert.Equal(t, tt.want, got.Cents())
			assert.True(t, got.IsPositive())
		})
	}
}

func TestPriceIsMonotonicInDuration(t *testing.T) {
	calc := booking.NewDefaultPriceCalculator()
	for _, size := range booking.ClassSizes() {
		var prev int64
		for _, d := range booking.Durations() {
			got := calc.CalculatePrice(size, d).Cents()
			assert.Greater(t, got, prev, "%s %s", size, d)
			prev = got
		}
	}
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "125.00", booking.NewMoney(12500).String())
	assert.Equal(t, "37.50", booking.NewMoney(3750).String())
	assert.Equal(t, "12.50", booking.PerPerson(booking.NewMoney(5000), booking.SizeQuadrio).String())
}
