package booking

type PriceCalculator interface {
	CalculatePrice(size ClassSize, duration Duration) Money
}

// DefaultPriceCalculator charges a per-person hourly rate that drops as the group grows.
type DefaultPriceCalculator struct {
	RatePerPersonHourCents map[ClassSize]int64
}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{
		RatePerPersonHourCents: map[ClassSize]int64{
			SizeSolo:    2500,
			SizeDuo:     2000,
			SizeTrio:    1500,
			SizeQuadrio: 1250,
		},
	}
}

func (pc *DefaultPriceCalculator) CalculatePrice(size ClassSize, duration Duration) Money {
	rate, ok := pc.RatePerPersonHourCents[size]
	if !ok {
		rate = pc.RatePerPersonHourCents[SizeSolo]
	}
	people := int64(size.Headcount())
	minutes := int64(duration.Minutes())
	return NewMoney(rate * people * minutes / 60)
}

// PerPerson is the share each student pays.
func PerPerson(total Money, size ClassSize) Money {
	return NewMoney(total.Cents() / int64(size.Headcount()))
}
