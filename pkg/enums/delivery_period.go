package enums

import "fmt"

// DeliveryPeriod is one of the fixed delivery windows. The zero value means
// no window was picked.
type DeliveryPeriod string

const (
	DeliveryPeriodMorning DeliveryPeriod = "morning"
	DeliveryPeriodDay     DeliveryPeriod = "day"
	DeliveryPeriodEvening DeliveryPeriod = "evening"
)

var validDeliveryPeriods = []DeliveryPeriod{
	DeliveryPeriodMorning,
	DeliveryPeriodDay,
	DeliveryPeriodEvening,
}

var deliveryPeriodLabels = map[DeliveryPeriod]string{
	DeliveryPeriodMorning: "Утро 9:00-12:30",
	DeliveryPeriodDay:     "День 12:30-17:00",
	DeliveryPeriodEvening: "Вечер 17:00-23:00",
}

// DeliveryPeriods returns the windows in chronological order.
func DeliveryPeriods() []DeliveryPeriod {
	out := make([]DeliveryPeriod, len(validDeliveryPeriods))
	copy(out, validDeliveryPeriods)
	return out
}

// String implements fmt.Stringer.
func (p DeliveryPeriod) String() string {
	return string(p)
}

// Label is the storefront display name including the time range.
func (p DeliveryPeriod) Label() string {
	return deliveryPeriodLabels[p]
}

// IsValid reports whether the value is a known DeliveryPeriod.
func (p DeliveryPeriod) IsValid() bool {
	for _, candidate := range validDeliveryPeriods {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseDeliveryPeriod converts raw input into a DeliveryPeriod.
func ParseDeliveryPeriod(value string) (DeliveryPeriod, error) {
	for _, candidate := range validDeliveryPeriods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid delivery period %q", value)
}
