package orderform

import (
	"time"

	"github.com/angelmondragon/arbuz-storefront/pkg/enums"
)

const (
	MinSubscriptionTermMonths     = 1
	MaxSubscriptionTermMonths     = 12
	DefaultSubscriptionTermMonths = MinSubscriptionTermMonths
)

// Draft is the unvalidated buffer behind the order form. Day and DeliveryPeriod
// stay empty until the customer picks one.
type Draft struct {
	PhoneNumber            string
	Address                string
	Day                    enums.Weekday
	DeliveryPeriod         enums.DeliveryPeriod
	SubscriptionTermMonths int
	SubscriptionStart      time.Time
}

// NewDraft returns a draft with defaults; the subscription starts on the day of now.
func NewDraft(now time.Time) Draft {
	var d Draft
	d.Reset(now)
	return d
}

// Reset restores every field to its default.
func (d *Draft) Reset(now time.Time) {
	*d = Draft{
		SubscriptionTermMonths: DefaultSubscriptionTermMonths,
		SubscriptionStart:      startOfDay(now),
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, t.Location())
}
