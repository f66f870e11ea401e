package appointment

import "time"

type AvailabilityInput struct {
	ProviderID  uint
	ServiceType string
	Date        time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
