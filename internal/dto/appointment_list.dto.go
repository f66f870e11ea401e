package dto

import "time"

type AppointmentListDTO struct {
	ID          uint      `json:"id"`
	Reference   string    `json:"reference"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	ServiceType string    `json:"service_type"`
	ClientName  string    `json:"client_name"`
}
