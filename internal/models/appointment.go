package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Referência pública usada em links de confirmação
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"size:500" json:"description"`

	ProviderID uint `gorm:"index" json:"provider_id"`
	Provider   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"provider"`

	ClientID uint   `gorm:"index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	CreatorID uint `json:"creator_id"`

	Attendees []User `gorm:"many2many:appointment_attendees;" json:"attendees"`

	ServiceType string `gorm:"size:30;not null" json:"service_type"`

	StartTime       time.Time `gorm:"index" json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	// end_time = start_time + duration_minutes; persistido para a
	// consulta de conflito
	EndTime time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'SCHEDULED'" json:"status"`

	// Pacote usado para reservar a sessão desta visita, se houver
	PackageID       *uint `json:"package_id"`
	SessionConsumed bool  `gorm:"default:false" json:"session_consumed"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
