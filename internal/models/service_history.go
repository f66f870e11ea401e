package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Registro imutável de atendimento concluído. Criado uma única vez por
// serviço; nunca alterado depois (append-only).
type ServiceHistory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"index;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	AppointmentID *uint `gorm:"index" json:"appointment_id"`

	ServiceType  string `gorm:"size:30;not null" json:"service_type"`
	ProviderName string `gorm:"size:100;not null" json:"provider_name"`

	DateOfService   time.Time `gorm:"not null" json:"date_of_service"`
	ServiceDuration int       `gorm:"not null" json:"service_duration"`

	ServiceCost decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"service_cost"`

	LoyaltyPointsEarned int `gorm:"default:0" json:"loyalty_points_earned"`
	PointsRedeemed      int `gorm:"default:0" json:"points_redeemed"`

	SatisfactionRating *int   `json:"satisfaction_rating"`
	Feedback           string `gorm:"size:1000" json:"feedback"`
	Notes              string `gorm:"size:500" json:"notes"`

	PackageID *uint `gorm:"index" json:"package_id"`

	CreatedAt time.Time `json:"created_at"`
}
