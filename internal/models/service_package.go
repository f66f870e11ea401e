package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pacote pré-pago de sessões de um único tipo de serviço.
// sessions_remaining e last_session_date mudam somente pelo ledger.
type ServicePackage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"index;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	ServiceType string `gorm:"size:30;not null" json:"service_type"`

	TotalSessions     int `gorm:"not null" json:"total_sessions"`
	SessionsRemaining int `gorm:"not null" json:"sessions_remaining"`

	PurchaseDate time.Time `gorm:"not null" json:"purchase_date"`
	ExpiryDate   time.Time `gorm:"not null" json:"expiry_date"`

	PackageCost decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"package_cost"`

	// Dias mínimos entre usos consecutivos de sessão
	MinimumInterval int        `gorm:"default:1" json:"minimum_interval"`
	LastSessionDate *time.Time `json:"last_session_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
