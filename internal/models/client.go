package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cliente do salão. loyalty_points é o saldo vivo; o histórico de
// atendimentos permite reconstruí-lo (sum(earned) - sum(redeemed)).
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;not null;uniqueIndex" json:"phone"`
	Email string `gorm:"size:100" json:"email"`
	Notes string `gorm:"size:500" json:"notes"`

	PreferredService string `gorm:"size:30" json:"preferred_service"`

	Status string `gorm:"size:20;default:'ACTIVE'" json:"status"`

	LoyaltyPoints int             `gorm:"default:0" json:"loyalty_points"`
	TotalSpent    decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"total_spent"`
	VisitCount    int             `gorm:"default:0" json:"visit_count"`
	LastVisit     *time.Time      `json:"last_visit"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
