package servicepackage

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Ledger de sessões
// ===============================

// CanUseSession diz se o pacote tem sessão disponível agora:
// precisa ter saldo, não estar expirado e ter decorrido o intervalo
// mínimo desde o último uso.
func CanUseSession(p *models.ServicePackage, now time.Time) bool {
	if p.SessionsRemaining <= 0 {
		return false
	}
	if now.After(p.ExpiryDate) {
		return false
	}
	if p.LastSessionDate != nil {
		minNext := p.LastSessionDate.AddDate(0, 0, p.MinimumInterval)
		if now.Before(minNext) {
			return false
		}
	}
	return true
}

// UseSession consome uma sessão: decrementa o saldo e marca
// last_session_date = now. Nunca muta estado quando indisponível.
func UseSession(p *models.ServicePackage, now time.Time) error {
	if p.SessionsRemaining <= 0 {
		return &PackageUnavailableError{Reason: "no sessions remaining"}
	}
	if now.After(p.ExpiryDate) {
		return &PackageUnavailableError{Reason: "package expired"}
	}
	if p.LastSessionDate != nil {
		minNext := p.LastSessionDate.AddDate(0, 0, p.MinimumInterval)
		if now.Before(minNext) {
			return &PackageUnavailableError{
				Reason: "minimum interval between sessions not elapsed",
			}
		}
	}

	p.SessionsRemaining--
	p.LastSessionDate = &now
	return nil
}

// RestoreSession devolve uma sessão consumida (cancelamento de
// agendamento). Saldo limitado a total_sessions; last_session_date
// não volta ao valor anterior.
func RestoreSession(p *models.ServicePackage) {
	if p.SessionsRemaining < p.TotalSessions {
		p.SessionsRemaining++
	}
}
