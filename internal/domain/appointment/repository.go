package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Repository é a fronteira de persistência dos casos de uso. A
// implementação gorm fica em internal/infra/repository.
type Repository interface {
	// InTx executa fn dentro de uma transação; o Repository recebido
	// por fn está amarrado à transação. Validação → conflito →
	// persistência e os pares ledger+histórico dependem disso.
	InTx(ctx context.Context, fn func(Repository) error) error

	// -------- Appointment (create / conflict) --------

	// LockProviderSchedule serializa escritores concorrentes na agenda
	// de um prestador dentro da transação corrente.
	LockProviderSchedule(ctx context.Context, providerID uint) error

	// FirstConflict devolve o início do primeiro agendamento
	// bloqueante (menor start_time) ou nil quando a janela está livre.
	FirstConflict(
		ctx context.Context,
		providerID uint,
		start time.Time,
		end time.Time,
		excludeID uint,
	) (*time.Time, error)

	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	// -------- Appointment (state change) --------

	GetAppointmentForProvider(
		ctx context.Context,
		appointmentID uint,
		providerID uint,
	) (*models.Appointment, error)

	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	// -------- Listagem / disponibilidade --------

	ListAppointmentsForDay(
		ctx context.Context,
		providerID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		providerID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Client --------

	GetClient(ctx context.Context, id uint) (*models.Client, error)

	GetOrCreateClient(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	UpdateClient(ctx context.Context, client *models.Client) error

	// -------- Provider --------

	GetProvider(ctx context.Context, id uint) (*models.User, error)

	// -------- Service Package --------

	CreatePackage(ctx context.Context, p *models.ServicePackage) error

	// GetPackageForClient carrega o pacote com lock de linha quando a
	// transação corrente é de escrita.
	GetPackageForClient(
		ctx context.Context,
		packageID uint,
		clientID uint,
	) (*models.ServicePackage, error)

	UpdatePackage(ctx context.Context, p *models.ServicePackage) error

	// -------- Service History --------

	CreateHistory(ctx context.Context, h *models.ServiceHistory) error

	ListHistoryForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.ServiceHistory, error)

	// LoyaltyLedgerTotals reconstrói o saldo pelo histórico:
	// sum(loyalty_points_earned) e sum(points_redeemed).
	LoyaltyLedgerTotals(
		ctx context.Context,
		clientID uint,
	) (earned int, redeemed int, err error)
}
