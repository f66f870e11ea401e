package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Classe dos advisory locks de agenda (primeiro argumento do par
// pg_advisory_xact_lock, para não colidir com outros usos do banco).
const scheduleLockClass = 4217

type SalonGormRepository struct {
	db *gorm.DB
}

func NewSalonGormRepository(db *gorm.DB) *SalonGormRepository {
	return &SalonGormRepository{db: db}
}

func (r *SalonGormRepository) isPostgres() bool {
	return r.db.Dialector.Name() == "postgres"
}

// --------------------------------------------------
// Transação
// --------------------------------------------------

func (r *SalonGormRepository) InTx(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&SalonGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// LockProviderSchedule fecha a janela de corrida check-then-insert:
// o lock é liberado no commit/rollback da transação corrente.
// Fora do postgres (sqlite nos testes) a transação já serializa.
func (r *SalonGormRepository) LockProviderSchedule(
	ctx context.Context,
	providerID uint,
) error {
	if !r.isPostgres() {
		return nil
	}
	return r.db.WithContext(ctx).
		Exec(
			"SELECT pg_advisory_xact_lock(?, ?)",
			scheduleLockClass,
			int64(providerID),
		).Error
}

func (r *SalonGormRepository) FirstConflict(
	ctx context.Context,
	providerID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) (*time.Time, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"provider_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
			providerID,
			string(domain.StatusCancelled),
			end,
			start,
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	if r.isPostgres() {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var ap models.Appointment
	err := q.Select("start_time").
		Order("start_time ASC").
		Limit(1).
		Take(&ap).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &ap.StartTime, nil
}

func (r *SalonGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

// GetAppointmentForProvider trava a linha quando a transação é de
// escrita: duas conclusões concorrentes do mesmo agendamento precisam
// se serializar aqui, senão ambas leem CONFIRMED e o histórico ganha
// duas linhas para um atendimento só.
func (r *SalonGormRepository) GetAppointmentForProvider(
	ctx context.Context,
	appointmentID uint,
	providerID uint,
) (*models.Appointment, error) {

	q := r.db.WithContext(ctx)
	if r.isPostgres() {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var ap models.Appointment
	if err := q.
		Where("id = ? AND provider_id = ?", appointmentID, providerID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *SalonGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Listagem / disponibilidade
// --------------------------------------------------

func (r *SalonGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	providerID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time", "status").
		Where(
			"provider_id = ? AND status <> ? AND start_time >= ? AND start_time < ?",
			providerID,
			string(domain.StatusCancelled),
			start,
			end,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *SalonGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	providerID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where(
			"provider_id = ? AND start_time >= ? AND start_time < ?",
			providerID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

// GetClient trava a linha no postgres: os contadores de fidelidade são
// lidos-modificados-gravados na transação de conclusão, e uma leitura
// sem lock perderia acúmulos concorrentes.
func (r *SalonGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	q := r.db.WithContext(ctx)
	if r.isPostgres() {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var client models.Client
	if err := q.First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *SalonGormRepository) GetOrCreateClient(
	ctx context.Context,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	client = models.Client{
		Name:  name,
		Phone: phone,
		Email: email,
	}

	// o índice único de telefone segura duplicatas entre duas primeiras
	// reservas concorrentes; quem perder a corrida busca o vencedor
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phone"}},
			DoNothing: true,
		}).
		Create(&client).Error; err != nil {
		return nil, err
	}

	if client.ID != 0 {
		return &client, nil
	}

	if err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

func (r *SalonGormRepository) UpdateClient(
	ctx context.Context,
	client *models.Client,
) error {
	return r.db.WithContext(ctx).Save(client).Error
}

// --------------------------------------------------
// Provider
// --------------------------------------------------

func (r *SalonGormRepository) GetProvider(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Service Package
// --------------------------------------------------

func (r *SalonGormRepository) CreatePackage(
	ctx context.Context,
	p *models.ServicePackage,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *SalonGormRepository) GetPackageForClient(
	ctx context.Context,
	packageID uint,
	clientID uint,
) (*models.ServicePackage, error) {

	q := r.db.WithContext(ctx)
	if r.isPostgres() {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var p models.ServicePackage
	if err := q.
		Where("id = ? AND client_id = ?", packageID, clientID).
		First(&p).Error; err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *SalonGormRepository) UpdatePackage(
	ctx context.Context,
	p *models.ServicePackage,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// --------------------------------------------------
// Service History
// --------------------------------------------------

func (r *SalonGormRepository) CreateHistory(
	ctx context.Context,
	h *models.ServiceHistory,
) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *SalonGormRepository) ListHistoryForClient(
	ctx context.Context,
	clientID uint,
) ([]models.ServiceHistory, error) {

	var hs []models.ServiceHistory
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("date_of_service ASC").
		Find(&hs).Error; err != nil {
		return nil, err
	}

	return hs, nil
}

func (r *SalonGormRepository) LoyaltyLedgerTotals(
	ctx context.Context,
	clientID uint,
) (int, int, error) {

	var totals struct {
		Earned   int
		Redeemed int
	}

	err := r.db.WithContext(ctx).
		Model(&models.ServiceHistory{}).
		Select(
			"COALESCE(SUM(loyalty_points_earned), 0) AS earned, " +
				"COALESCE(SUM(points_redeemed), 0) AS redeemed",
		).
		Where("client_id = ?", clientID).
		Scan(&totals).Error

	if err != nil {
		return 0, 0, err
	}

	return totals.Earned, totals.Redeemed, nil
}

// Compile-time check
var _ domain.Repository = (*SalonGormRepository)(nil)
