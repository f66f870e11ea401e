package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/catalog"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/loyalty"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Ambiente de teste com sqlite em memória. As regras padrão valem
// (expediente 9h-19h, antecedência de 2h), então os cenários usam datas
// futuras fixas em dias úteis.
type testEnv struct {
	db *gorm.DB

	create     *CreateAppointment
	transition *TransitionAppointment
	complete   *CompleteService
	reschedule *Reschedule
	avail      *GetAvailability

	provider models.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// uma conexão só para o :memory: não sumir entre queries
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	provider := models.User{
		Name:  "Ana",
		Email: "ana@example.com",
		Role:  "provider",
	}
	require.NoError(t, db.Create(&provider).Error)

	repo := infraRepo.NewSalonGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))
	availCache := cache.Noop{}
	cat := catalog.Default()
	rules := domain.DefaultRules()
	thresholds := loyalty.DefaultThresholds()

	const tz = "UTC"
	const txTimeout = 5 * time.Second

	complete := NewCompleteService(repo, dispatcher, availCache, cat, thresholds, tz, txTimeout)

	return &testEnv{
		db:         db,
		create:     NewCreateAppointment(repo, dispatcher, availCache, cat, rules, tz, txTimeout),
		transition: NewTransitionAppointment(repo, dispatcher, availCache, complete, tz, txTimeout),
		complete:   complete,
		reschedule: NewReschedule(repo, dispatcher, availCache, cat, rules, tz, txTimeout),
		avail:      NewGetAvailability(repo, availCache, cat, rules),
		provider:   provider,
	}
}

// quarta-feira
const testDay = "2030-06-12"

func (e *testEnv) bookInput(hhmm string) CreateAppointmentInput {
	return CreateAppointmentInput{
		ProviderID:  e.provider.ID,
		CreatorID:   e.provider.ID,
		Title:       "Corte",
		ClientName:  "Bruna",
		ClientPhone: "11999990000",
		ClientEmail: "bruna@example.com",
		ServiceType: "haircut",
		Date:        testDay,
		Time:        hhmm,
	}
}

func (e *testEnv) seedClient(t *testing.T, phone string) models.Client {
	t.Helper()

	client := models.Client{
		Name:  "Bruna",
		Phone: phone,
		Email: "bruna@example.com",
	}
	require.NoError(t, e.db.Create(&client).Error)
	return client
}

func (e *testEnv) seedPackage(t *testing.T, clientID uint, serviceType string) models.ServicePackage {
	t.Helper()

	pkg := models.ServicePackage{
		ClientID:          clientID,
		ServiceType:       serviceType,
		TotalSessions:     10,
		SessionsRemaining: 10,
		PurchaseDate:      time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC),
		ExpiryDate:        time.Date(2031, 5, 1, 0, 0, 0, 0, time.UTC),
		MinimumInterval:   1,
	}
	require.NoError(t, e.db.Create(&pkg).Error)
	return pkg
}
