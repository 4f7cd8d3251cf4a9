package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/adapters/out/postgres/courierrepo"
	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/adapters/out/postgres/trackingrepo"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/courier"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transactional behavior that only
// shows up against a real database: row-level locking during assignment and
// atomicity of cross-aggregate commits.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&parcelrepo.ParcelDTO{}, &courierrepo.CourierDTO{}, &trackingrepo.EventDTO{}))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE parcels, couriers, tracking_events").Error)
}

// Two transactions race for the same courier. The row lock taken by
// GetForUpdate serializes them; the loser re-reads the assigned status and
// its whole transaction rolls back, parcel update and ledger entry included.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentAssignments_OnlyOneWins() {
	ctx := context.Background()

	contested, err := courier.NewCourier(kernel.NewUUID(), "bike", "AA-111")
	suite.Require().NoError(err)
	suite.Require().NoError(
		courierrepo.NewGormCourierRepository(suite.db, noopTracker{}).Add(ctx, contested))

	parcelRepo := parcelrepo.NewGormParcelRepository(suite.db, noopTracker{})
	first := suite.seedPendingParcel(ctx, parcelRepo)
	second := suite.seedPendingParcel(ctx, parcelRepo)

	handler := commands.NewAssignCourierCommandHandler(uowFactoryAdapter{suite.factory})

	results := make([]error, 2)
	var wg sync.WaitGroup
	for i, target := range []*parcel.Parcel{first, second} {
		wg.Add(1)
		go func(slot int, p *parcel.Parcel) {
			defer wg.Done()
			cmd, cmdErr := commands.NewAssignCourierCommand(p.ID(), contested.ID())
			if cmdErr != nil {
				results[slot] = cmdErr
				return
			}
			results[slot] = handler.Handle(ctx, cmd)
		}(i, target)
	}
	wg.Wait()

	var wins, losses int
	for _, result := range results {
		switch {
		case result == nil:
			wins++
		case errors.Is(result, courier.ErrCourierNotAvailable):
			losses++
		default:
			suite.Require().NoError(result)
		}
	}
	suite.Equal(1, wins)
	suite.Equal(1, losses)

	// Courier is out of the available pool exactly once
	stored, err := courierrepo.NewGormCourierRepository(suite.db, noopTracker{}).
		Get(ctx, contested.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.StatusAssigned, stored.Status())

	var holders int64
	suite.Require().NoError(suite.db.Model(&parcelrepo.ParcelDTO{}).
		Where("courier_id = ?", contested.ID().Bytes()).Count(&holders).Error)
	suite.Equal(int64(1), holders)

	// The losing transaction left no ledger entry behind
	var ledgerEntries int64
	suite.Require().NoError(
		suite.db.Model(&trackingrepo.EventDTO{}).Count(&ledgerEntries).Error)
	suite.Equal(int64(1), ledgerEntries)
}

func (suite *UnitOfWorkIntegrationTestSuite) seedPendingParcel(
	ctx context.Context, repo *parcelrepo.GormParcelRepository,
) *parcel.Parcel {
	now := time.Now()
	seeded, err := parcel.NewParcel(
		kernel.NewUUID(),
		kernel.NewRandomTrackingNumber(),
		"sender-1", "receiver-1", "books",
		2.5, "30x20x10",
		"1 Origin St", "9 Destination Ave",
		now, now.Add(72*time.Hour),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(ctx, seeded))
	return seeded
}

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, interface{}) {}

type uowFactoryAdapter struct {
	factory *postgres.GormUnitOfWorkFactory
}

func (a uowFactoryAdapter) Create() commands.UoW {
	return a.factory.Create()
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
