package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	"routesync/internal/adapters/out/postgres/deliveryrepo"
	"routesync/internal/core/domain/model/delivery"
	"routesync/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate interface{}) {
	m.Called(id, aggregate)
}

// DeliveryRepositoryIntegrationTestSuite provides integration tests for
// DeliveryRepository using PostgreSQL containers.
type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
	tracker    *MockAggregateTracker
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&deliveryrepo.RequestDTO{}))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE delivery_requests").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db, suite.tracker)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()

	request, err := delivery.NewRequest(42, "Ana Reyes", "Av. Sucre 100", "C. Bolivar 9", time.Now().UTC())
	suite.Require().NoError(err)

	id, err := suite.repository.Add(ctx, request)
	suite.Require().NoError(err)
	suite.Positive(id)

	loaded, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(id, loaded.ID())
	suite.Equal(int64(42), loaded.DriverID())
	suite.Equal(delivery.StatusAssigned, loaded.Status())
	suite.Equal("Ruta - Ana Reyes", loaded.Notes())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGeneratedIDsAreSequential() {
	ctx := context.Background()

	first, err := delivery.NewRequest(1, "", "A", "B", time.Now().UTC())
	suite.Require().NoError(err)
	second, err := delivery.NewRequest(2, "", "C", "D", time.Now().UTC())
	suite.Require().NoError(err)

	firstID, err := suite.repository.Add(ctx, first)
	suite.Require().NoError(err)
	secondID, err := suite.repository.Add(ctx, second)
	suite.Require().NoError(err)

	suite.Equal(firstID+1, secondID)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), 9999)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAssignDriver() {
	ctx := context.Background()

	request, err := delivery.NewRequest(42, "", "Av. Sucre 100", "C. Bolivar 9", time.Now().UTC())
	suite.Require().NoError(err)

	id, err := suite.repository.Add(ctx, request)
	suite.Require().NoError(err)

	confirmedAt := time.Now().UTC()
	rows, err := suite.repository.AssignDriver(ctx, id, 77, confirmedAt)
	suite.Require().NoError(err)
	suite.Equal(int64(1), rows)

	loaded, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(int64(77), loaded.DriverID())
	suite.Equal(delivery.StatusAssigned, loaded.Status())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAssignDriver_MissingRecordIsNoOp() {
	rows, err := suite.repository.AssignDriver(context.Background(), 9999, 77, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Zero(rows)
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
