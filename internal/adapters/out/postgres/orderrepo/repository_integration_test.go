package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shiptrack/internal/adapters/out/postgres/orderrepo"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using PostgreSQL containers to verify persistence and
// optimistic-lock behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	route, err := kernel.NewRoute("Mumbai", "Delhi")
	suite.Require().NoError(err)

	now := time.Now().UTC().Truncate(time.Microsecond)
	details := order.ParcelDetails{
		PackageType:          "box",
		ContentDescription:   "books",
		PaymentStatus:        "unpaid",
		PickupDate:           now.Add(24 * time.Hour),
		ExpectedDeliveryDate: now.Add(96 * time.Hour),
	}

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		"ST-"+kernel.NewUUID().String()[:10], "AWB-"+kernel.NewUUID().String()[:10],
		route, details, now)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder(testOrder *order.Order) {
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), testOrder))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.addOrder(testOrder)

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(loaded.ID().IsEqual(testOrder.ID()))
	suite.True(loaded.CustomerID().IsEqual(testOrder.CustomerID()))
	suite.Equal(testOrder.TrackingNumber(), loaded.TrackingNumber())
	suite.Equal(testOrder.AWBNumber(), loaded.AWBNumber())
	suite.Equal("Mumbai", loaded.Route().Origin())
	suite.Equal("Delhi", loaded.Route().Destination())
	suite.Equal(order.StatusPending, loaded.Status())
	suite.Equal(1, loaded.Version())
	suite.Nil(loaded.DeliveryAgent())
	suite.Equal(testOrder.Details().PackageType, loaded.Details().PackageType)
	suite.WithinDuration(testOrder.CreatedAt(), loaded.CreatedAt(), time.Millisecond)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_TrackingAndAWB() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.addOrder(testOrder)

	byTracking, err := suite.repository.GetByNumber(ctx, testOrder.TrackingNumber())
	suite.Require().NoError(err)
	suite.True(byTracking.ID().IsEqual(testOrder.ID()))

	byAWB, err := suite.repository.GetByNumber(ctx, testOrder.AWBNumber())
	suite.Require().NoError(err)
	suite.True(byAWB.ID().IsEqual(testOrder.ID()))

	_, err = suite.repository.GetByNumber(ctx, "ST-DOESNOTEXIST")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsTransitionAndBumpsVersion() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.addOrder(testOrder)

	record, err := order.NewTransitionRecord(
		testOrder.ID(), testOrder.Status(), order.StatusPickedUp,
		"Mumbai - Andheri East", "Collected", kernel.NewUUID(),
		time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.ApplyTransition(record))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusPickedUp, loaded.Status())
	suite.Equal(2, loaded.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersionConflict() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.addOrder(testOrder)

	// Two copies of the same row race; the second write loses.
	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.AssignAgent(kernel.NewUUID(), time.Now().UTC()))
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.AssignAgent(kernel.NewUUID(), time.Now().UTC()))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConcurrencyConflict)

	// The winner's write is intact.
	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.DeliveryAgent())
	suite.True(loaded.DeliveryAgent().IsEqual(*first.DeliveryAgent()))
	suite.Equal(2, loaded.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPendingOlderThan() {
	ctx := context.Background()

	old := suite.createTestOrder()
	suite.addOrder(old)

	fresh := suite.createTestOrder()
	suite.addOrder(fresh)

	// Backdate one order past the cutoff.
	cutoff := time.Now().UTC().Add(-24 * time.Hour)
	backdated := cutoff.Add(-time.Hour)
	suite.Require().NoError(suite.db.Exec(
		"UPDATE orders SET created_at = ? WHERE id = ?",
		backdated, old.ID().Bytes()).Error)

	delayed, err := suite.repository.GetAllPendingOlderThan(ctx, cutoff)
	suite.Require().NoError(err)
	suite.Require().Len(delayed, 1)
	suite.True(delayed[0].ID().IsEqual(old.ID()))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
