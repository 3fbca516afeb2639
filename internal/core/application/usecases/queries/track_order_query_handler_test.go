package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shiptrack/internal/adapters/out/postgres/historyrepo"
	"shiptrack/internal/adapters/out/postgres/orderrepo"
	"shiptrack/internal/adapters/out/postgres/userrepo"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"
)

type TrackOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.TrackOrderQueryHandler
}

func (suite *TrackOrderQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{}, &historyrepo.HistoryEntryDTO{}, &userrepo.UserDTO{}))
	suite.handler = queries.NewTrackOrderQueryHandler(db)
}

func (suite *TrackOrderQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, shipment_history, users").Error)
}

func (suite *TrackOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TrackOrderQueryHandlerTestSuite) seedTrackedOrder() (*order.Order, *account.User) {
	ctx := context.Background()

	route, err := kernel.NewRoute("Mumbai", "Delhi")
	suite.Require().NoError(err)

	now := time.Now().UTC().Truncate(time.Microsecond)
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		"ST-"+kernel.NewUUID().String()[:10], "AWB-"+kernel.NewUUID().String()[:10],
		route, order.ParcelDetails{PackageType: "box", PaymentStatus: "unpaid"},
		now.Add(-2*time.Hour))
	suite.Require().NoError(err)

	orderRepo := orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
	suite.Require().NoError(orderRepo.Add(ctx, testOrder))

	actor, err := account.NewUser(
		kernel.NewUUID(), account.RoleDeliveryAgent, "Ravi Kumar",
		"ravi@example.com", "", "Mumbai", "$2a$10$hash")
	suite.Require().NoError(err)
	suite.Require().NoError(userrepo.NewGormUserRepository(suite.db).Add(ctx, actor))

	historyRepo := historyrepo.NewGormHistoryRepository(suite.db)
	for i, status := range []order.Status{order.StatusPickedUp, order.StatusInTransit} {
		entry, entryErr := order.RestoreHistoryEntry(
			kernel.NewUUID(), testOrder.ID(), status, "Mumbai", "note",
			actor.ID(), now.Add(time.Duration(i)*time.Minute))
		suite.Require().NoError(entryErr)
		suite.Require().NoError(historyRepo.Append(ctx, entry))
	}

	return testOrder, actor
}

func (suite *TrackOrderQueryHandlerTestSuite) track(number string) queries.TrackOrderResponse {
	query, err := queries.NewTrackOrderQuery(number)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	return result
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_ByTrackingNumber() {
	testOrder, actor := suite.seedTrackedOrder()

	result := suite.track(testOrder.TrackingNumber())
	suite.True(result.Order.ID.IsEqual(testOrder.ID()))
	suite.Equal(testOrder.TrackingNumber(), result.Order.TrackingNumber)
	suite.Equal("pending", result.Order.Status)

	suite.Require().Len(result.History, 2)
	suite.Equal("picked_up", result.History[0].Status)
	suite.Equal("in_transit", result.History[1].Status)
	suite.Equal("Ravi Kumar", result.History[0].ActorName)
	suite.True(result.History[0].ActorID.IsEqual(actor.ID()))
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_ByAWBNumber() {
	testOrder, _ := suite.seedTrackedOrder()

	result := suite.track(testOrder.AWBNumber())
	suite.True(result.Order.ID.IsEqual(testOrder.ID()))
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_UnknownNumber() {
	query, err := queries.NewTrackOrderQuery("ST-DOESNOTEXIST")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestTrackOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TrackOrderQueryHandlerTestSuite))
}
