package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for the order
// repository using PostgreSQL containers to verify persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.AllocationDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createSplitOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, &order.Order{})

	suite.Require().Error(err)
	suite.ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_PreservesStructure() {
	ctx := context.Background()

	testOrder := suite.createSplitOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(restored.IsEqual(testOrder))
	suite.Equal(testOrder.Customer(), restored.Customer())
	suite.True(testOrder.TotalAmount().Equal(restored.TotalAmount()))
	suite.Require().Len(restored.LineItems(), len(testOrder.LineItems()))

	for i, want := range testOrder.LineItems() {
		got := restored.LineItems()[i]
		suite.True(want.ID().IsEqual(got.ID()))
		suite.Equal(want.Name(), got.Name())
		suite.Require().Len(got.Allocations(), len(want.Allocations()))

		for j, wantAlloc := range want.Allocations() {
			gotAlloc := got.Allocations()[j]
			suite.True(wantAlloc.ID().IsEqual(gotAlloc.ID()))
			suite.Equal(wantAlloc.WarehouseName(), gotAlloc.WarehouseName())
			suite.Equal(wantAlloc.Type(), gotAlloc.Type())
			suite.Equal(wantAlloc.Qty(), gotAlloc.Qty())
			suite.Equal(wantAlloc.Status(), gotAlloc.Status())
		}
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_MalformedAllocation_SurvivesRoundTrip() {
	ctx := context.Background()

	malformed, err := order.RestoreAllocation(
		kernel.NewUUID(), kernel.UUID{}, "", order.MainWarehouse, 2, order.Allocated)
	suite.Require().NoError(err)
	suite.Require().True(malformed.IsMalformed())

	lineItem, err := order.NewLineItem(
		kernel.NewUUID(), "Desk Lamp", 2, decimal.NewFromInt(40), []*order.Allocation{malformed})
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), []*order.LineItem{lineItem},
		decimal.NewFromInt(80), "USD", "paid", "Grace Hopper")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().Len(restored.LineItems(), 1)
	suite.Require().Len(restored.LineItems()[0].Allocations(), 1)
	suite.True(restored.LineItems()[0].Allocations()[0].IsMalformed())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndFlags() {
	ctx := context.Background()

	testOrder := suite.createSplitOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	allocations := testOrder.LineItems()[0].Allocations()
	suite.Require().NoError(testOrder.AcceptAllocation(allocations[1].ID()))
	suite.Require().NoError(testOrder.MarkShipped(allocations[0].WarehouseID()))

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(restored.ShippingCompleted())
	suite.Equal(order.Accepted, restored.LineItems()[0].Allocations()[1].Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	testOrder := suite.createSplitOrder()

	err := suite.repository.Update(ctx, testOrder)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_ReturnsEveryStoredOrder() {
	ctx := context.Background()

	first := suite.createSplitOrder()
	second := suite.createSplitOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	orders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(orders, 2)
	ids := map[string]bool{
		orders[0].ID().String(): true,
		orders[1].ID().String(): true,
	}
	suite.True(ids[first.ID().String()])
	suite.True(ids[second.ID().String()])
}

// createSplitOrder builds an order whose single line item is split between a
// main warehouse and a requested remaining warehouse.
func (suite *OrderRepositoryIntegrationTestSuite) createSplitOrder() *order.Order {
	main, err := order.NewAllocation(
		kernel.NewUUID(), kernel.NewUUID(), "Central Warehouse", order.MainWarehouse, 2, order.Allocated)
	suite.Require().NoError(err)

	remaining, err := order.NewAllocation(
		kernel.NewUUID(), kernel.NewUUID(), "East Annex", order.RemainingWarehouse, 1, order.Requested)
	suite.Require().NoError(err)

	lineItem, err := order.NewLineItem(
		kernel.NewUUID(), "Office Chair", 3, decimal.NewFromInt(75),
		[]*order.Allocation{main, remaining})
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), []*order.LineItem{lineItem},
		decimal.NewFromInt(225), "USD", "paid", "Ada Lovelace")
	suite.Require().NoError(err)

	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
