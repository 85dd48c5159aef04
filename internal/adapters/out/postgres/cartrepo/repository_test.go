package cartrepo_test

import (
	"context"
	"testing"

	"fooddelivery/internal/adapters/out/postgres/cartrepo"
	"fooddelivery/internal/adapters/out/postgres/catalogrepo"
	"fooddelivery/internal/adapters/out/postgres/pgtest"
	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type CartRepositoryTestSuite struct {
	suite.Suite
	db         *gorm.DB
	repository *cartrepo.GormCartRepository
	tracker    *MockAggregateTracker

	restaurantID kernel.UUID
	pizza        *catalog.MenuItem
	soda         *catalog.MenuItem
}

func (suite *CartRepositoryTestSuite) SetupTest() {
	ctx := context.Background()
	suite.db = pgtest.NewSQLite(suite.T())
	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = cartrepo.NewGormCartRepository(suite.db, suite.tracker)

	catalogGateway := catalogrepo.NewGormCatalogGateway(suite.db)
	restaurant, err := catalog.NewRestaurant(kernel.NewUUID(), "Luigi's", "1 Main St")
	suite.Require().NoError(err)
	suite.Require().NoError(catalogGateway.AddRestaurant(ctx, restaurant))
	suite.restaurantID = restaurant.ID()

	suite.pizza, err = catalog.NewMenuItem(kernel.NewUUID(), restaurant.ID(), "Pizza", kernel.MustMoney(12.50), "p.png")
	suite.Require().NoError(err)
	suite.Require().NoError(catalogGateway.AddMenuItem(ctx, suite.pizza))

	suite.soda, err = catalog.NewMenuItem(kernel.NewUUID(), restaurant.ID(), "Soda", kernel.MustMoney(2), "")
	suite.Require().NoError(err)
	suite.Require().NoError(catalogGateway.AddMenuItem(ctx, suite.soda))
}

func (suite *CartRepositoryTestSuite) TestAddAndGetByCustomer() {
	ctx := context.Background()
	c := suite.newCart(kernel.NewUUID())

	suite.Require().NoError(suite.repository.Add(ctx, c))

	got, err := suite.repository.GetByCustomer(ctx, c.CustomerID())
	suite.Require().NoError(err)
	suite.Equal(c.ID(), got.ID())
	suite.Equal(suite.restaurantID, got.RestaurantID())
	suite.Equal(3, got.ItemCount())
	suite.True(kernel.MustMoney(27).Equal(got.TotalAmount()), got.TotalAmount().String())

	items := got.Items()
	suite.Require().Len(items, 2)
	suite.Equal("Pizza", items[0].Name())
	suite.Equal(2, items[0].Quantity())
	suite.Equal("p.png", items[0].ImageURL())
	suite.Equal("Soda", items[1].Name())
}

func (suite *CartRepositoryTestSuite) TestGetByCustomer_UsesLiveMenuPrices() {
	ctx := context.Background()
	c := suite.newCart(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, c))

	err := suite.db.Model(&catalogrepo.MenuItemDTO{}).
		Where("id = ?", suite.pizza.ID().Bytes()).
		Update("price", decimal.RequireFromString("15.00")).Error
	suite.Require().NoError(err)

	got, err := suite.repository.GetByCustomer(ctx, c.CustomerID())
	suite.Require().NoError(err)
	suite.True(kernel.MustMoney(32).Equal(got.TotalAmount()), got.TotalAmount().String())
}

func (suite *CartRepositoryTestSuite) TestGetByCustomer_MissingMenuItemCountsAsZero() {
	ctx := context.Background()
	c := suite.newCart(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, c))

	suite.Require().NoError(catalogrepo.NewGormCatalogGateway(suite.db).DeleteMenuItem(ctx, suite.soda.ID()))

	got, err := suite.repository.GetByCustomer(ctx, c.CustomerID())
	suite.Require().NoError(err)
	suite.Equal(3, got.ItemCount())
	suite.True(kernel.MustMoney(25).Equal(got.TotalAmount()), got.TotalAmount().String())
}

func (suite *CartRepositoryTestSuite) TestGetByCustomer_NoCart_ReturnsNotFound() {
	got, err := suite.repository.GetByCustomer(context.Background(), kernel.NewUUID())

	suite.Nil(got)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CartRepositoryTestSuite) TestUpdate_RewritesItemsAndTotals() {
	ctx := context.Background()
	c := suite.newCart(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, c))

	pizzaLine := c.Items()[0]
	_, err := c.ChangeItemQuantity(pizzaLine.ID(), 3)
	suite.Require().NoError(err)
	suite.Require().NoError(c.RemoveItem(c.Items()[1].ID()))
	suite.Require().NoError(suite.repository.Update(ctx, c))

	got, err := suite.repository.GetByCustomer(ctx, c.CustomerID())
	suite.Require().NoError(err)
	suite.Require().Len(got.Items(), 1)
	suite.Equal(5, got.ItemCount())
	suite.True(kernel.MustMoney(62.50).Equal(got.TotalAmount()))

	var stored cartrepo.CartDTO
	suite.Require().NoError(suite.db.Take(&stored, "id = ?", c.ID().Bytes()).Error)
	suite.Equal(5, stored.ItemCount)
	suite.True(decimal.RequireFromString("62.5").Equal(stored.TotalAmount))
}

func (suite *CartRepositoryTestSuite) TestAddAndUpdate_RefuseEmptyCart() {
	ctx := context.Background()
	empty, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID(), suite.restaurantID)
	suite.Require().NoError(err)

	suite.Require().ErrorIs(suite.repository.Add(ctx, empty), errs.ErrValueIsInvalid)
	suite.Require().ErrorIs(suite.repository.Update(ctx, empty), errs.ErrValueIsInvalid)
}

func (suite *CartRepositoryTestSuite) TestAdd_SecondCartForCustomer_IsConflict() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newCart(customerID)))

	err := suite.repository.Add(ctx, suite.newCart(customerID))
	suite.Require().ErrorIs(err, errs.ErrConcurrentUpdate)
}

func (suite *CartRepositoryTestSuite) TestGetItemCartID() {
	ctx := context.Background()
	c := suite.newCart(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, c))

	cartID, err := suite.repository.GetItemCartID(ctx, c.Items()[1].ID())
	suite.Require().NoError(err)
	suite.Equal(c.ID(), cartID)

	_, err = suite.repository.GetItemCartID(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CartRepositoryTestSuite) TestDelete() {
	ctx := context.Background()
	c := suite.newCart(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, c))

	suite.Require().NoError(suite.repository.Delete(ctx, c.ID()))
	suite.Require().NoError(suite.repository.Delete(ctx, c.ID()), "deleting twice is fine")

	_, err := suite.repository.GetByCustomer(ctx, c.CustomerID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var lines int64
	suite.Require().NoError(suite.db.Model(&cartrepo.CartItemDTO{}).Count(&lines).Error)
	suite.Zero(lines)
}

func (suite *CartRepositoryTestSuite) TestDeleteEmpty() {
	ctx := context.Background()
	kept := suite.newCart(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, kept))

	orphan := cartrepo.CartDTO{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		RestaurantID: suite.restaurantID.Bytes(),
		TotalAmount:  decimal.Zero,
	}
	suite.Require().NoError(suite.db.Create(&orphan).Error)

	removed, err := suite.repository.DeleteEmpty(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)

	var carts int64
	suite.Require().NoError(suite.db.Model(&cartrepo.CartDTO{}).Count(&carts).Error)
	suite.Equal(int64(1), carts)
}

func (suite *CartRepositoryTestSuite) newCart(customerID kernel.UUID) *cart.Cart {
	c, err := cart.NewCart(kernel.NewUUID(), customerID, suite.restaurantID)
	suite.Require().NoError(err)

	_, err = c.AddItem(kernel.NewUUID(), suite.restaurantID, suite.pizza, 2)
	suite.Require().NoError(err)
	_, err = c.AddItem(kernel.NewUUID(), suite.restaurantID, suite.soda, 1)
	suite.Require().NoError(err)
	return c
}

func TestCartRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CartRepositoryTestSuite))
}
