package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
	"github.com/manikandan032/plant-disease-detection/internal/repository"
)

type MockOrderPlacer struct {
	mock.Mock
}

func (m *MockOrderPlacer) CreateOrder(ctx context.Context, req entity.OrderRequest, attemptID string) (*entity.Order, error) {
	args := m.Called(ctx, req, attemptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

type stubSessionSource struct {
	session *entity.Session
}

func (s *stubSessionSource) Session(ctx context.Context) *entity.Session {
	return s.session
}

func signedIn() *stubSessionSource {
	return &stubSessionSource{session: &entity.Session{AccessToken: "token", Role: entity.RoleFarmer}}
}

// twoSellerCart is the canonical mixed cart: one item from seller 10, one
// from seller 11.
func twoSellerCart(t *testing.T) *entity.Cart {
	t.Helper()
	cart := entity.NewCart()
	require.NoError(t, cart.AddItem(1, "Urea 50kg", 100.0, 10, "Green Agro", ""))
	require.NoError(t, cart.AddItem(2, "DAP 25kg", 50.0, 11, "Kumar Fertilizers", ""))
	return cart
}

func pendingOrder(orderID, shopOwnerID int64) *entity.Order {
	return &entity.Order{
		OrderID:       orderID,
		ShopOwnerID:   shopOwnerID,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
	}
}

func TestCheckoutService_OneOrderPerSeller(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockOrders := new(MockOrderPlacer)
	svc := NewCheckoutService(mockCarts, signedIn(), mockOrders, NewNoOpLogger())

	mockCarts.On("Load", mock.Anything).Return(twoSellerCart(t), nil).Once()
	mockOrders.On("CreateOrder", mock.Anything, mock.MatchedBy(func(req entity.OrderRequest) bool {
		return req.ShopOwnerID == 10 && len(req.Items) == 1 && req.Items[0].InventoryID == 1
	}), mock.AnythingOfType("string")).Return(pendingOrder(101, 10), nil).Once()
	mockOrders.On("CreateOrder", mock.Anything, mock.MatchedBy(func(req entity.OrderRequest) bool {
		return req.ShopOwnerID == 11 && len(req.Items) == 1 && req.Items[0].InventoryID == 2
	}), mock.AnythingOfType("string")).Return(pendingOrder(102, 11), nil).Once()
	mockCarts.On("Delete", mock.Anything).Return(nil).Once()

	result, err := svc.Checkout(context.Background(), entity.PaymentMethodUPI)

	assert.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Orders, 2)
	assert.Equal(t, int64(101), result.Orders[0].OrderID)
	assert.Equal(t, int64(102), result.Orders[1].OrderID)
	assert.False(t, result.Settled)
	// Several orders: payment is per-order later, never auto-initiated.
	assert.Zero(t, result.PayOrderID)
	mockCarts.AssertExpectations(t)
	mockOrders.AssertExpectations(t)
}

func TestCheckoutService_SameAttemptIDAcrossSellers(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockOrders := new(MockOrderPlacer)
	svc := NewCheckoutService(mockCarts, signedIn(), mockOrders, NewNoOpLogger())

	var attempts []string
	mockCarts.On("Load", mock.Anything).Return(twoSellerCart(t), nil).Once()
	mockOrders.On("CreateOrder", mock.Anything, mock.Anything, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			attempts = append(attempts, args.String(2))
		}).
		Return(pendingOrder(101, 10), nil).Twice()
	mockCarts.On("Delete", mock.Anything).Return(nil).Once()

	_, err := svc.Checkout(context.Background(), entity.PaymentMethodUPI)

	assert.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.NotEmpty(t, attempts[0])
	assert.Equal(t, attempts[0], attempts[1])
}

func TestCheckoutService_PartialFailureKeepsCartAndPlacedOrders(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockOrders := new(MockOrderPlacer)
	svc := NewCheckoutService(mockCarts, signedIn(), mockOrders, NewNoOpLogger())

	mockCarts.On("Load", mock.Anything).Return(twoSellerCart(t), nil).Once()
	mockOrders.On("CreateOrder", mock.Anything, mock.MatchedBy(func(req entity.OrderRequest) bool {
		return req.ShopOwnerID == 10
	}), mock.AnythingOfType("string")).Return(pendingOrder(101, 10), nil).Once()
	mockOrders.On("CreateOrder", mock.Anything, mock.MatchedBy(func(req entity.OrderRequest) bool {
		return req.ShopOwnerID == 11
	}), mock.AnythingOfType("string")).Return(nil, errors.New("insufficient stock")).Once()

	result, err := svc.Checkout(context.Background(), entity.PaymentMethodUPI)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Kumar Fertilizers")
	require.NotNil(t, result)
	require.Len(t, result.Orders, 1)
	assert.Equal(t, int64(101), result.Orders[0].OrderID)
	// Cart must stay intact: Delete is never called on a partial failure.
	mockCarts.AssertNotCalled(t, "Delete", mock.Anything)
	mockCarts.AssertExpectations(t)
	mockOrders.AssertExpectations(t)
}

func TestCheckoutService_FullSuccessClearsCart(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockOrders := new(MockOrderPlacer)
	svc := NewCheckoutService(mockCarts, signedIn(), mockOrders, NewNoOpLogger())

	cart := entity.NewCart()
	require.NoError(t, cart.AddItem(1, "Urea 50kg", 100.0, 10, "Green Agro", ""))

	mockCarts.On("Load", mock.Anything).Return(cart, nil).Once()
	mockOrders.On("CreateOrder", mock.Anything, mock.Anything, mock.AnythingOfType("string")).
		Return(pendingOrder(101, 10), nil).Once()
	mockCarts.On("Delete", mock.Anything).Return(nil).Once()

	result, err := svc.Checkout(context.Background(), entity.PaymentMethodUPI)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(101), result.PayOrderID)
	assert.False(t, result.Settled)
	mockCarts.AssertExpectations(t)
}

func TestCheckoutService_ClearFailureDoesNotFailCheckout(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockOrders := new(MockOrderPlacer)
	svc := NewCheckoutService(mockCarts, signedIn(), mockOrders, NewNoOpLogger())

	cart := entity.NewCart()
	require.NoError(t, cart.AddItem(1, "Urea 50kg", 100.0, 10, "Green Agro", ""))

	mockCarts.On("Load", mock.Anything).Return(cart, nil).Once()
	mockOrders.On("CreateOrder", mock.Anything, mock.Anything, mock.AnythingOfType("string")).
		Return(pendingOrder(101, 10), nil).Once()
	mockCarts.On("Delete", mock.Anything).Return(repository.ErrDeleteFailed).Once()

	result, err := svc.Checkout(context.Background(), entity.PaymentMethodUPI)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.Orders, 1)
	mockCarts.AssertExpectations(t)
}

func TestCheckoutService_SettledOrderSkipsPaymentStep(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockOrders := new(MockOrderPlacer)
	svc := NewCheckoutService(mockCarts, signedIn(), mockOrders, NewNoOpLogger())

	cart := entity.NewCart()
	require.NoError(t, cart.AddItem(1, "Urea 50kg", 100.0, 10, "Green Agro", ""))

	settled := pendingOrder(101, 10)
	settled.PaymentStatus = entity.PaymentStatusPaid

	mockCarts.On("Load", mock.Anything).Return(cart, nil).Once()
	mockOrders.On("CreateOrder", mock.Anything, mock.Anything, mock.AnythingOfType("string")).
		Return(settled, nil).Once()
	mockCarts.On("Delete", mock.Anything).Return(nil).Once()

	result, err := svc.Checkout(context.Background(), entity.PaymentMethodUPI)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Settled)
	assert.Zero(t, result.PayOrderID)
}

func TestCheckoutService_NotSignedIn(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockOrders := new(MockOrderPlacer)
	svc := NewCheckoutService(mockCarts, &stubSessionSource{}, mockOrders, NewNoOpLogger())

	result, err := svc.Checkout(context.Background(), entity.PaymentMethodUPI)

	assert.ErrorIs(t, err, ErrNotSignedIn)
	assert.Nil(t, result)
	mockOrders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
	mockCarts.AssertNotCalled(t, "Load", mock.Anything)
}

func TestCheckoutService_EmptyCartIsNoOp(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockOrders := new(MockOrderPlacer)
	svc := NewCheckoutService(mockCarts, signedIn(), mockOrders, NewNoOpLogger())

	mockCarts.On("Load", mock.Anything).Return(nil, repository.ErrNotFound).Once()

	result, err := svc.Checkout(context.Background(), entity.PaymentMethodUPI)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Orders)
	mockOrders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
	mockCarts.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestCheckoutService_RejectsConcurrentInvocation(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockOrders := new(MockOrderPlacer)
	svc := NewCheckoutService(mockCarts, signedIn(), mockOrders, NewNoOpLogger())

	inFirst := make(chan struct{})
	release := make(chan struct{})

	mockCarts.On("Load", mock.Anything).Return(twoSellerCart(t), nil).Once()
	mockOrders.On("CreateOrder", mock.Anything, mock.Anything, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			select {
			case <-inFirst:
			default:
				close(inFirst)
				<-release
			}
		}).
		Return(pendingOrder(101, 10), nil).Twice()
	mockCarts.On("Delete", mock.Anything).Return(nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.Checkout(context.Background(), entity.PaymentMethodUPI)
		assert.NoError(t, err)
	}()

	<-inFirst
	result, err := svc.Checkout(context.Background(), entity.PaymentMethodUPI)
	assert.ErrorIs(t, err, ErrCheckoutInFlight)
	assert.Nil(t, result)

	close(release)
	wg.Wait()
}
