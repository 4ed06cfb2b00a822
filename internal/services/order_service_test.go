package services

import (
	"errors"
	"testing"

	"github.com/themizzi/swagtest/internal/models"
)

// stubRepository records calls and answers from canned values
type stubRepository struct {
	order     *models.Order
	getErr    error
	createErr error
	updateErr error

	created *models.Order
	updated string
}

func (r *stubRepository) CreateOrder(order *models.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = order
	return nil
}

func (r *stubRepository) GetOrderByReference(reference string) (*models.Order, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.order == nil {
		return nil, models.ErrOrderNotFound
	}
	return r.order, nil
}

func (r *stubRepository) UpdateOrderStatus(reference, status string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated = status
	return nil
}

var (
	testCustomer = models.Customer{FirstName: "Test", LastName: "User", PostalCode: "12345"}
	testItems    = []models.LineItem{{ProductID: 4, Name: "Sauce Labs Backpack", PriceCents: 2999}}
)

func TestOrderService_OpenOrder(t *testing.T) {
	dbErr := errors.New("database error")
	tests := []struct {
		name      string
		items     []models.LineItem
		createErr error
		wantErr   error
	}{
		{name: "opens a pending order", items: testItems},
		{name: "empty cart", items: nil, wantErr: models.ErrEmptyOrder},
		{name: "repository error", items: testItems, createErr: dbErr, wantErr: dbErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// GIVEN
			repo := &stubRepository{createErr: tt.createErr}

			// WHEN
			order, err := NewOrderService(repo).OpenOrder(testCustomer, tt.items)

			// THEN
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("OpenOrder() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("OpenOrder() error = %v", err)
			}
			if repo.created != order {
				t.Error("order was not stored")
			}
			if order.Status != models.OrderStatusPending {
				t.Errorf("Status = %s, want pending", order.Status)
			}
			if order.Currency != Currency {
				t.Errorf("Currency = %s, want %s", order.Currency, Currency)
			}
			if order.Customer != testCustomer {
				t.Errorf("Customer = %+v, want %+v", order.Customer, testCustomer)
			}
		})
	}
}

func TestOrderService_FindOrder(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		want := &models.Order{Reference: "ORDER-123", Items: testItems}
		got, err := NewOrderService(&stubRepository{order: want}).FindOrder("ORDER-123")
		if err != nil || got != want {
			t.Fatalf("FindOrder() = %v, %v", got, err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := NewOrderService(&stubRepository{}).FindOrder("ORDER-999")
		if !errors.Is(err, models.ErrOrderNotFound) {
			t.Errorf("FindOrder() error = %v, want ErrOrderNotFound", err)
		}
	})
}

func TestOrderService_Transitions(t *testing.T) {
	dbErr := errors.New("database error")
	place := func(s OrderService) error { _, err := s.PlaceOrder("ORDER-123"); return err }
	cancel := func(s OrderService) error { return s.CancelOrder("ORDER-123") }

	tests := []struct {
		name       string
		from       models.OrderStatus
		act        func(OrderService) error
		updateErr  error
		wantErr    error
		wantStored string
	}{
		{name: "place pending", from: models.OrderStatusPending, act: place, wantStored: "placed"},
		{name: "cancel pending", from: models.OrderStatusPending, act: cancel, wantStored: "cancelled"},
		{name: "place twice", from: models.OrderStatusPlaced, act: place, wantErr: models.ErrInvalidStatusTransition},
		{name: "cancel placed", from: models.OrderStatusPlaced, act: cancel, wantErr: models.ErrInvalidStatusTransition},
		{name: "place cancelled", from: models.OrderStatusCancelled, act: place, wantErr: models.ErrInvalidStatusTransition},
		{name: "repository error", from: models.OrderStatusPending, act: place, updateErr: dbErr, wantErr: dbErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// GIVEN
			repo := &stubRepository{
				order:     &models.Order{Reference: "ORDER-123", Status: tt.from, Items: testItems},
				updateErr: tt.updateErr,
			}

			// WHEN
			err := tt.act(NewOrderService(repo))

			// THEN
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if repo.updated != "" {
					t.Errorf("status %q stored after a failed move", repo.updated)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo.updated != tt.wantStored {
				t.Errorf("stored status = %q, want %q", repo.updated, tt.wantStored)
			}
		})
	}
}

func TestOrderService_TransitionUnknownOrder(t *testing.T) {
	if err := NewOrderService(&stubRepository{}).CancelOrder("ORDER-NONE"); !errors.Is(err, models.ErrOrderNotFound) {
		t.Errorf("CancelOrder() error = %v, want ErrOrderNotFound", err)
	}
}
