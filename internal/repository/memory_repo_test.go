package repository

import (
	"errors"
	"sync"
	"testing"

	"github.com/themizzi/swagtest/internal/models"
	"github.com/themizzi/swagtest/internal/services"
)

// Both repositories satisfy the service's persistence port
var (
	_ services.OrderRepository = (*MemoryOrderRepository)(nil)
	_ services.OrderRepository = (*OrderRepository)(nil)
)

func newTestOrder(t *testing.T) *models.Order {
	t.Helper()
	order, err := models.NewOrder(
		models.Customer{FirstName: "Test", LastName: "User", PostalCode: "12345"},
		[]models.LineItem{
			{ProductID: 4, Name: "Sauce Labs Backpack", PriceCents: 2999},
			{ProductID: 0, Name: "Sauce Labs Bike Light", PriceCents: 999},
		},
		"USD",
	)
	if err != nil {
		t.Fatalf("Failed to build order: %v", err)
	}
	return order
}

func TestMemoryOrderRepository_CreateAndGet(t *testing.T) {
	repo := NewMemoryOrderRepository()
	order := newTestOrder(t)

	if err := repo.CreateOrder(order); err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}
	if order.CreatedAt.IsZero() || order.UpdatedAt.IsZero() {
		t.Error("timestamps should be set")
	}

	got, err := repo.GetOrderByReference(order.Reference)
	if err != nil {
		t.Fatalf("GetOrderByReference() error = %v", err)
	}
	if got.ID != order.ID {
		t.Errorf("ID mismatch: got %v, want %v", got.ID, order.ID)
	}
	if len(got.Items) != 2 || got.Items[1].Name != "Sauce Labs Bike Light" {
		t.Errorf("items not preserved in order: %+v", got.Items)
	}
	if got.Total() != order.Total() {
		t.Errorf("Total mismatch: got %d, want %d", got.Total(), order.Total())
	}

	// Mutating the returned copy does not change the stored order
	got.Items[0].PriceCents = 1
	again, _ := repo.GetOrderByReference(order.Reference)
	if again.Items[0].PriceCents != 2999 {
		t.Error("stored order should not alias returned copies")
	}
}

func TestMemoryOrderRepository_DuplicateReference(t *testing.T) {
	repo := NewMemoryOrderRepository()
	order := newTestOrder(t)

	if err := repo.CreateOrder(order); err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}
	if err := repo.CreateOrder(order); err == nil {
		t.Error("Expected error for duplicate reference, got nil")
	}
}

func TestMemoryOrderRepository_NotFound(t *testing.T) {
	repo := NewMemoryOrderRepository()

	if _, err := repo.GetOrderByReference("ORDER-NONE"); !errors.Is(err, models.ErrOrderNotFound) {
		t.Errorf("GetOrderByReference() error = %v, want ErrOrderNotFound", err)
	}
	if err := repo.UpdateOrderStatus("ORDER-NONE", "placed"); !errors.Is(err, models.ErrOrderNotFound) {
		t.Errorf("UpdateOrderStatus() error = %v, want ErrOrderNotFound", err)
	}
}

func TestMemoryOrderRepository_ThroughService(t *testing.T) {
	repo := NewMemoryOrderRepository()
	service := services.NewOrderService(repo)

	order, err := service.OpenOrder(
		models.Customer{FirstName: "Test", LastName: "User", PostalCode: "12345"},
		[]models.LineItem{{ProductID: 4, Name: "Sauce Labs Backpack", PriceCents: 2999}},
	)
	if err != nil {
		t.Fatalf("OpenOrder() error = %v", err)
	}
	if _, err := service.PlaceOrder(order.Reference); err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}

	if n := repo.CountByStatus(models.OrderStatusPlaced); n != 1 {
		t.Errorf("Expected 1 placed order, got %d", n)
	}
	if n := repo.CountByStatus(models.OrderStatusPending); n != 0 {
		t.Errorf("Expected 0 pending orders, got %d", n)
	}

	// A placed order cannot be cancelled afterwards
	if err := service.CancelOrder(order.Reference); !errors.Is(err, models.ErrInvalidStatusTransition) {
		t.Errorf("Expected ErrInvalidStatusTransition, got %v", err)
	}
}

func TestMemoryOrderRepository_ConcurrentCreate(t *testing.T) {
	repo := NewMemoryOrderRepository()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := models.NewOrder(
				models.Customer{FirstName: "A", LastName: "B", PostalCode: "1"},
				[]models.LineItem{{ProductID: 2, Name: "Sauce Labs Onesie", PriceCents: 799}},
				"USD",
			)
			if err != nil {
				t.Errorf("NewOrder() error = %v", err)
				return
			}
			if err := repo.CreateOrder(order); err != nil {
				t.Errorf("CreateOrder() error = %v", err)
			}
		}()
	}
	wg.Wait()

	if n := repo.CountByStatus(models.OrderStatusPending); n != 20 {
		t.Errorf("Expected 20 pending orders, got %d", n)
	}
}
