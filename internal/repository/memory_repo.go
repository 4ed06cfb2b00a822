package repository

import (
	"fmt"
	"sync"
	"time"

	"github.com/themizzi/swagtest/internal/models"
)

// MemoryOrderRepository keeps orders in process memory. The storefront uses it
// when no database is configured.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]models.Order)}
}

func (r *MemoryOrderRepository) CreateOrder(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.Reference]; ok {
		return fmt.Errorf("failed to create order: duplicate reference %s", order.Reference)
	}

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	r.orders[order.Reference] = clone(order)
	return nil
}

func (r *MemoryOrderRepository) GetOrderByReference(reference string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[reference]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	out := clone(&order)
	return &out, nil
}

func (r *MemoryOrderRepository) UpdateOrderStatus(reference, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[reference]
	if !ok {
		return models.ErrOrderNotFound
	}
	order.Status = models.OrderStatus(status)
	order.UpdatedAt = time.Now()
	r.orders[reference] = order
	return nil
}

// CountByStatus returns how many stored orders are in status.
func (r *MemoryOrderRepository) CountByStatus(status models.OrderStatus) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, order := range r.orders {
		if order.Status == status {
			n++
		}
	}
	return n
}

func clone(order *models.Order) models.Order {
	out := *order
	out.Items = append([]models.LineItem(nil), order.Items...)
	return out
}
