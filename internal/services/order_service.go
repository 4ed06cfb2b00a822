package services

import (
	"fmt"

	"github.com/themizzi/swagtest/internal/models"
)

// Currency every storefront order is priced in
const Currency = "USD"

// OrderRepository persists orders
type OrderRepository interface {
	CreateOrder(order *models.Order) error
	GetOrderByReference(reference string) (*models.Order, error)
	UpdateOrderStatus(reference, status string) error
}

// OrderService drives an order through checkout: opened on step one,
// then placed on Finish or cancelled on Cancel.
type OrderService interface {
	OpenOrder(customer models.Customer, items []models.LineItem) (*models.Order, error)
	FindOrder(reference string) (*models.Order, error)
	PlaceOrder(reference string) (*models.Order, error)
	CancelOrder(reference string) error
}

type orderService struct {
	repo OrderRepository
}

// NewOrderService creates an order service backed by repo
func NewOrderService(repo OrderRepository) OrderService {
	return &orderService{repo: repo}
}

func (s *orderService) OpenOrder(customer models.Customer, items []models.LineItem) (*models.Order, error) {
	order, err := models.NewOrder(customer, items, Currency)
	if err != nil {
		return nil, fmt.Errorf("invalid order: %w", err)
	}
	if err := s.repo.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}
	return order, nil
}

func (s *orderService) FindOrder(reference string) (*models.Order, error) {
	order, err := s.repo.GetOrderByReference(reference)
	if err != nil {
		return nil, fmt.Errorf("failed to get order %s: %w", reference, err)
	}
	return order, nil
}

func (s *orderService) PlaceOrder(reference string) (*models.Order, error) {
	return s.transition(reference, (*models.Order).Place)
}

func (s *orderService) CancelOrder(reference string) error {
	_, err := s.transition(reference, (*models.Order).Cancel)
	return err
}

// transition loads the order, applies the domain move and stores the new status
func (s *orderService) transition(reference string, move func(*models.Order) error) (*models.Order, error) {
	order, err := s.FindOrder(reference)
	if err != nil {
		return nil, err
	}
	if err := move(order); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateOrderStatus(reference, string(order.Status)); err != nil {
		return nil, fmt.Errorf("failed to update order %s: %w", reference, err)
	}
	return order, nil
}
