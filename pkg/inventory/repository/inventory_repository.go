package repository

import "roastlog/entities"

type InventoryRepository interface {
	Create(l *entities.GreenBeanLot) error
	FindByID(id string) (*entities.GreenBeanLot, error)
	List() ([]entities.GreenBeanLot, error)
	// Consume atomically decrements the lot's stock and returns the
	// remaining amount. Fails typed: NotFoundError, InsufficientStockError.
	Consume(beanID string, amountKG float64) (float64, error)
}
