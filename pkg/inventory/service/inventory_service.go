package service

import "roastlog/entities"

type InventoryService interface {
	CreateLot(l *entities.GreenBeanLot) (*entities.GreenBeanLot, error)
	GetLot(id string) (*entities.GreenBeanLot, error)
	ListLots() ([]entities.GreenBeanLot, error)
	// UpdateStock draws amountKG from the lot and returns the new level.
	UpdateStock(id string, amountKG float64) (float64, error)
}
