package repository

import "roastlog/entities"

// Filter narrows listings; zero values mean "no constraint".
// Dates are YYYY-MM-DD and inclusive on both ends.
type Filter struct {
	CoffeeNames []string
	From        string
	To          string
}

type RoastRepository interface {
	Create(r *entities.Roast) error
	// CreateWithConsumption decrements the referenced lot and inserts
	// the roast in one transaction; neither lands if either step fails.
	CreateWithConsumption(r *entities.Roast) (remainingKG float64, err error)
	FindByID(id string) (*entities.Roast, error)
	Exists(id string) (bool, error)
	List(f Filter) ([]entities.Roast, error)
}
