package service

import (
	"roastlog/entities"
	"roastlog/pkg/roast/repository"
)

// Result reports what a roast submission produced. NewStockKG is set
// only when a lot was drawn down.
type Result struct {
	RoastID    string   `json:"roast_id"`
	DTRRatio   float64  `json:"dtr_ratio"`
	NewStockKG *float64 `json:"new_stock_kg,omitempty"`
}

type RoastService interface {
	RecordRoast(r *entities.Roast) (*Result, error)
	GetRoast(id string) (*entities.Roast, error)
	ListRoasts(f repository.Filter) ([]entities.Roast, error)
}
