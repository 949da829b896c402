package repository

import "roastlog/entities"

// Filter matches the roast listing semantics; coffee names apply to
// the roast each score references.
type Filter struct {
	CoffeeNames []string
	From        string
	To          string
}

type ScoreRepository interface {
	Create(s *entities.CuppingScore) error
	List(f Filter) ([]entities.CuppingScore, error)
}
