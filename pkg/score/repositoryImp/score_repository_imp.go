package repositoryImp

import (
	"gorm.io/gorm"

	"roastlog/entities"
	"roastlog/pkg/apperr"
	"roastlog/pkg/score/repository"
)

type scoreRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ScoreRepository { return &scoreRepo{db} }

func (r *scoreRepo) Create(s *entities.CuppingScore) error {
	if err := r.db.Create(s).Error; err != nil {
		return apperr.Storage("create score", err)
	}
	return nil
}

func (r *scoreRepo) List(f repository.Filter) ([]entities.CuppingScore, error) {
	q := r.db.Model(&entities.CuppingScore{})
	if len(f.CoffeeNames) > 0 {
		q = q.Joins("JOIN roasts ON roasts.roast_id = cupping_scores.roast_id").
			Where("roasts.coffee_name IN ?", f.CoffeeNames)
	}
	if f.From != "" {
		q = q.Where("cupping_scores.date >= ?", f.From)
	}
	if f.To != "" {
		q = q.Where("cupping_scores.date <= ?", f.To)
	}
	var out []entities.CuppingScore
	if err := q.Order("cupping_scores.date DESC, cupping_scores.created_at DESC").Find(&out).Error; err != nil {
		return nil, apperr.Storage("list scores", err)
	}
	return out, nil
}
