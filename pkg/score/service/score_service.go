package service

import (
	"roastlog/entities"
	"roastlog/pkg/score/repository"
)

type Result struct {
	ScoreID    string  `json:"score_id"`
	TotalScore float64 `json:"total_score"`
}

type ScoreService interface {
	RecordScore(s *entities.CuppingScore) (*Result, error)
	ListScores(f repository.Filter) ([]entities.CuppingScore, error)
}
