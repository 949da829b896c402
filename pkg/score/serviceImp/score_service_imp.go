package serviceImp

import (
	"github.com/google/uuid"

	"roastlog/entities"
	"roastlog/pkg/apperr"
	roastRepo "roastlog/pkg/roast/repository"
	"roastlog/pkg/score/repository"
	"roastlog/pkg/score/service"
	"roastlog/pkg/validation"
)

type scoreSvc struct {
	repo   repository.ScoreRepository
	roasts roastRepo.RoastRepository
}

func New(repo repository.ScoreRepository, roasts roastRepo.RoastRepository) service.ScoreService {
	return &scoreSvc{repo: repo, roasts: roasts}
}

// RecordScore checks the referenced roast before any write and always
// recomputes the total server-side.
func (s *scoreSvc) RecordScore(sc *entities.CuppingScore) (*service.Result, error) {
	ok, err := s.roasts.Exists(sc.RoastID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("roast", sc.RoastID)
	}
	if err := validation.CheckScore(sc); err != nil {
		return nil, err
	}
	sc.ScoreID = uuid.NewString()
	sc.TotalScore = validation.TotalScore(sc)
	if err := s.repo.Create(sc); err != nil {
		return nil, err
	}
	return &service.Result{ScoreID: sc.ScoreID, TotalScore: sc.TotalScore}, nil
}

func (s *scoreSvc) ListScores(f repository.Filter) ([]entities.CuppingScore, error) {
	return s.repo.List(f)
}
