package serviceImp

import (
	"github.com/google/uuid"

	"roastlog/entities"
	"roastlog/pkg/roast/repository"
	"roastlog/pkg/roast/service"
	"roastlog/pkg/validation"
)

type roastSvc struct {
	repo     repository.RoastRepository
	tempUnit string // deployment-wide instrument unit, F|C
}

func New(repo repository.RoastRepository, tempUnit string) service.RoastService {
	return &roastSvc{repo: repo, tempUnit: tempUnit}
}

// RecordRoast validates, derives the DTR ratio server-side, and when a
// lot is referenced runs consumption + insert as one unit of work.
func (s *roastSvc) RecordRoast(r *entities.Roast) (*service.Result, error) {
	r.DropTempUnit = s.tempUnit
	if err := validation.CheckRoast(r); err != nil {
		return nil, err
	}
	r.RoastID = uuid.NewString()
	r.DTRRatio = validation.DTRRatio(r.DevelopmentTime, r.TotalTime)

	if r.BeanID == nil {
		// legacy path: roast with no tracked inventory
		if err := s.repo.Create(r); err != nil {
			return nil, err
		}
		return &service.Result{RoastID: r.RoastID, DTRRatio: r.DTRRatio}, nil
	}

	remaining, err := s.repo.CreateWithConsumption(r)
	if err != nil {
		return nil, err
	}
	return &service.Result{RoastID: r.RoastID, DTRRatio: r.DTRRatio, NewStockKG: &remaining}, nil
}

func (s *roastSvc) GetRoast(id string) (*entities.Roast, error) { return s.repo.FindByID(id) }

func (s *roastSvc) ListRoasts(f repository.Filter) ([]entities.Roast, error) {
	return s.repo.List(f)
}
