package serviceImp

import (
	"github.com/google/uuid"

	"roastlog/entities"
	"roastlog/pkg/apperr"
	"roastlog/pkg/inventory/repository"
	"roastlog/pkg/inventory/service"
	"roastlog/pkg/validation"
)

type inventorySvc struct{ r repository.InventoryRepository }

func New(r repository.InventoryRepository) service.InventoryService { return &inventorySvc{r} }

func (s *inventorySvc) CreateLot(l *entities.GreenBeanLot) (*entities.GreenBeanLot, error) {
	if l.Process == "" {
		l.Process = "Other"
	}
	if err := validation.CheckLot(l); err != nil {
		return nil, err
	}
	l.BeanID = uuid.NewString()
	l.CurrentStockKG = l.InitialStockKG
	if err := s.r.Create(l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *inventorySvc) GetLot(id string) (*entities.GreenBeanLot, error) { return s.r.FindByID(id) }

func (s *inventorySvc) ListLots() ([]entities.GreenBeanLot, error) { return s.r.List() }

func (s *inventorySvc) UpdateStock(id string, amountKG float64) (float64, error) {
	if amountKG <= 0 {
		v := apperr.NewValidation()
		v.Addf("amount_used", "must be > 0, got %.2f", amountKG)
		return 0, v
	}
	return s.r.Consume(id, amountKG)
}
