package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"roastlog/entities"
	"roastlog/pkg/apperr"
	invRepoImp "roastlog/pkg/inventory/repositoryImp"
	"roastlog/pkg/roast/repository"
)

type roastRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RoastRepository { return &roastRepo{db} }

func (r *roastRepo) Create(ro *entities.Roast) error {
	if err := r.db.Create(ro).Error; err != nil {
		return apperr.Storage("create roast", err)
	}
	return nil
}

func (r *roastRepo) CreateWithConsumption(ro *entities.Roast) (float64, error) {
	var remaining float64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		rem, err := invRepoImp.ConsumeTx(tx, *ro.BeanID, *ro.AmountUsedKG)
		if err != nil {
			return err
		}
		if err := tx.Create(ro).Error; err != nil {
			return apperr.Storage("create roast", err)
		}
		remaining = rem
		return nil
	})
	return remaining, err
}

func (r *roastRepo) FindByID(id string) (*entities.Roast, error) {
	var ro entities.Roast
	if err := r.db.Where("roast_id = ?", id).First(&ro).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("roast", id)
		}
		return nil, apperr.Storage("find roast", err)
	}
	return &ro, nil
}

func (r *roastRepo) Exists(id string) (bool, error) {
	var n int64
	if err := r.db.Model(&entities.Roast{}).Where("roast_id = ?", id).Count(&n).Error; err != nil {
		return false, apperr.Storage("check roast", err)
	}
	return n > 0, nil
}

func (r *roastRepo) List(f repository.Filter) ([]entities.Roast, error) {
	q := r.db.Model(&entities.Roast{})
	if len(f.CoffeeNames) > 0 {
		q = q.Where("coffee_name IN ?", f.CoffeeNames)
	}
	if f.From != "" {
		q = q.Where("date >= ?", f.From)
	}
	if f.To != "" {
		q = q.Where("date <= ?", f.To)
	}
	var out []entities.Roast
	if err := q.Order("date DESC, created_at DESC").Find(&out).Error; err != nil {
		return nil, apperr.Storage("list roasts", err)
	}
	return out, nil
}
