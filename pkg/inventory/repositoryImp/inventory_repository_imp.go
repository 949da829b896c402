package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"roastlog/entities"
	"roastlog/pkg/apperr"
	"roastlog/pkg/inventory/repository"
)

type lotRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.InventoryRepository { return &lotRepo{db} }

func (r *lotRepo) Create(l *entities.GreenBeanLot) error {
	if err := r.db.Create(l).Error; err != nil {
		return apperr.Storage("create lot", err)
	}
	return nil
}

func (r *lotRepo) FindByID(id string) (*entities.GreenBeanLot, error) {
	var l entities.GreenBeanLot
	if err := r.db.Where("bean_id = ?", id).First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("green bean lot", id)
		}
		return nil, apperr.Storage("find lot", err)
	}
	return &l, nil
}

func (r *lotRepo) List() ([]entities.GreenBeanLot, error) {
	var out []entities.GreenBeanLot
	if err := r.db.Order("purchase_date DESC, created_at DESC").Find(&out).Error; err != nil {
		return nil, apperr.Storage("list lots", err)
	}
	return out, nil
}

func (r *lotRepo) Consume(beanID string, amountKG float64) (float64, error) {
	var remaining float64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		rem, err := ConsumeTx(tx, beanID, amountKG)
		if err != nil {
			return err
		}
		remaining = rem
		return nil
	})
	return remaining, err
}

// ConsumeTx runs the guarded decrement against the caller's
// transaction so roast creation can join the same unit of work. The
// sufficiency check lives in the UPDATE's WHERE clause, so two racing
// consumers can never both pass it; the write also comes first so the
// transaction takes the writer lock before reading anything back.
func ConsumeTx(tx *gorm.DB, beanID string, amountKG float64) (float64, error) {
	res := tx.Model(&entities.GreenBeanLot{}).
		Where("bean_id = ? AND current_stock_kg >= ?", beanID, amountKG).
		Update("current_stock_kg", gorm.Expr("MAX(current_stock_kg - ?, 0)", amountKG))
	if res.Error != nil {
		return 0, apperr.Storage("decrement stock", res.Error)
	}

	var lot entities.GreenBeanLot
	if err := tx.Where("bean_id = ?", beanID).First(&lot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperr.NotFound("green bean lot", beanID)
		}
		return 0, apperr.Storage("read lot stock", err)
	}
	if res.RowsAffected == 0 {
		return 0, &apperr.InsufficientStockError{BeanID: beanID, RequestedKG: amountKG, AvailableKG: lot.CurrentStockKG}
	}
	return lot.CurrentStockKG, nil
}
