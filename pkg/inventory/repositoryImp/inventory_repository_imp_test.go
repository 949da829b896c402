package repositoryImp

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roastlog/database"
	"roastlog/entities"
	"roastlog/pkg/apperr"
	"roastlog/pkg/inventory/repository"
)

func newRepo(t *testing.T) repository.InventoryRepository {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	return New(db)
}

func seedLot(t *testing.T, repo repository.InventoryRepository, initialKG float64) *entities.GreenBeanLot {
	t.Helper()
	l := &entities.GreenBeanLot{
		BeanID:         uuid.NewString(),
		Name:           "Huila Decaf",
		Process:        "Washed",
		PurchaseDate:   "2026-07-15",
		InitialStockKG: initialKG,
		CurrentStockKG: initialKG,
	}
	require.NoError(t, repo.Create(l))
	return l
}

func TestConsumeDecrements(t *testing.T) {
	repo := newRepo(t)
	lot := seedLot(t, repo, 60)

	remaining, err := repo.Consume(lot.BeanID, 10)
	require.NoError(t, err)
	assert.Equal(t, 50.0, remaining)

	got, err := repo.FindByID(lot.BeanID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, got.CurrentStockKG)
}

func TestConsumeInsufficientLeavesStockUnchanged(t *testing.T) {
	repo := newRepo(t)
	lot := seedLot(t, repo, 60)

	_, err := repo.Consume(lot.BeanID, 10)
	require.NoError(t, err)

	_, err = repo.Consume(lot.BeanID, 55)
	var isErr *apperr.InsufficientStockError
	require.ErrorAs(t, err, &isErr)
	assert.Equal(t, 50.0, isErr.AvailableKG)
	assert.Equal(t, 55.0, isErr.RequestedKG)

	got, err := repo.FindByID(lot.BeanID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, got.CurrentStockKG)
}

func TestConsumeUnknownLot(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.Consume("no-such-lot", 1)
	var nfErr *apperr.NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestConsumeExactRemainderHitsZero(t *testing.T) {
	repo := newRepo(t)
	lot := seedLot(t, repo, 12)

	remaining, err := repo.Consume(lot.BeanID, 12)
	require.NoError(t, err)
	assert.Equal(t, 0.0, remaining)

	got, err := repo.FindByID(lot.BeanID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.CurrentStockKG, 0.0)
	assert.LessOrEqual(t, got.CurrentStockKG, got.InitialStockKG)
}

// Two racing consumers whose amounts fit individually but not jointly:
// exactly one may pass the guard.
func TestConsumeConcurrentOverdraw(t *testing.T) {
	repo := newRepo(t)
	lot := seedLot(t, repo, 10)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Consume(lot.BeanID, 7)
		}(i)
	}
	wg.Wait()

	var insufficient, succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		var isErr *apperr.InsufficientStockError
		require.ErrorAs(t, err, &isErr)
		insufficient++
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, insufficient)

	got, err := repo.FindByID(lot.BeanID)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.CurrentStockKG)
}

func TestStockBoundsInvariantAfterSequence(t *testing.T) {
	repo := newRepo(t)
	lot := seedLot(t, repo, 25)

	for _, amt := range []float64{5, 5, 5, 5, 5, 5} {
		_, _ = repo.Consume(lot.BeanID, amt) // last draw fails, stock exhausted
		got, err := repo.FindByID(lot.BeanID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.CurrentStockKG, 0.0)
		assert.LessOrEqual(t, got.CurrentStockKG, got.InitialStockKG)
	}
}
