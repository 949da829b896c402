package serviceImp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"roastlog/database"
	"roastlog/entities"
	"roastlog/pkg/apperr"
	invRepoImp "roastlog/pkg/inventory/repositoryImp"
	invSvcImp "roastlog/pkg/inventory/serviceImp"
	"roastlog/pkg/roast/repository"
	roastRepoImp "roastlog/pkg/roast/repositoryImp"
	"roastlog/pkg/roast/service"
)

type fixture struct {
	db  *gorm.DB
	svc service.RoastService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	return &fixture{db: db, svc: New(roastRepoImp.New(db), "F")}
}

func (f *fixture) seedLot(t *testing.T, initialKG float64) string {
	t.Helper()
	lot, err := invSvcImp.New(invRepoImp.New(f.db)).CreateLot(&entities.GreenBeanLot{
		Name:           "Sidamo Lot 4",
		Process:        "Natural",
		PurchaseDate:   "2026-06-01",
		InitialStockKG: initialKG,
		PricePerKG:     14,
	})
	require.NoError(t, err)
	return lot.BeanID
}

func validRoast() *entities.Roast {
	return &entities.Roast{
		Date:            "2026-08-10",
		CoffeeName:      "Sidamo Natural",
		AgtronWhole:     58,
		AgtronGround:    64,
		DropTemp:        405,
		DevelopmentTime: 4,
		TotalTime:       12,
	}
}

func TestRecordRoastWithoutLot(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.RecordRoast(validRoast())
	require.NoError(t, err)
	assert.NotEmpty(t, res.RoastID)
	assert.Nil(t, res.NewStockKG)
	assert.InDelta(t, 0.333, res.DTRRatio, 0.001)

	got, err := f.svc.GetRoast(res.RoastID)
	require.NoError(t, err)
	assert.Equal(t, "F", got.DropTempUnit)
	assert.InDelta(t, 0.333, got.DTRRatio, 0.001)
}

func TestRecordRoastConsumesLot(t *testing.T) {
	f := newFixture(t)
	beanID := f.seedLot(t, 60)

	r := validRoast()
	amount := 10.0
	r.BeanID = &beanID
	r.AmountUsedKG = &amount

	res, err := f.svc.RecordRoast(r)
	require.NoError(t, err)
	require.NotNil(t, res.NewStockKG)
	assert.Equal(t, 50.0, *res.NewStockKG)

	// a second roast that overdraws is rejected and nothing lands
	r2 := validRoast()
	over := 55.0
	r2.BeanID = &beanID
	r2.AmountUsedKG = &over
	_, err = f.svc.RecordRoast(r2)
	var isErr *apperr.InsufficientStockError
	require.ErrorAs(t, err, &isErr)
	assert.Equal(t, 50.0, isErr.AvailableKG)

	var lot entities.GreenBeanLot
	require.NoError(t, f.db.Where("bean_id = ?", beanID).First(&lot).Error)
	assert.Equal(t, 50.0, lot.CurrentStockKG)

	var n int64
	require.NoError(t, f.db.Model(&entities.Roast{}).Count(&n).Error)
	assert.EqualValues(t, 1, n, "rejected roast must not be persisted")
}

func TestRecordRoastUnknownLot(t *testing.T) {
	f := newFixture(t)

	r := validRoast()
	bean := "ghost-lot"
	amount := 1.0
	r.BeanID = &bean
	r.AmountUsedKG = &amount

	_, err := f.svc.RecordRoast(r)
	var nfErr *apperr.NotFoundError
	require.ErrorAs(t, err, &nfErr)

	var n int64
	require.NoError(t, f.db.Model(&entities.Roast{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestRecordRoastDiscardsCallerDTR(t *testing.T) {
	f := newFixture(t)

	r := validRoast()
	r.DTRRatio = 0.99 // whatever the caller claims is ignored
	r.TotalTime = 0
	r.DevelopmentTime = 0

	res, err := f.svc.RecordRoast(r)
	require.NoError(t, err)
	assert.Zero(t, res.DTRRatio)
}

func TestRecordRoastValidationBlocksWrite(t *testing.T) {
	f := newFixture(t)

	r := validRoast()
	r.CoffeeName = ""
	r.AgtronWhole = 300

	_, err := f.svc.RecordRoast(r)
	var vErr *apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "coffee_name")
	assert.Contains(t, vErr.Fields, "agtron_whole")

	var n int64
	require.NoError(t, f.db.Model(&entities.Roast{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestListRoastsDateRangeInclusive(t *testing.T) {
	f := newFixture(t)

	for _, d := range []string{"2026-08-01", "2026-08-05", "2026-08-09", "2026-08-12"} {
		r := validRoast()
		r.Date = d
		_, err := f.svc.RecordRoast(r)
		require.NoError(t, err)
	}

	out, err := f.svc.ListRoasts(repository.Filter{From: "2026-08-05", To: "2026-08-09"})
	require.NoError(t, err)
	require.Len(t, out, 2)
	// date descending by default
	assert.Equal(t, "2026-08-09", out[0].Date)
	assert.Equal(t, "2026-08-05", out[1].Date)
}

func TestListRoastsCoffeeNameFilter(t *testing.T) {
	f := newFixture(t)

	names := []string{"Sidamo Natural", "Huila Washed", "Sidamo Natural"}
	for _, n := range names {
		r := validRoast()
		r.CoffeeName = n
		_, err := f.svc.RecordRoast(r)
		require.NoError(t, err)
	}

	out, err := f.svc.ListRoasts(repository.Filter{CoffeeNames: []string{"Sidamo Natural"}})
	require.NoError(t, err)
	assert.Len(t, out, 2)
	for _, r := range out {
		assert.Equal(t, "Sidamo Natural", r.CoffeeName)
	}
}
