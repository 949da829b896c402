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
	roastRepoImp "roastlog/pkg/roast/repositoryImp"
	roastSvcImp "roastlog/pkg/roast/serviceImp"
	"roastlog/pkg/score/repository"
	scoreRepoImp "roastlog/pkg/score/repositoryImp"
	"roastlog/pkg/score/service"
)

type fixture struct {
	db  *gorm.DB
	svc service.ScoreService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	return &fixture{db: db, svc: New(scoreRepoImp.New(db), roastRepoImp.New(db))}
}

func (f *fixture) seedRoast(t *testing.T, name, date string) string {
	t.Helper()
	res, err := roastSvcImp.New(roastRepoImp.New(f.db), "F").RecordRoast(&entities.Roast{
		Date: date, CoffeeName: name,
		AgtronWhole: 60, AgtronGround: 65, DropTemp: 410,
		DevelopmentTime: 3.5, TotalTime: 11,
	})
	require.NoError(t, err)
	return res.RoastID
}

func eights(roastID, date string) *entities.CuppingScore {
	return &entities.CuppingScore{
		RoastID: roastID, Date: date,
		FragranceAroma: 8, Flavor: 8, Aftertaste: 8, Acidity: 8,
		Body: 8, Uniformity: 8, CleanCup: 8, Sweetness: 8,
		Overall: 8, Defects: 0,
	}
}

func TestRecordScoreComputesTotal(t *testing.T) {
	f := newFixture(t)
	roastID := f.seedRoast(t, "Kenya AA", "2026-08-10")

	s := eights(roastID, "2026-08-12")
	s.TotalScore = 123 // caller-supplied total is discarded

	res, err := f.svc.RecordScore(s)
	require.NoError(t, err)
	assert.InDelta(t, 80, res.TotalScore, 1e-9)

	var stored entities.CuppingScore
	require.NoError(t, f.db.Where("score_id = ?", res.ScoreID).First(&stored).Error)
	assert.InDelta(t, 80, stored.TotalScore, 1e-9)
}

func TestRecordScoreUnknownRoast(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.RecordScore(eights("no-such-roast", "2026-08-12"))
	var nfErr *apperr.NotFoundError
	require.ErrorAs(t, err, &nfErr)

	var n int64
	require.NoError(t, f.db.Model(&entities.CuppingScore{}).Count(&n).Error)
	assert.Zero(t, n, "no score row on not-found")
}

func TestRecordScoreValidationBlocksWrite(t *testing.T) {
	f := newFixture(t)
	roastID := f.seedRoast(t, "Kenya AA", "2026-08-10")

	s := eights(roastID, "2026-08-12")
	s.Acidity = 10.5
	s.Sweetness = 7.1

	_, err := f.svc.RecordScore(s)
	var vErr *apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "acidity")
	assert.Contains(t, vErr.Fields, "sweetness")

	var n int64
	require.NoError(t, f.db.Model(&entities.CuppingScore{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestListScoresFilters(t *testing.T) {
	f := newFixture(t)
	kenyaID := f.seedRoast(t, "Kenya AA", "2026-08-01")
	hondurasID := f.seedRoast(t, "Honduras SHG", "2026-08-02")

	for _, tc := range []struct{ roast, date string }{
		{kenyaID, "2026-08-03"},
		{kenyaID, "2026-08-06"},
		{hondurasID, "2026-08-06"},
	} {
		_, err := f.svc.RecordScore(eights(tc.roast, tc.date))
		require.NoError(t, err)
	}

	out, err := f.svc.ListScores(repository.Filter{CoffeeNames: []string{"Kenya AA"}})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	out, err = f.svc.ListScores(repository.Filter{From: "2026-08-06", To: "2026-08-06"})
	require.NoError(t, err)
	assert.Len(t, out, 2) // inclusive on both ends
}
