package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/StavrosT-sys/Enhanced-Vocab112/internal/testutil"
	"github.com/StavrosT-sys/Enhanced-Vocab112/models"
	"github.com/StavrosT-sys/Enhanced-Vocab112/store"
	"github.com/StavrosT-sys/Enhanced-Vocab112/store/sqlite"
)

type ReviewRepositorySuite struct {
	suite.Suite
	db  *sqlite.DB
	log store.ReviewLog
}

func (s *ReviewRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.log = sqlite.NewReviewRepository(s.db)
}

func (s *ReviewRepositorySuite) appendReviews() {
	ctx := context.Background()
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	reviews := []models.ReviewRecord{
		{Identity: "neko", Quality: models.Good, IntervalDays: 1, EaseFactor: 2.5, ReviewedAt: base},
		{Identity: "inu", Quality: models.Again, IntervalDays: 1, EaseFactor: 1.7, ReviewedAt: base.AddDate(0, 0, 1)},
		{Identity: "neko", Quality: models.Easy, IntervalDays: 7, EaseFactor: 2.6, ReviewedAt: base.AddDate(0, 0, 2)},
		{Identity: "neko", Quality: models.Good, IntervalDays: 18, EaseFactor: 2.6, ReviewedAt: base.AddDate(0, 0, 9)},
	}
	for _, r := range reviews {
		s.Require().NoError(s.log.Append(ctx, r))
	}
}

func (s *ReviewRepositorySuite) TestListAll() {
	s.appendReviews()

	recs, err := s.log.List(context.Background(), models.ReviewFilter{})
	s.Require().NoError(err)
	s.Require().Len(recs, 4)
	s.Equal("neko", recs[0].Identity, "newest review first")
	s.Equal(18, recs[0].IntervalDays)
}

func (s *ReviewRepositorySuite) TestListByIdentity() {
	s.appendReviews()

	recs, err := s.log.List(context.Background(), models.ReviewFilter{Identity: "neko"})
	s.Require().NoError(err)
	s.Require().Len(recs, 3)
	for _, r := range recs {
		s.Equal("neko", r.Identity)
	}
}

func (s *ReviewRepositorySuite) TestListWindowAndLimit() {
	s.appendReviews()
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	recs, err := s.log.List(context.Background(), models.ReviewFilter{
		Since: base.AddDate(0, 0, 1),
		Until: base.AddDate(0, 0, 3),
	})
	s.Require().NoError(err)
	s.Require().Len(recs, 2)

	limited, err := s.log.List(context.Background(), models.ReviewFilter{Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(limited, 1)
	s.Equal(models.Good, limited[0].Quality)
	s.Equal(18, limited[0].IntervalDays)
}

func TestReviewRepositorySuite(t *testing.T) {
	suite.Run(t, new(ReviewRepositorySuite))
}
