package clickhouse

import (
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
	"github.com/golang/mock/gomock"
)

func (s *RepositorySuite) TestInsertVerdictsAndSummary() {
	s.metrics.EXPECT().Observe("insert_verdicts", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("verdict_summary", gomock.Nil(), gomock.Any()).Times(2)

	base := time.Now().UTC().Truncate(time.Millisecond)
	records := []model.VerdictRecord{
		{EvaluatedAt: base, BatchID: "B1", UnitID: "U1", Status: model.VerdictAuthentic, Reasons: []string{"All checks passed."}, EventCount: 2},
		{EvaluatedAt: base.Add(time.Minute), BatchID: "B1", UnitID: "U1", Status: model.VerdictNotSafe,
			Reasons: []string{"Duplicate scan detected"}, FailedChecks: []string{"duplicate_scan"}, EventCount: 2},
		{EvaluatedAt: base, BatchID: "B2", Status: model.VerdictAuthentic, EventCount: 5},
	}

	s.Require().NoError(s.repo.InsertVerdicts(s.testCtx, records))
	s.Equal(uint64(len(records)), s.countRows("verification_verdicts"))

	summary, err := s.repo.VerdictSummary(s.testCtx, "B1")
	s.Require().NoError(err)
	s.Equal(uint64(1), summary.Authentic)
	s.Equal(uint64(1), summary.NotSafe)
	s.True(summary.LastEvaluated.Equal(base.Add(time.Minute)), "last evaluated = %v", summary.LastEvaluated)

	empty, err := s.repo.VerdictSummary(s.testCtx, "unknown")
	s.Require().NoError(err)
	s.Zero(empty.Authentic + empty.NotSafe)
	s.True(empty.LastEvaluated.IsZero())
}
