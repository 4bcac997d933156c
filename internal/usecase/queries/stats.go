package queries

import (
	"context"
	"time"

	"course-checkout/internal/pkg/clock"
)

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// WeeklyStatsWindow is the number of weeks, the current one included, in the
// weekly series.
const WeeklyStatsWindow = 12

type StatsReadStore interface {
	Counts(ctx context.Context) (*StatsCounts, error)
	UserSignups(ctx context.Context, period Period, since time.Time) ([]Bucket, error)
	InstructorForms(ctx context.Context, period Period, since time.Time) ([]Bucket, error)
}

type StatsQueries interface {
	Get(ctx context.Context) (*StatsView, error)
}

type statsQueriesImpl struct {
	store StatsReadStore
	clock clock.Clock
}

func NewStatsQueries(store StatsReadStore, clk clock.Clock) StatsQueries {
	return &statsQueriesImpl{store: store, clock: clk}
}

// Get returns headline counts plus weekly series over the trailing window and
// monthly series for the current year. Periods are UTC and weeks start Monday.
func (q *statsQueriesImpl) Get(ctx context.Context) (*StatsView, error) {
	counts, err := q.store.Counts(ctx)
	if err != nil {
		return nil, err
	}
	now := q.clock.Now().UTC()
	weekSince := StartOfWeek(now).AddDate(0, 0, -7*(WeeklyStatsWindow-1))
	monthSince := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	v := &StatsView{StatsCounts: *counts}
	series := []struct {
		dst   *[]Bucket
		fetch func(context.Context, Period, time.Time) ([]Bucket, error)
		p     Period
		since time.Time
	}{
		{&v.WeeklyUserStats, q.store.UserSignups, PeriodWeek, weekSince},
		{&v.MonthlyUserStats, q.store.UserSignups, PeriodMonth, monthSince},
		{&v.WeeklyInstructorStats, q.store.InstructorForms, PeriodWeek, weekSince},
		{&v.MonthlyInstructorStats, q.store.InstructorForms, PeriodMonth, monthSince},
	}
	for _, s := range series {
		buckets, err := s.fetch(ctx, s.p, s.since)
		if err != nil {
			return nil, err
		}
		if buckets == nil {
			buckets = []Bucket{}
		}
		*s.dst = buckets
	}
	return v, nil
}

// StartOfWeek truncates t to Monday 00:00 in t's location.
func StartOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -((int(day.Weekday()) + 6) % 7))
}
