package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"starquest/internal/models"
	"starquest/internal/period"
)

// fakeStore serves canned activity keyed by window start, and can be
// told to fail reads for a given window
type fakeStore struct {
	family      *models.Family
	children    []models.Child
	txsByStart  map[int64][]models.StarTransaction
	redsByStart map[int64][]models.Redemption
	failStarts  map[int64]bool
	familyErr   error
}

func (f *fakeStore) FamilyByID(ctx context.Context, familyID int64) (*models.Family, error) {
	return f.family, f.familyErr
}

func (f *fakeStore) FamilyChildren(ctx context.Context, familyID int64) ([]models.Child, error) {
	return f.children, nil
}

func (f *fakeStore) ApprovedStarTransactions(ctx context.Context, childIDs []int64, start, end time.Time) ([]models.StarTransaction, error) {
	if f.failStarts[start.UnixMilli()] {
		return nil, errors.New("store unavailable")
	}
	return f.txsByStart[start.UnixMilli()], nil
}

func (f *fakeStore) CompletedRedemptions(ctx context.Context, childIDs []int64, start, end time.Time) ([]models.Redemption, error) {
	return f.redsByStart[start.UnixMilli()], nil
}

func (f *fakeStore) ChildBalances(ctx context.Context, childIDs []int64) (map[int64]int, error) {
	return map[int64]int{}, nil
}

func (f *fakeStore) CreditTransactions(ctx context.Context, childIDs []int64, start, end time.Time) ([]models.CreditTransaction, error) {
	return nil, nil
}

func (f *fakeStore) PendingStarCounts(ctx context.Context, childIDs []int64) (map[int64]int, error) {
	return map[int64]int{}, nil
}

func (f *fakeStore) PendingRedemptionCounts(ctx context.Context, childIDs []int64) (map[int64]int, error) {
	return map[int64]int{}, nil
}

func weeklyWindow(t *testing.T) (time.Time, time.Time, time.Time, time.Time) {
	t.Helper()
	cur, err := period.Bounds(period.Weekly, time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Bounds() error: %v", err)
	}
	prev, err := period.PreviousBounds(period.Weekly, cur.Start, cur.End)
	if err != nil {
		t.Fatalf("PreviousBounds() error: %v", err)
	}
	return cur.Start, cur.End, prev.Start, prev.End
}

func TestAssembleReportWithComparison(t *testing.T) {
	start, end, prevStart, _ := weeklyWindow(t)

	store := &fakeStore{
		family:   &models.Family{ID: 1, Name: "Smith"},
		children: []models.Child{{ID: 10, Name: "Alice"}},
		txsByStart: map[int64][]models.StarTransaction{
			start.UnixMilli():     {{ChildID: 10, Stars: 120}},
			prevStart.UnixMilli(): {{ChildID: 10, Stars: 100}},
		},
		redsByStart: map[int64][]models.Redemption{
			start.UnixMilli():     {{ChildID: 10, StarsSpent: 50}},
			prevStart.UnixMilli(): {{ChildID: 10, StarsSpent: 60}},
		},
	}

	report, err := NewReportService(store).AssembleReport(context.Background(), 1, period.Weekly, start, end, "en", true)
	if err != nil {
		t.Fatalf("AssembleReport() error: %v", err)
	}

	if report.TotalStarsEarned != 120 || report.TotalStarsSpent != 50 {
		t.Errorf("totals = (%d, %d), want (120, 50)", report.TotalStarsEarned, report.TotalStarsSpent)
	}
	if report.PreviousPeriod == nil {
		t.Fatal("PreviousPeriod is nil, want comparison data")
	}
	if report.PreviousPeriod.TotalStarsEarned != 100 || report.PreviousPeriod.TotalStarsSpent != 60 {
		t.Errorf("previous totals = (%d, %d), want (100, 60)",
			report.PreviousPeriod.TotalStarsEarned, report.PreviousPeriod.TotalStarsSpent)
	}
	if report.FamilyName != "Smith" {
		t.Errorf("FamilyName = %q", report.FamilyName)
	}
	if report.PeriodLabel == "" {
		t.Error("PeriodLabel is empty")
	}
}

func TestAssembleReportComparisonSoftFailure(t *testing.T) {
	start, end, prevStart, _ := weeklyWindow(t)

	store := &fakeStore{
		family:   &models.Family{ID: 1, Name: "Smith"},
		children: []models.Child{{ID: 10, Name: "Alice"}},
		txsByStart: map[int64][]models.StarTransaction{
			start.UnixMilli(): {{ChildID: 10, Stars: 80}},
		},
		failStarts: map[int64]bool{prevStart.UnixMilli(): true},
	}

	report, err := NewReportService(store).AssembleReport(context.Background(), 1, period.Weekly, start, end, "en", true)
	if err != nil {
		t.Fatalf("AssembleReport() error: %v, want soft failure", err)
	}
	if report.PreviousPeriod != nil {
		t.Error("PreviousPeriod present, want it omitted after comparison fetch failure")
	}
	if report.TotalStarsEarned != 80 {
		t.Errorf("TotalStarsEarned = %d, want 80", report.TotalStarsEarned)
	}
}

func TestAssembleReportPrimaryFailureIsHard(t *testing.T) {
	start, end, _, _ := weeklyWindow(t)

	store := &fakeStore{
		family:     &models.Family{ID: 1, Name: "Smith"},
		children:   []models.Child{{ID: 10, Name: "Alice"}},
		failStarts: map[int64]bool{start.UnixMilli(): true},
	}

	_, err := NewReportService(store).AssembleReport(context.Background(), 1, period.Weekly, start, end, "en", false)
	if err == nil {
		t.Fatal("expected error when the reporting window fetch fails")
	}
}

func TestAssembleReportFamilyNotFound(t *testing.T) {
	start, end, _, _ := weeklyWindow(t)

	store := &fakeStore{family: nil}
	_, err := NewReportService(store).AssembleReport(context.Background(), 99, period.Weekly, start, end, "en", false)
	if !errors.Is(err, ErrFamilyNotFound) {
		t.Fatalf("err = %v, want ErrFamilyNotFound", err)
	}
}

func TestAssembleReportNoChildren(t *testing.T) {
	start, end, _, _ := weeklyWindow(t)

	store := &fakeStore{family: &models.Family{ID: 1, Name: "Empty"}}
	report, err := NewReportService(store).AssembleReport(context.Background(), 1, period.Weekly, start, end, "en", false)
	if err != nil {
		t.Fatalf("AssembleReport() error: %v, want empty report", err)
	}
	if len(report.Children) != 0 {
		t.Errorf("len(Children) = %d, want 0", len(report.Children))
	}
	if report.TotalStarsEarned != 0 || report.TotalStarsSpent != 0 {
		t.Errorf("totals = (%d, %d), want zeros", report.TotalStarsEarned, report.TotalStarsSpent)
	}
}
