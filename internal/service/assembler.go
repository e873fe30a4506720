package service

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"starquest/internal/i18n"
	"starquest/internal/models"
	"starquest/internal/period"
)

// ReportService assembles period reports from the activity store
type ReportService struct {
	store ActivityStore
}

// NewReportService creates a new report service
func NewReportService(store ActivityStore) *ReportService {
	return &ReportService{store: store}
}

// Family looks up a family row, mapping absence to ErrFamilyNotFound
func (s *ReportService) Family(ctx context.Context, familyID int64) (*models.Family, error) {
	family, err := s.store.FamilyByID(ctx, familyID)
	if err != nil {
		return nil, err
	}
	if family == nil {
		return nil, ErrFamilyNotFound
	}
	return family, nil
}

// AssembleReport fetches and aggregates one family's activity for
// [start, end]. A failure on the reporting window is a hard error. When
// withComparison is set, the immediately preceding window is fetched
// concurrently; if that fetch fails the comparison block is dropped and
// the report still succeeds.
func (s *ReportService) AssembleReport(ctx context.Context, familyID int64, periodType period.Type, start, end time.Time, locale string, withComparison bool) (*models.PeriodReport, error) {
	locale = i18n.Normalize(locale)

	var primary *RawPeriodData
	var previous *models.PeriodComparison

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		raw, err := FetchBaseData(gctx, s.store, familyID, start, end)
		if err != nil {
			return err
		}
		primary = raw
		return nil
	})

	if withComparison {
		g.Go(func() error {
			prev, err := period.PreviousBounds(periodType, start, end)
			if err != nil {
				log.Printf("comparison skipped: %v", err)
				return nil
			}
			raw, err := FetchBaseData(gctx, s.store, familyID, prev.Start, prev.End)
			if err != nil {
				// Soft failure: the report renders without the
				// comparison block
				log.Printf("comparison fetch failed for family %d: %v", familyID, err)
				return nil
			}
			_, earned, spent := BuildChildStats(raw, locale)
			previous = &models.PeriodComparison{
				TotalStarsEarned: earned,
				TotalStarsSpent:  spent,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	children, totalEarned, totalSpent := BuildChildStats(primary, locale)

	return &models.PeriodReport{
		FamilyID:         primary.Family.ID,
		FamilyName:       primary.Family.Name,
		Locale:           locale,
		PeriodLabel:      period.Label(periodType, start, end, locale),
		PeriodStart:      start,
		PeriodEnd:        end,
		GeneratedAt:      time.Now().UTC(),
		Children:         children,
		TotalStarsEarned: totalEarned,
		TotalStarsSpent:  totalSpent,
		PreviousPeriod:   previous,
	}, nil
}
