package render

import (
	"strings"
	"testing"
	"time"

	"starquest/internal/models"
)

func sampleReport() *models.PeriodReport {
	return &models.PeriodReport{
		FamilyID:    1,
		FamilyName:  "Smith",
		Locale:      "en",
		PeriodLabel: "Feb 9, 2026 – Feb 15, 2026",
		PeriodStart: time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 2, 15, 23, 59, 59, 999000000, time.UTC),
		GeneratedAt: time.Date(2026, 2, 16, 8, 0, 0, 0, time.UTC),
		Children: []models.ChildPeriodStats{
			{
				ChildID:        10,
				Name:           "Alice",
				StarsEarned:    80,
				StarsSpent:     30,
				NetStars:       50,
				CurrentBalance: 45,
				TopQuests: []models.QuestSummary{
					{Name: "Homework", Stars: 5, Count: 12},
				},
			},
		},
		TotalStarsEarned: 80,
		TotalStarsSpent:  30,
	}
}

func TestMarkdownBasicStructure(t *testing.T) {
	md := Markdown(sampleReport())

	for _, want := range []string{
		"# Smith",
		"**Period:** Feb 9, 2026 – Feb 15, 2026",
		"## Family Overview",
		"| Stars Earned | 80 |",
		"| Stars Spent | 30 |",
		"## Alice",
		"- Net Stars: +50",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q\n%s", want, md)
		}
	}
}

func TestMarkdownTopQuests(t *testing.T) {
	md := Markdown(sampleReport())

	if !strings.Contains(md, "### Top Quests") {
		t.Error("markdown missing Top Quests heading")
	}
	if !strings.Contains(md, "| Homework | 5 | 12 |") {
		t.Errorf("markdown missing Homework row\n%s", md)
	}

	// A child with no quests gets no Top Quests heading
	r := sampleReport()
	r.Children[0].TopQuests = nil
	if strings.Contains(Markdown(r), "Top Quests") {
		t.Error("Top Quests heading rendered for child with empty topQuests")
	}
}

func TestMarkdownComparisonSection(t *testing.T) {
	r := sampleReport()

	if strings.Contains(Markdown(r), "vs. Previous Period") {
		t.Error("comparison section rendered without previous period data")
	}

	r.TotalStarsEarned = 120
	r.TotalStarsSpent = 50
	r.PreviousPeriod = &models.PeriodComparison{TotalStarsEarned: 100, TotalStarsSpent: 60}
	md := Markdown(r)

	if !strings.Contains(md, "### vs. Previous Period") {
		t.Error("comparison section missing")
	}
	if !strings.Contains(md, "↑ +20.0%") {
		t.Errorf("earned delta missing\n%s", md)
	}
	if !strings.Contains(md, "↓ -16.7%") {
		t.Errorf("spent delta missing\n%s", md)
	}
}

func TestMarkdownCreditSectionConditional(t *testing.T) {
	r := sampleReport()
	if strings.Contains(Markdown(r), "### Credit") {
		t.Error("credit section rendered with zero borrow and repay")
	}

	r.Children[0].CreditBorrowed = 15
	md := Markdown(r)
	if !strings.Contains(md, "### Credit") {
		t.Error("credit section missing when borrowed > 0")
	}
	if !strings.Contains(md, "- Borrowed: 15") {
		t.Errorf("borrowed line missing\n%s", md)
	}
}

func TestMarkdownPendingNotice(t *testing.T) {
	r := sampleReport()
	if strings.Contains(Markdown(r), "pending request") {
		t.Error("pending notice rendered with zero pending requests")
	}

	r.Children[0].PendingRequestsCount = 2
	if !strings.Contains(Markdown(r), "> 2 pending request(s) awaiting review") {
		t.Error("pending notice missing")
	}
}

func TestMarkdownQuietChildStillListed(t *testing.T) {
	r := sampleReport()
	r.Children = append(r.Children, models.ChildPeriodStats{ChildID: 11, Name: "Bob"})

	md := Markdown(r)
	if !strings.Contains(md, "## Bob") {
		t.Error("child with no activity missing header")
	}
	// Header only: no stat lines for Bob
	bobSection := md[strings.Index(md, "## Bob"):]
	if strings.Contains(bobSection, "Net Stars") {
		t.Error("stat lines rendered for child with all-zero fields")
	}
}

func TestMarkdownChineseLocale(t *testing.T) {
	r := sampleReport()
	r.Locale = "zh-CN"
	md := Markdown(r)

	if !strings.Contains(md, "## 家庭总览") {
		t.Errorf("missing zh-CN overview heading\n%s", md)
	}
	if !strings.Contains(md, "获得星星") {
		t.Error("missing zh-CN stars earned label")
	}
}
