// Package render turns assembled reports into their output formats.
// Everything here is pure: no I/O, no clock reads, no shared state.
package render

import (
	"fmt"
	"strings"

	"starquest/internal/i18n"
	"starquest/internal/models"
)

// Markdown renders a period report as a downloadable Markdown document
func Markdown(r *models.PeriodReport) string {
	loc := r.Locale
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.FamilyName)
	fmt.Fprintf(&b, "**%s:** %s  \n", i18n.T("report.period", loc), r.PeriodLabel)
	fmt.Fprintf(&b, "**%s:** %s\n\n", i18n.T("report.generated", loc), r.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC"))

	fmt.Fprintf(&b, "## %s\n\n", i18n.T("report.family_overview", loc))
	fmt.Fprintf(&b, "| %s | %s |\n| --- | --- |\n", i18n.T("report.metric", loc), i18n.T("report.total", loc))
	fmt.Fprintf(&b, "| %s | %d |\n", i18n.T("report.stars_earned", loc), r.TotalStarsEarned)
	fmt.Fprintf(&b, "| %s | %d |\n\n", i18n.T("report.stars_spent", loc), r.TotalStarsSpent)

	if r.PreviousPeriod != nil {
		b.WriteString(comparisonSection(r))
	}

	for _, child := range r.Children {
		b.WriteString(childSection(child, loc))
	}

	return b.String()
}

func comparisonSection(r *models.PeriodReport) string {
	loc := r.Locale
	prev := r.PreviousPeriod
	var b strings.Builder

	fmt.Fprintf(&b, "### %s\n\n", i18n.T("report.vs_previous", loc))
	fmt.Fprintf(&b, "| %s | %s | %s | %s |\n| --- | --- | --- | --- |\n",
		i18n.T("report.metric", loc), i18n.T("report.current", loc),
		i18n.T("report.previous", loc), i18n.T("report.change", loc))
	fmt.Fprintf(&b, "| %s | %d | %d | %s |\n",
		i18n.T("report.stars_earned", loc), r.TotalStarsEarned, prev.TotalStarsEarned,
		formatDelta(float64(r.TotalStarsEarned), float64(prev.TotalStarsEarned)))
	fmt.Fprintf(&b, "| %s | %d | %d | %s |\n\n",
		i18n.T("report.stars_spent", loc), r.TotalStarsSpent, prev.TotalStarsSpent,
		formatDelta(float64(r.TotalStarsSpent), float64(prev.TotalStarsSpent)))

	return b.String()
}

// childSection builds one child's block: always a header, then only the
// subsections with something to say. Each builder returns "" to skip.
func childSection(c models.ChildPeriodStats, loc string) string {
	sections := []func(models.ChildPeriodStats, string) string{
		statsLines,
		creditSection,
		topQuestsSection,
		pendingNotice,
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", c.Name)
	for _, build := range sections {
		if s := build(c, loc); s != "" {
			b.WriteString(s)
		}
	}
	return b.String()
}

func statsLines(c models.ChildPeriodStats, loc string) string {
	if c.StarsEarned == 0 && c.StarsSpent == 0 && c.CurrentBalance == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "- %s: %d\n", i18n.T("report.current_balance", loc), c.CurrentBalance)
	fmt.Fprintf(&b, "- %s: %d\n", i18n.T("report.stars_earned", loc), c.StarsEarned)
	fmt.Fprintf(&b, "- %s: %d\n", i18n.T("report.stars_spent", loc), c.StarsSpent)
	fmt.Fprintf(&b, "- %s: %+d\n\n", i18n.T("report.net_stars", loc), c.NetStars)
	return b.String()
}

func creditSection(c models.ChildPeriodStats, loc string) string {
	if c.CreditBorrowed == 0 && c.CreditRepaid == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n", i18n.T("report.credit", loc))
	fmt.Fprintf(&b, "- %s: %d\n", i18n.T("report.credit_borrowed", loc), c.CreditBorrowed)
	fmt.Fprintf(&b, "- %s: %d\n\n", i18n.T("report.credit_repaid", loc), c.CreditRepaid)
	return b.String()
}

func topQuestsSection(c models.ChildPeriodStats, loc string) string {
	if len(c.TopQuests) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n", i18n.T("report.top_quests", loc))
	fmt.Fprintf(&b, "| %s | %s | %s |\n| --- | --- | --- |\n",
		i18n.T("report.quest", loc), i18n.T("report.stars", loc), i18n.T("report.times", loc))
	for _, q := range c.TopQuests {
		fmt.Fprintf(&b, "| %s | %d | %d |\n", q.Name, q.Stars, q.Count)
	}
	b.WriteString("\n")
	return b.String()
}

func pendingNotice(c models.ChildPeriodStats, loc string) string {
	if c.PendingRequestsCount == 0 {
		return ""
	}
	return "> " + i18n.Tf("report.pending_requests", loc, c.PendingRequestsCount) + "\n\n"
}
