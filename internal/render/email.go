package render

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"starquest/internal/i18n"
	"starquest/internal/models"
)

// Brand palette shared by all emails
const (
	colorBrand   = "#f5a623"
	colorSuccess = "#2e7d32"
	colorError   = "#c62828"
)

// emailLayout wraps a body fragment in the shared branded frame:
// header, content card, view-in-app button and footer. viewURL may be
// empty, in which case the button is omitted.
func emailLayout(title, body, viewURL, locale string) string {
	var button string
	if viewURL != "" {
		button = fmt.Sprintf(`
		<p style="text-align: center;">
			<a href="%s" class="button">%s</a>
		</p>`, html.EscapeString(viewURL), html.EscapeString(i18n.T("email.view_in_app", locale)))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: %s; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		.button { display: inline-block; padding: 12px 30px; background-color: %s; color: white; text-decoration: none; border-radius: 5px; margin: 20px 0; }
		.footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
		table { border-collapse: collapse; width: 100%%; margin: 10px 0; }
		th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
		th { background-color: #eee; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1>%s</h1>
		</div>
		<div class="content">
%s%s
		</div>
		<div class="footer">
			<p>%s</p>
		</div>
	</div>
</body>
</html>
`, colorBrand, colorBrand, html.EscapeString(title), body, button, html.EscapeString(i18n.T("email.footer", locale)))
}

// WeeklyEmailHTML renders a period report as the weekly report email
func WeeklyEmailHTML(r *models.PeriodReport, viewURL string) string {
	loc := r.Locale
	var b strings.Builder

	fmt.Fprintf(&b, "<h2>%s</h2>\n", html.EscapeString(r.PeriodLabel))
	fmt.Fprintf(&b, "<table>\n<tr><th>%s</th><th>%s</th>",
		html.EscapeString(i18n.T("report.metric", loc)), html.EscapeString(i18n.T("report.total", loc)))
	if r.PreviousPeriod != nil {
		fmt.Fprintf(&b, "<th>%s</th>", html.EscapeString(i18n.T("report.change", loc)))
	}
	b.WriteString("</tr>\n")

	writeTotalRow := func(label string, curr int, prev int) {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td>", html.EscapeString(label), curr)
		if r.PreviousPeriod != nil {
			d := ChangePercent(float64(curr), float64(prev))
			color := "#333"
			if d > 0 {
				color = colorSuccess
			} else if d < 0 {
				color = colorError
			}
			fmt.Fprintf(&b, `<td style="color: %s;">%s</td>`, color, formatDelta(float64(curr), float64(prev)))
		}
		b.WriteString("</tr>\n")
	}

	prevEarned, prevSpent := 0, 0
	if r.PreviousPeriod != nil {
		prevEarned = r.PreviousPeriod.TotalStarsEarned
		prevSpent = r.PreviousPeriod.TotalStarsSpent
	}
	writeTotalRow(i18n.T("report.stars_earned", loc), r.TotalStarsEarned, prevEarned)
	writeTotalRow(i18n.T("report.stars_spent", loc), r.TotalStarsSpent, prevSpent)
	b.WriteString("</table>\n")

	for _, c := range r.Children {
		fmt.Fprintf(&b, "<h3>%s</h3>\n<p>", html.EscapeString(c.Name))
		fmt.Fprintf(&b, "%s: <strong>%d</strong> &nbsp; ", html.EscapeString(i18n.T("report.current_balance", loc)), c.CurrentBalance)
		fmt.Fprintf(&b, `%s: <span style="color: %s;">%d</span> &nbsp; `, html.EscapeString(i18n.T("report.stars_earned", loc)), colorSuccess, c.StarsEarned)
		fmt.Fprintf(&b, `%s: <span style="color: %s;">%d</span>`, html.EscapeString(i18n.T("report.stars_spent", loc)), colorError, c.StarsSpent)
		b.WriteString("</p>\n")

		if len(c.TopQuests) > 0 {
			top := c.TopQuests[0]
			fmt.Fprintf(&b, "<p>%s: %s × %d</p>\n",
				html.EscapeString(i18n.T("report.top_quests", loc)), html.EscapeString(top.Name), top.Count)
		}
	}

	title := fmt.Sprintf("StarQuest %s", i18n.T("email.weekly_title", loc))
	return emailLayout(title, b.String(), viewURL, loc)
}

// SettlementEmailHTML renders an externally computed settlement result
// as the settlement notice email. Children with zero interest and zero
// credit-limit change are omitted from the list; when the family total
// is zero, or there are no children at all, a single no-interest
// message replaces the list.
func SettlementEmailHTML(s *models.SettlementResult, locale, viewURL string) string {
	locale = i18n.Normalize(locale)
	var b strings.Builder

	if s.TotalInterestCharged == 0 || len(s.Children) == 0 {
		fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(i18n.T("settlement.no_interest", locale)))
	} else {
		for _, child := range s.Children {
			if child.InterestCharged == 0 && child.CreditLimitChange == 0 {
				continue
			}
			b.WriteString(settlementChildSection(child, locale))
		}
		fmt.Fprintf(&b, "<p><strong>%s: %d</strong></p>\n",
			html.EscapeString(i18n.T("settlement.total", locale)), s.TotalInterestCharged)
	}

	title := fmt.Sprintf("StarQuest %s", i18n.T("email.settlement_title", locale))
	return emailLayout(title, b.String(), viewURL, locale)
}

func settlementChildSection(c models.ChildSettlement, locale string) string {
	var b strings.Builder

	name := i18n.LocalizedName(c.Name, c.NameZh, locale)
	fmt.Fprintf(&b, "<h3>%s</h3>\n", html.EscapeString(name))

	if len(c.Tiers) > 0 {
		tiers := make([]models.InterestTier, len(c.Tiers))
		copy(tiers, c.Tiers)
		sort.Slice(tiers, func(i, j int) bool { return tiers[i].Order < tiers[j].Order })

		fmt.Fprintf(&b, "<table>\n<tr><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th></tr>\n",
			html.EscapeString(i18n.T("settlement.tier", locale)),
			html.EscapeString(i18n.T("settlement.range", locale)),
			html.EscapeString(i18n.T("settlement.debt_in_tier", locale)),
			html.EscapeString(i18n.T("settlement.rate", locale)),
			html.EscapeString(i18n.T("settlement.interest", locale)))
		for _, tier := range tiers {
			fmt.Fprintf(&b, "<tr><td>%d</td><td>%s</td><td>%d</td><td>%.1f%%</td><td>%d</td></tr>\n",
				tier.Order, tierRange(tier, locale), tier.DebtInTier, tier.Rate*100, tier.Interest)
		}
		b.WriteString("</table>\n")
	}

	fmt.Fprintf(&b, "<p>%s: <strong>%d</strong></p>\n",
		html.EscapeString(i18n.T("settlement.interest", locale)), c.InterestCharged)

	if c.CreditLimitChange != 0 {
		color, prefix := colorError, ""
		if c.CreditLimitChange > 0 {
			color, prefix = colorSuccess, "+"
		}
		fmt.Fprintf(&b, `<p>%s: <span style="color: %s;">%s%d</span> (%s: %d)</p>`+"\n",
			html.EscapeString(i18n.T("settlement.limit_change", locale)), color, prefix, c.CreditLimitChange,
			html.EscapeString(i18n.T("settlement.new_limit", locale)), c.NewCreditLimit)
	}

	return b.String()
}

// tierRange formats a tier's [min, max) debt band; a nil max is open-ended
func tierRange(t models.InterestTier, locale string) string {
	if t.MaxDebt == nil {
		return fmt.Sprintf("%d – %s", t.MinDebt, i18n.T("settlement.unlimited", locale))
	}
	return fmt.Sprintf("%d – %d", t.MinDebt, *t.MaxDebt)
}
