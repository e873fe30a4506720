package i18n

import (
	"fmt"
	"time"
)

// Supported locales
const (
	LocaleEN   = "en"
	LocaleZhCN = "zh-CN"
)

// DefaultLocale is used when a request carries no locale
const DefaultLocale = LocaleEN

// translations holds the per-locale label tables. Lookup state only;
// never mutated after init.
var translations = map[string]map[string]string{
	LocaleEN: {
		"report.period":           "Period",
		"report.generated":        "Generated",
		"report.family_overview":  "Family Overview",
		"report.metric":           "Metric",
		"report.total":            "Total",
		"report.stars_earned":     "Stars Earned",
		"report.stars_spent":      "Stars Spent",
		"report.net_stars":        "Net Stars",
		"report.current_balance":  "Current Balance",
		"report.vs_previous":      "vs. Previous Period",
		"report.current":          "Current",
		"report.previous":         "Previous",
		"report.change":           "Change",
		"report.credit":           "Credit",
		"report.credit_borrowed":  "Borrowed",
		"report.credit_repaid":    "Repaid",
		"report.top_quests":       "Top Quests",
		"report.quest":            "Quest",
		"report.stars":            "Stars",
		"report.times":            "Times",
		"report.pending_requests": "%d pending request(s) awaiting review",
		"email.view_in_app":       "View in App",
		"email.footer":            "This is an automated email from StarQuest. Please do not reply.",
		"email.weekly_title":      "Weekly Report",
		"email.settlement_title":  "Credit Settlement Notice",
		"settlement.no_interest":  "No interest was charged this period.",
		"settlement.tier":         "Tier",
		"settlement.range":        "Debt Range",
		"settlement.debt_in_tier": "Debt in Tier",
		"settlement.rate":         "Rate",
		"settlement.interest":     "Interest",
		"settlement.unlimited":    "Unlimited",
		"settlement.total":        "Total interest charged",
		"settlement.limit_change": "Credit limit change",
		"settlement.new_limit":    "New credit limit",
		"subject.weekly":          "StarQuest Weekly Report — %s",
		"subject.settlement":      "StarQuest Credit Settlement Notice — %s",
	},
	LocaleZhCN: {
		"report.period":           "统计周期",
		"report.generated":        "生成时间",
		"report.family_overview":  "家庭总览",
		"report.metric":           "指标",
		"report.total":            "合计",
		"report.stars_earned":     "获得星星",
		"report.stars_spent":      "消耗星星",
		"report.net_stars":        "星星净值",
		"report.current_balance":  "当前余额",
		"report.vs_previous":      "与上一周期对比",
		"report.current":          "本期",
		"report.previous":         "上期",
		"report.change":           "变化",
		"report.credit":           "信用",
		"report.credit_borrowed":  "借入",
		"report.credit_repaid":    "偿还",
		"report.top_quests":       "热门任务",
		"report.quest":            "任务",
		"report.stars":            "星星",
		"report.times":            "次数",
		"report.pending_requests": "有 %d 条待审核请求",
		"email.view_in_app":       "在应用中查看",
		"email.footer":            "这是来自 StarQuest 的自动邮件，请勿回复。",
		"email.weekly_title":      "每周报告",
		"email.settlement_title":  "信用结算通知",
		"settlement.no_interest":  "本周期未收取任何利息。",
		"settlement.tier":         "档位",
		"settlement.range":        "欠款区间",
		"settlement.debt_in_tier": "档内欠款",
		"settlement.rate":         "利率",
		"settlement.interest":     "利息",
		"settlement.unlimited":    "无上限",
		"settlement.total":        "利息合计",
		"settlement.limit_change": "信用额度调整",
		"settlement.new_limit":    "新信用额度",
		"subject.weekly":          "StarQuest 每周报告 — %s",
		"subject.settlement":      "StarQuest 信用结算通知 — %s",
	},
}

// Normalize maps an empty or unknown locale to the default
func Normalize(locale string) string {
	if _, ok := translations[locale]; ok {
		return locale
	}
	return DefaultLocale
}

// T resolves a label key for a locale. Fallback chain: requested locale,
// then English, then the key itself. Never errors.
func T(key, locale string) string {
	if table, ok := translations[locale]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := translations[LocaleEN][key]; ok {
		return s
	}
	return key
}

// Tf resolves a key and applies fmt arguments to it
func Tf(key, locale string, args ...interface{}) string {
	return fmt.Sprintf(T(key, locale), args...)
}

// LocalizedName picks the Chinese name when the locale is zh-CN and one
// is present, otherwise the default name. Used for quest names, child
// display names and similar bilingual records.
func LocalizedName(name, nameZh, locale string) string {
	if locale == LocaleZhCN && nameZh != "" {
		return nameZh
	}
	return name
}

// FormatDate renders a calendar date for the locale
func FormatDate(t time.Time, locale string) string {
	if locale == LocaleZhCN {
		return t.UTC().Format("2006年1月2日")
	}
	return t.UTC().Format("Jan 2, 2006")
}

// FormatMonthYear renders a month label for the locale
func FormatMonthYear(t time.Time, locale string) string {
	if locale == LocaleZhCN {
		return t.UTC().Format("2006年1月")
	}
	return t.UTC().Format("January 2006")
}
