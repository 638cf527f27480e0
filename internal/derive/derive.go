// Package derive computes read-only views of a snapshot. Nothing here
// mutates state or performs I/O.
package derive

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/lifehub/internal/constants"
	"github.com/julianstephens/lifehub/internal/models"
)

var hundred = decimal.NewFromInt(100)

type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// ComputeTotals sums every transaction ever recorded. The dashboard labels
// Net as "this month" but it is an all-time figure.
func ComputeTotals(txns []models.Transaction) Totals {
	var t Totals
	for _, tx := range txns {
		switch tx.Type {
		case models.TransactionIncome:
			t.Income = t.Income.Add(tx.Amount)
		case models.TransactionExpense:
			t.Expense = t.Expense.Add(tx.Amount)
		}
	}
	t.Net = t.Income.Sub(t.Expense)
	return t
}

type FundProgress struct {
	Name      string
	Saved     decimal.Decimal // max(0, net)
	Displayed decimal.Decimal // saved, capped at the target
	Target    decimal.Decimal
	Percent   float64 // 0..100
}

// EmergencyFund treats positive net cash as money put towards the fund.
func EmergencyFund(s models.Store) FundProgress {
	saved := decimal.Max(decimal.Zero, ComputeTotals(s.Txns).Net)
	target := s.EmergencyFundTarget

	p := FundProgress{
		Name:      s.EmergencyFundName,
		Saved:     saved,
		Displayed: decimal.Min(saved, target),
		Target:    target,
	}
	if target.IsPositive() {
		pct := saved.Div(target).Mul(hundred).InexactFloat64()
		p.Percent = math.Min(100, math.Max(0, pct))
	}
	return p
}

// CountdownDays returns the whole days left until the countdown target in
// now's location, rounded up and never negative.
func CountdownDays(now time.Time) int {
	remaining := constants.CountdownTarget(now.Location()).Sub(now)
	days := math.Ceil(float64(remaining) / float64(constants.Day))
	return int(math.Max(0, days))
}

// CountdownMonths approximates days as 30-day months, rounded up.
func CountdownMonths(days int) int {
	if days <= 0 {
		return 0
	}
	return (days + 29) / 30
}

// TodayIndex maps now to a weekly habit slot, Monday=0 through Sunday=6.
func TodayIndex(now time.Time) int {
	return (int(now.Weekday()) + 6) % 7
}

type ReadingGroups struct {
	Finished []models.ReadingItem
	Current  []models.ReadingItem
	Upcoming []models.ReadingItem
}

// GroupReading partitions items by status, keeping their relative order.
func GroupReading(items []models.ReadingItem) ReadingGroups {
	var g ReadingGroups
	for _, item := range items {
		switch item.Status {
		case models.ReadingFinished:
			g.Finished = append(g.Finished, item)
		case models.ReadingCurrent:
			g.Current = append(g.Current, item)
		case models.ReadingUpcoming:
			g.Upcoming = append(g.Upcoming, item)
		}
	}
	return g
}

// SuggestBooks returns up to four pool titles that are not already on the
// reading list, compared case-insensitively.
func SuggestBooks(items []models.ReadingItem) []string {
	have := make(map[string]struct{}, len(items))
	for _, item := range items {
		have[strings.ToLower(item.Title)] = struct{}{}
	}

	var out []string
	for _, title := range constants.BookPool {
		if len(out) == constants.BookSuggestionLimit {
			break
		}
		if _, ok := have[strings.ToLower(title)]; !ok {
			out = append(out, title)
		}
	}
	return out
}

type HabitProgress struct {
	Today             int
	Swim              int
	SwimGoal          int
	Gym               int
	GymGoal           int
	WaterToday        int
	CalledFamilyToday bool
	SwimToday         bool
	GymToday          bool
}

// HabitSummary reports weekly swim and gym counts against their goals plus
// today's water and family call.
func HabitSummary(w models.WeeklyHabits, today int) HabitProgress {
	p := HabitProgress{
		Today:    today,
		Swim:     w.Count(models.HabitSwim),
		SwimGoal: constants.WeeklySwimGoal,
		Gym:      w.Count(models.HabitGym),
		GymGoal:  constants.WeeklyGymGoal,
	}
	if today >= 0 && today < constants.DaysPerWeek {
		p.WaterToday = w.Water[today]
		p.CalledFamilyToday = w.CallFamily[today]
		p.SwimToday = w.Swim[today]
		p.GymToday = w.Gym[today]
	}
	return p
}
