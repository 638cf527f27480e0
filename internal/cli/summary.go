package cli

import (
	"github.com/julianstephens/lifehub/internal/derive"
)

// SummaryCmd prints the dashboard as plain text.
type SummaryCmd struct{}

func (c *SummaryCmd) Run(ctx *Context) error {
	o := derive.Dashboard(ctx.Session.Snapshot(), ctx.now())

	ctx.printf("Countdown: %d days (~%d months)\n", o.CountdownDays, o.CountdownMonths)
	if o.NightShiftMode {
		ctx.printf("Night-shift mode is on\n")
	}
	ctx.printf("\n")

	ctx.printf("Money\n")
	ctx.printf("  Income %s • Spend %s • Net %s\n",
		derive.FormatGBP(o.Totals.Income), derive.FormatGBP(o.Totals.Expense), derive.FormatGBP(o.Totals.Net))
	ctx.printf("  %s: %s of %s (%.0f%%)\n",
		o.Fund.Name, derive.FormatGBP(o.Fund.Displayed), derive.FormatGBP(o.Fund.Target), o.Fund.Percent)
	ctx.printf("\n")

	h := o.Habits
	ctx.printf("Habits\n")
	ctx.printf("  Swim %d/%d • Gym %d/%d • Water today %d\n", h.Swim, h.SwimGoal, h.Gym, h.GymGoal, h.WaterToday)
	called := "not yet"
	if h.CalledFamilyToday {
		called = "done"
	}
	ctx.printf("  Called family today: %s\n", called)
	ctx.printf("\n")

	ctx.printf("Tasks: %d open\n", o.OpenTasks)
	if len(o.PinnedNotes) > 0 {
		ctx.printf("\nPinned\n")
		for _, n := range o.PinnedNotes {
			ctx.printf("  * %s\n", n.Text)
		}
	}

	if len(o.Reading.Current) > 0 {
		ctx.printf("\nReading\n")
		for _, r := range o.Reading.Current {
			ctx.printf("  %s\n", r.Title)
		}
	}
	return nil
}
