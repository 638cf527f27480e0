package cli

import (
	"strings"

	"github.com/julianstephens/lifehub/internal/constants"
	"github.com/julianstephens/lifehub/internal/derive"
	"github.com/julianstephens/lifehub/internal/errors"
	"github.com/julianstephens/lifehub/internal/models"
)

type HabitCmd struct {
	Show   HabitShowCmd   `cmd:"" default:"1" help:"Show this week's habit grid."`
	Toggle HabitToggleCmd `cmd:"" help:"Flip a habit for a day."`
	Set    HabitSetCmd    `cmd:"" help:"Mark a habit done or not done for a day."`
}

type HabitShowCmd struct{}

func (c *HabitShowCmd) Run(ctx *Context) error {
	snap := ctx.Session.Snapshot()
	w := snap.WeeklyHabits
	today := derive.TodayIndex(ctx.now())

	ctx.printf("Week of %s\n\n", w.WeekStart)
	ctx.printf("%-12s", "")
	for i, name := range weekdayNames {
		if i == today {
			name = strings.ToUpper(name)
		}
		ctx.printf(" %4s", name)
	}
	ctx.printf("\n")

	for _, kind := range models.HabitKinds {
		row := w.Row(kind)
		ctx.printf("%-12s", habitLabel(kind))
		for _, done := range row {
			mark := "·"
			if done {
				mark = "✓"
			}
			ctx.printf(" %4s", mark)
		}
		ctx.printf("\n")
	}
	ctx.printf("%-12s", "Water")
	for _, glasses := range w.Water {
		ctx.printf(" %4d", glasses)
	}
	ctx.printf("\n\n")

	p := derive.HabitSummary(w, today)
	ctx.printf("Swim %d/%d • Gym %d/%d • Water today %d\n", p.Swim, p.SwimGoal, p.Gym, p.GymGoal, p.WaterToday)
	return nil
}

func habitLabel(kind models.HabitKind) string {
	switch kind {
	case models.HabitCallFamily:
		return "Call family"
	case models.HabitSwim:
		return "Swim"
	case models.HabitGym:
		return "Gym"
	default:
		return string(kind)
	}
}

func parseHabit(s string) (models.HabitKind, error) {
	kind, err := models.ParseHabitKind(strings.ToLower(s))
	if err != nil {
		return "", errors.Validationf("%v", err)
	}
	return kind, nil
}

type HabitToggleCmd struct {
	Habit string `arg:"" help:"Habit: swim, gym or call-family."`
	Day   string `arg:"" optional:"" help:"Weekday name, 0-6 (Monday=0) or today." default:"today"`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	kind, err := parseHabit(c.Habit)
	if err != nil {
		return err
	}
	day, err := parseDay(c.Day, ctx.now())
	if err != nil {
		return err
	}
	err = ctx.Session.ToggleHabitSlot(kind, day)
	if applied(err) {
		printSlot(ctx, kind, day)
	}
	return err
}

type HabitSetCmd struct {
	Habit string `arg:"" help:"Habit: swim, gym or call-family."`
	Day   string `arg:"" optional:"" help:"Weekday name, 0-6 (Monday=0) or today." default:"today"`
	Off   bool   `help:"Mark as not done."`
}

func (c *HabitSetCmd) Run(ctx *Context) error {
	kind, err := parseHabit(c.Habit)
	if err != nil {
		return err
	}
	day, err := parseDay(c.Day, ctx.now())
	if err != nil {
		return err
	}
	err = ctx.Session.SetHabitSlot(kind, day, !c.Off)
	if applied(err) {
		printSlot(ctx, kind, day)
	}
	return err
}

func printSlot(ctx *Context, kind models.HabitKind, day int) {
	w := ctx.Session.Snapshot().WeeklyHabits
	state := "not done"
	if w.Row(kind)[day] {
		state = "done"
	}
	ctx.printf("%s on %s: %s\n", habitLabel(kind), weekdayNames[day], state)
}

type WaterCmd struct {
	Add    WaterAdjustCmd `cmd:"" default:"withargs" help:"Add glasses of water."`
	Remove WaterRemoveCmd `cmd:"" help:"Remove glasses of water."`
}

type WaterAdjustCmd struct {
	Glasses int    `arg:"" optional:"" help:"Number of glasses." default:"1"`
	Day     string `short:"d" help:"Weekday name, 0-6 (Monday=0) or today." default:"today"`
}

func (c *WaterAdjustCmd) Run(ctx *Context) error {
	return adjustWater(ctx, c.Day, c.Glasses)
}

type WaterRemoveCmd struct {
	Glasses int    `arg:"" optional:"" help:"Number of glasses." default:"1"`
	Day     string `short:"d" help:"Weekday name, 0-6 (Monday=0) or today." default:"today"`
}

func (c *WaterRemoveCmd) Run(ctx *Context) error {
	return adjustWater(ctx, c.Day, -c.Glasses)
}

func adjustWater(ctx *Context, daySpec string, delta int) error {
	day, err := parseDay(daySpec, ctx.now())
	if err != nil {
		return err
	}
	err = ctx.Session.AdjustWater(day, delta)
	if applied(err) {
		glasses := ctx.Session.Snapshot().WeeklyHabits.Water[day]
		ctx.printf("Water on %s: %d/%d glasses\n", weekdayNames[day], glasses, constants.MaxWaterGlasses)
	}
	return err
}
