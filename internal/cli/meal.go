package cli

import (
	"github.com/julianstephens/lifehub/internal/models"
	"github.com/julianstephens/lifehub/internal/store"
)

type MealCmd struct {
	Add    MealAddCmd    `cmd:"" help:"Log a meal."`
	List   MealListCmd   `cmd:"" help:"List meals, newest first."`
	Delete MealDeleteCmd `cmd:"" help:"Delete a meal."`
}

type MealAddCmd struct {
	Name     string `arg:"" help:"What you ate."`
	Type     string `short:"t" help:"Meal type." enum:"Breakfast,Lunch,Dinner,Snack" default:"Breakfast"`
	Calories int    `short:"k" help:"Calories, if known."`
	Date     string `short:"d" help:"Date (YYYY-MM-DD, today or yesterday)." default:"today"`
}

func (c *MealAddCmd) Run(ctx *Context) error {
	date, err := parseDate(c.Date, ctx.now())
	if err != nil {
		return err
	}

	d := store.MealDraft{Date: date, MealType: models.MealType(c.Type), Name: c.Name}
	if c.Calories > 0 {
		d.Calories = &c.Calories
	}

	id, err := ctx.Session.AddMeal(d)
	if id != "" {
		ctx.printf("Logged %s: %s (ID: %s)\n", c.Type, c.Name, id)
	}
	return err
}

type MealListCmd struct{}

func (c *MealListCmd) Run(ctx *Context) error {
	meals := ctx.Session.Snapshot().Meals
	if len(meals) == 0 {
		ctx.printf("No meals found\n")
		return nil
	}

	ctx.printf("Meals:\n")
	for _, m := range meals {
		ctx.printf("  %s  %s  %-9s %s", shortID(m.ID), m.Date, m.MealType, m.Name)
		if m.Calories != nil {
			ctx.printf(" (%d kcal)", *m.Calories)
		}
		ctx.printf("\n")
	}
	return nil
}

type MealDeleteCmd struct {
	ID string `arg:"" help:"Meal ID or unique prefix."`
}

func (c *MealDeleteCmd) Run(ctx *Context) error {
	snap := ctx.Session.Snapshot()
	id, err := resolveID(c.ID, idsOf(snap.Meals, func(m models.Meal) string { return m.ID }))
	if err != nil {
		return err
	}
	err = ctx.Session.DeleteMeal(id)
	if applied(err) {
		ctx.printf("Deleted meal %s\n", shortID(id))
	}
	return err
}
