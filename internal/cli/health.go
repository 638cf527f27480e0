package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lifehub/internal/errors"
	"github.com/julianstephens/lifehub/internal/models"
	"github.com/julianstephens/lifehub/internal/store"
)

type HealthCmd struct {
	Add    HealthAddCmd    `cmd:"" help:"Log weight, sleep, steps or mood for a day."`
	List   HealthListCmd   `cmd:"" help:"List health entries, newest first."`
	Delete HealthDeleteCmd `cmd:"" help:"Delete a health entry."`
}

type HealthAddCmd struct {
	Date   string  `short:"d" help:"Date (YYYY-MM-DD, today or yesterday)." default:"today"`
	Weight float64 `short:"w" help:"Weight in kg."`
	Sleep  float64 `short:"s" help:"Hours slept."`
	Steps  int     `help:"Step count."`
	Mood   string  `short:"m" help:"Mood: great, good, okay, low, bad or the emoji itself."`
}

var moodNames = map[string]models.Mood{
	"great": models.MoodGreat,
	"good":  models.MoodGood,
	"okay":  models.MoodOkay,
	"ok":    models.MoodOkay,
	"low":   models.MoodLow,
	"bad":   models.MoodBad,
}

func parseMood(s string) (models.Mood, error) {
	if s == "" {
		return "", nil
	}
	if m, ok := moodNames[strings.ToLower(s)]; ok {
		return m, nil
	}
	for _, m := range models.Moods {
		if string(m) == s {
			return m, nil
		}
	}
	return "", errors.Validationf("unknown mood %q", s)
}

func (c *HealthAddCmd) Run(ctx *Context) error {
	date, err := parseDate(c.Date, ctx.now())
	if err != nil {
		return err
	}
	mood, err := parseMood(c.Mood)
	if err != nil {
		return err
	}

	// zero means "not recorded"
	d := store.HealthDraft{Date: date, Mood: mood}
	if c.Weight > 0 {
		d.WeightKg = &c.Weight
	}
	if c.Sleep > 0 {
		d.SleepHrs = &c.Sleep
	}
	if c.Steps > 0 {
		d.Steps = &c.Steps
	}

	id, err := ctx.Session.AddHealthEntry(d)
	if id != "" {
		ctx.printf("Logged health for %s (ID: %s)\n", date, id)
	}
	return err
}

type HealthListCmd struct{}

func (c *HealthListCmd) Run(ctx *Context) error {
	entries := ctx.Session.Snapshot().Health
	if len(entries) == 0 {
		ctx.printf("No health entries found\n")
		return nil
	}

	ctx.printf("Health log:\n")
	for _, h := range entries {
		var parts []string
		if h.WeightKg != nil {
			parts = append(parts, fmt.Sprintf("%.1f kg", *h.WeightKg))
		}
		if h.SleepHrs != nil {
			parts = append(parts, fmt.Sprintf("%.1f h sleep", *h.SleepHrs))
		}
		if h.Steps != nil {
			parts = append(parts, fmt.Sprintf("%d steps", *h.Steps))
		}
		if h.Mood != "" {
			parts = append(parts, string(h.Mood))
		}
		if len(parts) == 0 {
			parts = append(parts, "-")
		}
		ctx.printf("  %s  %s  %s\n", shortID(h.ID), h.Date, strings.Join(parts, " • "))
	}
	return nil
}

type HealthDeleteCmd struct {
	ID string `arg:"" help:"Entry ID or unique prefix."`
}

func (c *HealthDeleteCmd) Run(ctx *Context) error {
	snap := ctx.Session.Snapshot()
	id, err := resolveID(c.ID, idsOf(snap.Health, func(h models.HealthEntry) string { return h.ID }))
	if err != nil {
		return err
	}
	err = ctx.Session.DeleteHealthEntry(id)
	if applied(err) {
		ctx.printf("Deleted health entry %s\n", shortID(id))
	}
	return err
}
