package cli

import (
	"github.com/julianstephens/lifehub/internal/derive"
	"github.com/julianstephens/lifehub/internal/models"
	"github.com/julianstephens/lifehub/internal/store"
)

type ReadingCmd struct {
	Add    ReadingAddCmd    `cmd:"" help:"Add a book to the reading list."`
	List   ReadingListCmd   `cmd:"" help:"Show the reading list and suggestions."`
	Cycle  ReadingCycleCmd  `cmd:"" help:"Advance a book: finished, current, upcoming."`
	Delete ReadingDeleteCmd `cmd:"" help:"Remove a book."`
}

type ReadingAddCmd struct {
	Title  string `arg:"" help:"Book title."`
	Status string `short:"s" help:"Reading status." enum:"finished,current,upcoming" default:"upcoming"`
}

func (c *ReadingAddCmd) Run(ctx *Context) error {
	id, err := ctx.Session.AddReadingItem(store.ReadingDraft{
		Title:  c.Title,
		Status: models.ReadingStatus(c.Status),
	})
	if id != "" {
		ctx.printf("Added %q as %s (ID: %s)\n", c.Title, c.Status, id)
	}
	return err
}

type ReadingListCmd struct{}

func (c *ReadingListCmd) Run(ctx *Context) error {
	items := ctx.Session.Snapshot().Reading
	groups := derive.GroupReading(items)

	section := func(title string, list []models.ReadingItem) {
		ctx.printf("%s:\n", title)
		if len(list) == 0 {
			ctx.printf("  -\n")
			return
		}
		for _, r := range list {
			ctx.printf("  %s  %s\n", shortID(r.ID), r.Title)
		}
	}
	section("Currently reading", groups.Current)
	section("Up next", groups.Upcoming)
	section("Finished", groups.Finished)

	if suggestions := derive.SuggestBooks(items); len(suggestions) > 0 {
		ctx.printf("Suggestions:\n")
		for _, title := range suggestions {
			ctx.printf("  %s\n", title)
		}
	}
	return nil
}

type ReadingCycleCmd struct {
	ID string `arg:"" help:"Reading item ID or unique prefix."`
}

func (c *ReadingCycleCmd) Run(ctx *Context) error {
	id, err := resolveReading(ctx, c.ID)
	if err != nil {
		return err
	}
	err = ctx.Session.CycleReadingStatus(id)
	if applied(err) {
		for _, r := range ctx.Session.Snapshot().Reading {
			if r.ID == id {
				ctx.printf("%q is now %s\n", r.Title, r.Status)
			}
		}
	}
	return err
}

type ReadingDeleteCmd struct {
	ID string `arg:"" help:"Reading item ID or unique prefix."`
}

func (c *ReadingDeleteCmd) Run(ctx *Context) error {
	id, err := resolveReading(ctx, c.ID)
	if err != nil {
		return err
	}
	err = ctx.Session.DeleteReadingItem(id)
	if applied(err) {
		ctx.printf("Deleted reading item %s\n", shortID(id))
	}
	return err
}

func resolveReading(ctx *Context, prefix string) (string, error) {
	items := ctx.Session.Snapshot().Reading
	return resolveID(prefix, idsOf(items, func(r models.ReadingItem) string { return r.ID }))
}
