package cli

import (
	"github.com/julianstephens/lifehub/internal/models"
	"github.com/julianstephens/lifehub/internal/store"
)

type NoteCmd struct {
	Add    NoteAddCmd    `cmd:"" help:"Jot down a note."`
	List   NoteListCmd   `cmd:"" help:"List notes, pinned first."`
	Pin    NotePinCmd    `cmd:"" help:"Pin or unpin a note."`
	Delete NoteDeleteCmd `cmd:"" help:"Delete a note."`
}

type NoteAddCmd struct {
	Text   string `arg:"" help:"Note text."`
	Pinned bool   `short:"p" help:"Pin the note."`
}

func (c *NoteAddCmd) Run(ctx *Context) error {
	id, err := ctx.Session.AddNote(store.NoteDraft{Text: c.Text, Pinned: c.Pinned})
	if id != "" {
		ctx.printf("Added note (ID: %s)\n", id)
	}
	return err
}

type NoteListCmd struct{}

func (c *NoteListCmd) Run(ctx *Context) error {
	notes := ctx.Session.Snapshot().Notes
	if len(notes) == 0 {
		ctx.printf("No notes found\n")
		return nil
	}

	var pinned, rest []models.Note
	for _, n := range notes {
		if n.Pinned {
			pinned = append(pinned, n)
		} else {
			rest = append(rest, n)
		}
	}

	for _, n := range append(pinned, rest...) {
		marker := " "
		if n.Pinned {
			marker = "*"
		}
		ctx.printf("%s %s  %s  %s\n", marker, shortID(n.ID), n.Created.Local().Format("2006-01-02 15:04"), n.Text)
	}
	return nil
}

type NotePinCmd struct {
	ID string `arg:"" help:"Note ID or unique prefix."`
}

func (c *NotePinCmd) Run(ctx *Context) error {
	id, err := resolveNote(ctx, c.ID)
	if err != nil {
		return err
	}
	err = ctx.Session.TogglePin(id)
	if applied(err) {
		for _, n := range ctx.Session.Snapshot().Notes {
			if n.ID == id {
				if n.Pinned {
					ctx.printf("Pinned note %s\n", shortID(id))
				} else {
					ctx.printf("Unpinned note %s\n", shortID(id))
				}
			}
		}
	}
	return err
}

type NoteDeleteCmd struct {
	ID string `arg:"" help:"Note ID or unique prefix."`
}

func (c *NoteDeleteCmd) Run(ctx *Context) error {
	id, err := resolveNote(ctx, c.ID)
	if err != nil {
		return err
	}
	err = ctx.Session.DeleteNote(id)
	if applied(err) {
		ctx.printf("Deleted note %s\n", shortID(id))
	}
	return err
}

func resolveNote(ctx *Context, prefix string) (string, error) {
	notes := ctx.Session.Snapshot().Notes
	return resolveID(prefix, idsOf(notes, func(n models.Note) string { return n.ID }))
}
