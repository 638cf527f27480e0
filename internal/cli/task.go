package cli

import (
	"github.com/julianstephens/lifehub/internal/models"
	"github.com/julianstephens/lifehub/internal/store"
)

type TaskCmd struct {
	Add    TaskAddCmd    `cmd:"" help:"Add a task."`
	List   TaskListCmd   `cmd:"" help:"List tasks."`
	Done   TaskDoneCmd   `cmd:"" help:"Toggle a task between open and done."`
	Edit   TaskEditCmd   `cmd:"" help:"Edit a task."`
	Delete TaskDeleteCmd `cmd:"" help:"Delete a task."`
}

type TaskAddCmd struct {
	Title string `arg:"" help:"Task title."`
	Due   string `help:"Due date (YYYY-MM-DD, today or yesterday)."`
	Recur string `short:"r" help:"Recurrence." enum:"none,daily,weekly" default:"none"`
	Area  string `short:"a" help:"Life area." enum:"Finance,Health,Diet,Life,Career" default:"Life"`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	var due string
	if c.Due != "" {
		var err error
		if due, err = parseDate(c.Due, ctx.now()); err != nil {
			return err
		}
	}

	id, err := ctx.Session.AddTask(store.TaskDraft{
		Title: c.Title,
		Due:   due,
		Recur: models.Recurrence(c.Recur),
		Area:  models.Area(c.Area),
	})
	if id != "" {
		ctx.printf("Added task: %s (ID: %s)\n", c.Title, id)
	}
	return err
}

type TaskListCmd struct {
	All  bool   `help:"Include completed tasks."`
	Area string `short:"a" help:"Only show tasks in this area."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	var shown []models.Task
	for _, t := range ctx.Session.Snapshot().Tasks {
		if t.Done && !c.All {
			continue
		}
		if c.Area != "" && string(t.Area) != c.Area {
			continue
		}
		shown = append(shown, t)
	}

	if len(shown) == 0 {
		ctx.printf("No tasks found\n")
		return nil
	}

	ctx.printf("Tasks:\n")
	for _, t := range shown {
		box := "[ ]"
		if t.Done {
			box = "[x]"
		}
		ctx.printf("  %s %s  %s", box, shortID(t.ID), t.Title)
		if t.Area != "" {
			ctx.printf("  #%s", t.Area)
		}
		if t.Due != "" {
			ctx.printf("  due %s", t.Due)
		}
		if t.Recur != "" && t.Recur != models.RecurrenceNone {
			ctx.printf("  (%s)", t.Recur)
		}
		ctx.printf("\n")
	}
	return nil
}

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task ID or unique prefix."`
}

func (c *TaskDoneCmd) Run(ctx *Context) error {
	id, err := resolveTask(ctx, c.ID)
	if err != nil {
		return err
	}
	err = ctx.Session.ToggleTask(id)
	if applied(err) {
		for _, t := range ctx.Session.Snapshot().Tasks {
			if t.ID == id {
				state := "open"
				if t.Done {
					state = "done"
				}
				ctx.printf("Marked %q %s\n", t.Title, state)
			}
		}
	}
	return err
}

type TaskEditCmd struct {
	ID    string  `arg:"" help:"Task ID or unique prefix."`
	Title *string `help:"New title."`
	Due   *string `help:"New due date; pass an empty string to clear it."`
	Recur *string `short:"r" help:"New recurrence (none|daily|weekly)."`
	Area  *string `short:"a" help:"New life area (Finance|Health|Diet|Life|Career)."`
}

func (c *TaskEditCmd) Run(ctx *Context) error {
	id, err := resolveTask(ctx, c.ID)
	if err != nil {
		return err
	}

	var patch store.TaskPatch
	patch.Title = c.Title
	if c.Due != nil {
		due := *c.Due
		if due != "" {
			if due, err = parseDate(due, ctx.now()); err != nil {
				return err
			}
		}
		patch.Due = &due
	}
	if c.Recur != nil {
		r := models.Recurrence(*c.Recur)
		patch.Recur = &r
	}
	if c.Area != nil {
		a := models.Area(*c.Area)
		patch.Area = &a
	}

	err = ctx.Session.UpdateTask(id, patch)
	if applied(err) {
		ctx.printf("Updated task %s\n", shortID(id))
	}
	return err
}

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task ID or unique prefix."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	id, err := resolveTask(ctx, c.ID)
	if err != nil {
		return err
	}
	err = ctx.Session.DeleteTask(id)
	if applied(err) {
		ctx.printf("Deleted task %s\n", shortID(id))
	}
	return err
}

func resolveTask(ctx *Context, prefix string) (string, error) {
	tasks := ctx.Session.Snapshot().Tasks
	return resolveID(prefix, idsOf(tasks, func(t models.Task) string { return t.ID }))
}
