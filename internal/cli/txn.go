package cli

import (
	"github.com/julianstephens/lifehub/internal/derive"
	"github.com/julianstephens/lifehub/internal/models"
	"github.com/julianstephens/lifehub/internal/store"
)

type TxnCmd struct {
	Add    TxnAddCmd    `cmd:"" help:"Record income or an expense."`
	List   TxnListCmd   `cmd:"" help:"List transactions, newest first."`
	Delete TxnDeleteCmd `cmd:"" help:"Delete a transaction."`
}

type TxnAddCmd struct {
	Amount   string `arg:"" help:"Amount in pounds, greater than zero."`
	Type     string `short:"t" help:"Transaction type (income|expense)." enum:"income,expense" default:"expense"`
	Category string `short:"c" help:"Category." default:"General"`
	Date     string `short:"d" help:"Date (YYYY-MM-DD, today or yesterday)." default:"today"`
	Note     string `short:"n" help:"Optional note."`
}

func (c *TxnAddCmd) Run(ctx *Context) error {
	amount, err := parseAmount(c.Amount)
	if err != nil {
		return err
	}
	date, err := parseDate(c.Date, ctx.now())
	if err != nil {
		return err
	}

	id, err := ctx.Session.AddTransaction(store.TransactionDraft{
		Date:     date,
		Type:     models.TransactionType(c.Type),
		Category: c.Category,
		Amount:   amount,
		Note:     c.Note,
	})
	if id != "" {
		ctx.printf("Added %s: %s %s (ID: %s)\n", c.Type, derive.FormatGBP(amount), c.Category, id)
	}
	return err
}

type TxnListCmd struct {
	Limit int `short:"l" help:"Show at most this many transactions (0 = all)." default:"0"`
}

func (c *TxnListCmd) Run(ctx *Context) error {
	snap := ctx.Session.Snapshot()
	if len(snap.Txns) == 0 {
		ctx.printf("No transactions found\n")
		return nil
	}

	ctx.printf("Transactions:\n")
	for i, t := range snap.Txns {
		if c.Limit > 0 && i >= c.Limit {
			break
		}
		sign := "-"
		if t.Type == models.TransactionIncome {
			sign = "+"
		}
		ctx.printf("  %s  %s  %s%s  %s", shortID(t.ID), t.Date, sign, derive.FormatGBP(t.Amount), t.Category)
		if t.Note != "" {
			ctx.printf("  (%s)", t.Note)
		}
		ctx.printf("\n")
	}

	totals := derive.ComputeTotals(snap.Txns)
	ctx.printf("\nIncome %s • Spend %s • Net %s\n",
		derive.FormatGBP(totals.Income), derive.FormatGBP(totals.Expense), derive.FormatGBP(totals.Net))
	return nil
}

type TxnDeleteCmd struct {
	ID string `arg:"" help:"Transaction ID or unique prefix."`
}

func (c *TxnDeleteCmd) Run(ctx *Context) error {
	snap := ctx.Session.Snapshot()
	id, err := resolveID(c.ID, idsOf(snap.Txns, func(t models.Transaction) string { return t.ID }))
	if err != nil {
		return err
	}
	err = ctx.Session.DeleteTransaction(id)
	if applied(err) {
		ctx.printf("Deleted transaction %s\n", shortID(id))
	}
	return err
}

func idsOf[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = id(item)
	}
	return out
}
