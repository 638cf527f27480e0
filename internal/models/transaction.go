package models

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"github.com/julianstephens/lifehub/internal/constants"
)

func init() {
	// Amounts persist as JSON numbers so snapshots stay compatible with
	// documents written by earlier versions.
	decimal.MarshalJSONWithoutQuotes = true
}

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

type Transaction struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"` // YYYY-MM-DD format
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note,omitempty"`
}

var errNonPositiveAmount = errors.New("must be greater than zero")

// positiveAmount treats a zero amount the same as a missing one.
func positiveAmount(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || !d.IsPositive() {
		return errNonPositiveAmount
	}
	return nil
}

func (t Transaction) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.ID, validation.Required),
		validation.Field(&t.Date, validation.Required, validation.Date(constants.DateFormat)),
		validation.Field(&t.Type, validation.Required, validation.In(TransactionIncome, TransactionExpense)),
		validation.Field(&t.Category, validation.Required),
		validation.Field(&t.Amount, validation.By(positiveAmount)),
	)
}
