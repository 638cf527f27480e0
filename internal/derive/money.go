package derive

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/julianstephens/lifehub/internal/constants"
)

// FormatGBP renders amount as pounds sterling, e.g. £1,234.50 or -£12.00.
func FormatGBP(amount decimal.Decimal) string {
	// money.New is the only way to get a non-nil *Currency
	cur := *money.New(0, constants.DisplayCurrency).Currency()
	minor := amount.Abs().Shift(int32(cur.Fraction)).Round(0).IntPart()
	s := cur.Formatter().Format(minor)
	if amount.IsNegative() && minor != 0 {
		return "-" + s
	}
	return s
}
