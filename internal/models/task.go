package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/julianstephens/lifehub/internal/constants"
)

type Recurrence string

const (
	RecurrenceNone   Recurrence = "none"
	RecurrenceDaily  Recurrence = "daily"
	RecurrenceWeekly Recurrence = "weekly"
)

// Area groups tasks by life area.
type Area string

const (
	AreaFinance Area = "Finance"
	AreaHealth  Area = "Health"
	AreaDiet    Area = "Diet"
	AreaLife    Area = "Life"
	AreaCareer  Area = "Career"
)

type Task struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Due   string     `json:"due,omitempty"` // YYYY-MM-DD format
	Done  bool       `json:"done"`
	Recur Recurrence `json:"recur,omitempty"`
	Area  Area       `json:"area,omitempty"`
}

func (t Task) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.ID, validation.Required),
		validation.Field(&t.Title, validation.Required),
		validation.Field(&t.Due, validation.Date(constants.DateFormat)),
		validation.Field(&t.Recur, validation.In(RecurrenceNone, RecurrenceDaily, RecurrenceWeekly)),
		validation.Field(&t.Area, validation.In(AreaFinance, AreaHealth, AreaDiet, AreaLife, AreaCareer)),
	)
}
