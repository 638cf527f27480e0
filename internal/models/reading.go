package models

import validation "github.com/go-ozzo/ozzo-validation/v4"

type ReadingStatus string

const (
	ReadingFinished ReadingStatus = "finished"
	ReadingCurrent  ReadingStatus = "current"
	ReadingUpcoming ReadingStatus = "upcoming"
)

// Next returns the following status on the closed ring
// finished -> current -> upcoming -> finished.
func (s ReadingStatus) Next() ReadingStatus {
	switch s {
	case ReadingFinished:
		return ReadingCurrent
	case ReadingCurrent:
		return ReadingUpcoming
	default:
		return ReadingFinished
	}
}

type ReadingItem struct {
	ID     string        `json:"id"`
	Title  string        `json:"title"`
	Status ReadingStatus `json:"status"`
}

func (r ReadingItem) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required),
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Status, validation.Required, validation.In(ReadingFinished, ReadingCurrent, ReadingUpcoming)),
	)
}
