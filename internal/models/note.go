package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Note struct {
	ID      string    `json:"id"`
	Text    string    `json:"text"`
	Pinned  bool      `json:"pinned,omitempty"`
	Created time.Time `json:"created"`
}

func (n Note) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.ID, validation.Required),
		validation.Field(&n.Text, validation.Required),
	)
}
