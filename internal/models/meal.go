package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/julianstephens/lifehub/internal/constants"
)

type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

type Meal struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"`
	MealType MealType `json:"mealType"`
	Name     string   `json:"name"`
	Calories *int     `json:"calories,omitempty"`
}

func (m Meal) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.ID, validation.Required),
		validation.Field(&m.Date, validation.Required, validation.Date(constants.DateFormat)),
		validation.Field(&m.MealType, validation.Required, validation.In(MealBreakfast, MealLunch, MealDinner, MealSnack)),
		validation.Field(&m.Name, validation.Required),
	)
}
