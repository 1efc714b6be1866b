package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type searchRequest struct {
	Query string `json:"query"`
}

func (r searchRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Query, validation.Required.Error("Query is required")),
	)
}

type priceComparisonRequest struct {
	ISBN string `json:"isbn"`
}

func (r priceComparisonRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ISBN, validation.Required.Error("ISBN is required")),
	)
}

type restaurantPriceComparisonRequest struct {
	RestaurantID string `json:"restaurant_id"`
}

func (r restaurantPriceComparisonRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RestaurantID, validation.Required.Error("Restaurant ID is required")),
	)
}

// validationMessage unwraps the first field message so the client sees
// the plain error string rather than the field-prefixed form.
func validationMessage(err error) string {
	if errs, ok := err.(validation.Errors); ok {
		for _, fieldErr := range errs {
			return fieldErr.Error()
		}
	}
	return err.Error()
}
