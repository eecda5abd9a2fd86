package service

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aidar/player-manager/internal/domain"
)

// FormValidator checks form input and converts it into a Player
type FormValidator struct {
	validate *validator.Validate
}

// NewFormValidator creates a new FormValidator
func NewFormValidator() *FormValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their form input names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.ToLower(f.Name)
	})
	return &FormValidator{validate: v}
}

// Player validates the form and returns the player it describes
func (v *FormValidator) Player(form domain.PlayerForm) (*domain.Player, error) {
	if err := v.validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("failed to validate player: %w", err)
		}
		return nil, toValidationError(verrs)
	}

	// Both values already passed the "number" rule
	height, err := strconv.Atoi(form.Height)
	if err != nil {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{{Field: "height", Message: "must be a whole number"}}}
	}
	weight, err := strconv.Atoi(form.Weight)
	if err != nil {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{{Field: "weight", Message: "must be a whole number"}}}
	}

	return &domain.Player{
		Name:   form.Name,
		City:   form.City,
		Height: height,
		Weight: weight,
		Throws: domain.Hand(form.Throws),
		Bats:   domain.Hand(form.Bats),
	}, nil
}

func toValidationError(verrs validator.ValidationErrors) *domain.ValidationError {
	out := &domain.ValidationError{Fields: make([]domain.FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, domain.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s character", fe.Param())
	case "number":
		return "must be a whole number"
	default:
		return "is invalid"
	}
}
