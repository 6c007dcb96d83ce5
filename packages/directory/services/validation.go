package services

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	UsernameMinLength = 3
	UsernameMaxLength = 20
	CountryMinLength  = 2
	CountryMaxLength  = 60
	GameNameMinLength = 2
	GameNameMaxLength = 100
)

var validate = validator.New()

// requireText trims value and checks it is present and within [min, max] characters.
func requireText(field, value string, min, max int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", invalidArgument("%s is required", field)
	}

	if err := validate.Var(value, fmt.Sprintf("min=%d,max=%d", min, max)); err != nil {
		return "", invalidArgument("%s must be between %d and %d characters", field, min, max)
	}

	return value, nil
}

func validateID(id int64) (uint, error) {
	if id <= 0 {
		return 0, invalidArgument("Invalid ID. ID must be a positive number")
	}
	return uint(id), nil
}
