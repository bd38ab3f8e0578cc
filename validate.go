package pathao

import (
	"fmt"
	"strings"
	"unicode"
)

func validateLength(field, value string, min, max int) error {
	if n := len(strings.TrimSpace(value)); n < min || n > max {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d characters, got %d", min, max, n),
		}
	}
	return nil
}

// validatePhone accepts Bangladeshi mobile numbers: exactly 11 digits
// starting with 01.
func validatePhone(field, value string) error {
	if len(value) != 11 {
		return &ValidationError{Field: field, Message: "must be exactly 11 digits"}
	}
	for _, r := range value {
		if !unicode.IsDigit(r) {
			return &ValidationError{Field: field, Message: "must contain only digits"}
		}
	}
	if !strings.HasPrefix(value, "01") {
		return &ValidationError{Field: field, Message: "must start with 01"}
	}
	return nil
}

func validatePositive(field string, value int) error {
	if value <= 0 {
		return &ValidationError{Field: field, Message: "must be a positive integer"}
	}
	return nil
}

func validateWeight(field string, value float64) error {
	if value < 0.5 || value > 10 {
		return &ValidationError{Field: field, Message: "must be between 0.5 and 10 kg"}
	}
	return nil
}

func validateDeliveryType(field string, value DeliveryType) error {
	switch value {
	case DeliveryTypeNormal, DeliveryTypeOnDemand:
		return nil
	}
	return &ValidationError{Field: field, Message: fmt.Sprintf("must be %d (normal) or %d (on-demand)", DeliveryTypeNormal, DeliveryTypeOnDemand)}
}

func validateItemType(field string, value ItemType) error {
	switch value {
	case ItemTypeDocument, ItemTypeParcel:
		return nil
	}
	return &ValidationError{Field: field, Message: fmt.Sprintf("must be %d (document) or %d (parcel)", ItemTypeDocument, ItemTypeParcel)}
}
