package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

// 7 to 15 digits, optionally led by "+", with spaces, dashes and parentheses
// allowed between them.
const phoneRegexPattern = `^(?=(?:\D*\d){7,15}\D*$)\+?[0-9 ()\-]+$`

var (
	phoneExp = regexp2.MustCompile(phoneRegexPattern, regexp2.None)

	errInvalidPhone    = errors.New("must be a valid phone number")
	errMustBePositive  = errors.New("must be greater than zero")
	errNotADecimal     = errors.New("must be a number")
	errTruckRequired   = errors.New("truck_info is required when own_truck is set")
	errEndBeforeStart  = errors.New("end_date must not be before start_date")
	errLocationCodeLen = errors.New("location_code must be 2 to 5 letters")
)

var phoneRule = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	ok, err := phoneExp.MatchString(s)
	if err != nil || !ok {
		return errInvalidPhone
	}
	return nil
})

var positiveDecimal = validation.By(func(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return errNotADecimal
	}
	if !d.IsPositive() {
		return errMustBePositive
	}
	return nil
})
