package checkout

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/sarmstore/storefront-backend/internal/modules/cart"
)

// Kind classifies a checkout validation failure.
type Kind string

const (
	KindInvalidPhone     Kind = "invalid-phone"
	KindInvalidPincode   Kind = "invalid-pincode"
	KindEmptyCart        Kind = "empty-cart"
	KindNotAuthenticated Kind = "not-authenticated"
	KindMissingField     Kind = "missing-field"
)

// ValidationError is a checkout rejection surfaced to the customer. The
// operation is aborted with no partial state change.
type ValidationError struct {
	Kind  Kind
	Field string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("checkout validation failed: %s (%s)", e.Kind, e.Field)
	}
	return fmt.Sprintf("checkout validation failed: %s", e.Kind)
}

// CustomerForm is the delivery contact the customer fills in at checkout.
type CustomerForm struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required,inphone"`
	Address  string `json:"address" validate:"required"`
	Pincode  string `json:"pincode" validate:"required,pincode"`
	Landmark string `json:"landmark"`
}

var (
	// Indian mobile numbers: ten digits starting 6-9.
	phonePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	// Indian postal codes: exactly six digits.
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("inphone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return pincodePattern.MatchString(fl.Field().String())
	})
	return v
}

// validateSubmit applies the checkout rules in order: cart state, identity,
// then the customer form.
func validateSubmit(v *validator.Validate, form CustomerForm, lines []cart.Line, authenticated, requireAuth bool) *ValidationError {
	if len(lines) == 0 {
		return &ValidationError{Kind: KindEmptyCart}
	}
	if requireAuth && !authenticated {
		return &ValidationError{Kind: KindNotAuthenticated}
	}

	err := v.Struct(form)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return &ValidationError{Kind: KindMissingField}
	}

	fe := errs[0]
	switch fe.Tag() {
	case "inphone":
		return &ValidationError{Kind: KindInvalidPhone, Field: "phone"}
	case "pincode":
		return &ValidationError{Kind: KindInvalidPincode, Field: "pincode"}
	default:
		return &ValidationError{Kind: KindMissingField, Field: fieldName(fe.Field())}
	}
}

func fieldName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Phone":
		return "phone"
	case "Address":
		return "address"
	case "Pincode":
		return "pincode"
	default:
		return structField
	}
}
