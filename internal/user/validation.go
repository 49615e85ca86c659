package user

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("usertype", func(fl validator.FieldLevel) bool {
			_, ok := LookupUserType(fl.Field().String())
			return ok
		})
		_ = v.RegisterValidation("city", func(fl validator.FieldLevel) bool {
			return IsCity(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// Validate checks that userType and city are empty or known and that phone
// is empty or exactly ten digits. Failures carry a field -> rule map.
func Validate(p Profile) error {
	return check(p)
}

// onboardingForm is what the onboarding flow must collect before the
// profile counts as onboarded.
type onboardingForm struct {
	Phone    string `json:"phone" validate:"required,len=10,number"`
	UserType string `json:"userType" validate:"required,usertype"`
	City     string `json:"city" validate:"required,city"`
}

func check(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fe.Tag()
	}
	return ErrInvalidProfile.WithDetails(details)
}
