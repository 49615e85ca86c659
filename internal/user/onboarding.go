package user

import "strings"

const (
	phoneDigits = 10
	otpDigits   = 4
)

// NormalizePhone keeps the digits of raw, at most ten of them, the way the
// phone field filters keystrokes.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if b.Len() == phoneDigits {
			break
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PhoneComplete reports whether the phone step can advance.
func PhoneComplete(phone string) bool {
	return len(phone) == phoneDigits && NormalizePhone(phone) == phone
}

// AcceptOTP accepts any four digit code. There is no verification backend.
func AcceptOTP(code string) error {
	if len(code) != otpDigits {
		return ErrInvalidOTP
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return ErrInvalidOTP
		}
	}
	return nil
}

// Onboard builds the patch submitted when the onboarding flow completes.
// A user type and a city must both be chosen.
func Onboard(phone, userType, city string) (Patch, error) {
	phone = NormalizePhone(phone)
	if !PhoneComplete(phone) {
		return Patch{}, ErrInvalidPhone
	}
	if err := check(onboardingForm{Phone: phone, UserType: userType, City: city}); err != nil {
		return Patch{}, err
	}
	done := true
	patch := Patch{
		IsOnboarded: &done,
		Phone:       &phone,
		UserType:    &userType,
		City:        &city,
	}
	if err := Validate(Apply(Default(), patch)); err != nil {
		return Patch{}, err
	}
	return patch, nil
}
