package auth

import "unicode/utf8"

// ValidatePassword enforces the registration password policy. Rules are
// checked in a fixed order and the first violation wins; the returned
// error's message names that rule. The order is a user-visible contract:
// length, lowercase, uppercase, digit, symbol.
//
// A symbol is any character that is not a letter or digit. The length rule
// counts characters, not bytes, so multibyte symbols weigh the same as
// ASCII ones. The function is pure: no side effects, no logging.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < 8 {
		return ErrPasswordTooShort
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	switch {
	case !hasLower:
		return ErrPasswordNoLower
	case !hasUpper:
		return ErrPasswordNoUpper
	case !hasDigit:
		return ErrPasswordNoDigit
	case !hasSymbol:
		return ErrPasswordNoSymbol
	}

	return nil
}
