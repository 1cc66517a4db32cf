package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateOfBirthLayout is the accepted input format for the optional date of
// birth field (dd-MM-yyyy).
const DateOfBirthLayout = "02-01-2006"

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Policy tunes the configurable thresholds the validators enforce.
type Policy struct {
	PasswordMinLength int
	TweetMaxLength    int
}

// DefaultPolicy matches the service defaults. The original design only
// required a non-empty password; the 8-character minimum is a deliberate
// tightening, configurable back down to 1.
var DefaultPolicy = Policy{PasswordMinLength: 8, TweetMaxLength: 300}

func (p Policy) passwordMin() int {
	if p.PasswordMinLength < 1 {
		return 1
	}
	return p.PasswordMinLength
}

func (p Policy) tweetMax() int {
	if p.TweetMaxLength < 1 {
		return DefaultPolicy.TweetMaxLength
	}
	return p.TweetMaxLength
}

// ValidateRegistration checks all registration fields and returns every
// violation as a human-readable message, in field order. An empty slice
// means the input passed. Violations are collected, never short-circuited,
// so callers can show the user the complete list at once.
func ValidateRegistration(p Policy, firstName, lastName, gender, dob, email, password, confirmPassword string) []string {
	var errs []string

	if strings.TrimSpace(firstName) == "" {
		errs = append(errs, "First Name is required")
	}

	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "male", "female":
	default:
		errs = append(errs, "Gender must be either male or female")
	}

	if dob = strings.TrimSpace(dob); dob != "" {
		if _, err := time.Parse(DateOfBirthLayout, dob); err != nil {
			errs = append(errs, "Date of Birth must be a valid date in dd-MM-yyyy format")
		}
	}

	if strings.TrimSpace(email) == "" {
		errs = append(errs, "Email is required")
	} else if !emailPattern.MatchString(email) {
		errs = append(errs, "Email must be a valid email address")
	}

	errs = append(errs, validatePasswordPair(p, password, confirmPassword)...)

	return errs
}

// ValidatePasswordChange checks the new-password pair used by both the
// reset and change flows.
func ValidatePasswordChange(p Policy, newPassword, confirmPassword string) []string {
	return validatePasswordPair(p, newPassword, confirmPassword)
}

func validatePasswordPair(p Policy, password, confirmPassword string) []string {
	var errs []string
	if password == "" {
		errs = append(errs, "Password is required")
	} else if len(password) < p.passwordMin() {
		errs = append(errs, fmt.Sprintf("Password must be at least %d characters", p.passwordMin()))
	}
	if password != confirmPassword {
		errs = append(errs, "Password and Confirm Password do not match")
	}
	return errs
}

// ParseDateOfBirth parses the optional dd-MM-yyyy date of birth. A blank
// input and an unparseable input both yield nil; the second return value
// reports whether a non-empty input failed to parse so the caller can warn
// without rejecting the registration.
func ParseDateOfBirth(dob string) (*time.Time, bool) {
	dob = strings.TrimSpace(dob)
	if dob == "" {
		return nil, false
	}
	parsed, err := time.Parse(DateOfBirthLayout, dob)
	if err != nil {
		return nil, true
	}
	return &parsed, false
}
