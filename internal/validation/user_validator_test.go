package validation

import (
	"strings"
	"testing"
)

func validRegistration() (firstName, lastName, gender, dob, email, password, confirm string) {
	return "Alice", "Smith", "female", "01-02-1990", "alice@example.com", "secret-pass", "secret-pass"
}

func TestValidateRegistration_Valid(t *testing.T) {
	fn, ln, g, dob, email, pw, cpw := validRegistration()
	errs := ValidateRegistration(DefaultPolicy, fn, ln, g, dob, email, pw, cpw)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateRegistration_RequiredFields(t *testing.T) {
	errs := ValidateRegistration(DefaultPolicy, "", "", "", "", "", "", "")
	if len(errs) == 0 {
		t.Fatal("expected errors for empty input")
	}
	// errors must come out in field order: first name, gender, email, password
	expectedOrder := []string{"First Name", "Gender", "Email", "Password"}
	for i, prefix := range expectedOrder {
		if i >= len(errs) {
			t.Fatalf("expected at least %d errors, got %v", len(expectedOrder), errs)
		}
		if !strings.HasPrefix(errs[i], prefix) {
			t.Fatalf("expected error %d to start with %q, got %q", i, prefix, errs[i])
		}
	}
}

func TestValidateRegistration_CollectsAllViolations(t *testing.T) {
	// bad gender AND mismatched passwords must both be reported
	errs := ValidateRegistration(DefaultPolicy, "Alice", "", "other", "", "alice@example.com", "secret-pass", "different")
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
}

func TestValidateRegistration_GenderCaseInsensitive(t *testing.T) {
	for _, gender := range []string{"male", "Female", "MALE", " female "} {
		fn, ln, _, dob, email, pw, cpw := validRegistration()
		if errs := ValidateRegistration(DefaultPolicy, fn, ln, gender, dob, email, pw, cpw); len(errs) != 0 {
			t.Fatalf("gender %q: expected no errors, got %v", gender, errs)
		}
	}
	fn, ln, _, dob, email, pw, cpw := validRegistration()
	if errs := ValidateRegistration(DefaultPolicy, fn, ln, "unknown", dob, email, pw, cpw); len(errs) != 1 {
		t.Fatalf("expected gender rejection, got %v", errs)
	}
}

func TestValidateRegistration_DateOfBirth(t *testing.T) {
	fn, ln, g, _, email, pw, cpw := validRegistration()

	// optional: empty is fine
	if errs := ValidateRegistration(DefaultPolicy, fn, ln, g, "", email, pw, cpw); len(errs) != 0 {
		t.Fatalf("empty dob: expected no errors, got %v", errs)
	}
	// wrong format is a validation error when supplied
	if errs := ValidateRegistration(DefaultPolicy, fn, ln, g, "1990-02-01", email, pw, cpw); len(errs) != 1 {
		t.Fatalf("bad dob: expected 1 error, got %v", errs)
	}
	if errs := ValidateRegistration(DefaultPolicy, fn, ln, g, "31-02-1990", email, pw, cpw); len(errs) != 1 {
		t.Fatalf("impossible dob: expected 1 error, got %v", errs)
	}
}

func TestValidateRegistration_EmailSyntax(t *testing.T) {
	fn, ln, g, dob, _, pw, cpw := validRegistration()
	for _, email := range []string{"not-an-email", "a@b", "a b@c.com", "@example.com"} {
		if errs := ValidateRegistration(DefaultPolicy, fn, ln, g, dob, email, pw, cpw); len(errs) != 1 {
			t.Fatalf("email %q: expected rejection, got %v", email, errs)
		}
	}
}

func TestValidateRegistration_PasswordMismatchRegardlessOfOtherFields(t *testing.T) {
	// everything else invalid too; mismatch must still be present
	errs := ValidateRegistration(DefaultPolicy, "", "", "x", "bad", "bad", "secret-pass", "other")
	found := false
	for _, e := range errs {
		if strings.Contains(e, "do not match") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected password mismatch among errors, got %v", errs)
	}
}

func TestValidatePasswordChange(t *testing.T) {
	if errs := ValidatePasswordChange(DefaultPolicy, "new-secret", "new-secret"); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if errs := ValidatePasswordChange(DefaultPolicy, "", ""); len(errs) == 0 {
		t.Fatal("expected error for empty passwords")
	}
	if errs := ValidatePasswordChange(DefaultPolicy, "new-secret", "other"); len(errs) != 1 {
		t.Fatalf("expected mismatch error, got %v", errs)
	}
}

func TestValidatePasswordChange_MinLengthConfigurable(t *testing.T) {
	loose := Policy{PasswordMinLength: 1, TweetMaxLength: 300}
	if errs := ValidatePasswordChange(loose, "x", "x"); len(errs) != 0 {
		t.Fatalf("min length 1: expected no errors, got %v", errs)
	}
	if errs := ValidatePasswordChange(DefaultPolicy, "short", "short"); len(errs) != 1 {
		t.Fatalf("default min length: expected rejection, got %v", errs)
	}
}

func TestParseDateOfBirth(t *testing.T) {
	if dob, malformed := ParseDateOfBirth(""); dob != nil || malformed {
		t.Fatal("empty dob should be absent and not malformed")
	}
	dob, malformed := ParseDateOfBirth("15-08-1985")
	if malformed || dob == nil {
		t.Fatal("valid dob should parse")
	}
	if dob.Day() != 15 || int(dob.Month()) != 8 || dob.Year() != 1985 {
		t.Fatalf("parsed wrong date: %v", dob)
	}
	if dob, malformed := ParseDateOfBirth("garbage"); dob != nil || !malformed {
		t.Fatal("garbage dob should be absent and flagged malformed")
	}
}
