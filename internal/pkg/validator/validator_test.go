package validator

import (
	"errors"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"john.doe@dayflow.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidPeriod(t *testing.T) {
	valid := []string{"2024-02", "1999-12"}
	invalid := []string{"2024-13", "2024-2-1", "02-2024", ""}
	for _, s := range valid {
		if _, ok := IsValidPeriod(s); !ok {
			t.Errorf("IsValidPeriod(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidPeriod(s); ok {
			t.Errorf("IsValidPeriod(%q) = true, want false", s)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"+1 234 567 8900", "081234567890", "(415) 555-0100", "+62-812-3456-789"}
	invalid := []string{"abc", "12", "+", "phone 123456", "1234567890123456789012345"}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}

func TestExceedsLength(t *testing.T) {
	if ExceedsLength("héllo", 5) {
		t.Errorf("ExceedsLength counted bytes instead of runes")
	}
	if !ExceedsLength("hello!", 5) {
		t.Errorf("ExceedsLength(%q, 5) = false, want true", "hello!")
	}
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	if errs.Err() != nil {
		t.Fatalf("empty ValidationErrors should produce nil error")
	}

	errs.Add("reason", "reason is required")
	errs.Add("start_date", "start_date must be in YYYY-MM-DD format")

	err := errs.Err()
	if err == nil {
		t.Fatalf("expected error")
	}

	var target ValidationErrors
	if !errors.As(err, &target) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}

	m := target.ToMap()
	if m["reason"] != "reason is required" {
		t.Errorf("ToMap()[reason] = %q", m["reason"])
	}
	if got := err.Error(); got != "reason: reason is required; start_date: start_date must be in YYYY-MM-DD format" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIsInSlice(t *testing.T) {
	if !IsInSlice("sick", []string{"paid", "sick", "unpaid"}) {
		t.Errorf("IsInSlice should find sick")
	}
	if IsInSlice("vacation", []string{"paid", "sick", "unpaid"}) {
		t.Errorf("IsInSlice should not find vacation")
	}
}
