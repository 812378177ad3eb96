package validator

import (
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
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
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

func TestIsValidNIP(t *testing.T) {
	valid := []string{"0000", "1234", "9999"}
	invalid := []string{"", "123", "12345", "12a4", "12 4", "-123"}
	for _, nip := range valid {
		if !IsValidNIP(nip) {
			t.Errorf("IsValidNIP(%q) = false, want true", nip)
		}
	}
	for _, nip := range invalid {
		if IsValidNIP(nip) {
			t.Errorf("IsValidNIP(%q) = true, want false", nip)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "09:05", "23:59", "14:00:30"}
	invalid := []string{"", "24:00", "9:05", "09:60", "09:05:61", "09-05", "09:05:00:00"}
	for _, s := range valid {
		if !IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-02-30"); ok {
		t.Error("IsValidDate accepted 2025-02-30")
	}
	d, ok := IsValidDate("2025-03-17")
	if !ok {
		t.Fatal("IsValidDate rejected 2025-03-17")
	}
	if d.Weekday().String() != "Monday" {
		t.Errorf("weekday = %s, want Monday", d.Weekday())
	}
}
