package usecase

import (
	"strings"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "jane.doe@example.com", "user+tag@sub.example.org"}
	for _, e := range valid {
		if !ValidateEmail(e) {
			t.Errorf("%q must be accepted", e)
		}
	}

	invalid := []string{"", "plain", "@nohost.com", "user@", "user@host", "two@@example.com"}
	for _, e := range invalid {
		if ValidateEmail(e) {
			t.Errorf("%q must be rejected", e)
		}
	}
}

func TestValidateName(t *testing.T) {
	if !ValidateName("Books") {
		t.Error("plain name must be accepted")
	}
	if ValidateName("") {
		t.Error("empty name must be rejected")
	}
	if ValidateName("   ") {
		t.Error("whitespace-only name must be rejected")
	}
	if ValidateName(strings.Repeat("x", maxNameLength+1)) {
		t.Error("overlong name must be rejected")
	}
	if !ValidateName(strings.Repeat("x", maxNameLength)) {
		t.Error("name at the limit must be accepted")
	}
}
