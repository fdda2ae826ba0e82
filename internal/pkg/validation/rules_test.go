package validation

import (
	"strings"
	"testing"
)

func TestIsValidPhone(t *testing.T) {
	valid := []string{
		"05551112233",
		"5551112233",
		"+905551112233",
		"905551112233",
		"0555 111 22 33",
		"0555-111-22-33",
		"(0555) 111 22 33",
	}
	for _, phone := range valid {
		if !IsValidPhone(phone) {
			t.Errorf("IsValidPhone(%q) = false, want true", phone)
		}
	}

	invalid := []string{
		"",
		"0216 345 67 89", // landline
		"0555111223",     // too short
		"055511122334",   // too long
		"telefon yok",
		"+15551112233",
	}
	for _, phone := range invalid {
		if IsValidPhone(phone) {
			t.Errorf("IsValidPhone(%q) = true, want false", phone)
		}
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank("   \t") {
		t.Error("whitespace should be blank")
	}
	if IsBlank(" a ") {
		t.Error("non-empty value should not be blank")
	}
}

func TestIsValidName(t *testing.T) {
	if !IsValidName("Ayşe Yılmaz") {
		t.Error("expected valid name")
	}
	if IsValidName("A") {
		t.Error("single rune should be too short")
	}
	if IsValidName("  ") {
		t.Error("blank should be invalid")
	}
	if IsValidName(strings.Repeat("a", 101)) {
		t.Error("names over 100 runes should be invalid")
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"admin@okulsport.app", "Yonetici@Okulsport.App", "a.b+c@ornek.com.tr"}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}

	invalid := []string{"", "admin", "admin@", "@okulsport.app", "admin okulsport.app"}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}
