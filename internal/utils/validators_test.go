package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.False(t, IsValidEmail("user.example.com"))
	assert.False(t, IsValidEmail("user@localhost"))
	assert.False(t, IsValidEmail(""))
}

func TestIsComplexPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"meets all requirements", "Str0ng!pass", true},
		{"too short", "S1!a", false},
		{"missing uppercase", "weak1pass!", false},
		{"missing lowercase", "WEAK1PASS!", false},
		{"missing number", "WeakPass!!", false},
		{"missing special character", "WeakPass11", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsComplexPassword(tc.password))
		})
	}
}

func TestIsValidReminderTime(t *testing.T) {
	assert.True(t, IsValidReminderTime("09:30"))
	assert.True(t, IsValidReminderTime("00:00"))
	assert.True(t, IsValidReminderTime("23:59"))
	assert.False(t, IsValidReminderTime("24:00"))
	assert.False(t, IsValidReminderTime("12:60"))
	assert.False(t, IsValidReminderTime("9:30"))
	assert.False(t, IsValidReminderTime("ab:cd"))
	assert.False(t, IsValidReminderTime(""))
}
