package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omarsakr/SakrStore/utils"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "01012345678", utils.NormalizePhone("010 1234-5678"))
	assert.Equal(t, "01012345678", utils.NormalizePhone("(010) 1234 5678"))
}

func TestValidateEgyptianPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"valid 010", "01012345678", true},
		{"valid 011", "01112345678", true},
		{"valid 012", "01212345678", true},
		{"valid 015", "01512345678", true},
		{"valid with formatting", "010 1234-5678", true},
		{"invalid prefix 013", "01312345678", false},
		{"too short", "0101234567", false},
		{"too long", "010123456789", false},
		{"landline", "0223456789", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := utils.ValidateEgyptianPhone(tt.phone)
			assert.Equal(t, tt.valid, ok)
			if !tt.valid {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	ok, _ := utils.ValidateName("Omar")
	assert.True(t, ok)

	ok, msg := utils.ValidateName(" a ")
	assert.False(t, ok)
	assert.Equal(t, "Name must be at least 2 characters long", msg)
}

func TestValidateNotes(t *testing.T) {
	ok, _ := utils.ValidateNotes(strings.Repeat("x", utils.MaxNotesLength))
	assert.True(t, ok)

	ok, _ = utils.ValidateNotes(strings.Repeat("x", utils.MaxNotesLength+1))
	assert.False(t, ok)
}

func TestValidateQuantity(t *testing.T) {
	ok, _ := utils.ValidateQuantity(0)
	assert.True(t, ok)

	ok, _ = utils.ValidateQuantity(-1)
	assert.False(t, ok)
}
