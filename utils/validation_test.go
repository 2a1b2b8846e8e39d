package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("9999999999"))
	assert.True(t, ValidatePhone("98765 43210"))
	assert.True(t, ValidatePhone("98765-43210"))

	assert.False(t, ValidatePhone("+919999999999"), "country code must not be stored")
	assert.False(t, ValidatePhone("12345"))
	assert.False(t, ValidatePhone("1999999999"), "indian mobiles start with 6-9")
	assert.False(t, ValidatePhone("99999999990"))
	assert.False(t, ValidatePhone(""))
}

func TestValidateFrequency(t *testing.T) {
	for _, f := range []string{"Daily", "Weekly", "Monthly", "Alternate Days"} {
		assert.True(t, ValidateFrequency(f), f)
	}
	assert.False(t, ValidateFrequency("daily"))
	assert.False(t, ValidateFrequency("Fortnightly"))
	assert.False(t, ValidateFrequency(""))
}
