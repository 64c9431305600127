package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clinicart/internal/rules"
	"clinicart/internal/validate"
)

func TestID(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"42", 42, true},
		{" 7 ", 7, true},
		{"0", 0, true},
		{"abc", 0, false},
		{"-1", 0, false},
		{"1e3", 0, false},
		{"", 0, false},
		{"12345678901", 0, false},
	}
	for _, tt := range tests {
		got, ok := validate.ID(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestPincode(t *testing.T) {
	pin, ok := validate.Pincode("110001")
	assert.True(t, ok)
	assert.Equal(t, 110001, pin)

	for _, bad := range []string{"", "11000", "1100011", "011000", "11a001", "110 01"} {
		_, ok := validate.Pincode(bad)
		assert.False(t, ok, bad)
	}
}

func TestPageAndLimit(t *testing.T) {
	assert.Equal(t, 3, validate.Page("3"))
	assert.Equal(t, rules.DefaultPage, validate.Page(""))
	assert.Equal(t, rules.DefaultPage, validate.Page("-2"))
	assert.Equal(t, rules.DefaultPage, validate.Page("x"))

	assert.Equal(t, 25, validate.Limit("25", 100))
	assert.Equal(t, 100, validate.Limit("5000", 100))
	assert.Equal(t, rules.DefaultLimit, validate.Limit("0", 100))
	assert.Equal(t, 5000, validate.Limit("5000", 0))
}
