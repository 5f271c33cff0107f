package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"streamvault_backend/internal/model"
)

func TestPlausibleEmail(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"maya@example.com", true},
		{"a@b.co", true},
		{"first.last@sub.example.org", true},
		{"", false},
		{"no-at-sign", false},
		{"@example.com", false},
		{"maya@", false},
		{"maya@nodot", false},
		{"maya@dotlast.", false},
		{"two@@example.com", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.ok, model.PlausibleEmail(tc.email), tc.email)
	}
}

func TestDefaultPaymentMethod(t *testing.T) {
	c := model.Customer{}
	assert.Empty(t, c.DefaultPaymentMethod())

	c.PaymentMethods = []model.PaymentMethod{
		{Type: "visa"},
		{Type: "paypal", IsDefault: true},
	}
	assert.Equal(t, "paypal", c.DefaultPaymentMethod())

	// With no explicit default, the first method stands in.
	c.PaymentMethods = []model.PaymentMethod{{Type: "visa"}, {Type: "paypal"}}
	assert.Equal(t, "visa", c.DefaultPaymentMethod())
}
