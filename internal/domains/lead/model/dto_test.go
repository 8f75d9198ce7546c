package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaptureLeadRequestValidate(t *testing.T) {
	t.Run("valid with email", func(t *testing.T) {
		req := CaptureLeadRequest{Data: map[string]interface{}{
			"email":   "dev@example.com",
			"company": "Initech",
		}}
		assert.NoError(t, req.Validate())
	})

	t.Run("nil data", func(t *testing.T) {
		assert.Error(t, CaptureLeadRequest{}.Validate())
	})

	t.Run("missing email key", func(t *testing.T) {
		req := CaptureLeadRequest{Data: map[string]interface{}{"company": "Initech"}}
		assert.Error(t, req.Validate())
	})

	t.Run("empty email", func(t *testing.T) {
		req := CaptureLeadRequest{Data: map[string]interface{}{"email": ""}}
		assert.Error(t, req.Validate())
	})

	t.Run("email is not a string", func(t *testing.T) {
		req := CaptureLeadRequest{Data: map[string]interface{}{"email": 42}}
		assert.Error(t, req.Validate())
	})
}

func TestCaptureLeadRequestEmail(t *testing.T) {
	req := CaptureLeadRequest{Data: map[string]interface{}{"email": "dev@example.com"}}
	assert.Equal(t, "dev@example.com", req.Email())

	assert.Empty(t, CaptureLeadRequest{}.Email())
	assert.Empty(t, CaptureLeadRequest{Data: map[string]interface{}{"email": 1}}.Email())
}
