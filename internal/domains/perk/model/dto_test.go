package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validCreateRequest() CreatePerkRequest {
	return CreatePerkRequest{
		Title:         "50% off monitoring",
		Vendor:        "Acme Observability",
		RedemptionURL: "https://acme.example.com/redeem",
		DiscountType:  DiscountPercent,
		DiscountValue: decimal.NewFromInt(50),
	}
}

func TestCreatePerkRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validCreateRequest().Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		req := validCreateRequest()
		req.Title = ""
		assert.Error(t, req.Validate())
	})

	t.Run("bad redemption url", func(t *testing.T) {
		req := validCreateRequest()
		req.RedemptionURL = "not a url"
		assert.Error(t, req.Validate())
	})

	t.Run("unknown discount type", func(t *testing.T) {
		req := validCreateRequest()
		req.DiscountType = "bogo"
		assert.Error(t, req.Validate())
	})

	t.Run("percent over 100", func(t *testing.T) {
		req := validCreateRequest()
		req.DiscountValue = decimal.NewFromInt(150)
		assert.Error(t, req.Validate())
	})

	t.Run("fixed discount over 100 is fine", func(t *testing.T) {
		req := validCreateRequest()
		req.DiscountType = DiscountFixed
		req.DiscountValue = decimal.NewFromInt(150)
		assert.NoError(t, req.Validate())
	})

	t.Run("negative discount", func(t *testing.T) {
		req := validCreateRequest()
		req.DiscountValue = decimal.NewFromInt(-5)
		assert.Error(t, req.Validate())
	})

	t.Run("zero discount is allowed", func(t *testing.T) {
		req := validCreateRequest()
		req.DiscountValue = decimal.Zero
		assert.NoError(t, req.Validate())
	})
}

func TestListPerksRequestNormalize(t *testing.T) {
	r := ListPerksRequest{Page: 0, Limit: 500}
	r.Normalize()
	assert.Equal(t, 1, r.Page)
	assert.Equal(t, 10, r.Limit)

	r = ListPerksRequest{Page: 4, Limit: 25}
	r.Normalize()
	assert.Equal(t, 4, r.Page)
	assert.Equal(t, 25, r.Limit)
}
