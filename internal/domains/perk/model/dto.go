package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =====================================================
// REQUEST DTOs
// =====================================================

type CreatePerkRequest struct {
	Title         string          `json:"title"`
	Vendor        string          `json:"vendor"`
	Description   string          `json:"description"`
	RedemptionURL string          `json:"redemption_url"`
	ImageURL      string          `json:"image_url"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	CategoryID    *uuid.UUID      `json:"category_id"`
	SubcategoryID *uuid.UUID      `json:"subcategory_id"`
	Featured      bool            `json:"featured"`
}

func (r CreatePerkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Vendor, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Description, validation.Length(0, 5000)),
		validation.Field(&r.RedemptionURL, validation.Required, is.URL),
		validation.Field(&r.ImageURL, validation.When(r.ImageURL != "", is.URL)),
		validation.Field(&r.DiscountType, validation.Required, validation.In(DiscountPercent, DiscountFixed)),
		validation.Field(&r.DiscountValue, validation.By(validDiscount(r.DiscountType))),
	)
}

// validDiscount requires a non-negative value, capped at 100 for percentages.
func validDiscount(discountType string) validation.RuleFunc {
	return func(value interface{}) error {
		d, ok := value.(decimal.Decimal)
		if !ok {
			return validation.NewError("validation_invalid", "must be a decimal")
		}
		if d.IsNegative() {
			return validation.NewError("validation_negative", "must not be negative")
		}
		if discountType == DiscountPercent && d.GreaterThan(decimal.NewFromInt(100)) {
			return validation.NewError("validation_range", "percent discount must not exceed 100")
		}
		return nil
	}
}

type UpdatePerkRequest struct {
	Title         *string          `json:"title"`
	Vendor        *string          `json:"vendor"`
	Description   *string          `json:"description"`
	RedemptionURL *string          `json:"redemption_url"`
	ImageURL      *string          `json:"image_url"`
	DiscountType  *string          `json:"discount_type"`
	DiscountValue *decimal.Decimal `json:"discount_value"`
	CategoryID    *uuid.UUID       `json:"category_id"`
	SubcategoryID *uuid.UUID       `json:"subcategory_id"`
	Featured      *bool            `json:"featured"`
	Status        *string          `json:"status"`
}

func (r UpdatePerkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.Vendor, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.RedemptionURL, validation.When(r.RedemptionURL != nil, is.URL)),
		validation.Field(&r.DiscountType, validation.When(r.DiscountType != nil, validation.In(DiscountPercent, DiscountFixed))),
		validation.Field(&r.Status, validation.When(r.Status != nil, validation.In(StatusDraft, StatusPublished, StatusArchived))),
	)
}

type ListPerksRequest struct {
	Search        *string    `form:"search"`
	CategoryID    *uuid.UUID `form:"category_id"`
	SubcategoryID *uuid.UUID `form:"subcategory_id"`
	Status        *string    `form:"status"`
	Featured      *bool      `form:"featured"`
	Page          int        `form:"page"`
	Limit         int        `form:"limit"`
}

func (r *ListPerksRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 10
	}
}

// =====================================================
// RESPONSE DTOs
// =====================================================

type PerkResponse struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	Slug          string          `json:"slug"`
	Vendor        string          `json:"vendor"`
	Description   string          `json:"description,omitempty"`
	RedemptionURL string          `json:"redemption_url"`
	ImageURL      string          `json:"image_url,omitempty"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	CategoryID    *uuid.UUID      `json:"category_id,omitempty"`
	SubcategoryID *uuid.UUID      `json:"subcategory_id,omitempty"`
	CategoryName  *string         `json:"category_name,omitempty"`
	Featured      bool            `json:"featured"`
	Status        string          `json:"status"`
	DisplayOrder  int             `json:"display_order"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func ToPerkResponse(p *Perk) PerkResponse {
	return PerkResponse{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Vendor:        p.Vendor,
		Description:   p.Description,
		RedemptionURL: p.RedemptionURL,
		ImageURL:      p.ImageURL,
		DiscountType:  p.DiscountType,
		DiscountValue: p.DiscountValue,
		CategoryID:    p.CategoryID,
		SubcategoryID: p.SubcategoryID,
		CategoryName:  p.CategoryName,
		Featured:      p.Featured,
		Status:        p.Status,
		DisplayOrder:  p.DisplayOrder,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
