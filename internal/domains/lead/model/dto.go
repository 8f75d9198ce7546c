package model

import (
	"encoding/json"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CaptureLeadRequest is the public claim-form submission. The data object is
// free-form; only an email key is required so the vendor can be reached.
type CaptureLeadRequest struct {
	Data map[string]interface{} `json:"data"`
}

func (r CaptureLeadRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Data, validation.Required),
		validation.Field(&r.Data, validation.By(hasEmail)),
	)
}

func hasEmail(value interface{}) error {
	data, ok := value.(map[string]interface{})
	if !ok || data == nil {
		return nil // covered by Required
	}
	email, ok := data["email"].(string)
	if !ok || email == "" {
		return validation.NewError("validation_email", "must include an email")
	}
	return nil
}

// Email returns the submitted email, or "" when absent.
func (r CaptureLeadRequest) Email() string {
	if r.Data == nil {
		return ""
	}
	if email, ok := r.Data["email"].(string); ok {
		return email
	}
	return ""
}

type ListLeadsRequest struct {
	PerkID *uuid.UUID `form:"perk_id"`
	From   *time.Time `form:"from" time_format:"2006-01-02"`
	To     *time.Time `form:"to" time_format:"2006-01-02"`
	Page   int        `form:"page"`
	Limit  int        `form:"limit"`
}

func (r *ListLeadsRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 10
	}
}

type LeadResponse struct {
	ID         uuid.UUID       `json:"id"`
	PerkID     *uuid.UUID      `json:"perk_id,omitempty"`
	PerkTitle  *string         `json:"perk_title,omitempty"`
	PerkVendor *string         `json:"perk_vendor,omitempty"`
	IP         *string         `json:"ip,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

func ToLeadResponse(l *Lead) LeadResponse {
	return LeadResponse{
		ID:         l.ID,
		PerkID:     l.PerkID,
		PerkTitle:  l.PerkTitle,
		PerkVendor: l.PerkVendor,
		IP:         l.IP,
		Data:       l.Data,
		CreatedAt:  l.CreatedAt,
	}
}
