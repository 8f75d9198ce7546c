package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Lead is a submission captured from a perk's claim form on the public site.
// The form payload is stored as raw JSON since each perk may ask for
// different fields.
type Lead struct {
	ID        uuid.UUID
	PerkID    *uuid.UUID
	IP        *string
	Data      json.RawMessage // nil when the form sent nothing
	CreatedAt time.Time

	// Joined on list queries; nil when the perk was deleted.
	PerkTitle  *string
	PerkVendor *string
}

// LeadFilter narrows list queries. Lead lists are always newest-first.
type LeadFilter struct {
	PerkID *uuid.UUID
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

func (f LeadFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// ExportRow is the flattened shape written to CSV / Excel exports.
type ExportRow struct {
	LeadID     string
	PerkTitle  *string
	PerkVendor *string
	CreatedAt  time.Time
	IP         *string
	Data       json.RawMessage
}

// NotifyTaskPayload is the asynq payload for lead notification emails.
type NotifyTaskPayload struct {
	LeadID     uuid.UUID `json:"lead_id"`
	PerkTitle  string    `json:"perk_title"`
	PerkVendor string    `json:"perk_vendor"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
}

// TaskTypeNotify is the asynq task type for lead notifications.
const TaskTypeNotify = "lead:notify"
