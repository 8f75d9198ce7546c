package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perkpal-backend/internal/domains/lead/model"
)

func strPtr(s string) *string { return &s }

func TestBuildCSV(t *testing.T) {
	submitted := time.Date(2026, 3, 14, 9, 30, 0, 0, time.FixedZone("ICT", 7*3600))

	rows := []model.ExportRow{
		{
			LeadID:     "f6a7c7a0-0000-4000-8000-000000000001",
			PerkTitle:  strPtr("50% off Postgres hosting"),
			PerkVendor: strPtr("Acme Cloud"),
			CreatedAt:  submitted,
			IP:         strPtr("203.0.113.7"),
			Data:       json.RawMessage(`{"email":"dev@example.com","company":"Initech"}`),
		},
		{
			// Perk deleted after capture, no IP recorded, no form data.
			LeadID:    "f6a7c7a0-0000-4000-8000-000000000002",
			CreatedAt: submitted.Add(-24 * time.Hour),
		},
	}

	out, err := BuildCSV(rows)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Lead ID", "Perk Title", "Perk Vendor", "Submission Date", "IP Address", "Form Data"}, records[0])

	assert.Equal(t, []string{
		"f6a7c7a0-0000-4000-8000-000000000001",
		"50% off Postgres hosting",
		"Acme Cloud",
		"2026-03-14T02:30:00Z", // normalized to UTC
		"203.0.113.7",
		`{"email":"dev@example.com","company":"Initech"}`,
	}, records[1])

	assert.Equal(t, []string{
		"f6a7c7a0-0000-4000-8000-000000000002",
		"-",
		"-",
		"2026-03-13T02:30:00Z",
		"-",
		"",
	}, records[2])
}

func TestBuildCSVEmpty(t *testing.T) {
	out, err := BuildCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, exportHeader, records[0])
}

func TestBuildCSVQuotesEmbeddedCommas(t *testing.T) {
	rows := []model.ExportRow{
		{
			LeadID:    "x",
			PerkTitle: strPtr(`Buy 1, get 1 "free"`),
			CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	out, err := BuildCSV(rows)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, `Buy 1, get 1 "free"`, records[1][1])
}

func TestBuildExcel(t *testing.T) {
	rows := []model.ExportRow{
		{
			LeadID:     "lead-1",
			PerkTitle:  strPtr("Free tier upgrade"),
			PerkVendor: strPtr("Umbrella"),
			CreatedAt:  time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC),
			IP:         strPtr("198.51.100.4"),
			Data:       json.RawMessage(`{"email":"a@b.co"}`),
		},
	}

	f, err := BuildExcel(rows)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Leads", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Free tier upgrade", got)

	header, err := f.GetCellValue("Leads", "D1")
	require.NoError(t, err)
	assert.Equal(t, "Submission Date", header)
}
