package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"perkpal-backend/internal/domains/lead/model"
)

// Column layout shared by the CSV and Excel exports.
var exportHeader = []string{"Lead ID", "Perk Title", "Perk Vendor", "Submission Date", "IP Address", "Form Data"}

// missing marks a field the lead never had (deleted perk, no IP recorded).
const missing = "-"

func exportFields(row model.ExportRow) []string {
	title, vendor, ip := missing, missing, missing
	if row.PerkTitle != nil {
		title = *row.PerkTitle
	}
	if row.PerkVendor != nil {
		vendor = *row.PerkVendor
	}
	if row.IP != nil {
		ip = *row.IP
	}

	data := ""
	if len(row.Data) > 0 {
		data = string(row.Data)
	}

	return []string{
		row.LeadID,
		title,
		vendor,
		row.CreatedAt.UTC().Format(time.RFC3339),
		ip,
		data,
	}
}

// BuildCSV renders export rows as RFC 4180 CSV with a fixed header. Rows are
// written in the order given; callers sort newest-first.
func BuildCSV(rows []model.ExportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(exportFields(row)); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildExcel renders the same table as an .xlsx workbook with a styled
// header row.
func BuildExcel(rows []model.ExportRow) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Leads"
	f.SetSheetName("Sheet1", sheet)

	for colIdx, name := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, fmt.Errorf("failed to write excel header: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		start, _ := excelize.CoordinatesToCellName(1, 1)
		end, _ := excelize.CoordinatesToCellName(len(exportHeader), 1)
		_ = f.SetCellStyle(sheet, start, end, headerStyle)
	}

	for rowIdx, row := range rows {
		for colIdx, value := range exportFields(row) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write excel row: %w", err)
			}
		}
	}

	return f, nil
}
