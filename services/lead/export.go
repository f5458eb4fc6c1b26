package lead

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// exportSheet is the single sheet name in the exported workbook.
const exportSheet = "Al-Barkah"

var exportHeaders = []string{
	"Kode Booking",
	"Nama Lengkap",
	"No WhatsApp",
	"Paket",
	"Pax",
	"Status",
	"Status Pembayaran",
	"Jumlah Dibayar",
	"Paspor",
	"Kamar",
}

// ExportXLSX serializes the full, unfiltered lead collection into an XLSX
// workbook with one sheet and a fixed column set.
func (s *DefaultService) ExportXLSX() ([]byte, error) {
	leads, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load leads for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create export sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, l := range leads {
		values := []interface{}{
			l.CheckoutCode,
			l.FullName,
			l.WhatsappNumber,
			l.PackageName,
			l.NumberOfPax,
			string(l.Status),
			string(l.PaymentStatus),
			l.AmountPaid,
			string(l.HasPassport),
			string(l.RoomPreference),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
