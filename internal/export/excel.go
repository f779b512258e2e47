// Package export renders a user's bookings to a spreadsheet for the
// dashboard's download-my-bookings action.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/himalayan-adventures/trek-api/internal/models"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Bookings"

var columns = []string{
	"Reference", "Trek", "Start Date", "End Date", "Travelers",
	"Package", "Add-ons", "Base Amount", "Add-ons Amount", "Total Amount",
	"Payment Status", "Booking Status", "Booked On",
}

// BookingsWorkbook writes the bookings into an xlsx workbook and returns its
// bytes, ready to stream as an attachment.
func BookingsWorkbook(bookings []models.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("error creating style: %v", err)
	}

	for i, name := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, name)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, b := range bookings {
		row := rowIdx + 2
		values := []interface{}{
			b.BookingReference,
			b.Trek.Title,
			b.TrekStartDate,
			b.TrekEndDate,
			b.ParticipantsCount,
			b.PackageType,
			strings.Join(b.AddOns, ", "),
			b.BaseAmount,
			b.AddOnsAmount,
			b.TotalAmount,
			b.PaymentStatus,
			b.BookingStatus,
			b.CreatedAt.Format("2006-01-02"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing workbook: %v", err)
	}
	return buf.Bytes(), nil
}
