package admin

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"axishotel/internal/domain"
)

// csvHeader is the fixed export column order.
var csvHeader = []string{"Date", "Guest Name", "Email", "Phone", "Status", "Message"}

// marshalCSV writes the inquiries in the fixed column order with RFC 4180
// quoting (encoding/csv doubles quotes and wraps fields containing commas
// or quotes). Missing contact fields export as N/A.
func marshalCSV(rows []domain.Inquiry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, r := range rows {
		record := []string{
			r.CreatedAt.Format("2006-01-02"),
			orNA(r.FullName),
			orNA(r.Email),
			orNA(r.Phone),
			string(r.Status),
			r.Message,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportFileName() string {
	return fmt.Sprintf("axis_hotel_bookings_%s.csv", time.Now().Format("2006-01-02"))
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
