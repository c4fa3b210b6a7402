package inquiry

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

const today = "2025-01-10"

func validRequest() SubmitInquiryRequest {
	return SubmitInquiryRequest{
		FullName:     "Jane Doe",
		Email:        "jane@x.com",
		CheckInDate:  "2025-02-01",
		CheckOutDate: "2025-02-03",
		RoomType:     "Deluxe",
		Adults:       2,
		Children:     1,
	}
}

func TestValidate_ValidRequest(t *testing.T) {
	errs := Validate(validRequest(), today)
	assert.Empty(t, errs)
}

func TestValidate_EmptyName(t *testing.T) {
	cases := []string{"", "   ", "\t\n"}
	for _, name := range cases {
		req := validRequest()
		req.FullName = name
		errs := Validate(req, today)
		assert.Equal(t, "Full name is required.", errs["full_name"], "name=%q", name)
	}

	// the name rule fires regardless of other fields
	req := SubmitInquiryRequest{FullName: "  ", Email: "bad", Adults: 0}
	errs := Validate(req, today)
	assert.Contains(t, errs, "full_name")
}

func TestValidate_Email(t *testing.T) {
	valid := []string{"guest@example.com", "a@b.co", "first.last@hotel.travel"}
	for _, e := range valid {
		req := validRequest()
		req.Email = e
		assert.NotContains(t, Validate(req, today), "email", "email=%q", e)
	}

	invalid := []string{"", "plain", "no@dot", "two@@x.com", "spa ce@x.com", "x@spa ce.com", "@x.com", "a@.c m"}
	for _, e := range invalid {
		req := validRequest()
		req.Email = e
		errs := Validate(req, today)
		assert.Equal(t, "Enter a valid email.", errs["email"], "email=%q", e)
	}
}

func TestValidate_CheckInDate(t *testing.T) {
	tests := []struct {
		checkIn string
		want    string
	}{
		{"", "Required."},
		{"2025-01-09", "Date cannot be in the past."},
		{"2025-01-10", ""},
		{"2025-01-15", ""},
	}

	for _, tt := range tests {
		req := validRequest()
		req.CheckInDate = tt.checkIn
		req.CheckOutDate = ""
		errs := Validate(req, today)
		if tt.want == "" {
			assert.NotContains(t, errs, "check_in_date", "check_in=%q", tt.checkIn)
		} else {
			assert.Equal(t, tt.want, errs["check_in_date"], "check_in=%q", tt.checkIn)
		}
	}
}

func TestValidate_CheckOutDate(t *testing.T) {
	req := validRequest()
	req.CheckInDate = "2025-01-15"
	req.CheckOutDate = "2025-01-14"
	errs := Validate(req, today)
	assert.Equal(t, "Must be after check-in.", errs["check_out_date"])

	// equal dates are not strictly after
	req.CheckOutDate = "2025-01-15"
	errs = Validate(req, today)
	assert.Equal(t, "Must be after check-in.", errs["check_out_date"])

	req.CheckOutDate = "2025-01-16"
	errs = Validate(req, today)
	assert.NotContains(t, errs, "check_out_date")

	// rule only applies when both dates are present
	req.CheckOutDate = ""
	assert.NotContains(t, Validate(req, today), "check_out_date")

	req.CheckInDate = ""
	req.CheckOutDate = "2025-01-14"
	assert.NotContains(t, Validate(req, today), "check_out_date")
}

func TestValidate_DateShape(t *testing.T) {
	malformed := []string{"9999", "01/02/2025", "2025-2-3", "2025-02-30", "tomorrow", "2025-02-01T00:00:00Z"}

	for _, d := range malformed {
		req := validRequest()
		req.CheckInDate = d
		req.CheckOutDate = ""
		errs := Validate(req, today)
		assert.Equal(t, "Enter a valid date.", errs["check_in_date"], "check_in=%q", d)

		req = validRequest()
		req.CheckOutDate = d
		errs = Validate(req, today)
		assert.Equal(t, "Enter a valid date.", errs["check_out_date"], "check_out=%q", d)
	}

	// a malformed check-in suppresses the ordering comparison
	req := validRequest()
	req.CheckInDate = "9999"
	req.CheckOutDate = "2025-02-03"
	errs := Validate(req, today)
	assert.Equal(t, "Enter a valid date.", errs["check_in_date"])
	assert.NotContains(t, errs, "check_out_date")
}

func TestValidate_Adults(t *testing.T) {
	req := validRequest()
	req.Adults = 0
	errs := Validate(req, today)
	assert.Equal(t, "At least one adult.", errs["adults"])

	req.Adults = -3
	assert.Contains(t, Validate(req, today), "adults")

	req.Adults = 1
	assert.NotContains(t, Validate(req, today), "adults")
}

func TestValidate_AllRulesEvaluated(t *testing.T) {
	req := SubmitInquiryRequest{
		FullName:     " ",
		Email:        "nope",
		CheckInDate:  "2025-01-01",
		CheckOutDate: "2024-12-30",
		Adults:       0,
	}
	errs := Validate(req, today)
	assert.Len(t, errs, 5)
	assert.Contains(t, errs, "full_name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "check_in_date")
	assert.Contains(t, errs, "adults")
	// check-out rule compares against check-in, not today
	assert.Contains(t, errs, "check_out_date")
}

func TestValidate_Idempotent(t *testing.T) {
	req := SubmitInquiryRequest{FullName: "", Email: "bad", CheckInDate: "2020-01-01", Adults: 0}
	first := Validate(req, today)
	second := Validate(req, today)
	assert.True(t, reflect.DeepEqual(first, second))
}
