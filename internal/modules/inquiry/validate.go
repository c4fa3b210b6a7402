package inquiry

import (
	"regexp"
	"strings"
	"time"
)

// local-part@domain with a dotted domain, no whitespace or extra "@".
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate maps every failing field of a candidate inquiry to a
// human-readable message. All rules run independently; fields with no
// error are absent from the result. today is an ISO date (YYYY-MM-DD);
// because the format is fixed-width and zero-padded, plain string
// comparison orders dates correctly.
func Validate(req SubmitInquiryRequest, today string) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(req.FullName) == "" {
		errs["full_name"] = "Full name is required."
	}

	if !emailPattern.MatchString(req.Email) {
		errs["email"] = "Enter a valid email."
	}

	switch {
	case req.CheckInDate == "":
		errs["check_in_date"] = "Required."
	case !isISODate(req.CheckInDate):
		errs["check_in_date"] = "Enter a valid date."
	case req.CheckInDate < today:
		errs["check_in_date"] = "Date cannot be in the past."
	}

	if req.CheckOutDate != "" && !isISODate(req.CheckOutDate) {
		errs["check_out_date"] = "Enter a valid date."
	} else if isISODate(req.CheckInDate) && req.CheckOutDate != "" {
		if req.CheckOutDate <= req.CheckInDate {
			errs["check_out_date"] = "Must be after check-in."
		}
	}

	if req.Adults < 1 {
		errs["adults"] = "At least one adult."
	}

	return errs
}

// isISODate reports whether v is a real calendar date in zero-padded
// YYYY-MM-DD form. The browser's date input guarantees the shape; API
// callers get the same guarantee enforced here (the round-trip rejects
// unpadded variants that time.Parse alone would accept).
func isISODate(v string) bool {
	t, err := time.Parse("2006-01-02", v)
	return err == nil && t.Format("2006-01-02") == v
}
