package inquiry

// SubmitInquiryRequest carries the booking form fields as submitted,
// pre-coercion. Validation happens in Validate, not via binding tags, so
// the caller gets a full field→message map instead of a single bind error.
type SubmitInquiryRequest struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	RoomType     string `json:"room_type"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	Message      string `json:"message"`
}
