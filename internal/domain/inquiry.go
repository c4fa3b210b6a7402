package domain

import "time"

type InquiryStatus string

const (
	InquiryPending   InquiryStatus = "pending"
	InquiryConfirmed InquiryStatus = "confirmed"
	InquiryCancelled InquiryStatus = "cancelled"
)

type RoomType string

const (
	RoomStandard  RoomType = "Standard"
	RoomDeluxe    RoomType = "Deluxe"
	RoomExecutive RoomType = "Executive"
)

func ValidRoomTypes() []RoomType {
	return []RoomType{RoomStandard, RoomDeluxe, RoomExecutive}
}

func IsValidRoomType(v string) bool {
	for _, rt := range ValidRoomTypes() {
		if string(rt) == v {
			return true
		}
	}
	return false
}

// Inquiry is one prospective booking request submitted from the public site.
// Check-in/check-out are stored as ISO dates (YYYY-MM-DD); the fixed-width
// zero-padded format makes plain string comparison valid for ordering.
type Inquiry struct {
	ID           string        `json:"id"`
	FullName     string        `json:"full_name"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone,omitempty"`
	CheckInDate  string        `json:"check_in_date"`
	CheckOutDate string        `json:"check_out_date,omitempty"`
	RoomType     RoomType      `json:"room_type"`
	Adults       int           `json:"adults"`
	Children     int           `json:"children"`
	Message      string        `json:"message,omitempty" gorm:"type:text"`
	Status       InquiryStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}

// CanTransition reports whether a status change is allowed: pending can be
// confirmed or cancelled, confirmed can only be cancelled.
func (i *Inquiry) CanTransition(to InquiryStatus) bool {
	switch {
	case i.Status == InquiryPending && to == InquiryConfirmed:
		return true
	case i.Status == InquiryPending && to == InquiryCancelled:
		return true
	case i.Status == InquiryConfirmed && to == InquiryCancelled:
		return true
	}
	return false
}
