package inquiry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"axishotel/internal/domain"
)

type Service struct {
	inquiries InquiryWriter
	events    EventPublisher
	now       func() time.Time
}

func NewService(inquiries InquiryWriter, events EventPublisher) *Service {
	return &Service{
		inquiries: inquiries,
		events:    events,
		now:       time.Now,
	}
}

// SubmitResult is what a successful submission reports back to the form.
type SubmitResult struct {
	Inquiry      *domain.Inquiry
	Confirmation string
}

// Submit runs the full submission workflow: validate, then exactly one
// insert with status forced to pending. A validation failure never reaches
// the repository; a repository failure is returned as-is and is not
// retried.
func (s *Service) Submit(ctx context.Context, req SubmitInquiryRequest) (*SubmitResult, map[string]string, error) {
	today := s.now().Format("2006-01-02")

	fieldErrs := Validate(req, today)

	roomType := strings.TrimSpace(req.RoomType)
	if roomType == "" {
		roomType = string(domain.RoomStandard)
	}
	if !domain.IsValidRoomType(roomType) {
		fieldErrs["room_type"] = "Choose a valid room type."
	}
	if req.Children < 0 {
		fieldErrs["children"] = "Cannot be negative."
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs, ErrValidation
	}

	inq := &domain.Inquiry{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        strings.TrimSpace(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		RoomType:     domain.RoomType(roomType),
		Adults:       req.Adults,
		Children:     req.Children,
		Message:      strings.TrimSpace(req.Message),
		Status:       domain.InquiryPending,
	}

	if err := s.inquiries.Create(ctx, inq); err != nil {
		return nil, nil, err
	}

	if s.events != nil {
		s.events.InquiryCreated(inq)
	}

	return &SubmitResult{
		Inquiry: inq,
		Confirmation: fmt.Sprintf(
			"Thank you, %s. Your reservation inquiry for a %s has been recorded. Our team will contact you via email shortly.",
			inq.FullName, inq.RoomType,
		),
	}, nil, nil
}
