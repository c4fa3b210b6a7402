package admin

import (
	"context"
	"errors"

	"axishotel/internal/domain"
	"axishotel/internal/repository"
)

type Service struct {
	inquiries InquiryStore
}

func NewService(inquiries InquiryStore) *Service {
	return &Service{inquiries: inquiries}
}

// ListInquiries returns every inquiry, newest first. An empty list is a
// valid result, not an error.
func (s *Service) ListInquiries(ctx context.Context) ([]domain.Inquiry, error) {
	return s.inquiries.ListAll(ctx)
}

// ChangeStatus updates one row's status after checking the transition is
// allowed (pending→confirmed, pending/confirmed→cancelled). Exactly one
// update is issued; on failure nothing is patched.
func (s *Service) ChangeStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error) {
	switch status {
	case domain.InquiryPending, domain.InquiryConfirmed, domain.InquiryCancelled:
	default:
		return nil, ErrInvalidStatus
	}

	inq, err := s.inquiries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !inq.CanTransition(status) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.inquiries.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	inq.Status = status
	return inq, nil
}

// DeleteInquiry removes one row permanently. The explicit DELETE call is
// the confirmed action; there is no soft delete.
func (s *Service) DeleteInquiry(ctx context.Context, id string) error {
	return s.inquiries.Delete(ctx, id)
}

// ExportCSV serializes the current inquiries to CSV. An empty list refuses
// the export instead of producing an empty file.
func (s *Service) ExportCSV(ctx context.Context) ([]byte, string, error) {
	rows, err := s.inquiries.ListAll(ctx)
	if err != nil {
		return nil, "", err
	}
	if len(rows) == 0 {
		return nil, "", ErrNoData
	}

	data, err := marshalCSV(rows)
	if err != nil {
		return nil, "", err
	}
	return data, exportFileName(), nil
}

// IsNotFound reports whether err means the target row no longer exists.
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrInquiryNotFound)
}
