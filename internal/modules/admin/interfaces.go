package admin

import (
	"context"

	"axishotel/internal/domain"
)

// InquiryStore is the full-CRUD capability of the admin workflow. The
// public form only ever sees the insert-only writer; this interface is the
// other side of that boundary.
type InquiryStore interface {
	ListAll(ctx context.Context) ([]domain.Inquiry, error)
	GetByID(ctx context.Context, id string) (*domain.Inquiry, error)
	UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) error
	Delete(ctx context.Context, id string) error
}
