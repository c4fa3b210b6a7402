package inquiry

import (
	"context"

	"axishotel/internal/domain"
)

// InquiryWriter is the insert-only capability the public form gets.
// Listing, updating and deleting live behind the admin module's store so
// the authorization boundary is visible in the wiring, not just in the
// route table.
type InquiryWriter interface {
	Create(ctx context.Context, i *domain.Inquiry) error
}

// EventPublisher pushes inquiry lifecycle events to whoever is watching
// (the admin live feed). Publishing must never fail a submission.
type EventPublisher interface {
	InquiryCreated(i *domain.Inquiry)
}
