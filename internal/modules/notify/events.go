package notify

import "axishotel/internal/domain"

// InquiryEvents publishes inquiry lifecycle events to the hub. It
// implements the inquiry module's EventPublisher without that module
// knowing about websockets.
type InquiryEvents struct {
	hub *Hub
}

func NewInquiryEvents(hub *Hub) *InquiryEvents {
	return &InquiryEvents{hub: hub}
}

type inquiryEvent struct {
	Type    string          `json:"type"`
	Inquiry *domain.Inquiry `json:"inquiry"`
}

func (e *InquiryEvents) InquiryCreated(i *domain.Inquiry) {
	if e == nil || e.hub == nil {
		return
	}
	e.hub.Broadcast(inquiryEvent{Type: "inquiry_created", Inquiry: i})
}
