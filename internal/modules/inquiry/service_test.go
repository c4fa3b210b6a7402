package inquiry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"axishotel/internal/domain"
)

type MockInquiryWriter struct {
	mock.Mock
}

func (m *MockInquiryWriter) Create(ctx context.Context, i *domain.Inquiry) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) InquiryCreated(i *domain.Inquiry) {
	m.Called(i)
}

func fixedClock() time.Time {
	return time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
}

func TestService_Submit_Success(t *testing.T) {
	writer := new(MockInquiryWriter)
	events := new(MockEventPublisher)
	svc := NewService(writer, events)
	svc.now = fixedClock

	writer.On("Create", mock.Anything, mock.MatchedBy(func(i *domain.Inquiry) bool {
		return i.FullName == "Jane Doe" &&
			i.Status == domain.InquiryPending &&
			i.RoomType == domain.RoomDeluxe
	})).Return(nil).Once()
	events.On("InquiryCreated", mock.Anything).Once()

	res, fieldErrs, err := svc.Submit(context.Background(), SubmitInquiryRequest{
		FullName:     "  Jane Doe  ",
		Email:        "jane@x.com",
		CheckInDate:  "2025-02-01",
		CheckOutDate: "2025-02-03",
		RoomType:     "Deluxe",
		Adults:       2,
	})

	assert.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, "Jane Doe", res.Inquiry.FullName)
	assert.Equal(t,
		"Thank you, Jane Doe. Your reservation inquiry for a Deluxe has been recorded. Our team will contact you via email shortly.",
		res.Confirmation)
	writer.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestService_Submit_DefaultsRoomType(t *testing.T) {
	writer := new(MockInquiryWriter)
	svc := NewService(writer, nil)
	svc.now = fixedClock

	writer.On("Create", mock.Anything, mock.MatchedBy(func(i *domain.Inquiry) bool {
		return i.RoomType == domain.RoomStandard
	})).Return(nil).Once()

	res, _, err := svc.Submit(context.Background(), SubmitInquiryRequest{
		FullName:    "John",
		Email:       "john@x.com",
		CheckInDate: "2025-02-01",
		Adults:      1,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoomStandard, res.Inquiry.RoomType)
	writer.AssertExpectations(t)
}

func TestService_Submit_ValidationFailureNeverInserts(t *testing.T) {
	writer := new(MockInquiryWriter)
	svc := NewService(writer, nil)
	svc.now = fixedClock

	_, fieldErrs, err := svc.Submit(context.Background(), SubmitInquiryRequest{
		FullName: "",
		Email:    "bad",
		Adults:   0,
	})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Full name is required.", fieldErrs["full_name"])
	assert.Equal(t, "Enter a valid email.", fieldErrs["email"])
	assert.Equal(t, "Required.", fieldErrs["check_in_date"])
	assert.Equal(t, "At least one adult.", fieldErrs["adults"])
	writer.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Submit_RejectsUnknownRoomType(t *testing.T) {
	writer := new(MockInquiryWriter)
	svc := NewService(writer, nil)
	svc.now = fixedClock

	_, fieldErrs, err := svc.Submit(context.Background(), SubmitInquiryRequest{
		FullName:    "John",
		Email:       "john@x.com",
		CheckInDate: "2025-02-01",
		RoomType:    "Penthouse",
		Adults:      1,
	})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Choose a valid room type.", fieldErrs["room_type"])
	writer.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Submit_RejectsNegativeChildren(t *testing.T) {
	writer := new(MockInquiryWriter)
	svc := NewService(writer, nil)
	svc.now = fixedClock

	_, fieldErrs, err := svc.Submit(context.Background(), SubmitInquiryRequest{
		FullName:    "John",
		Email:       "john@x.com",
		CheckInDate: "2025-02-01",
		Adults:      1,
		Children:    -1,
	})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Cannot be negative.", fieldErrs["children"])
}

func TestService_Submit_RepositoryFailure(t *testing.T) {
	writer := new(MockInquiryWriter)
	events := new(MockEventPublisher)
	svc := NewService(writer, events)
	svc.now = fixedClock

	dbErr := errors.New("connection refused")
	writer.On("Create", mock.Anything, mock.Anything).Return(dbErr).Once()

	res, fieldErrs, err := svc.Submit(context.Background(), SubmitInquiryRequest{
		FullName:    "John",
		Email:       "john@x.com",
		CheckInDate: "2025-02-01",
		Adults:      1,
	})

	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, res)
	assert.Nil(t, fieldErrs)
	// exactly one attempt, no retry, no event
	writer.AssertNumberOfCalls(t, "Create", 1)
	events.AssertNotCalled(t, "InquiryCreated", mock.Anything)
}
