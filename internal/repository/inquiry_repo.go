package repository

import (
	"context"
	"errors"
	"time"

	"axishotel/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInquiryNotFound = errors.New("inquiry not found")

type InquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

type inquiryModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	FullName     string    `gorm:"column:full_name"`
	Email        string    `gorm:"column:email"`
	Phone        *string   `gorm:"column:phone"`
	CheckInDate  string    `gorm:"column:check_in_date"`
	CheckOutDate *string   `gorm:"column:check_out_date"`
	RoomType     string    `gorm:"column:room_type"`
	Adults       int       `gorm:"column:adults"`
	Children     int       `gorm:"column:children"`
	Message      *string   `gorm:"column:message"`
	Status       string    `gorm:"column:status"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (inquiryModel) TableName() string { return "booking_inquiries" }

func toDomainInquiry(m inquiryModel) *domain.Inquiry {
	var phone, checkOut, message string
	if m.Phone != nil {
		phone = *m.Phone
	}
	if m.CheckOutDate != nil {
		checkOut = *m.CheckOutDate
	}
	if m.Message != nil {
		message = *m.Message
	}

	return &domain.Inquiry{
		ID:           m.ID,
		FullName:     m.FullName,
		Email:        m.Email,
		Phone:        phone,
		CheckInDate:  m.CheckInDate,
		CheckOutDate: checkOut,
		RoomType:     domain.RoomType(m.RoomType),
		Adults:       m.Adults,
		Children:     m.Children,
		Message:      message,
		Status:       domain.InquiryStatus(m.Status),
		CreatedAt:    m.CreatedAt,
	}
}

func toInquiryModel(i *domain.Inquiry) inquiryModel {
	var phone, checkOut, message *string
	if i.Phone != "" {
		v := i.Phone
		phone = &v
	}
	if i.CheckOutDate != "" {
		v := i.CheckOutDate
		checkOut = &v
	}
	if i.Message != "" {
		v := i.Message
		message = &v
	}

	return inquiryModel{
		ID:           i.ID,
		FullName:     i.FullName,
		Email:        i.Email,
		Phone:        phone,
		CheckInDate:  i.CheckInDate,
		CheckOutDate: checkOut,
		RoomType:     string(i.RoomType),
		Adults:       i.Adults,
		Children:     i.Children,
		Message:      message,
		Status:       string(i.Status),
		CreatedAt:    i.CreatedAt,
	}
}

// Create inserts one inquiry. The row identity is assigned here: an opaque
// UUID plus the creation timestamp, mirroring what a hosted backend would
// return from its insert.
func (r *InquiryRepository) Create(ctx context.Context, i *domain.Inquiry) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now().UTC()
	}
	if i.Status == "" {
		i.Status = domain.InquiryPending
	}

	m := toInquiryModel(i)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*i = *toDomainInquiry(m)
	return nil
}

// ListAll returns every inquiry, newest first.
func (r *InquiryRepository) ListAll(ctx context.Context) ([]domain.Inquiry, error) {
	var models []inquiryModel
	tx := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Inquiry, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainInquiry(m))
	}
	return out, nil
}

func (r *InquiryRepository) GetByID(ctx context.Context, id string) (*domain.Inquiry, error) {
	var m inquiryModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrInquiryNotFound
		}
		return nil, tx.Error
	}
	return toDomainInquiry(m), nil
}

// UpdateStatus patches only the status column of one row.
func (r *InquiryRepository) UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&inquiryModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrInquiryNotFound
	}
	return nil
}

func (r *InquiryRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&inquiryModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrInquiryNotFound
	}
	return nil
}
