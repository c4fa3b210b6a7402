package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"axishotel/internal/config"
	"axishotel/internal/database"
	"axishotel/internal/domain"
	"axishotel/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(repository.Models()...); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM booking_inquiries")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        cfg.AdminEmail,
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Hotel Administrator",
	}
	if err := userRepo.Create(ctx, &admin); err != nil {
		log.Fatal("admin seed failed:", err)
	}
	log.Printf("Admin created: %s / admin123", cfg.AdminEmail)

	guestHash, _ := bcrypt.GenerateFromPassword([]byte("guest123"), bcrypt.DefaultCost)
	guest := domain.User{
		Email:        "guest@example.com",
		PasswordHash: string(guestHash),
		Role:         domain.RoleGuest,
		Name:         "Sample Guest",
	}
	if err := userRepo.Create(ctx, &guest); err != nil {
		log.Fatal("guest seed failed:", err)
	}

	// ================== INQUIRIES ==================
	log.Println("Creating sample inquiries...")

	now := time.Now().UTC()
	samples := []domain.Inquiry{
		{
			FullName:     "Jane Doe",
			Email:        "jane@example.com",
			Phone:        "+254 700 000 001",
			CheckInDate:  now.AddDate(0, 0, 14).Format("2006-01-02"),
			CheckOutDate: now.AddDate(0, 0, 16).Format("2006-01-02"),
			RoomType:     domain.RoomDeluxe,
			Adults:       2,
			Children:     1,
			Message:      "Anniversary stay, late arrival expected.",
			Status:       domain.InquiryPending,
		},
		{
			FullName:     "John Mwangi",
			Email:        "john.mwangi@example.com",
			CheckInDate:  now.AddDate(0, 0, 7).Format("2006-01-02"),
			CheckOutDate: now.AddDate(0, 0, 9).Format("2006-01-02"),
			RoomType:     domain.RoomStandard,
			Adults:       1,
			Children:     0,
			Status:       domain.InquiryConfirmed,
		},
		{
			FullName:     "Amina Hassan",
			Email:        "amina.h@example.com",
			Phone:        "+254 700 000 003",
			CheckInDate:  now.AddDate(0, 1, 0).Format("2006-01-02"),
			CheckOutDate: now.AddDate(0, 1, 5).Format("2006-01-02"),
			RoomType:     domain.RoomExecutive,
			Adults:       2,
			Children:     2,
			Message:      "Needs adjoining rooms, \"garden view\" if possible.",
			Status:       domain.InquiryPending,
		},
	}

	for i := range samples {
		samples[i].CreatedAt = now.Add(-time.Duration(i) * time.Hour)
		if err := inquiryRepo.Create(ctx, &samples[i]); err != nil {
			log.Fatal("inquiry seed failed:", err)
		}
	}

	log.Printf("Seeded %d inquiries", len(samples))
}
