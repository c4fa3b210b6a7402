package repository

// Models lists the persistence models for gorm AutoMigrate.
func Models() []any {
	return []any{
		&userModel{},
		&inquiryModel{},
	}
}
