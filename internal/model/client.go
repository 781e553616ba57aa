package model

// clients
type Client struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Email string `gorm:"type:varchar(255);not null" json:"email"`
	Phone string `gorm:"type:varchar(32);not null" json:"phone"`

	// Навигационные поля (опционально)
	Bookings []Booking `gorm:"foreignKey:ClientID" json:"-"`
}
