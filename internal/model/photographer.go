package model

// Photographer — исполнитель съёмки. На одного фотографа может
// приходиться много бронирований.
type Photographer struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Name string `gorm:"type:varchar(255);not null" json:"name"`

	// Специализация: свадебная, портретная и т.п.
	Specialty string `gorm:"type:varchar(255);not null" json:"specialty"`

	// Навигационные поля для GORM (опционально, но удобно для Preload).
	Bookings []Booking `gorm:"foreignKey:PhotographerID" json:"-"`
}
