package model

// services
type Service struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Name string `gorm:"type:varchar(255);not null" json:"name"`

	// Цена с точностью 2 знака; скрытого округления сверх этого нет.
	Price float64 `gorm:"type:decimal(10,2);not null" json:"price"`

	// Навигация many2many через booking_services
	Bookings []BookingService `gorm:"foreignKey:ServiceID" json:"-"`
}

// booking_services — join-таблица многие-ко-многим с составным PK.
// Строки не обновляются на месте: набор услуг бронирования всегда
// удаляется и вставляется заново целиком.
type BookingService struct {
	BookingID uint `gorm:"primaryKey" json:"booking_id"`
	ServiceID uint `gorm:"primaryKey" json:"service_id"`

	Booking *Booking `gorm:"foreignKey:BookingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Service *Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
