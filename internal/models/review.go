package models

type Review struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;index"`
	WineID string `gorm:"type:uuid;not null;index"`
	Rating int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	// Необязательные поля храним как указатели: NULL в БД, null в JSON
	Notes    *string
	ImageURL *string

	// Relations
	User     User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Wine     Wine      `gorm:"foreignKey:WineID;constraint:OnDelete:CASCADE"`
	Comments []Comment `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
}

// OwnerID реализует auth.Owned для проверки владения
func (r *Review) OwnerID() string {
	return r.UserID
}
