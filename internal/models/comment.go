package models

type Comment struct {
	BaseModel
	UserID   string `gorm:"type:uuid;not null;index"`
	ReviewID string `gorm:"type:uuid;not null;index"`
	Content  string `gorm:"not null"`

	// Relations
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Review Review `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
}

// OwnerID реализует auth.Owned для проверки владения
func (c *Comment) OwnerID() string {
	return c.UserID
}
