package models

type User struct {
	BaseModel
	GoogleID  string `gorm:"uniqueIndex;not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Name      string
	AvatarURL string

	// Relations
	Reviews  []Review  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Comments []Comment `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
