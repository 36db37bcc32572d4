package models

type Wine struct {
	BaseModel
	Name     string `gorm:"not null;index"`
	Winery   string
	Country  string `gorm:"index"`
	Grape    string
	Vintage  int
	ImageURL string

	// Relations
	Reviews []Review `gorm:"foreignKey:WineID;constraint:OnDelete:CASCADE"`
}
