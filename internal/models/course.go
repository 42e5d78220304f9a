package models

type Course struct {
	BaseModel
	Name          string  `gorm:"not null;index" json:"name"`
	Lat           float64 `gorm:"not null" json:"lat"`
	Lng           float64 `gorm:"not null" json:"lng"`
	Address       string  `gorm:"not null" json:"address"`
	AverageRating float64 `gorm:"not null;default:0" json:"averageRating"`
	Featured      bool    `gorm:"not null;default:false;index" json:"featured"`

	// Relations
	Reviews []Review `gorm:"foreignKey:CourseID" json:"-"`
}
