package models

type Review struct {
	BaseModel
	Title    string `gorm:"not null" json:"title"`
	Body     string `gorm:"not null" json:"body"`
	Rating   int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	UserID   string `gorm:"type:uuid;not null;index" json:"userId"`
	CourseID string `gorm:"type:uuid;not null;index" json:"courseId"`

	// Relations
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Course Course `gorm:"foreignKey:CourseID" json:"-"`
}
