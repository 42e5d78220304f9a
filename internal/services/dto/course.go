package dto

import "time"

// CourseResponse is the course representation the client renders on the
// map and in listings. Field names match the original API contract.
type CourseResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Lat           float64   `json:"lat"`
	Lng           float64   `json:"lng"`
	Address       string    `json:"address"`
	AverageRating float64   `json:"averageRating"`
	Featured      bool      `json:"featured"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CourseDetailResponse adds the course's reviews, newest first.
type CourseDetailResponse struct {
	CourseResponse
	Reviews []ReviewResponse `json:"reviews"`
}
