package services

// ServiceContainer holds all application services.
type ServiceContainer struct {
	AuthService   AuthService
	UserService   UserService
	CourseService CourseService
	ReviewService ReviewService
}
