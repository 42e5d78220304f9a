package email

// Provider sends transactional mail on behalf of the application.
type Provider interface {
	Send(to, subject, body string) error
}
