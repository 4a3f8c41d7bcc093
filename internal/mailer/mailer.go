// Package mailer is the outbound email collaborator. The service only
// depends on the Mailer interface; SMTP delivery lives behind it.
package mailer

import "context"

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=mocks github.com/JosephOluOlofinte/sleat-backend/internal/mailer Mailer

type Message struct {
	To      string
	Subject string
	HTML    string
}

// Result identifies an accepted message at the provider.
type Result struct {
	ID string
}

type Mailer interface {
	// Send never panics; delivery failures come back as the error.
	Send(ctx context.Context, msg Message) (*Result, error)
}
