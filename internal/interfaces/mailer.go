package interfaces

import "context"

type Mailer interface {
	Send(ctx context.Context, subject, text, html string) error
}
