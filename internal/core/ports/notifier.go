package ports

import "context"

// Notifier alerts site administrators of new job applications.
type Notifier interface {
	ApplicationReceived(ctx context.Context, app ApplicationInput, resumeURL string) error
}
