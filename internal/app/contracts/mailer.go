package contracts

import (
	"context"
	"neuroshield-service/internal/pkg/dto/requests"
)

// MailQueue hands a message off for asynchronous delivery; the actual
// sending happens in an external consumer.
type MailQueue interface {
	Publish(ctx context.Context, payload *requests.EmailPayload) error
}
