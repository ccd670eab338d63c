package ssm

import (
	"context"
)

// Resolver looks up the webhook URL from a fixed parameter on every call.
type Resolver struct {
	Client    ClientInterface
	Parameter string
}

// WebhookURL implements notifier.WebhookResolver.
func (r *Resolver) WebhookURL(ctx context.Context) (string, error) {
	return GetWebhookURL(ctx, r.Client, r.Parameter)
}
