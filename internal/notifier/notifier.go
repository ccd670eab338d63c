package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"github.com/skpr/lambda-sns-alarm-slack/internal/cloudwatch"
	"github.com/skpr/lambda-sns-alarm-slack/internal/config"
	"github.com/skpr/lambda-sns-alarm-slack/internal/slack"
)

// WebhookResolver returns the webhook URL to post to.
type WebhookResolver interface {
	WebhookURL(ctx context.Context) (string, error)
}

// Sender delivers a payload to a webhook.
type Sender interface {
	Send(ctx context.Context, webhookURL string, payload slack.Payload) error
}

// Notifier relays CloudWatch Alarm notifications to Slack.
type Notifier struct {
	logger         *zap.Logger
	resolver       WebhookResolver
	sender         Sender
	identity       slack.Identity
	secretTimeout  time.Duration
	webhookTimeout time.Duration
}

// dumper renders the parsed alarm for debug logs.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// New creates a Notifier.
func New(cfg config.Config, logger *zap.Logger, resolver WebhookResolver, sender Sender) *Notifier {
	return &Notifier{
		logger:   logger,
		resolver: resolver,
		sender:   sender,
		identity: slack.Identity{
			Username:  cfg.Username,
			IconEmoji: cfg.IconEmoji,
		},
		secretTimeout:  cfg.SecretTimeout,
		webhookTimeout: cfg.WebhookTimeout,
	}
}

// HandleLambdaEvent will respond to a CloudWatch Alarm delivered over SNS and send a message to Slack.
func (n *Notifier) HandleLambdaEvent(ctx context.Context, event events.SNSEvent) error {
	logger := n.logger
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger = logger.With(zap.String("request_id", lc.AwsRequestID))
	}

	logger.Info("Validating event")

	if len(event.Records) == 0 {
		return fmt.Errorf("%w: no records", ErrMalformedEvent)
	}

	if len(event.Records) > 1 {
		logger.Debug("Ignoring additional records", zap.Int("records", len(event.Records)))
	}

	body := event.Records[0].SNS.Message
	if body == "" {
		return fmt.Errorf("%w: record has no message", ErrMalformedEvent)
	}

	alarm, err := cloudwatch.Parse(body)
	if err != nil {
		return fmt.Errorf("failed to parse message: %w", err)
	}

	logger = logger.With(zap.String("alarm", alarm.Name), zap.String("state", string(alarm.StateValue)))

	if ce := logger.Check(zap.DebugLevel, "Parsed alarm"); ce != nil {
		ce.Write(zap.String("dump", dumper.Sdump(alarm)))
	}

	color, err := cloudwatch.Color(alarm.StateValue)
	if err != nil {
		return fmt.Errorf("failed to map state: %w", err)
	}

	logger.Info("Looking up webhook URL")

	webhookURL, err := n.webhookURL(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve webhook: %w", err)
	}

	payload := slack.NewAlarmPayload(n.identity, alarm, color)

	logger.Info("Sending message to Slack")

	if err := n.send(ctx, webhookURL, payload); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	logger.Info("Function complete")

	return nil
}

func (n *Notifier) webhookURL(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, n.secretTimeout)
	defer cancel()

	return n.resolver.WebhookURL(ctx)
}

func (n *Notifier) send(ctx context.Context, webhookURL string, payload slack.Payload) error {
	ctx, cancel := context.WithTimeout(ctx, n.webhookTimeout)
	defer cancel()

	return n.sender.Send(ctx, webhookURL, payload)
}
