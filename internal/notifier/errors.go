package notifier

import (
	"errors"

	"github.com/skpr/lambda-sns-alarm-slack/internal/cloudwatch"
	"github.com/skpr/lambda-sns-alarm-slack/internal/slack"
	"github.com/skpr/lambda-sns-alarm-slack/internal/ssm"
)

// Errors returned by HandleLambdaEvent. Match them with errors.Is.
var (
	// ErrMalformedEvent is returned when the SNS envelope has no usable record.
	ErrMalformedEvent = errors.New("malformed event")
	// ErrParse is returned when the SNS message is not a valid alarm notification.
	ErrParse = cloudwatch.ErrParse
	// ErrUnhandledState is returned when the alarm state has no color.
	ErrUnhandledState = cloudwatch.ErrUnhandledState
	// ErrSecretResolution is returned when the webhook URL cannot be looked up.
	ErrSecretResolution = ssm.ErrSecretResolution
	// ErrTransport is returned when the webhook request fails at the network layer.
	ErrTransport = slack.ErrTransport
	// ErrWebhookStatus is returned when the webhook responds with a non-2xx status.
	ErrWebhookStatus = slack.ErrWebhookStatus
)
