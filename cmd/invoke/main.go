// Command invoke replays an SNS event file through the notifier, for testing alarms locally.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/urfave/cli/v2"

	"github.com/skpr/lambda-sns-alarm-slack/internal/config"
	"github.com/skpr/lambda-sns-alarm-slack/internal/logging"
	"github.com/skpr/lambda-sns-alarm-slack/internal/notifier"
	"github.com/skpr/lambda-sns-alarm-slack/internal/slack"
	"github.com/skpr/lambda-sns-alarm-slack/internal/ssm"
)

// staticWebhook skips Parameter Store when a URL is passed on the command line.
type staticWebhook string

func (s staticWebhook) WebhookURL(ctx context.Context) (string, error) {
	return string(s), nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "invoke",
		Usage: "Send a CloudWatch Alarm SNS event to Slack",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "event",
				Usage:    "path to an SNS event JSON file",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "webhook-url",
				Usage:   "post to this URL instead of reading it from Parameter Store",
				EnvVars: []string{"SLACK_WEBHOOK_URL"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level",
				Value:   "debug",
				EnvVars: []string{config.EnvLogLevel},
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(c.String("log-level"))
	if err != nil {
		return err
	}
	defer logger.Sync()

	data, err := os.ReadFile(c.String("event"))
	if err != nil {
		return fmt.Errorf("failed to read event: %w", err)
	}

	var event events.SNSEvent

	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to decode event: %w", err)
	}

	var resolver notifier.WebhookResolver

	if url := c.String("webhook-url"); url != "" {
		resolver = staticWebhook(url)
	} else {
		awscfg, err := awsconfig.LoadDefaultConfig(c.Context)
		if err != nil {
			return fmt.Errorf("unable to load SDK config: %w", err)
		}

		resolver = &ssm.Resolver{
			Client:    awsssm.NewFromConfig(awscfg),
			Parameter: cfg.WebhookURLParameter,
		}
	}

	return notifier.New(cfg, logger, resolver, slack.NewClient(http.DefaultClient)).HandleLambdaEvent(c.Context, event)
}
