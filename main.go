package main

import (
	"context"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	"go.uber.org/zap"

	"github.com/skpr/lambda-sns-alarm-slack/internal/config"
	"github.com/skpr/lambda-sns-alarm-slack/internal/logging"
	"github.com/skpr/lambda-sns-alarm-slack/internal/notifier"
	"github.com/skpr/lambda-sns-alarm-slack/internal/slack"
	"github.com/skpr/lambda-sns-alarm-slack/internal/ssm"
)

var (
	// GitVersion overridden at build time by:
	//   -ldflags="-X main.GitVersion=${VERSION}"
	GitVersion string
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("unable to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("unable to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting Lambda", zap.String("version", GitVersion))

	awscfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logger.Fatal("unable to load SDK config", zap.Error(err))
	}

	resolver := &ssm.Resolver{
		Client:    awsssm.NewFromConfig(awscfg),
		Parameter: cfg.WebhookURLParameter,
	}

	n := notifier.New(cfg, logger, resolver, slack.NewClient(http.DefaultClient))

	lambda.Start(n.HandleLambdaEvent)
}
