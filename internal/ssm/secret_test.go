package ssm

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const webhookURL = "https://hooks.slack.com/services/T000/B000/XXXX"

func TestGetWebhookURL(t *testing.T) {
	client := &MockClient{
		Parameters: map[string]string{
			"/utils/slack/webhook_url": webhookURL,
		},
	}

	url, err := GetWebhookURL(context.TODO(), client, "/utils/slack/webhook_url")
	require.NoError(t, err)
	assert.Equal(t, webhookURL, url)

	require.Len(t, client.Calls, 1)
	assert.Equal(t, "/utils/slack/webhook_url", aws.ToString(client.Calls[0].Name))
	assert.True(t, aws.ToBool(client.Calls[0].WithDecryption))
}

func TestGetWebhookURLNotFound(t *testing.T) {
	client := &MockClient{}

	_, err := GetWebhookURL(context.TODO(), client, "/utils/slack/webhook_url")
	assert.ErrorIs(t, err, ErrSecretResolution)
	assert.ErrorContains(t, err, "ParameterNotFound")
}

func TestGetWebhookURLAccessDenied(t *testing.T) {
	client := &MockClient{
		Err: &smithy.GenericAPIError{
			Code:    "AccessDeniedException",
			Message: "not authorized to perform: ssm:GetParameter",
		},
	}

	_, err := GetWebhookURL(context.TODO(), client, "/utils/slack/webhook_url")
	assert.ErrorIs(t, err, ErrSecretResolution)
	assert.ErrorContains(t, err, "AccessDeniedException")
}

func TestGetWebhookURLOtherError(t *testing.T) {
	client := &MockClient{
		Err: errors.New("connection reset"),
	}

	_, err := GetWebhookURL(context.TODO(), client, "/utils/slack/webhook_url")
	assert.ErrorIs(t, err, ErrSecretResolution)
}

func TestGetWebhookURLEmpty(t *testing.T) {
	client := &MockClient{
		Parameters: map[string]string{
			"/utils/slack/webhook_url": "",
		},
	}

	_, err := GetWebhookURL(context.TODO(), client, "/utils/slack/webhook_url")
	assert.ErrorIs(t, err, ErrSecretResolution)
}

// emptyClient returns a response without a parameter.
type emptyClient struct {
	ClientInterface
}

func (c *emptyClient) GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	return &ssm.GetParameterOutput{}, nil
}

func TestGetWebhookURLNoParameter(t *testing.T) {
	_, err := GetWebhookURL(context.TODO(), &emptyClient{}, "/utils/slack/webhook_url")
	assert.ErrorIs(t, err, ErrSecretResolution)
}

func TestResolver(t *testing.T) {
	resolver := &Resolver{
		Client: &MockClient{
			Parameters: map[string]string{
				"/custom/webhook": webhookURL,
			},
		},
		Parameter: "/custom/webhook",
	}

	url, err := resolver.WebhookURL(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, webhookURL, url)
}
