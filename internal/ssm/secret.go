package ssm

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/smithy-go"
)

// ErrSecretResolution is returned when the webhook URL cannot be read from Parameter Store.
var ErrSecretResolution = errors.New("unable to resolve secret")

// GetWebhookURL reads and decrypts the named parameter.
// The parameter value is never part of a returned error.
func GetWebhookURL(ctx context.Context, client ClientInterface, name string) (string, error) {
	resp, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: failed to get parameter %s: %s", ErrSecretResolution, name, apiErr.ErrorCode())
		}

		return "", fmt.Errorf("%w: failed to get parameter %s: %w", ErrSecretResolution, name, err)
	}

	if resp.Parameter == nil || aws.ToString(resp.Parameter.Value) == "" {
		return "", fmt.Errorf("%w: parameter %s has no value", ErrSecretResolution, name)
	}

	return *resp.Parameter.Value, nil
}
