package ssm

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
)

// ClientInterface for interacting with SSM Parameter Store.
type ClientInterface interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// MockClient used for testing purposes.
type MockClient struct {
	Parameters map[string]string
	Err        error
	Calls      []ssm.GetParameterInput
}

// GetParameter mocks the SSM API.
func (m *MockClient) GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	m.Calls = append(m.Calls, *params)

	if m.Err != nil {
		return nil, m.Err
	}

	value, ok := m.Parameters[aws.ToString(params.Name)]
	if !ok {
		return nil, &types.ParameterNotFound{
			Message: aws.String("parameter not found"),
		}
	}

	return &ssm.GetParameterOutput{
		Parameter: &types.Parameter{
			Name:  params.Name,
			Value: aws.String(value),
		},
	}, nil
}
