package cloudwatch

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/skpr/lambda-sns-alarm-slack/pkg/slack"
)

// ErrUnhandledState is returned for a state value CloudWatch does not document.
var ErrUnhandledState = errors.New("unhandled alarm state")

// Color returns the Slack attachment color for the alarm state.
func Color(state types.StateValue) (string, error) {
	switch state {
	case types.StateValueAlarm:
		return slack.ColorDanger, nil
	case types.StateValueOk:
		return slack.ColorGood, nil
	case types.StateValueInsufficientData:
		return slack.ColorWarning, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnhandledState, state)
}
