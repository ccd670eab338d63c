package cloudwatch

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/stretchr/testify/assert"
)

func TestColor(t *testing.T) {
	tests := []struct {
		state types.StateValue
		want  string
	}{
		{types.StateValueAlarm, "danger"},
		{types.StateValueOk, "good"},
		{types.StateValueInsufficientData, "warning"},
	}

	for _, tt := range tests {
		color, err := Color(tt.state)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, color, string(tt.state))
	}
}

func TestColorUnhandled(t *testing.T) {
	for _, state := range []types.StateValue{"", "alarm", "UNKNOWN"} {
		color, err := Color(state)
		assert.ErrorIs(t, err, ErrUnhandledState)
		assert.Empty(t, color)
	}
}
