package slack

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skpr/lambda-sns-alarm-slack/internal/cloudwatch"
)

var identity = Identity{
	Username:  "cloudwatch-alert",
	IconEmoji: ":slack:",
}

func TestNewAlarmPayload(t *testing.T) {
	alarm := cloudwatch.Alarm{
		Name:       "HighCPU",
		Namespace:  "AWS/EC2",
		MetricName: "CPUUtilization",
		Dimensions: []cloudwatch.Dimension{
			cloudwatch.NewDimension("InstanceId", "i-0123"),
		},
		StateReason: "Threshold Crossed",
		StateValue:  types.StateValueAlarm,
	}

	got := NewAlarmPayload(identity, alarm, "danger")

	want := Payload{
		Username:  "cloudwatch-alert",
		IconEmoji: ":slack:",
		Attachments: []Attachment{
			{
				Color:    "danger",
				Fallback: "HighCPU",
				Title:    "Alarm: HighCPU",
				Fields: []Field{
					{Title: "Metric", Value: "AWS/EC2/CPUUtilization"},
					{Title: "Dimensions", Value: "InstanceId: i-0123"},
					{Title: "Reason", Value: "Threshold Crossed"},
				},
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected payload (-want +got):\n%s", diff)
	}
}

func TestNewAlarmPayloadKeepsNameExactly(t *testing.T) {
	names := []string{"HighCPU", "  padded  ", "ünïcødé / alarm", "a\"quoted\"name"}

	for _, name := range names {
		payload := NewAlarmPayload(identity, cloudwatch.Alarm{Name: name}, "good")
		attachment := payload.Attachments[0]

		assert.Equal(t, name, attachment.Fallback)
		assert.Equal(t, name, strings.TrimPrefix(attachment.Title, "Alarm: "))
	}
}

func TestPayloadJSON(t *testing.T) {
	payload := NewAlarmPayload(identity, cloudwatch.Alarm{
		Name:        "HighCPU",
		Namespace:   "AWS/EC2",
		MetricName:  "CPUUtilization",
		StateReason: "Threshold Crossed",
	}, "good")

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"username": "cloudwatch-alert",
		"icon_emoji": ":slack:",
		"attachments": [{
			"color": "good",
			"fallback": "HighCPU",
			"title": "Alarm: HighCPU",
			"fields": [
				{"title": "Metric", "value": "AWS/EC2/CPUUtilization"},
				{"title": "Dimensions", "value": "none"},
				{"title": "Reason", "value": "Threshold Crossed"}
			]
		}]
	}`, string(data))
}
