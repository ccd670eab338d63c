package slack

import (
	"github.com/skpr/lambda-sns-alarm-slack/internal/cloudwatch"
)

// Field titles in the order they appear on the attachment.
const (
	FieldMetric     = "Metric"
	FieldDimensions = "Dimensions"
	FieldReason     = "Reason"
)

// Payload posted to a Slack incoming webhook.
type Payload struct {
	Username    string       `json:"username"`
	IconEmoji   string       `json:"icon_emoji"`
	Attachments []Attachment `json:"attachments"`
}

// Attachment used to render the alarm.
type Attachment struct {
	Color    string  `json:"color"`
	Fallback string  `json:"fallback"`
	Title    string  `json:"title"`
	Fields   []Field `json:"fields"`
}

// Field is a labelled value on an attachment.
type Field struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// Identity the message is posted as.
type Identity struct {
	Username  string
	IconEmoji string
}

// NewAlarmPayload builds the message for an alarm. Color comes from cloudwatch.Color.
func NewAlarmPayload(identity Identity, alarm cloudwatch.Alarm, color string) Payload {
	return Payload{
		Username:  identity.Username,
		IconEmoji: identity.IconEmoji,
		Attachments: []Attachment{
			{
				Color:    color,
				Fallback: alarm.Name,
				Title:    "Alarm: " + alarm.Name,
				Fields: []Field{
					{
						Title: FieldMetric,
						Value: alarm.Metric(),
					},
					{
						Title: FieldDimensions,
						Value: cloudwatch.RenderDimensions(alarm.Dimensions),
					},
					{
						Title: FieldReason,
						Value: alarm.StateReason,
					},
				},
			},
		},
	}
}
