package cloudwatch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// ErrParse is returned when an SNS message is not a usable CloudWatch Alarm notification.
var ErrParse = errors.New("unable to parse alarm")

// Parse the SNS message body into an Alarm, checking every field we rely on is present.
// Field names must match exactly.
func Parse(body string) (Alarm, error) {
	var msg map[string]json.RawMessage

	if err := json.Unmarshal([]byte(body), &msg); err != nil {
		return Alarm{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	var (
		alarm   Alarm
		trigger map[string]json.RawMessage
		state   string
	)

	if err := field(msg, "AlarmName", &alarm.Name); err != nil {
		return Alarm{}, err
	}

	if alarm.Name == "" {
		return Alarm{}, missing("AlarmName")
	}

	if err := field(msg, "Trigger", &trigger); err != nil {
		return Alarm{}, err
	}

	if err := field(trigger, "Trigger.Namespace", &alarm.Namespace); err != nil {
		return Alarm{}, err
	}

	if err := field(trigger, "Trigger.MetricName", &alarm.MetricName); err != nil {
		return Alarm{}, err
	}

	if err := field(trigger, "Trigger.Dimensions", &alarm.Dimensions); err != nil {
		return Alarm{}, err
	}

	if err := field(msg, "NewStateReason", &alarm.StateReason); err != nil {
		return Alarm{}, err
	}

	if err := field(msg, "NewStateValue", &state); err != nil {
		return Alarm{}, err
	}

	alarm.StateValue = types.StateValue(state)

	return alarm, nil
}

// Metric returns the "namespace/metric" identifier for the alarm.
func (a Alarm) Metric() string {
	return a.Namespace + "/" + a.MetricName
}

// field decodes the value under the last segment of path. A null value counts as missing.
func field(obj map[string]json.RawMessage, path string, v interface{}) error {
	key := path
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		key = path[i+1:]
	}

	raw, ok := obj[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return missing(path)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}

	return nil
}

func missing(field string) error {
	return fmt.Errorf("%w: %s is required", ErrParse, field)
}
