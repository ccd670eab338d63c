package cloudwatch

import (
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// Alarm is the validated form of a CloudWatch Alarm notification delivered over SNS.
type Alarm struct {
	Name        string
	Namespace   string
	MetricName  string
	Dimensions  []Dimension
	StateReason string
	StateValue  types.StateValue
}

// Dimension is one entry of the metric's dimensional breakdown, kept exactly as received.
type Dimension struct {
	// Pairs of an object entry, in document order.
	Pairs []Pair
	// Text of an entry which is not an object.
	Text string
}

// Pair is a key and its value. Strings are unquoted, anything else is compact JSON.
type Pair struct {
	Key   string
	Value string
}

// NewDimension returns a dimension in the shape CloudWatch sends.
func NewDimension(name, value string) Dimension {
	return Dimension{
		Pairs: []Pair{
			{Key: "name", Value: name},
			{Key: "value", Value: value},
		},
	}
}
