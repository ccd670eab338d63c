package slack

const (
	// DefaultUsername is the name the message is posted as.
	DefaultUsername = "cloudwatch-alert"
	// DefaultIconEmoji is the icon the message is posted with.
	DefaultIconEmoji = ":slack:"
)

const (
	// ColorDanger is used when an alarm has fired.
	ColorDanger = "danger"
	// ColorGood is used when an alarm has recovered.
	ColorGood = "good"
	// ColorWarning is used when an alarm does not have enough data to evaluate.
	ColorWarning = "warning"
)
