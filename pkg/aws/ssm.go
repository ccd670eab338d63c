package aws

// ParameterWebhookURL is the SSM parameter which stores the Slack incoming webhook URL.
const ParameterWebhookURL = "/utils/slack/webhook_url"
