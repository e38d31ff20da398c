package events

// Config holds the event publishing settings.
type Config struct {
	// NatsURL is the NATS server URL. Empty disables publishing.
	NatsURL string `mapstructure:"nats_url" default:""`
	// Subject is the subject state changes are published on.
	Subject string `mapstructure:"subject" default:"content.state.updated"`
	// MaxReconnects bounds reconnect attempts after a dropped connection.
	MaxReconnects int `mapstructure:"max_reconnects" default:"5"`
	// ReconnectWaitSeconds is the pause between reconnect attempts.
	ReconnectWaitSeconds int `mapstructure:"reconnect_wait_seconds" default:"2"`
}
