package config

import (
	"strings"
)

// EventListenerConfig is one listener binding from the "event_listeners"
// config section. Listener has "alias:Method" format where alias is the
// service alias in the container.
type EventListenerConfig struct {
	EventName string `mapstructure:"Event"`
	Listener  string
	Priority  int
}

func (c *EventListenerConfig) ListenerAlias() string {
	return getStringPart(c.Listener, 0)
}

func (c *EventListenerConfig) ListenerMethod() string {
	return getStringPart(c.Listener, 1)
}

//--------------------

func getStringPart(source string, part int) string {
	parts := strings.Split(source, ":")
	if part >= len(parts) {
		return ""
	}

	return parts[part]
}
