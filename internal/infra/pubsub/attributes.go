package pubsub

import (
	"patrol/internal/domain/constants"
	"patrol/internal/domain/service"
)

// eventAttributes builds the message attributes used for filtering and tracing.
func eventAttributes(event *service.LocationSyncEvent) map[string]string {
	attributes := map[string]string{
		constants.AttrEventID: event.EventID,
	}
	if event.UserID != "" {
		attributes[constants.AttrUserID] = event.UserID
	}
	if event.RequestID != "" {
		attributes[constants.AttrRequestID] = event.RequestID
	}

	return attributes
}
