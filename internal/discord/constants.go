package discord

import "time"

const (
	// MaxFetchLimit is the largest page the channel messages endpoint returns
	MaxFetchLimit = 100

	// RequestTimeout bounds a single REST call
	RequestTimeout = 20 * time.Second
)

// Log messages
const (
	LogMsgFetchingMessages = "Fetching channel messages"
	LogMsgMessagesFetched  = "Channel messages fetched"
)
