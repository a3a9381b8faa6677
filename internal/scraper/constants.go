package scraper

// Log Messages
const (
	LogMsgCycleStarted       = "Fetch cycle started"
	LogMsgCycleFinished      = "Fetch cycle finished"
	LogMsgFetchFailed        = "Failed to fetch messages"
	LogMsgMessagesFiltered   = "Messages filtered"
	LogMsgRecordsExtracted   = "Records extracted"
	LogMsgNoRecords          = "No loot records found"
	LogMsgSinkWritten        = "Records written to sink"
	LogMsgSinkWriteFailed    = "Failed to write records to sink"
	LogMsgUnparseableMsgTime = "Message timestamp not parseable, keeping message"
)
