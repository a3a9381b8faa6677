package scheduler

// Log Messages
const (
	LogMsgTickSkipped = "Previous run still in progress, skipping tick"
)
