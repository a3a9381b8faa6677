package sink

// Sink names
const (
	NameJSONLog  = "json_log"
	NameSheets   = "google_sheets"
	NamePostgres = "postgres"
)

// Sheets API settings
const (
	ValueInputRaw    = "RAW"
	InsertRowsOption = "INSERT_ROWS"
)

const jsonLogTempPattern = ".loot_log-*.json"

// Error messages
const (
	ErrMsgReadLog          = "failed to read loot log"
	ErrMsgDecodeLog        = "failed to decode loot log"
	ErrMsgWriteLog         = "failed to write loot log"
	ErrMsgCreateSheets     = "failed to create sheets service"
	ErrMsgAppendSheetsRows = "failed to append rows to sheet"
)

// Log messages
const (
	LogMsgLogSaved          = "Loot log saved"
	LogMsgSheetRowsAppended = "Rows appended to Google Sheets"
	LogMsgRowsInserted      = "Rows inserted into loot_records"
)
