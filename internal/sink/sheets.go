package sink

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/Yuridiegotech/CabalOnline/internal/domain"
	"github.com/Yuridiegotech/CabalOnline/internal/logger"
)

// Sheets appends records as rows to a Google Sheets worksheet
type Sheets struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
	worksheet     string
}

// NewSheets creates a Sheets sink authenticated with a service-account
// credentials file. Extra client options are appended after the defaults.
func NewSheets(ctx context.Context, credentialsFile, spreadsheetID, worksheet string, opts ...option.ClientOption) (*Sheets, error) {
	clientOpts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if credentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credentialsFile))
	}
	clientOpts = append(clientOpts, opts...)

	svc, err := sheets.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateSheets, err)
	}

	return &Sheets{
		values:        sheets.NewSpreadsheetsValuesService(svc),
		spreadsheetID: spreadsheetID,
		worksheet:     worksheet,
	}, nil
}

// Name implements Sink
func (s *Sheets) Name() string {
	return NameSheets
}

// Write appends one row per record, in Columns order, with RAW value input
func (s *Sheets) Write(ctx context.Context, records []domain.LootRecord) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([][]interface{}, len(records))
	for i, rec := range records {
		rows[i] = Row(rec)
	}

	resp, err := s.values.Append(s.spreadsheetID, s.worksheet, &sheets.ValueRange{Values: rows}).
		ValueInputOption(ValueInputRaw).
		InsertDataOption(InsertRowsOption).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgAppendSheetsRows, s.worksheet, err)
	}

	var updated int64
	if resp.Updates != nil {
		updated = resp.Updates.UpdatedRows
	}
	logger.FromContext(ctx).Debug(LogMsgSheetRowsAppended, "worksheet", s.worksheet, "rows", len(rows), "updated_rows", updated)
	return nil
}
