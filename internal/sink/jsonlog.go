package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Yuridiegotech/CabalOnline/internal/domain"
	"github.com/Yuridiegotech/CabalOnline/internal/logger"
)

// JSONLog appends records to a JSON array on disk
type JSONLog struct {
	path string
}

// NewJSONLog creates a JSON log sink writing to path
func NewJSONLog(path string) *JSONLog {
	return &JSONLog{path: path}
}

// Name implements Sink
func (j *JSONLog) Name() string {
	return NameJSONLog
}

// Write merges records after the entries already in the file and replaces the
// file in one rename. Existing entries are carried over as raw JSON.
func (j *JSONLog) Write(ctx context.Context, records []domain.LootRecord) error {
	if len(records) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := j.load()
	if err != nil {
		return err
	}

	for _, rec := range records {
		raw, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgWriteLog, err)
		}
		entries = append(entries, raw)
	}

	if err := j.save(entries); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug(LogMsgLogSaved, "path", j.path, "added", len(records), "total", len(entries))
	return nil
}

func (j *JSONLog) load() ([]json.RawMessage, error) {
	data, err := os.ReadFile(j.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgReadLog, j.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgDecodeLog, j.path, err)
	}
	return entries, nil
}

func (j *JSONLog) save(entries []json.RawMessage) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteLog, err)
	}

	dir := filepath.Dir(j.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgWriteLog, j.path, err)
	}

	tmp, err := os.CreateTemp(dir, jsonLogTempPattern)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgWriteLog, j.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("%s %s: %w", ErrMsgWriteLog, j.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgWriteLog, j.path, err)
	}
	if err := os.Rename(tmp.Name(), j.path); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgWriteLog, j.path, err)
	}
	return nil
}
