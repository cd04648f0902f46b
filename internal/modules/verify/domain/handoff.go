package domain

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// HandoffKey is the fixed key the record lives under in a browsing session.
const HandoffKey = "couponData"

// ErrHandoffMissing means the session holds no usable record: direct
// navigation, an expired session or a cleared store.
var ErrHandoffMissing = errors.New("handoff_missing")

// HandoffStore carries one Result per browsing session from the submit
// flow to the result page.
type HandoffStore interface {
	// Write clears the session's slot and stores r as its only record.
	Write(ctx context.Context, sessionID string, r Result) error
	// Read returns the live record without clearing it, or ErrHandoffMissing.
	Read(ctx context.Context, sessionID string) (Result, error)
	// Clear empties the slot. Clearing an empty slot is a no-op.
	Clear(ctx context.Context, sessionID string) error
}

type handoffRecord struct {
	Code   string `json:"code"`
	Status string `json:"status,omitempty"`
}

// EncodeRecord renders r in the handoff wire shape.
func EncodeRecord(r Result) ([]byte, error) {
	return json.Marshal(handoffRecord{Code: r.Code, Status: r.Status.Wire()})
}

// DecodeRecord parses a stored record. Anything that is not an object with
// a non-empty code is reported as ErrHandoffMissing; a missing or unknown
// status decodes as invalid.
func DecodeRecord(raw []byte) (Result, error) {
	if len(raw) == 0 {
		return Result{}, ErrHandoffMissing
	}
	var rec handoffRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Result{}, ErrHandoffMissing
	}
	if strings.TrimSpace(rec.Code) == "" {
		return Result{}, ErrHandoffMissing
	}
	return Result{Code: rec.Code, Status: ParseWireStatus(rec.Status)}, nil
}
