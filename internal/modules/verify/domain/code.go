package domain

import (
	"context"
	"strings"
)

type Status string

const (
	StatusFresh   Status = "fresh"
	StatusExpired Status = "expired"
	StatusInvalid Status = "invalid"
)

// Wire names used in the handoff record.
const (
	WireFresh   = "fresh_code"
	WireExpired = "expired_code"
	WireInvalid = "invalid_code"
)

func (s Status) Wire() string {
	switch s {
	case StatusFresh:
		return WireFresh
	case StatusExpired:
		return WireExpired
	default:
		return WireInvalid
	}
}

// Recognized reports whether the code was found in one of the lists.
// Expired codes are genuine but already redeemed, so they count too.
func (s Status) Recognized() bool {
	return s == StatusFresh || s == StatusExpired
}

// ParseWireStatus maps a wire status to a Status. Anything unknown,
// including an empty value, is invalid.
func ParseWireStatus(v string) Status {
	switch strings.TrimSpace(v) {
	case WireFresh:
		return StatusFresh
	case WireExpired:
		return StatusExpired
	default:
		return StatusInvalid
	}
}

// Result is the outcome of classifying one code.
type Result struct {
	Code   string
	Status Status
}

// CodeLists holds the known-fresh and known-expired codes.
type CodeLists struct {
	Fresh   []string
	Expired []string
}

// CodeCatalog supplies the code lists once at startup.
type CodeCatalog interface {
	Lists(ctx context.Context) (CodeLists, error)
}
