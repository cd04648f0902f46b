package http

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"prodcheck/internal/modules/verify/domain"
	"prodcheck/internal/modules/verify/infra"
)

var errInFlight = errors.New("verification_in_progress")

// submission is the shared path behind the form post and the JSON API:
// format check, simulated verification, handoff write.
type submission struct {
	validator *domain.Validator
	verifier  *domain.Verifier
	store     domain.HandoffStore
	inflight  *infra.InFlight
	log       *zap.Logger
}

func (s *submission) run(ctx context.Context, sessionID, code string) (domain.Result, error) {
	code = domain.TrimCode(code)
	if err := s.validator.FormatError(code); err != nil {
		return domain.Result{}, err
	}
	if !s.inflight.TryAcquire(sessionID) {
		return domain.Result{}, errInFlight
	}
	defer s.inflight.Release(sessionID)

	s.log.Debug("verification started", zap.String("code", code), zap.String("session_id", sessionID))
	r, err := s.verifier.Verify(ctx, code)
	if err != nil {
		// caller went away; nothing is written
		return domain.Result{}, err
	}
	if err := s.store.Write(ctx, sessionID, r); err != nil {
		s.log.Error("handoff write failed", zap.String("session_id", sessionID), zap.Error(err))
		return domain.Result{}, fmt.Errorf("write handoff: %w", err)
	}
	s.log.Info("code verified",
		zap.String("code", r.Code),
		zap.String("status", r.Status.Wire()),
		zap.String("session_id", sessionID),
	)
	return r, nil
}
