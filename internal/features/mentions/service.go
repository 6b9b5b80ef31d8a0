package mentions

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/xyz-asif/mentionlookup/internal/features/directory"
	"github.com/xyz-asif/mentionlookup/internal/pkg/logger"
	apperrors "github.com/xyz-asif/mentionlookup/pkg/errors"
)

// Service runs the extract-then-resolve pipeline.
type Service struct {
	resolver *directory.Resolver
	log      *logger.Logger
}

func NewService(resolver *directory.Resolver, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{
		resolver: resolver,
		log:      log,
	}
}

// Extract reads the selection and returns its candidates without touching
// the directory.
func (s *Service) Extract(ctx context.Context, provider ContextProvider) (*Result, error) {
	text, err := selectedText(ctx, provider)
	if err != nil {
		s.log.Warn("host context unavailable", "error", err.Error())
		return nil, err
	}

	return &Result{
		PassID:       uuid.NewString(),
		SelectedText: text,
		Mentions:     ExtractMentions(text),
	}, nil
}

// Run performs one full pass. The only error it returns wraps
// apperrors.ErrContextUnavailable; lookup problems show up as unresolved
// mentions instead.
func (s *Service) Run(ctx context.Context, provider ContextProvider) (*Result, error) {
	passID := uuid.NewString()
	log := s.log.With("pass_id", passID)

	text, err := selectedText(ctx, provider)
	if err != nil {
		log.Warn("host context unavailable", "error", err.Error())
		return nil, err
	}

	candidates := ExtractMentions(text)
	log.Debug("mentions extracted", "count", len(candidates))

	return &Result{
		PassID:       passID,
		SelectedText: text,
		Mentions:     candidates,
		Resolutions:  s.resolver.ResolveWithLogger(ctx, log, candidates),
	}, nil
}

func selectedText(ctx context.Context, provider ContextProvider) (string, error) {
	if provider == nil {
		return "", apperrors.ErrContextUnavailable
	}
	text, err := provider.SelectedText(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrContextUnavailable) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", apperrors.ErrContextUnavailable, err)
	}
	return text, nil
}
