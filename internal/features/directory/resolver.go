package directory

import (
	"context"
	"errors"
	"time"

	"github.com/xyz-asif/mentionlookup/internal/pkg/logger"
	apperrors "github.com/xyz-asif/mentionlookup/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultLookupTimeout     = 5 * time.Second
	DefaultLookupConcurrency = 8
)

type ResolverConfig struct {
	// Timeout bounds each lookup; a timed out lookup counts as no match.
	Timeout time.Duration
	// Concurrency caps simultaneous lookups.
	Concurrency int
}

// Resolver maps mention candidates to directory users. Lookups are
// best-effort: a failed or empty lookup leaves the candidate unresolved and
// never fails the batch.
type Resolver struct {
	dir     Directory
	cfg     ResolverConfig
	log     *logger.Logger
	metrics *Metrics
}

func NewResolver(dir Directory, cfg ResolverConfig, log *logger.Logger, metrics *Metrics) *Resolver {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultLookupTimeout
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = DefaultLookupConcurrency
	}
	if log == nil {
		log = logger.Default()
	}

	return &Resolver{
		dir:     dir,
		cfg:     cfg,
		log:     log,
		metrics: metrics,
	}
}

// LookupUser resolves a single name to the first user the directory returns.
func (r *Resolver) LookupUser(ctx context.Context, name string) (UserRecord, bool) {
	user, err := r.lookup(ctx, r.log, name)
	return user, err == nil
}

// Resolve looks up every distinct candidate concurrently and waits for all of
// them. The result keeps the original candidate order.
func (r *Resolver) Resolve(ctx context.Context, candidates []string) ResolutionMap {
	return r.ResolveWithLogger(ctx, r.log, candidates)
}

// ResolveWithLogger is Resolve with a caller supplied logger, used to tag
// lookup events with a pipeline pass id.
func (r *Resolver) ResolveWithLogger(ctx context.Context, log *logger.Logger, candidates []string) ResolutionMap {
	unique := dedupe(candidates)
	if len(unique) == 0 {
		return newResolutionMap(nil)
	}

	type slot struct {
		user UserRecord
		ok   bool
	}
	slots := make([]slot, len(unique))

	// Goroutines never return an error, so Wait only acts as the join barrier.
	var g errgroup.Group
	g.SetLimit(r.cfg.Concurrency)

	for i, name := range unique {
		g.Go(func() error {
			user, err := r.lookup(ctx, log, name)
			if err == nil {
				slots[i] = slot{user: user, ok: true}
			}
			return nil
		})
	}
	_ = g.Wait()

	entries := make([]Resolution, 0, len(unique))
	for i, s := range slots {
		if s.ok {
			entries = append(entries, Resolution{Mention: unique[i], User: s.user})
		}
	}

	log.Info("mentions resolved",
		"candidates", len(unique),
		"resolved", len(entries),
		"unresolved", len(unique)-len(entries),
	)

	return newResolutionMap(entries)
}

// lookup returns apperrors.ErrNoMatch or an error wrapping
// apperrors.ErrLookupFailed when the name does not resolve. Every outcome is
// logged and counted here.
func (r *Resolver) lookup(ctx context.Context, log *logger.Logger, name string) (UserRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	r.metrics.start()
	start := time.Now()
	users, err := r.dir.SearchUsers(ctx, name)
	took := time.Since(start)
	r.metrics.done()

	if err != nil {
		if !errors.Is(err, apperrors.ErrLookupFailed) {
			err = errors.Join(apperrors.ErrLookupFailed, err)
		}
		r.metrics.observe(OutcomeLookupFailed, took)

		attrs := []any{"candidate", name, "outcome", OutcomeLookupFailed, "duration", took, "error", err.Error()}
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			attrs = append(attrs, "status", statusErr.StatusCode)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			attrs = append(attrs, "timeout", true)
		}
		log.Warn("directory lookup failed", attrs...)
		return UserRecord{}, err
	}

	if len(users) == 0 {
		r.metrics.observe(OutcomeNoMatch, took)
		log.Info("directory lookup found no user", "candidate", name, "outcome", OutcomeNoMatch, "duration", took)
		return UserRecord{}, apperrors.ErrNoMatch
	}

	r.metrics.observe(OutcomeMatched, took)
	log.Debug("directory lookup matched",
		"candidate", name,
		"outcome", OutcomeMatched,
		"account_id", users[0].AccountID,
		"results", len(users),
		"duration", took,
	)
	return users[0], nil
}

func dedupe(candidates []string) []string {
	seen := make(map[string]bool, len(candidates))
	unique := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		unique = append(unique, c)
	}
	return unique
}
