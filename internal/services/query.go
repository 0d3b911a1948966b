// Package services orchestrates the intent-to-command pipeline.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aish-sh/aish/internal/domain"
	"github.com/aish-sh/aish/internal/infrastructure/cache"
	"github.com/aish-sh/aish/internal/ports"
)

// QueryService runs one generation end-to-end: collect context, build the
// prompt, invoke the backend, sanitize, judge safety.
type QueryService struct {
	ConfigStore ports.ConfigStore
	Collector   ports.ContextCollector
	Factory     ports.ProviderFactory
	Safety      ports.SafetyFilter
	Router      *Router
	Gatherer    ports.ExtraContextGatherer
	History     ports.HistoryRepository
	Cache       ports.CacheRepository
	Progress    ports.ProgressReporter
	Logger      ports.Logger
}

// Run processes a single natural-language intent.
func (s *QueryService) Run(req domain.QueryRequest) (domain.QueryResult, error) {
	if s.ConfigStore == nil || s.Collector == nil || s.Factory == nil ||
		s.Safety == nil || s.Logger == nil {
		return domain.QueryResult{}, errors.New("services.QueryService dependencies not satisfied")
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	cfg, err := s.ConfigStore.Load(ctx)
	if err != nil {
		return domain.QueryResult{}, fmt.Errorf("load config: %w", err)
	}

	snapshot := s.Collector.Collect(ctx)

	extra, sections := s.routeContext(ctx, cfg, req)

	result := domain.QueryResult{
		Model:           cfg.Model,
		ContextSections: sections,
	}
	if cfg.Backend == domain.BackendOnDevice {
		result.Model = "ondevice"
	}

	// Cache applies only to context-free prompts; gathered git state is
	// too volatile to key on.
	cacheKey := ""
	if extra == "" && s.Cache != nil {
		cacheKey = cache.Key(req.Intent, snapshot.WorkingDir, result.Model)
		if entry, ok, err := s.Cache.Get(cacheKey); err == nil && ok {
			result.Command = entry.Command
			result.Raw = entry.Command
			result.Safe = result.Command != "" && s.Safety.IsSafe(result.Command)
			result.FromCache = true
			result.Duration = time.Since(start)
			s.record(req, result)
			return result, nil
		}
	}

	prompt := domain.BuildPromptWithContext(req.Intent, snapshot, extra)
	if req.Verbose {
		s.Logger.Debug("final prompt", map[string]interface{}{"prompt": prompt})
	}

	provider, err := s.Factory.For(cfg)
	if err != nil {
		return domain.QueryResult{}, err
	}

	s.progress().GenerateStart(result.Model)
	raw, err := provider.Generate(ctx, prompt)
	if err != nil {
		s.progress().Done(time.Since(start))
		return domain.QueryResult{}, fmt.Errorf("%s: %w", provider.Name(), err)
	}
	if req.Verbose {
		s.Logger.Debug("raw model output", map[string]interface{}{"raw": raw})
	}

	result.Raw = raw
	result.Command = domain.SanitizeCommand(raw)
	result.Safe = result.Command != "" && s.Safety.IsSafe(result.Command)
	result.Duration = time.Since(start)
	s.progress().Done(result.Duration)

	if result.Safe && cacheKey != "" {
		if err := s.Cache.Set(domain.CacheEntry{
			Key:       cacheKey,
			Command:   result.Command,
			Model:     result.Model,
			CreatedAt: time.Now(),
		}); err != nil {
			s.Logger.Warn("cache write failed", map[string]interface{}{"error": err.Error()})
		}
	}

	s.record(req, result)
	return result, nil
}

// routeContext asks the router model which extra context the intent needs
// and gathers it. Routing is skipped in quick mode and degrades to nothing
// on any failure.
func (s *QueryService) routeContext(ctx context.Context, cfg domain.Config, req domain.QueryRequest) (string, []string) {
	if req.Quick || !cfg.RouterEnabled || s.Router == nil || s.Gatherer == nil {
		return "", nil
	}

	s.progress().RouterStart(cfg.RouterModel)
	needs := s.Router.Route(ctx, cfg, req.Intent)
	sections := needs.Sections()
	s.progress().RouterDone(sections)

	if !needs.Any() {
		return "", nil
	}
	return s.Gatherer.Gather(ctx, needs), sections
}

func (s *QueryService) record(req domain.QueryRequest, result domain.QueryResult) {
	if s.History == nil {
		return
	}
	err := s.History.Save(domain.HistoryRecord{
		Timestamp:  time.Now(),
		Intent:     req.Intent,
		Command:    result.Command,
		Model:      result.Model,
		Safe:       result.Safe,
		FromCache:  result.FromCache,
		DurationMS: result.Duration.Milliseconds(),
	})
	if err != nil {
		s.Logger.Warn("history write failed", map[string]interface{}{"error": err.Error()})
	}
}

func (s *QueryService) progress() ports.ProgressReporter {
	if s.Progress == nil {
		return noopProgress{}
	}
	return s.Progress
}

type noopProgress struct{}

func (noopProgress) RouterStart(string)   {}
func (noopProgress) RouterDone([]string)  {}
func (noopProgress) GenerateStart(string) {}
func (noopProgress) Done(time.Duration)   {}
