// Package health implements the upstream readiness use case.
package health

import (
	"context"
	"sync"

	"github.com/bnema/zerowrap"

	"github.com/bnema/domaingate/internal/boundaries/in"
	"github.com/bnema/domaingate/internal/domain"
)

// maxConcurrentProbes limits the number of concurrent health probes to prevent resource exhaustion.
const maxConcurrentProbes = 10

// Service implements the HealthService interface.
type Service struct {
	upstreams []domain.Upstream
	prober    in.HTTPProber
}

var _ in.HealthService = (*Service)(nil)

// NewService creates a new health service. Upstreams without a URL are skipped.
func NewService(upstreams []domain.Upstream, prober in.HTTPProber) *Service {
	configured := make([]domain.Upstream, 0, len(upstreams))
	for _, u := range upstreams {
		if u.URL != "" {
			configured = append(configured, u)
		}
	}
	return &Service{
		upstreams: configured,
		prober:    prober,
	}
}

// CheckUpstream probes a single upstream. Any status below 500 counts as
// healthy: the upstream answered and routing to it is meaningful.
func (s *Service) CheckUpstream(ctx context.Context, upstream domain.Upstream) *domain.UpstreamHealth {
	log := zerowrap.FromCtx(ctx)

	health := &domain.UpstreamHealth{
		Name: upstream.Name,
		URL:  upstream.URL,
	}

	statusCode, responseTime, err := s.prober.Probe(ctx, upstream.URL)
	health.ResponseTimeMs = responseTime
	if err != nil {
		health.Error = err.Error()
		log.Debug().Err(err).Str("upstream", upstream.Name).Msg("HTTP probe failed")
		return health
	}

	health.HTTPStatus = statusCode
	health.Healthy = statusCode > 0 && statusCode < 500

	log.Debug().
		Str("upstream", upstream.Name).
		Int("http_status", statusCode).
		Int64("response_time_ms", responseTime).
		Bool("healthy", health.Healthy).
		Msg("health check complete")

	return health
}

// CheckUpstreams performs health checks on all configured upstreams.
func (s *Service) CheckUpstreams(ctx context.Context) map[string]*domain.UpstreamHealth {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "CheckUpstreams",
	})

	results := make(map[string]*domain.UpstreamHealth, len(s.upstreams))

	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, maxConcurrentProbes)

	for _, upstream := range s.upstreams {
		wg.Add(1)
		go func(u domain.Upstream) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			health := s.CheckUpstream(ctx, u)
			mu.Lock()
			results[u.Name] = health
			mu.Unlock()
		}(upstream)
	}

	wg.Wait()
	return results
}
