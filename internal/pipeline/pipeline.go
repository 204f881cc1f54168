package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/neo-impact-mapper/internal/domain"
	"github.com/couchcryptid/neo-impact-mapper/internal/observability"
	"github.com/couchcryptid/neo-impact-mapper/internal/store"
)

// FeedFetcher retrieves one raw observation feed for a date window.
type FeedFetcher interface {
	FetchFeed(ctx context.Context, window domain.FeedWindow) (domain.RawFeed, error)
}

// OverlayPublisher delivers finished visualizations to a sink.
type OverlayPublisher interface {
	PublishOverlays(ctx context.Context, vizs []domain.ImpactVisualization) error
}

// ResultRecorder keeps the most recent pipeline result for read endpoints.
type ResultRecorder interface {
	SetLatest(r store.Result)
}

// Pipeline orchestrates one fetch-model-publish cycle: fetch the feed,
// normalize and rank the objects, compute impact effects, assign display
// sites, build overlays, publish them, and format the report.
type Pipeline struct {
	fetcher    FeedFetcher
	publishers []OverlayPublisher
	recorder   ResultRecorder
	model      domain.ModelConfig
	reportOut  io.Writer
	logger     *slog.Logger
	metrics    *observability.Metrics
	ready      atomic.Bool
}

// New creates a Pipeline. recorder and reportOut may be nil to disable
// result storage and report printing respectively.
func New(fetcher FeedFetcher, publishers []OverlayPublisher, recorder ResultRecorder, model domain.ModelConfig, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		fetcher:    fetcher,
		publishers: publishers,
		recorder:   recorder,
		model:      model,
		logger:     logger,
		metrics:    metrics,
	}
}

// WriteReportsTo directs each cycle's report to w (typically stdout).
func (p *Pipeline) WriteReportsTo(w io.Writer) {
	p.reportOut = w
}

// CheckReadiness returns nil once at least one cycle has completed.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no visualization cycle has completed yet")
	}
	return nil
}

// RunOnce executes a single cycle. A fetch failure aborts before any core
// computation; malformed records are skipped and counted. An empty feed is
// not an error: it yields zero overlays and a zero-count report.
func (p *Pipeline) RunOnce(ctx context.Context) error {
	start := time.Now()
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	window := domain.CurrentFeedWindow()
	feed, err := p.fetcher.FetchFeed(ctx, window)
	if err != nil {
		p.metrics.FeedRequests.WithLabelValues("error").Inc()
		return fmt.Errorf("fetch feed: %w", err)
	}
	p.metrics.FeedRequests.WithLabelValues("success").Inc()
	p.logger.Info("feed received",
		"element_count", feed.ElementCount,
		"start_date", window.Start.Format("2006-01-02"),
		"end_date", window.End.Format("2006-01-02"),
	)

	records := domain.FlattenFeed(feed)
	p.metrics.RecordsFlattened.Add(float64(len(records)))

	neos := make([]domain.NearEarthObject, 0, len(records))
	for _, rec := range records {
		neo, err := domain.NormalizeRecord(rec)
		if err != nil {
			p.logger.Warn("skipping malformed observation", "name", rec.Name, "error", err)
			p.metrics.NormalizeErrors.Inc()
			continue
		}
		neos = append(neos, neo)
	}

	ranked := domain.RankBySize(neos, p.model.TopN)
	p.metrics.ObjectsSelected.Add(float64(len(ranked)))

	generatedAt := domain.Now().UTC()
	sites := make([]domain.ImpactSite, 0, len(ranked))
	vizs := make([]domain.ImpactVisualization, 0, len(ranked))
	overlayCount := 0
	for rank, neo := range ranked {
		site := domain.ImpactSite{
			Rank:     rank,
			NEO:      neo,
			Effects:  p.model.Physics.Effects(neo.DiameterKM, neo.VelocityKMPS),
			Location: p.model.Sites.ForRank(rank),
		}
		overlays := domain.BuildOverlays(site, p.model.Palette)
		overlayCount += len(overlays)

		sites = append(sites, site)
		vizs = append(vizs, domain.ImpactVisualization{
			Site:        site,
			Overlays:    overlays,
			GeneratedAt: generatedAt,
		})
	}
	p.metrics.OverlaysBuilt.Add(float64(overlayCount))

	report := domain.FormatReport(len(neos), sites)

	for _, pub := range p.publishers {
		if err := pub.PublishOverlays(ctx, vizs); err != nil {
			p.metrics.PublishErrors.Inc()
			return fmt.Errorf("publish overlays: %w", err)
		}
	}

	if p.recorder != nil {
		p.recorder.SetLatest(store.Result{
			Visualizations:  vizs,
			Report:          report,
			TotalConsidered: len(neos),
			GeneratedAt:     generatedAt,
		})
	}
	if p.reportOut != nil {
		fmt.Fprint(p.reportOut, report)
	}

	p.metrics.CycleDuration.Observe(time.Since(start).Seconds())
	p.ready.Store(true)
	p.logger.Info("cycle complete",
		"considered", len(neos),
		"selected", len(ranked),
		"overlays", overlayCount,
		"duration", time.Since(start),
	)
	return nil
}
