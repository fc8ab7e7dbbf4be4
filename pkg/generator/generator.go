package generator

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/dskvich/image-api/pkg/domain"
	"github.com/dskvich/image-api/pkg/logger"
	"github.com/samber/lo"
)

// Recording a request must never dominate its latency.
const saveTimeout = 5 * time.Second

type LiveImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string, width, height int) ([]byte, error)
}

type StockImageProvider interface {
	GetImage(ctx context.Context, seed int64, width, height int) ([]byte, error)
}

type GenerationSaver interface {
	Save(ctx context.Context, generation *domain.Generation) error
}

// Service turns a validated generation request into an image, degrading
// through three tiers: the live backend, a seeded stock image, and finally
// an embedded placeholder. It never returns an error.
type Service struct {
	live  LiveImageGenerator // nil when no credential is configured
	stock StockImageProvider
	saver GenerationSaver // nil when persistence is not configured
}

func NewService(live LiveImageGenerator, stock StockImageProvider, saver GenerationSaver) *Service {
	return &Service{live: live, stock: stock, saver: saver}
}

func (s *Service) Generate(ctx context.Context, req domain.GenerationRequest) domain.GenerationResult {
	provider := s.resolveProvider(req.Provider)

	s.saveRecord(ctx, req, provider)

	if provider == domain.StabilityProvider && s.live != nil {
		data, err := s.live.GenerateImage(ctx, req.Prompt, req.Width, req.Height)
		if err == nil {
			slog.InfoContext(ctx, "Image generated", "provider", provider, "size", len(data))
			return domain.GenerationResult{
				ImageData: data,
				Provider:  domain.StabilityProvider,
				Model:     domain.StableImageCoreModel,
				Mode:      domain.ModeLive,
			}
		}
		slog.WarnContext(ctx, "Live generation failed, falling back to demo", logger.Err(err))
		provider = domain.DemoProvider
	}

	seed := Seed(req.Prompt)

	data, err := s.stock.GetImage(ctx, seed, req.Width, req.Height)
	if err != nil {
		slog.WarnContext(ctx, "Stock image fetch failed, using static fallback", "seed", seed, logger.Err(err))
		data = FallbackImage()
	}

	return domain.GenerationResult{
		ImageData: data,
		Provider:  provider,
		Mode:      domain.ModeDemo,
		Note:      domain.DemoModeNote,
	}
}

// resolveProvider honors an explicit hint as-is; without one the presence of
// a live client decides between the live backend and demo mode.
func (s *Service) resolveProvider(hint string) string {
	if hint != "" {
		return strings.ToLower(hint)
	}
	return lo.Ternary(s.live != nil, domain.StabilityProvider, domain.DemoProvider)
}

// saveRecord persists the request before generation starts. Persistence is
// advisory: failures are logged and swallowed.
func (s *Service) saveRecord(ctx context.Context, req domain.GenerationRequest, provider string) {
	if s.saver == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, saveTimeout)
	defer cancel()

	generation := &domain.Generation{
		Prompt:   req.Prompt,
		Provider: provider,
		Width:    req.Width,
		Height:   req.Height,
	}
	if err := s.saver.Save(ctx, generation); err != nil {
		slog.WarnContext(ctx, "Saving generation record failed", logger.Err(err))
	}
}
