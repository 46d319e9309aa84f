package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/echoes-archive/feria-api/internal/domain"
	"github.com/echoes-archive/feria-api/internal/gemini"
)

// ErrNoInsight means the generator yielded nothing. Enrichment is fail-silent:
// callers log and render no result, they never surface the failure.
var ErrNoInsight = errors.New("no insight available")

// InsightService runs the three generative enrichment calls. Results are stored
// verbatim through the fair store's replacement primitive, so a fair that
// vanished while a call was in flight is silently absorbed. Duplicate calls for
// the same fair and operation are coalesced instead of racing each other; there
// is no retry, no rate limit and no cancellation beyond the request context.
type InsightService struct {
	gen  gemini.TextGenerator
	repo FairRepository
	sf   singleflight.Group
}

func NewInsightService(gen gemini.TextGenerator, repo FairRepository) *InsightService {
	return &InsightService{
		gen:  gen,
		repo: repo,
	}
}

// CheckTown implements the creation gate. The prompt asks a strict yes/no
// question; only a literal affirmative counts as existence, only a literal
// negative blocks, and everything else (including transport failure) is
// unknown so that creation can proceed.
func (s *InsightService) CheckTown(ctx context.Context, town, country string) TownVerdict {
	where := town
	if country != "" {
		where = fmt.Sprintf("%s, %s", town, country)
	}
	prompt := fmt.Sprintf("Does the town or municipality %q exist? Answer strictly with YES or NO.", where)

	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		zap.L().Warn("town existence check unavailable, proceeding", zap.String("town", town), zap.Error(err))
		return TownUnknown
	}

	answer := strings.ToUpper(text)
	switch {
	case hasWord(answer, "YES"):
		return TownExists
	case hasWord(answer, "NO"):
		return TownMissing
	default:
		return TownUnknown
	}
}

// hasWord matches whole words only, so negations like CANNOT or NOT SURE are
// never read as an explicit NO.
func hasWord(answer, word string) bool {
	for _, token := range strings.FieldsFunc(answer, func(r rune) bool {
		return !unicode.IsLetter(r)
	}) {
		if token == word {
			return true
		}
	}

	return false
}

// LookupPopulation asks for the town population, strips the answer to digits
// and stores it verbatim. No range validation happens on purpose.
func (s *InsightService) LookupPopulation(ctx context.Context, fairID string) (domain.Fair, error) {
	fair, err := s.repo.GetByID(fairID)
	if err != nil {
		return domain.Fair{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	result, err, _ := s.sf.Do(fairID+"/population", func() (interface{}, error) {
		prompt := fmt.Sprintf(
			"What is the current approximate population of %s? Respond with the number only.",
			placeName(fair),
		)

		text, genErr := s.gen.Generate(ctx, prompt)
		if genErr != nil {
			zap.L().Error("population lookup failed", zap.String("fair_id", fairID), zap.Error(genErr))
			return nil, ErrNoInsight
		}

		updated := fair.WithPopulation(domain.DigitsOnly(text), "Gemini population lookup")
		s.repo.Update(updated)

		return updated, nil
	})
	if err != nil {
		return domain.Fair{}, err
	}

	return result.(domain.Fair), nil
}

// GenerateFeasibilityAnalysis produces a short viability narrative and stores
// the response text verbatim, with no parsing or length limit.
func (s *InsightService) GenerateFeasibilityAnalysis(ctx context.Context, fairID string) (domain.Fair, error) {
	fair, err := s.repo.GetByID(fairID)
	if err != nil {
		return domain.Fair{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	result, err, _ := s.sf.Do(fairID+"/feasibility", func() (interface{}, error) {
		completed := 0
		for _, step := range fair.FeasibilitySteps {
			if step.Completed {
				completed++
			}
		}

		prompt := fmt.Sprintf(
			"We are planning %q, a cultural heritage fair in %s on %s. "+
				"%d of %d feasibility checklist items are complete. "+
				"Write a short feasibility assessment for the organizing team.",
			fair.Title, placeName(fair), fair.Date.Format("2006-01-02"),
			completed, len(fair.FeasibilitySteps),
		)

		text, genErr := s.gen.Generate(ctx, prompt)
		if genErr != nil {
			zap.L().Error("feasibility analysis failed", zap.String("fair_id", fairID), zap.Error(genErr))
			return nil, ErrNoInsight
		}

		updated := fair.WithFeasibilityAnalysis(text)
		s.repo.Update(updated)

		return updated, nil
	})
	if err != nil {
		return domain.Fair{}, err
	}

	return result.(domain.Fair), nil
}

// GenerateSocialPost drafts promotional copy for one platform. Lines starting
// with '#' become the hashtag suggestion, the rest is the post content.
func (s *InsightService) GenerateSocialPost(ctx context.Context, fairID string, platform domain.SocialPlatform) (domain.Fair, error) {
	fair, err := s.repo.GetByID(fairID)
	if err != nil {
		return domain.Fair{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	result, err, _ := s.sf.Do(fairID+"/social/"+string(platform), func() (interface{}, error) {
		prompt := fmt.Sprintf(
			"Write a short %s post promoting %q, a cultural heritage fair in %s on %s. "+
				"End with one line of suggested hashtags.",
			platform, fair.Title, placeName(fair), fair.Date.Format("2006-01-02"),
		)

		text, genErr := s.gen.Generate(ctx, prompt)
		if genErr != nil {
			zap.L().Error("social post generation failed", zap.String("fair_id", fairID), zap.Error(genErr))
			return nil, ErrNoInsight
		}

		content, hashtags := splitHashtags(text)
		post := domain.SocialPost{
			ID:       uuid.NewString(),
			Platform: platform,
			Content:  content,
			Hashtags: hashtags,
			Status:   domain.PostDraft,
		}

		updated := fair.WithSocialPost(post)
		s.repo.Update(updated)

		return updated, nil
	})
	if err != nil {
		return domain.Fair{}, err
	}

	return result.(domain.Fair), nil
}

func placeName(f domain.Fair) string {
	if f.Country == "" {
		return f.Town
	}

	return fmt.Sprintf("%s, %s", f.Town, f.Country)
}

func splitHashtags(text string) (content, hashtags string) {
	var contentLines, tagLines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			tagLines = append(tagLines, strings.TrimSpace(line))
			continue
		}
		contentLines = append(contentLines, line)
	}

	return strings.TrimSpace(strings.Join(contentLines, "\n")), strings.Join(tagLines, " ")
}
