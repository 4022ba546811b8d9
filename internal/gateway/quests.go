package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/bobbot/osrs-api/internal/lookup"
	"github.com/bobbot/osrs-api/internal/models"
	"go.uber.org/zap"
)

// Quest resolves name in three steps, first hit wins: exact name in the
// dataset, normalised filename containment in the dataset, then a wiki
// search that yields a partial record.
func (s *Service) Quest(ctx context.Context, name string) (*models.Quest, error) {
	quest, err := s.data.GetQuestByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up quest: %w", err)
	}
	if quest != nil {
		return quest, nil
	}

	filenames, err := s.data.ListQuestFilenames()
	if err != nil {
		return nil, fmt.Errorf("failed to list quests: %w", err)
	}
	if file, ok := lookup.MatchQuestFile(filenames, name); ok {
		quest, err := s.data.GetQuestByFilename(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load quest %s: %w", file, err)
		}
		if quest != nil {
			s.logger.Debug("quest matched by filename", zap.String("query", name), zap.String("file", file))
			return quest, nil
		}
	}

	page, err := s.searchPage(ctx, name)
	if errors.Is(err, ErrWikiPageNotFound) {
		return nil, ErrQuestNotFound
	}
	if err != nil {
		return nil, err
	}

	s.logger.Debug("quest synthesised from wiki", zap.String("query", name), zap.String("title", page.Title))
	fallback := &models.Quest{
		Name:        page.Title,
		URL:         s.wikiURL(page.Title),
		Description: deref(firstLine(page.Extract)),
		Difficulty:  models.WikiFallbackDifficulty,
		Length:      "Unknown",
	}
	fallback.Normalize()
	return fallback, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
