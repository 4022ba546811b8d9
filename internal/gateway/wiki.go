package gateway

import (
	"context"

	"github.com/bobbot/osrs-api/internal/models"
	"github.com/bobbot/osrs-api/internal/osrs"
	"go.uber.org/zap"
)

const (
	quickGuideSuffix    = "/Quick guide"
	quickGuideURLSuffix = "/Quick_guide"
)

// Wiki returns the intro of the page titled title.
func (s *Service) Wiki(ctx context.Context, title string) (*models.WikiSummary, error) {
	page, err := s.wiki.Extract(ctx, title, osrs.ExtractOptions{IntroOnly: true})
	if err != nil {
		return nil, err
	}

	var extract string
	if page != nil {
		extract = page.Extract
	}
	return &models.WikiSummary{
		Title:   title,
		URL:     s.wikiURL(title),
		Summary: firstLine(extract),
		Extract: optional(extract),
	}, nil
}

// WikiGuide returns the quick guide for title, falling back to the page
// itself when no quick guide exists.
func (s *Service) WikiGuide(ctx context.Context, title string) (*models.WikiGuide, error) {
	guideTitle := title + quickGuideSuffix
	page, err := s.wiki.Extract(ctx, guideTitle, osrs.ExtractOptions{})
	if err != nil {
		return nil, err
	}
	if hasExtract(page) {
		return &models.WikiGuide{
			Title: title,
			URL:   s.wikiURL(title) + quickGuideURLSuffix,
			Guide: optional(page.Extract),
		}, nil
	}

	s.logger.Debug("no quick guide, using page", zap.String("title", title))
	page, err = s.wiki.Extract(ctx, title, osrs.ExtractOptions{})
	if err != nil {
		return nil, err
	}

	var extract string
	if page != nil {
		extract = page.Extract
	}
	return &models.WikiGuide{
		Title: title,
		URL:   s.wikiURL(title),
		Guide: optional(extract),
	}, nil
}

// SearchWiki returns the intro of the best search hit for query.
func (s *Service) SearchWiki(ctx context.Context, query string) (*models.WikiSummary, error) {
	page, err := s.searchPage(ctx, query)
	if err != nil {
		return nil, err
	}
	return &models.WikiSummary{
		Title:   page.Title,
		URL:     s.wikiURL(page.Title),
		Summary: firstLine(page.Extract),
		Extract: optional(page.Extract),
	}, nil
}

// searchPage runs a search and fetches the intro of the first hit,
// following redirects. Returns ErrWikiPageNotFound when either step
// comes back empty.
func (s *Service) searchPage(ctx context.Context, query string) (*models.WikiPage, error) {
	title, ok, err := s.wiki.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrWikiPageNotFound
	}

	page, err := s.wiki.Extract(ctx, title, osrs.ExtractOptions{IntroOnly: true, FollowRedirects: true})
	if err != nil {
		return nil, err
	}
	if page == nil || page.PageID == osrs.MissingPageID || page.Missing {
		return nil, ErrWikiPageNotFound
	}
	if page.Title == "" {
		page.Title = title
	}
	return page, nil
}

func hasExtract(page *models.WikiPage) bool {
	return page != nil && !page.Missing && page.PageID != osrs.MissingPageID && page.Extract != ""
}
