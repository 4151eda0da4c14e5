package scan

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"
	"github.com/scanopy/scanopy/lib"
	"github.com/spf13/viper"
)

// DiscoverySummary reports one discovery run. PagesFound counts the links
// returned by this call, not the cumulative total for the website.
type DiscoverySummary struct {
	Message    string `json:"message"`
	PagesFound int    `json:"pages_found"`
}

// ScanWebsite asks the extraction service to enumerate URLs reachable from
// the website's domain and reconciles them into the page registry. Already
// known URLs are left untouched, so re-scans are idempotent and never reset a
// scanned or errored page.
func (s *Service) ScanWebsite(ctx context.Context, userID, websiteID uint) (*DiscoverySummary, error) {
	website, err := s.authorize(userID, websiteID)
	if err != nil {
		return nil, err
	}

	// Probe liveness before discovering, to fail fast instead of producing
	// partial, confusing results.
	if err := s.extractor.Health(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	target := fmt.Sprintf("https://%s", website.Domain)
	log.Info().Uint("website_id", websiteID).Str("target", target).Msg("Starting website discovery")

	routes, err := s.extractor.ExtractRoutes(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	// Per link HTTP status groupings are informational only and not part of
	// the page model; surface them in the logs instead of dropping silently.
	if len(routes.StatusCounts) > 0 {
		log.Debug().
			Uint("website_id", websiteID).
			Interface("status_counts", routes.StatusCounts).
			Interface("status_details", routes.StatusDetails).
			Msg("Discovery status details")
	}

	if len(routes.DiscoveredLinks) == 0 {
		log.Warn().Uint("website_id", websiteID).Str("target", target).Msg("No links discovered")
	}

	for _, link := range lib.GetUniqueItems(routes.DiscoveredLinks) {
		page, created, err := s.store.UpsertDiscoveredPage(websiteID, link, pageTitleForURL(link))
		if err != nil {
			// Links reconciled before this one stay persisted; each upsert
			// commits independently.
			return nil, err
		}
		if created {
			log.Debug().Uint("website_id", websiteID).Uint("page_id", page.ID).Str("url", link).Msg("Registered discovered page")
		}
	}

	return &DiscoverySummary{
		Message:    fmt.Sprintf("Scan initiated for %s. %d pages/links identified for cataloging.", website.Domain, len(routes.DiscoveredLinks)),
		PagesFound: len(routes.DiscoveredLinks),
	}, nil
}

// pageTitleForURL derives a display title from the path component of a
// discovered link.
func pageTitleForURL(link string) string {
	prefix := viper.GetString("scan.page_title_prefix")
	parsed, err := url.Parse(link)
	if err != nil || parsed.Path == "" {
		return prefix + "/"
	}
	return prefix + parsed.Path
}
