package scan

import (
	"context"

	"github.com/scanopy/scanopy/db"
	"github.com/scanopy/scanopy/pkg/extractor"
)

// PageStore is the persistence contract the workflow needs: website ownership
// lookups plus scanned page reads and single row status writes.
type PageStore interface {
	GetUserWebsite(websiteID, userID uint) (*db.Website, error)
	ListScannedPages(websiteID uint) ([]*db.ScannedPage, error)
	UpsertDiscoveredPage(websiteID uint, url, title string) (*db.ScannedPage, bool, error)
	UpdatePageScanStatus(pageID uint, status, errorMessage string) error
}

// Extractor is the external extraction service contract.
type Extractor interface {
	Health(ctx context.Context) error
	ExtractRoutes(ctx context.Context, target string) (*extractor.ExtractedRoutesResponse, error)
	DeepScanPage(ctx context.Context, request extractor.DeepScanRequest) (*extractor.DeepScanResponse, error)
	InitiateDeepScanAll(ctx context.Context, request extractor.DeepScanAllRequest) (*extractor.DeepScanAllResponse, error)
}

// Service drives the website scan workflow: route discovery into the page
// registry and the per page deep scan state machine. Collaborators are
// injected so the workflow runs against fakes in tests.
type Service struct {
	store     PageStore
	extractor Extractor
}

func NewService(store PageStore, client Extractor) *Service {
	return &Service{
		store:     store,
		extractor: client,
	}
}

// authorize resolves the caller's website, enforcing identity and ownership.
// It runs before any registry write or external call, on every operation.
func (s *Service) authorize(userID, websiteID uint) (*db.Website, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	website, err := s.store.GetUserWebsite(websiteID, userID)
	if err != nil {
		return nil, ErrWebsiteNotFound
	}
	return website, nil
}

// ListScannedPages returns the full page list of an owned website, ordered by
// URL. The UI polls this to observe deep scan progress.
func (s *Service) ListScannedPages(userID, websiteID uint) ([]*db.ScannedPage, error) {
	if _, err := s.authorize(userID, websiteID); err != nil {
		return nil, err
	}
	return s.store.ListScannedPages(websiteID)
}
