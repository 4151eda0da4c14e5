package scan_test

import (
	"context"
	"sort"
	"time"

	"github.com/scanopy/scanopy/db"
	"github.com/scanopy/scanopy/pkg/extractor"
	"gorm.io/gorm"
)

// fakeStore is an in-memory PageStore mirroring the registry semantics.
type fakeStore struct {
	websites     map[uint]*db.Website
	pages        map[uint]*db.ScannedPage
	nextPageID   uint
	statusWrites int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		websites: make(map[uint]*db.Website),
		pages:    make(map[uint]*db.ScannedPage),
	}
}

func (f *fakeStore) addWebsite(id, userID uint, domain string) *db.Website {
	website := &db.Website{
		BaseModel: db.BaseModel{ID: id},
		Domain:    domain,
		UserID:    userID,
	}
	f.websites[id] = website
	return website
}

func (f *fakeStore) GetUserWebsite(websiteID, userID uint) (*db.Website, error) {
	website, ok := f.websites[websiteID]
	if !ok || website.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return website, nil
}

func (f *fakeStore) ListScannedPages(websiteID uint) ([]*db.ScannedPage, error) {
	var pages []*db.ScannedPage
	for _, page := range f.pages {
		if page.WebsiteID == websiteID {
			pages = append(pages, page)
		}
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].URL < pages[j].URL })
	return pages, nil
}

func (f *fakeStore) UpsertDiscoveredPage(websiteID uint, url, title string) (*db.ScannedPage, bool, error) {
	for _, page := range f.pages {
		if page.WebsiteID == websiteID && page.URL == url {
			return page, false, nil
		}
	}
	f.nextPageID++
	page := &db.ScannedPage{
		BaseModel: db.BaseModel{ID: f.nextPageID},
		WebsiteID: websiteID,
		URL:       url,
		Title:     title,
		Status:    db.PageStatusPending,
	}
	f.pages[page.ID] = page
	return page, true, nil
}

func (f *fakeStore) UpdatePageScanStatus(pageID uint, status, errorMessage string) error {
	page, ok := f.pages[pageID]
	if !ok {
		return db.ErrPageNotFound
	}
	f.statusWrites++
	if status == db.PageStatusError && errorMessage == "" {
		errorMessage = "Unknown error during deep scan"
	}
	if status != db.PageStatusError {
		errorMessage = ""
	}
	now := time.Now()
	page.Status = status
	page.ErrorMessage = errorMessage
	page.ScannedAt = &now
	return nil
}

// fakeExtractor records calls and returns canned responses.
type fakeExtractor struct {
	healthErr error
	routes    *extractor.ExtractedRoutesResponse
	routesErr error
	deepResp  *extractor.DeepScanResponse
	deepErr   error
	batchResp *extractor.DeepScanAllResponse
	batchErr  error

	healthCalls  int
	extractCalls int
	deepCalls    int
	batchCalls   int
}

func (f *fakeExtractor) Health(ctx context.Context) error {
	f.healthCalls++
	return f.healthErr
}

func (f *fakeExtractor) ExtractRoutes(ctx context.Context, target string) (*extractor.ExtractedRoutesResponse, error) {
	f.extractCalls++
	if f.routesErr != nil {
		return nil, f.routesErr
	}
	return f.routes, nil
}

func (f *fakeExtractor) DeepScanPage(ctx context.Context, request extractor.DeepScanRequest) (*extractor.DeepScanResponse, error) {
	f.deepCalls++
	if f.deepErr != nil {
		return nil, f.deepErr
	}
	return f.deepResp, nil
}

func (f *fakeExtractor) InitiateDeepScanAll(ctx context.Context, request extractor.DeepScanAllRequest) (*extractor.DeepScanAllResponse, error) {
	f.batchCalls++
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	return f.batchResp, nil
}
