package scan

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/scanopy/scanopy/db"
	"github.com/scanopy/scanopy/pkg/extractor"
)

// PendingPageInput names one page to include in a batch deep scan.
type PendingPageInput struct {
	ID  uint   `json:"id" validate:"required"`
	URL string `json:"url" validate:"required,url"`
}

// BatchResult reports an initiated batch deep scan.
type BatchResult struct {
	Message          string   `json:"message"`
	WebsiteID        string   `json:"website_id"`
	InitiatedPageIDs []string `json:"initiated_page_ids"`
}

// DeepScanPage drives one page through the deep scan state machine. The
// processing write strictly precedes the external call so a concurrent poller
// sees work in flight, and the page always ends up scanned or errored once
// this returns. Re-invoking on an errored or already scanned page simply
// restarts the machine.
func (s *Service) DeepScanPage(ctx context.Context, userID, pageID uint, pageURL string, websiteID uint) (*extractor.DeepScanResponse, error) {
	if _, err := s.authorize(userID, websiteID); err != nil {
		return nil, err
	}

	if err := s.store.UpdatePageScanStatus(pageID, db.PageStatusProcessing, ""); err != nil {
		if errors.Is(err, db.ErrPageNotFound) {
			return nil, fmt.Errorf("%w: page %d", ErrInvalidArgument, pageID)
		}
		return nil, err
	}

	response, err := s.extractor.DeepScanPage(ctx, extractor.DeepScanRequest{
		URL:       pageURL,
		WebsiteID: strconv.FormatUint(uint64(websiteID), 10),
		PageID:    strconv.FormatUint(uint64(pageID), 10),
	})
	if err != nil {
		return nil, s.failPage(pageID, diagnosticForError(err), err)
	}

	if response.Status != extractor.StatusScanned {
		detail := response.ErrorDetail
		if detail == "" {
			detail = "Unknown error during deep scan"
		}
		return nil, s.failPage(pageID, detail, nil)
	}

	if err := s.store.UpdatePageScanStatus(pageID, db.PageStatusScanned, ""); err != nil {
		return nil, err
	}
	log.Info().Uint("page_id", pageID).Str("url", pageURL).Int("documents", response.RagDocumentCount).Msg("Page deep scanned")
	return response, nil
}

// DeepScanAllPending initiates one batched deep scan request naming all
// pending pages. The service completes each page asynchronously; completion
// is observed later through the page listing. Pages are marked processing
// only after the batch request succeeds: unlike the single page path there is
// no terminal write to follow, so marking beforehand would strand every page
// in processing whenever the request fails.
func (s *Service) DeepScanAllPending(ctx context.Context, userID, websiteID uint, pages []PendingPageInput) (*BatchResult, error) {
	if _, err := s.authorize(userID, websiteID); err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: no pending pages provided", ErrInvalidArgument)
	}

	pending := make([]extractor.PendingPage, 0, len(pages))
	for _, page := range pages {
		pending = append(pending, extractor.PendingPage{
			PageID: strconv.FormatUint(uint64(page.ID), 10),
			URL:    page.URL,
		})
	}

	response, err := s.extractor.InitiateDeepScanAll(ctx, extractor.DeepScanAllRequest{
		WebsiteID:    strconv.FormatUint(uint64(websiteID), 10),
		PendingPages: pending,
	})
	if err != nil {
		// No pages are transitioned; their prior state stays inspectable.
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	for _, page := range pages {
		if err := s.store.UpdatePageScanStatus(page.ID, db.PageStatusProcessing, ""); err != nil {
			log.Warn().Err(err).Uint("page_id", page.ID).Msg("Unable to mark initiated page as processing")
		}
	}

	log.Info().Uint("website_id", websiteID).Int("pages", len(pages)).Msg("Batch deep scan initiated")
	return &BatchResult{
		Message:          response.Message,
		WebsiteID:        response.WebsiteID,
		InitiatedPageIDs: response.InitiatedPageIDs,
	}, nil
}

// failPage records the terminal error transition and wraps the diagnostic for
// the caller. The persisted state remains retryable either way.
func (s *Service) failPage(pageID uint, reason string, cause error) error {
	if err := s.store.UpdatePageScanStatus(pageID, db.PageStatusError, reason); err != nil {
		log.Error().Err(err).Uint("page_id", pageID).Msg("Unable to record deep scan failure")
	}
	return &DeepScanFailedError{PageID: pageID, Reason: reason, Err: cause}
}

// diagnosticForError picks the most specific diagnostic available: the HTTP
// status text for a non-success response, otherwise the error text itself.
func diagnosticForError(err error) string {
	var httpErr *extractor.HTTPError
	if errors.As(err, &httpErr) {
		return fmt.Sprintf("API error: %s", httpErr.Status)
	}
	return err.Error()
}
