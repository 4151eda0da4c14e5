package db

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/scanopy/scanopy/lib"
)

// ScannedPage is one discovered URL of a website, tracked through the deep
// scan lifecycle. The (website_id, url) pair is unique: repeated discovery of
// the same link must never produce a second row.
type ScannedPage struct {
	BaseModel
	WebsiteID    uint       `gorm:"uniqueIndex:idx_scanned_pages_website_url" json:"website_id"`
	Website      Website    `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	URL          string     `gorm:"uniqueIndex:idx_scanned_pages_website_url" json:"url"`
	Title        string     `json:"title"`
	Status       string     `gorm:"index" json:"status"`
	ErrorMessage string     `json:"error_message,omitempty"`
	ScannedAt    *time.Time `json:"scanned_at"`
}

var (
	PageStatusPending    string = "pending_scan"
	PageStatusProcessing string = "processing"
	PageStatusScanned    string = "scanned"
	PageStatusError      string = "error"
)

const defaultScanErrorMessage = "Unknown error during deep scan"

const printMaxURLLength = 65

func (p ScannedPage) String() string {
	return fmt.Sprintf("ID: %d, URL: %s, Status: %s, Website ID: %d", p.ID, p.URL, p.Status, p.WebsiteID)
}

func (p ScannedPage) Pretty() string {
	scannedAt := "never"
	if p.ScannedAt != nil {
		scannedAt = p.ScannedAt.Format(time.RFC3339)
	}
	return fmt.Sprintf(
		"%sID:%s %d\n%sURL:%s %s\n%sTitle:%s %s\n%sStatus:%s %s\n%sError:%s %s\n%sScanned At:%s %s\n",
		lib.Blue, lib.ResetColor, p.ID,
		lib.Blue, lib.ResetColor, p.URL,
		lib.Blue, lib.ResetColor, p.Title,
		lib.Blue, lib.ResetColor, p.Status,
		lib.Blue, lib.ResetColor, p.ErrorMessage,
		lib.Blue, lib.ResetColor, scannedAt,
	)
}

func (p ScannedPage) TableHeaders() []string {
	return []string{"ID", "URL", "Title", "Status", "Error", "Scanned At"}
}

func (p ScannedPage) TableRow() []string {
	formattedURL := p.URL
	if len(formattedURL) > printMaxURLLength {
		formattedURL = formattedURL[:printMaxURLLength] + "..."
	}
	scannedAt := ""
	if p.ScannedAt != nil {
		scannedAt = p.ScannedAt.Format("2006-01-02 15:04:05")
	}
	return []string{
		fmt.Sprintf("%d", p.ID),
		formattedURL,
		p.Title,
		p.Status,
		p.ErrorMessage,
		scannedAt,
	}
}

// ListScannedPages returns every page of a website ordered by URL for
// deterministic display.
func (d *DatabaseConnection) ListScannedPages(websiteID uint) ([]*ScannedPage, error) {
	var pages []*ScannedPage
	err := d.db.Where("website_id = ?", websiteID).Order("url asc").Find(&pages).Error
	if err != nil {
		log.Error().Err(err).Uint("website_id", websiteID).Msg("Unable to list scanned pages")
		return nil, err
	}
	return pages, nil
}

func (d *DatabaseConnection) GetScannedPageByID(id uint) (*ScannedPage, error) {
	var page ScannedPage
	if err := d.db.Where("id = ?", id).First(&page).Error; err != nil {
		log.Error().Err(err).Uint("id", id).Msg("Unable to fetch scanned page by ID")
		return nil, err
	}
	return &page, nil
}

// UpsertDiscoveredPage inserts a newly discovered page with pending status. If
// the URL is already registered for the website the existing row is returned
// untouched, whatever its status. The boolean reports whether a row was
// created.
func (d *DatabaseConnection) UpsertDiscoveredPage(websiteID uint, url, title string) (*ScannedPage, bool, error) {
	page := &ScannedPage{
		WebsiteID: websiteID,
		URL:       url,
	}
	result := d.db.Where("website_id = ? AND url = ?", websiteID, url).
		Attrs(ScannedPage{Title: title, Status: PageStatusPending}).
		FirstOrCreate(page)
	if result.Error != nil {
		log.Error().Err(result.Error).Uint("website_id", websiteID).Str("url", url).Msg("Discovered page upsert failed")
		return nil, false, result.Error
	}
	return page, result.RowsAffected > 0, nil
}

// UpdatePageScanStatus overwrites the status field group of a page in a single
// row update. Every call stamps scanned_at. A non-error status clears the
// error message; an error status without a diagnostic gets a generic one, so
// errored rows always carry a message.
func (d *DatabaseConnection) UpdatePageScanStatus(pageID uint, status, errorMessage string) error {
	if status == PageStatusError && errorMessage == "" {
		errorMessage = defaultScanErrorMessage
	}
	if status != PageStatusError {
		errorMessage = ""
	}
	now := time.Now()
	result := d.db.Model(&ScannedPage{}).Where("id = ?", pageID).Updates(map[string]interface{}{
		"status":        status,
		"error_message": errorMessage,
		"scanned_at":    &now,
	})
	if result.Error != nil {
		log.Error().Err(result.Error).Uint("id", pageID).Str("status", status).Msg("Page status update failed")
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPageNotFound
	}
	return nil
}
