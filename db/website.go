package db

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/scanopy/scanopy/lib"
)

// Website is a user owned site that anchors all of its scanned pages.
type Website struct {
	BaseModel
	Name      string        `json:"name"`
	Domain    string        `gorm:"index" json:"domain"`
	UserID    uint          `gorm:"index" json:"user_id"`
	User      User          `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Pages     []ScannedPage `gorm:"foreignKey:WebsiteID" json:"-"`
	PageStats PageStats     `gorm:"-" json:"page_stats,omitempty"`
}

type PageStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	Processing int64 `json:"processing"`
	Scanned    int64 `json:"scanned"`
	Errored    int64 `json:"errored"`
}

func (w Website) String() string {
	return fmt.Sprintf("ID: %d, Name: %s, Domain: %s, User ID: %d", w.ID, w.Name, w.Domain, w.UserID)
}

func (w Website) Pretty() string {
	return fmt.Sprintf(
		"%sID:%s %d\n%sName:%s %s\n%sDomain:%s %s\n%sUser ID:%s %d\n",
		lib.Blue, lib.ResetColor, w.ID,
		lib.Blue, lib.ResetColor, w.Name,
		lib.Blue, lib.ResetColor, w.Domain,
		lib.Blue, lib.ResetColor, w.UserID,
	)
}

func (w Website) TableHeaders() []string {
	return []string{"ID", "Name", "Domain", "User ID"}
}

func (w Website) TableRow() []string {
	return []string{
		fmt.Sprintf("%d", w.ID),
		w.Name,
		w.Domain,
		fmt.Sprintf("%d", w.UserID),
	}
}

func (d *DatabaseConnection) CreateWebsite(website *Website) (*Website, error) {
	result := d.db.Create(&website)
	if result.Error != nil {
		log.Error().Err(result.Error).Str("domain", website.Domain).Msg("Website creation failed")
	}
	return website, result.Error
}

func (d *DatabaseConnection) ListUserWebsites(userID uint) (items []*Website, count int64, err error) {
	err = d.db.Where("user_id = ?", userID).Order("created_at desc").Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	d.db.Model(&Website{}).Where("user_id = ?", userID).Count(&count)
	return items, count, nil
}

// GetUserWebsite fetches a website only if it is owned by the given user. A
// website owned by somebody else yields the same not found error as a missing
// one, so callers cannot probe for existence.
func (d *DatabaseConnection) GetUserWebsite(websiteID, userID uint) (*Website, error) {
	var website Website
	if err := d.db.Where("id = ? AND user_id = ?", websiteID, userID).First(&website).Error; err != nil {
		return nil, err
	}
	return &website, nil
}

func (d *DatabaseConnection) GetWebsitePageStats(websiteID uint) (PageStats, error) {
	var stats PageStats
	if err := d.db.Model(&ScannedPage{}).Where("website_id = ?", websiteID).Count(&stats.Total).Error; err != nil {
		return stats, err
	}
	counts := map[string]*int64{
		PageStatusPending:    &stats.Pending,
		PageStatusProcessing: &stats.Processing,
		PageStatusScanned:    &stats.Scanned,
		PageStatusError:      &stats.Errored,
	}
	for status, dest := range counts {
		if err := d.db.Model(&ScannedPage{}).Where("website_id = ? AND status = ?", websiteID, status).Count(dest).Error; err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (d *DatabaseConnection) DeleteWebsite(id uint) error {
	if err := d.db.Select("Pages").Delete(&Website{BaseModel: BaseModel{ID: id}}).Error; err != nil {
		log.Error().Err(err).Uint("id", id).Msg("Error deleting website")
		return err
	}
	return nil
}

// WebsiteExists checks if a website exists
func (d *DatabaseConnection) WebsiteExists(id uint) (bool, error) {
	var count int64
	err := d.db.Model(&Website{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
