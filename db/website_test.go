package db_test

import (
	"testing"

	"github.com/scanopy/scanopy/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserWebsiteOwnership(t *testing.T) {
	website := createTestWebsite(t)
	other := createTestUser(t)

	fetched, err := db.Connection().GetUserWebsite(website.ID, website.UserID)
	require.NoError(t, err)
	assert.Equal(t, website.ID, fetched.ID)

	// Another user gets the same not found error as for a missing website.
	_, err = db.Connection().GetUserWebsite(website.ID, other.ID)
	assert.Error(t, err)

	_, err = db.Connection().GetUserWebsite(99999999, website.UserID)
	assert.Error(t, err)
}

func TestListUserWebsites(t *testing.T) {
	website := createTestWebsite(t)

	items, count, err := db.Connection().ListUserWebsites(website.UserID)
	require.NoError(t, err)
	assert.Greater(t, count, int64(0))
	assert.NotEmpty(t, items)
}

func TestGetWebsitePageStats(t *testing.T) {
	website := createTestWebsite(t)

	pageA, _, err := db.Connection().UpsertDiscoveredPage(website.ID, "https://stats.ex.com/a", "")
	require.NoError(t, err)
	_, _, err = db.Connection().UpsertDiscoveredPage(website.ID, "https://stats.ex.com/b", "")
	require.NoError(t, err)

	err = db.Connection().UpdatePageScanStatus(pageA.ID, db.PageStatusScanned, "")
	require.NoError(t, err)

	stats, err := db.Connection().GetWebsitePageStats(website.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Scanned)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, int64(0), stats.Errored)
}

func TestWebsiteExists(t *testing.T) {
	website := createTestWebsite(t)

	exists, err := db.Connection().WebsiteExists(website.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = db.Connection().WebsiteExists(99999999)
	require.NoError(t, err)
	assert.False(t, exists)
}
