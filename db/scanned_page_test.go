package db_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/scanopy/scanopy/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T) *db.User {
	user := &db.User{
		Email: fmt.Sprintf("test-%s@example.com", uuid.NewString()[:8]),
	}
	created, err := db.Connection().CreateUser(user)
	require.NoError(t, err)
	return created
}

func createTestWebsite(t *testing.T) *db.Website {
	user := createTestUser(t)
	website := &db.Website{
		Name:   "Test Website",
		Domain: fmt.Sprintf("%s.example.com", uuid.NewString()[:8]),
		UserID: user.ID,
	}
	created, err := db.Connection().CreateWebsite(website)
	require.NoError(t, err)
	return created
}

func TestUpsertDiscoveredPageIsIdempotent(t *testing.T) {
	website := createTestWebsite(t)

	page, created, err := db.Connection().UpsertDiscoveredPage(website.ID, "https://ex.com/a", "Page: /a")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, db.PageStatusPending, page.Status)
	assert.Nil(t, page.ScannedAt)

	again, created, err := db.Connection().UpsertDiscoveredPage(website.ID, "https://ex.com/a", "Page: /a")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, page.ID, again.ID)

	pages, err := db.Connection().ListScannedPages(website.ID)
	require.NoError(t, err)
	assert.Len(t, pages, 1)
}

func TestUpsertDiscoveredPageDoesNotResetStatus(t *testing.T) {
	website := createTestWebsite(t)

	page, _, err := db.Connection().UpsertDiscoveredPage(website.ID, "https://ex.com/b", "Page: /b")
	require.NoError(t, err)

	err = db.Connection().UpdatePageScanStatus(page.ID, db.PageStatusScanned, "")
	require.NoError(t, err)

	again, created, err := db.Connection().UpsertDiscoveredPage(website.ID, "https://ex.com/b", "Page: /b")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, db.PageStatusScanned, again.Status)
}

func TestListScannedPagesOrderedByURL(t *testing.T) {
	website := createTestWebsite(t)

	for _, url := range []string{"https://ex.com/c", "https://ex.com/a", "https://ex.com/b"} {
		_, _, err := db.Connection().UpsertDiscoveredPage(website.ID, url, "")
		require.NoError(t, err)
	}

	pages, err := db.Connection().ListScannedPages(website.ID)
	require.NoError(t, err)
	require.Len(t, pages, 3)
	assert.Equal(t, "https://ex.com/a", pages[0].URL)
	assert.Equal(t, "https://ex.com/b", pages[1].URL)
	assert.Equal(t, "https://ex.com/c", pages[2].URL)
}

func TestUpdatePageScanStatusErrorMessageInvariant(t *testing.T) {
	website := createTestWebsite(t)
	page, _, err := db.Connection().UpsertDiscoveredPage(website.ID, "https://ex.com/d", "")
	require.NoError(t, err)

	// Error status without a diagnostic still gets a message.
	err = db.Connection().UpdatePageScanStatus(page.ID, db.PageStatusError, "")
	require.NoError(t, err)
	fetched, err := db.Connection().GetScannedPageByID(page.ID)
	require.NoError(t, err)
	assert.Equal(t, db.PageStatusError, fetched.Status)
	assert.NotEmpty(t, fetched.ErrorMessage)
	assert.NotNil(t, fetched.ScannedAt)

	// A successful re-scan clears the message.
	err = db.Connection().UpdatePageScanStatus(page.ID, db.PageStatusScanned, "")
	require.NoError(t, err)
	fetched, err = db.Connection().GetScannedPageByID(page.ID)
	require.NoError(t, err)
	assert.Equal(t, db.PageStatusScanned, fetched.Status)
	assert.Empty(t, fetched.ErrorMessage)
}

func TestUpdatePageScanStatusNotFound(t *testing.T) {
	err := db.Connection().UpdatePageScanStatus(99999999, db.PageStatusScanned, "")
	assert.ErrorIs(t, err, db.ErrPageNotFound)
}
