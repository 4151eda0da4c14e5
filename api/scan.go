package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/scanopy/scanopy/pkg/scan"
)

var validate = validator.New()

type DeepScanPageInput struct {
	URL string `json:"url" validate:"required,url"`
}

type DeepScanAllInput struct {
	Pages []scan.PendingPageInput `json:"pages" validate:"required,dive"`
}

// scanService returns the workflow service injected by the scan route group.
func scanService(c *fiber.Ctx) *scan.Service {
	return c.Locals("scanService").(*scan.Service)
}

// scanErrorResponse maps workflow errors onto HTTP statuses.
func scanErrorResponse(c *fiber.Ctx, err error) error {
	var failed *scan.DeepScanFailedError
	switch {
	case errors.Is(err, scan.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(NewErrorResponse("Unauthorized"))
	case errors.Is(err, scan.ErrWebsiteNotFound):
		return c.Status(fiber.StatusNotFound).JSON(NewErrorResponse("Website not found"))
	case errors.Is(err, scan.ErrInvalidArgument):
		return c.Status(fiber.StatusBadRequest).JSON(NewErrorResponse("Invalid request", err.Error()))
	case errors.Is(err, scan.ErrServiceUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(NewErrorResponse("Extraction service unavailable", err.Error()))
	case errors.As(err, &failed):
		return c.Status(fiber.StatusBadGateway).JSON(NewErrorResponse("Deep scan failed", failed.Reason))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(NewErrorResponse("Internal error", err.Error()))
	}
}

// ScanWebsiteHandler godoc
// @Summary Discover the pages of a website
// @Description Enumerates routes through the extraction service and registers them as pending pages
// @Tags Scan
// @Accept json
// @Produce json
// @Param id path int true "Website ID"
// @Success 200 {object} scan.DiscoverySummary
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/websites/{id}/scan [post]
func ScanWebsiteHandler(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(NewErrorResponse("Unauthorized", err.Error()))
	}
	websiteID, err := c.ParamsInt("id")
	if err != nil || websiteID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(NewErrorResponse("Invalid website ID"))
	}

	summary, err := scanService(c).ScanWebsite(c.Context(), userID, uint(websiteID))
	if err != nil {
		return scanErrorResponse(c, err)
	}
	return c.JSON(summary)
}

// ListScannedPagesHandler godoc
// @Summary List the scanned pages of a website
// @Description Returns every page of an owned website ordered by URL
// @Tags Scan
// @Accept json
// @Produce json
// @Param id path int true "Website ID"
// @Success 200 {array} db.ScannedPage
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/websites/{id}/pages [get]
func ListScannedPagesHandler(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(NewErrorResponse("Unauthorized", err.Error()))
	}
	websiteID, err := c.ParamsInt("id")
	if err != nil || websiteID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(NewErrorResponse("Invalid website ID"))
	}

	pages, err := scanService(c).ListScannedPages(userID, uint(websiteID))
	if err != nil {
		return scanErrorResponse(c, err)
	}
	return c.JSON(pages)
}

// DeepScanPageHandler godoc
// @Summary Deep scan a single page
// @Description Runs one page through content extraction and indexing
// @Tags Scan
// @Accept json
// @Produce json
// @Param id path int true "Website ID"
// @Param pageId path int true "Page ID"
// @Param input body DeepScanPageInput true "Page URL"
// @Success 200 {object} extractor.DeepScanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/websites/{id}/pages/{pageId}/deep-scan [post]
func DeepScanPageHandler(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(NewErrorResponse("Unauthorized", err.Error()))
	}
	websiteID, err := c.ParamsInt("id")
	if err != nil || websiteID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(NewErrorResponse("Invalid website ID"))
	}
	pageID, err := c.ParamsInt("pageId")
	if err != nil || pageID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(NewErrorResponse("Invalid page ID"))
	}

	var input DeepScanPageInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(NewErrorResponse("Cannot parse JSON"))
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(NewErrorResponse("Validation failed", err.Error()))
	}

	response, err := scanService(c).DeepScanPage(c.Context(), userID, uint(pageID), input.URL, uint(websiteID))
	if err != nil {
		return scanErrorResponse(c, err)
	}
	return c.JSON(response)
}

// DeepScanAllPendingHandler godoc
// @Summary Initiate a deep scan of all pending pages
// @Description Submits one batched request; pages complete asynchronously and are observed via the page listing
// @Tags Scan
// @Accept json
// @Produce json
// @Param id path int true "Website ID"
// @Param input body DeepScanAllInput true "Pending pages"
// @Success 200 {object} scan.BatchResult
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/websites/{id}/deep-scan-all [post]
func DeepScanAllPendingHandler(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(NewErrorResponse("Unauthorized", err.Error()))
	}
	websiteID, err := c.ParamsInt("id")
	if err != nil || websiteID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(NewErrorResponse("Invalid website ID"))
	}

	var input DeepScanAllInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(NewErrorResponse("Cannot parse JSON"))
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(NewErrorResponse("Validation failed", err.Error()))
	}

	result, err := scanService(c).DeepScanAllPending(c.Context(), userID, uint(websiteID), input.Pages)
	if err != nil {
		return scanErrorResponse(c, err)
	}
	return c.JSON(result)
}
