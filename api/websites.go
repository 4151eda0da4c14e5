package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/scanopy/scanopy/db"
	"github.com/scanopy/scanopy/lib"
)

type CreateWebsiteInput struct {
	Name   string `json:"name" validate:"required,max=255"`
	Domain string `json:"domain" validate:"required,fqdn,max=255"`
}

type WebsiteListResponse struct {
	Items []*db.Website `json:"items"`
	Count int64         `json:"count"`
}

// FindWebsites godoc
// @Summary List the caller's websites
// @Description Returns every website owned by the authenticated user
// @Tags Websites
// @Accept json
// @Produce json
// @Success 200 {object} WebsiteListResponse
// @Failure 401 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/websites [get]
func FindWebsites(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(NewErrorResponse("Unauthorized", err.Error()))
	}

	items, count, err := db.Connection().ListUserWebsites(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(NewErrorResponse("Database error"))
	}

	return c.JSON(WebsiteListResponse{Items: items, Count: count})
}

// CreateWebsite godoc
// @Summary Register a website
// @Description Creates a website owned by the authenticated user
// @Tags Websites
// @Accept json
// @Produce json
// @Param input body CreateWebsiteInput true "Website input"
// @Success 201 {object} db.Website
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/websites [post]
func CreateWebsite(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(NewErrorResponse("Unauthorized", err.Error()))
	}

	var input CreateWebsiteInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(NewErrorResponse("Invalid request body"))
	}

	input.Domain = lib.NormalizeDomain(input.Domain)

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(NewErrorResponse("Validation failed", err.Error()))
	}

	website := &db.Website{
		Name:   input.Name,
		Domain: input.Domain,
		UserID: userID,
	}
	created, err := db.Connection().CreateWebsite(website)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(NewErrorResponse("Database error"))
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetWebsiteDetail godoc
// @Summary Get website detail
// @Description Returns one owned website with its page status rollup
// @Tags Websites
// @Accept json
// @Produce json
// @Param id path int true "Website ID"
// @Success 200 {object} db.Website
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/websites/{id} [get]
func GetWebsiteDetail(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(NewErrorResponse("Unauthorized", err.Error()))
	}
	websiteID, err := c.ParamsInt("id")
	if err != nil || websiteID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(NewErrorResponse("Invalid website ID"))
	}

	website, err := db.Connection().GetUserWebsite(uint(websiteID), userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(NewErrorResponse("Website not found"))
	}

	stats, err := db.Connection().GetWebsitePageStats(website.ID)
	if err != nil {
		log.Error().Err(err).Uint("website_id", website.ID).Msg("Unable to compute page stats")
	} else {
		website.PageStats = stats
	}

	return c.JSON(website)
}

// DeleteWebsite godoc
// @Summary Delete a website
// @Description Deletes an owned website and all of its scanned pages
// @Tags Websites
// @Accept json
// @Produce json
// @Param id path int true "Website ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/websites/{id} [delete]
func DeleteWebsite(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(NewErrorResponse("Unauthorized", err.Error()))
	}
	websiteID, err := c.ParamsInt("id")
	if err != nil || websiteID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(NewErrorResponse("Invalid website ID"))
	}

	website, err := db.Connection().GetUserWebsite(uint(websiteID), userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(NewErrorResponse("Website not found"))
	}

	if err := db.Connection().DeleteWebsite(website.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(NewErrorResponse("Database error"))
	}

	return c.SendStatus(fiber.StatusNoContent)
}
