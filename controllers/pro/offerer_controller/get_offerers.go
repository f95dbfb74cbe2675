package offerer_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"

	"github.com/gin-gonic/gin"
)

// GetOfferers godoc
// @Summary Get paginated offerers
// @Description Retrieve all offerers with pagination and optional status filtering
// @Tags Pro - Offerers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "Filter by status" Enums(pending, validated, rejected)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/pro/offerers [get]
func GetOfferers(c *gin.Context) {
	// Step 1: Parse and validate pagination params
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	offset := (page - 1) * limit

	// Step 2: Build query with optional filters
	query := config.Gorm.Model(&models.Offerer{})

	if status := c.Query("status"); status != "" {
		if status == models.OffererStatusPending || status == models.OffererStatusValidated || status == models.OffererStatusRejected {
			query = query.Where("status = ?", status)
		}
	}

	// Step 3: Count total offerers
	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count offerers"))
		return
	}

	// Step 4: Fetch offerers with their venues
	offerers := make([]models.Offerer, 0)
	if err := query.
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Preload("Venues").
		Find(&offerers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch offerers"))
		return
	}

	// Step 5: Prepare pagination meta
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Offerers fetched successfully", offerers, meta))
}
