package user_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"

	"github.com/gin-gonic/gin"
)

// GetActivityLogs godoc
// @Summary Get activity logs
// @Description Get pro user activity logs with pagination and optional filtering
// @Tags Pro - Users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20, max: 100)"
// @Param user_id query string false "Filter by user ID"
// @Param action query string false "Filter by action (e.g., created_offer, updated_stock)"
// @Param resource_type query string false "Filter by resource type" Enums(offer, stock, venue, offerer, booking, user)
// @Success 200 {object} models.ApiResponse{data=map[string]interface{}}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /api/v1/pro/users/activity-logs [get]
func GetActivityLogs(c *gin.Context) {
	log.Printf("[pro.activity-logs] request")

	// Pagination
	page := 1
	if p := c.Query("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}

	limit := 20
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			if parsed > 100 {
				parsed = 100 // Max 100 items per page
			}
			limit = parsed
		}
	}

	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Build base query
	baseQuery := config.Gorm.WithContext(ctx)

	// Optional filters
	if userID := c.Query("user_id"); userID != "" {
		baseQuery = baseQuery.Where("user_id = ?", userID)
	}

	if action := c.Query("action"); action != "" {
		baseQuery = baseQuery.Where("action = ?", action)
	}

	if resourceType := c.Query("resource_type"); resourceType != "" {
		baseQuery = baseQuery.Where("resource_type = ?", resourceType)
	}

	// Get activity logs
	var activityLogs []models.ActivityLog
	var total int64

	if err := baseQuery.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&activityLogs).Error; err != nil {
		log.Printf("[pro.activity-logs] failed to fetch logs: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Get total count
	if err := baseQuery.Model(&models.ActivityLog{}).Count(&total).Error; err != nil {
		log.Printf("[pro.activity-logs] failed to count logs: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Convert to response objects
	responses := make([]models.ActivityLogResponse, len(activityLogs))
	for i, entry := range activityLogs {
		responses[i] = entry.ToResponse()
	}

	// Prepare pagination meta
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	log.Printf("[pro.activity-logs] retrieved %d logs (page %d/%d, total: %d)", len(responses), page, totalPages, total)
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs retrieved", gin.H{"logs": responses}, meta))
}
