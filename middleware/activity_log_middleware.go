package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"
	"github.com/jellies-true/pass-culture/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ════════════════════════════════════════════════════════════
// Configuration Maps
// ════════════════════════════════════════════════════════════

// pathToResourceType maps URL paths to resource types
var pathToResourceType = map[string]string{
	"offers":   models.ResourceTypeOffer,
	"stocks":   models.ResourceTypeStock,
	"venues":   models.ResourceTypeVenue,
	"offerers": models.ResourceTypeOfferer,
	"bookings": models.ResourceTypeBooking,
	"users":    models.ResourceTypeUser,
}

// resourceTypeToNameField maps resource types to their name field
var resourceTypeToNameField = map[string]string{
	models.ResourceTypeOffer:   "name",
	models.ResourceTypeStock:   "id",
	models.ResourceTypeVenue:   "name",
	models.ResourceTypeOfferer: "name",
	models.ResourceTypeBooking: "token",
	models.ResourceTypeUser:    "email",
}

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	"POST":   "created",
	"PATCH":  "updated",
	"PUT":    "updated",
	"DELETE": "deleted",
}

// ════════════════════════════════════════════════════════════
// Activity Logging Middleware
// ════════════════════════════════════════════════════════════

// ActivityLoggingMiddleware logs pro user actions automatically
// Must be used AFTER ProAuthMiddleware (which sets userID and userEmail)
func ActivityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip GET requests - we only log non-GET (POST, PATCH, PUT, DELETE)
		if c.Request.Method == "GET" {
			c.Next()
			return
		}

		// Extract user info from context (set by ProAuthMiddleware)
		userIDRaw, userIDExists := c.Get("userID")
		userEmailRaw, userEmailExists := c.Get("userEmail")

		if !userIDExists || !userEmailExists {
			log.Printf("[activity-logging] warning: user info not in context")
			c.Next()
			return
		}

		userID := uuid.UUID{}
		if id, ok := userIDRaw.(uuid.UUID); ok {
			userID = id
		} else if idStr, ok := userIDRaw.(string); ok {
			parsedID, err := uuid.Parse(idStr)
			if err != nil {
				log.Printf("[activity-logging] failed to parse user ID: %v", err)
				c.Next()
				return
			}
			userID = parsedID
		}

		userEmail := userEmailRaw.(string)

		// Extract resource type from URL path
		resourceType := extractResourceType(c.Request.URL.Path)
		if resourceType == "" {
			log.Printf("[activity-logging] could not determine resource type from path: %s", c.Request.URL.Path)
			c.Next()
			return
		}

		// Extract resource ID from URL params
		resourceID := c.Param("id")
		if resourceID == "" {
			// Bulk routes (active-status, archive) and stock upserts have no :id param
			log.Printf("[activity-logging] warning: no :id param found for %s", c.Request.URL.Path)
		}

		// Determine action from HTTP method
		actionVerb := methodToActionVerb[c.Request.Method]
		if actionVerb == "" {
			log.Printf("[activity-logging] unknown HTTP method: %s", c.Request.Method)
			c.Next()
			return
		}

		// Build full action name (e.g., "created_offer", "updated_stock")
		action := actionVerb + "_" + resourceType

		// Fetch "before" object from DB (only for updates and deletes)
		var beforeObject interface{}
		if c.Request.Method != "POST" && resourceID != "" {
			beforeObject = fetchResourceFromDB(resourceType, resourceID)
		}

		// Extract resource name from before object (for updates/deletes)
		resourceName := extractResourceName(resourceType, beforeObject)

		// Store in context for use in response handler
		c.Set("activityAction", action)
		c.Set("activityResourceType", resourceType)
		c.Set("activityResourceID", resourceID)
		c.Set("activityResourceName", resourceName)
		c.Set("activityBeforeObject", beforeObject)
		c.Set("activityUserID", userID)
		c.Set("activityUserEmail", userEmail)

		// Execute the handler
		c.Next()

		// After handler execution, determine if successful and log
		statusCode := c.Writer.Status()
		isSuccess := statusCode >= 200 && statusCode < 300

		if isSuccess {
			// Fetch "after" object from DB
			var afterObject interface{}
			if resourceID != "" {
				afterObject = fetchResourceFromDB(resourceType, resourceID)
			}

			// Extract updated resource name
			updatedResourceName := extractResourceName(resourceType, afterObject)

			// Log success
			services.LogActivitySuccess(userID, userEmail, action, resourceType, resourceID, updatedResourceName,
				services.CreateChanges(beforeObject, afterObject), c)

			log.Printf("[activity-logging] success: %s by %s", action, userEmail)
		} else {
			// Log failure - extract error message from response if possible
			errorMsg := "Request failed with status " + http.StatusText(statusCode)

			services.LogActivityFailed(userID, userEmail, action, resourceType, resourceID, resourceName, errorMsg, c)

			log.Printf("[activity-logging] failed: %s by %s - status %d", action, userEmail, statusCode)
		}
	}
}

// ════════════════════════════════════════════════════════════
// Helper Functions
// ════════════════════════════════════════════════════════════

// extractResourceType extracts resource type from URL path
// e.g., "/api/v1/pro/offers/123" → "offer"
func extractResourceType(path string) string {
	// Split path by "/"
	parts := strings.Split(path, "/")

	// Find the resource type (usually second to last part before ID)
	// e.g., "/api/v1/pro/offers/:id" → parts = ["", "api", "v1", "pro", "offers", ":id"]
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" && !isIDParam(parts[i]) {
			// Found a potential resource type
			singular := strings.TrimSuffix(parts[i], "s") // Remove trailing 's' for plural
			if resourceType, exists := pathToResourceType[parts[i]]; exists {
				return resourceType
			}
			if resourceType, exists := pathToResourceType[singular]; exists {
				return resourceType
			}
		}
	}

	return ""
}

// isIDParam checks if a path segment is an ID parameter
func isIDParam(segment string) bool {
	// Check if it looks like a UUID or numeric ID
	if segment == ":id" || segment == "" {
		return true
	}
	// Try to parse as UUID
	if _, err := uuid.Parse(segment); err == nil {
		return true
	}
	return false
}

// fetchResourceFromDB fetches a resource from the database
func fetchResourceFromDB(resourceType, resourceID string) interface{} {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	switch resourceType {
	case models.ResourceTypeOffer:
		var offer models.Offer
		if err := config.Gorm.WithContext(ctx).First(&offer, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch offer %s: %v", resourceID, err)
			return nil
		}
		return offer

	case models.ResourceTypeStock:
		var stock models.Stock
		if err := config.Gorm.WithContext(ctx).First(&stock, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch stock %s: %v", resourceID, err)
			return nil
		}
		return stock

	case models.ResourceTypeVenue:
		var venue models.Venue
		if err := config.Gorm.WithContext(ctx).First(&venue, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch venue %s: %v", resourceID, err)
			return nil
		}
		return venue

	case models.ResourceTypeOfferer:
		var offerer models.Offerer
		if err := config.Gorm.WithContext(ctx).First(&offerer, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch offerer %s: %v", resourceID, err)
			return nil
		}
		return offerer

	case models.ResourceTypeBooking:
		var booking models.Booking
		if err := config.Gorm.WithContext(ctx).First(&booking, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch booking %s: %v", resourceID, err)
			return nil
		}
		return booking

	case models.ResourceTypeUser:
		var user models.ProUser
		if err := config.Gorm.WithContext(ctx).First(&user, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch user %s: %v", resourceID, err)
			return nil
		}
		return user

	default:
		log.Printf("[activity-logging] unknown resource type: %s", resourceType)
		return nil
	}
}

// extractResourceName extracts the name/identifier from a resource object
func extractResourceName(resourceType string, obj interface{}) string {
	if obj == nil {
		return ""
	}

	// Convert to map for easy field access
	data, err := json.Marshal(obj)
	if err != nil {
		return ""
	}

	var resourceMap map[string]interface{}
	if err := json.Unmarshal(data, &resourceMap); err != nil {
		return ""
	}

	// Get the field name for this resource type
	fieldName := resourceTypeToNameField[resourceType]
	if fieldName == "" {
		return ""
	}

	// Extract the value
	if value, exists := resourceMap[fieldName]; exists {
		return toString(value)
	}

	return ""
}

// toString converts any value to string
func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		// Convert float64 to string
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
