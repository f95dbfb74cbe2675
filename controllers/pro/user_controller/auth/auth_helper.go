package pro_auth_controller

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/jellies-true/pass-culture/config"
	"github.com/jellies-true/pass-culture/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// createOrUpdateProUser links a verified Google identity to a pro account,
// creating one on first login.
func createOrUpdateProUser(
	c *gin.Context,
	googleUser *models.GoogleUserInfo,
	googleID string,
) (*models.ProUser, error) {
	var user models.ProUser

	// Try to find existing user by email
	result := config.Gorm.
		Where("email = ?", googleUser.Email).
		First(&user)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			// First-time Google login, create user without a password
			user = models.ProUser{
				Email:     googleUser.Email,
				FirstName: googleUser.GivenName,
				LastName:  googleUser.FamilyName,
				GoogleID:  &googleID,
				Status:    "active",
			}

			if err := config.Gorm.Create(&user).Error; err != nil {
				return nil, err
			}

			return &user, nil
		}

		return nil, result.Error
	}

	// Existing user: fill in missing fields only
	updates := map[string]interface{}{}

	if user.FirstName == "" {
		updates["first_name"] = googleUser.GivenName
	}
	if user.LastName == "" {
		updates["last_name"] = googleUser.FamilyName
	}

	// Attach Google account if not already linked
	if user.GoogleID == nil || *user.GoogleID == "" {
		updates["google_id"] = googleID
	}

	if len(updates) > 0 {
		if err := config.Gorm.Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	// Sync struct with DB updates
	if user.FirstName == "" {
		user.FirstName = googleUser.GivenName
	}
	if user.LastName == "" {
		user.LastName = googleUser.FamilyName
	}
	user.GoogleID = &googleID

	return &user, nil
}

func redirectToProWithError(c *gin.Context, errorMsg string) {
	frontendURL := config.GetProFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", frontendURL, url.QueryEscape(errorMsg))
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
