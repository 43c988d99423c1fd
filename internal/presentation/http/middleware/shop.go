package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/repository"
	"github.com/jewelsoft/saraf-api/internal/presentation/http/dto/response"
	"github.com/jewelsoft/saraf-api/pkg/apperror"
)

// ShopMiddleware loads the authenticated user's shop and blocks requests
// when the shop is gone or its license has lapsed. Runs after auth, which
// puts shop_id in the context from the token claims.
func ShopMiddleware(shopRepo repository.ShopRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		shopID := GetShopID(c)
		if shopID == uuid.Nil {
			response.BadRequest(c, "Shop context required")
			c.Abort()
			return
		}

		shop, err := shopRepo.GetByID(c.Request.Context(), shopID)
		if err != nil || shop == nil {
			response.NotFound(c, "Shop not found")
			c.Abort()
			return
		}

		if !shop.LicenseValid(time.Now()) {
			response.Error(c, apperror.ErrLicenseExpired)
			c.Abort()
			return
		}

		c.Set("shop", shop)
		c.Next()
	}
}

// RequireShop ensures a valid shop context exists without hitting the database
func RequireShop() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetShopID(c) == uuid.Nil {
			response.BadRequest(c, "Shop context required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetShopID retrieves the shop ID from gin context
func GetShopID(c *gin.Context) uuid.UUID {
	shopID, exists := c.Get("shop_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := shopID.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
