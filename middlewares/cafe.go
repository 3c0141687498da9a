package middlewares

import (
	"github.com/azim-at/cafeBackend/entity"
	"github.com/azim-at/cafeBackend/pkg/resp"
	"github.com/azim-at/cafeBackend/services"
	"github.com/gin-gonic/gin"
)

// ResolveCafe loads the tenant from the :cafeSlug path param and gates
// the whole request: unknown slug 404s, suspended cafes refuse access.
func ResolveCafe(tenancy *services.TenancyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cafe, err := tenancy.ResolveCafe(c.Param("cafeSlug"))
		if err != nil {
			resp.Error(c, err)
			c.Abort()
			return
		}
		c.Set("cafe", cafe)
		c.Next()
	}
}

func CurrentCafe(c *gin.Context) *entity.Cafe {
	if v, ok := c.Get("cafe"); ok {
		if cafe, ok := v.(*entity.Cafe); ok {
			return cafe
		}
	}
	return nil
}
