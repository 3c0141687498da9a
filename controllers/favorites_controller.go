package controllers

import (
	"github.com/azim-at/cafeBackend/middlewares"
	"github.com/azim-at/cafeBackend/pkg/resp"
	"github.com/azim-at/cafeBackend/services"
	"github.com/gin-gonic/gin"
)

type FavoritesController struct {
	Service *services.FavoritesService
}

func NewFavoritesController(service *services.FavoritesService) *FavoritesController {
	return &FavoritesController{Service: service}
}

func (fc *FavoritesController) List(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	favorites, err := fc.Service.List(cafe, currentIdentity(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"favorites": favorites})
}

type CreateFavoriteReq struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
}

func (fc *FavoritesController) Create(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	var req CreateFavoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := fc.Service.Create(cafe, currentIdentity(c), req.MenuItemID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if !out.Created {
		resp.OK(c, gin.H{"message": "already favorited"})
		return
	}
	resp.Created(c, out.Favorite)
}

func (fc *FavoritesController) Delete(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	id, ok := paramID(c, "menuItemId")
	if !ok {
		resp.BadRequest(c, "invalid menuItemId")
		return
	}
	if err := fc.Service.Remove(cafe, currentIdentity(c), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
