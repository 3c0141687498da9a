package controllers

import (
	"github.com/azim-at/cafeBackend/middlewares"
	"github.com/azim-at/cafeBackend/pkg/resp"
	"github.com/azim-at/cafeBackend/services"
	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

func (mc *MenuController) ListCategories(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	includeItems := c.Query("includeItems") == "true"
	cats, err := mc.Service.ListCategories(cafe, includeItems)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": cats})
}

func (mc *MenuController) CreateCategory(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := mc.Service.CreateCategory(cafe, currentIdentity(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cat)
}

func (mc *MenuController) UpdateCategory(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := mc.Service.UpdateCategory(cafe, currentIdentity(c), id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cat)
}

func (mc *MenuController) DeleteCategory(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := mc.Service.DeleteCategory(cafe, currentIdentity(c), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

func (mc *MenuController) ListItems(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	category, ok := queryUint(c, "categoryId")
	if !ok {
		resp.BadRequest(c, "invalid categoryId")
		return
	}
	items, err := mc.Service.ListItems(cafe, currentIdentity(c),
		category, c.Query("includeInactive") == "true")
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

func (mc *MenuController) GetItem(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	item, err := mc.Service.GetItem(cafe, id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

func (mc *MenuController) CreateItem(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := mc.Service.CreateItem(cafe, currentIdentity(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

func (mc *MenuController) UpdateItem(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := mc.Service.UpdateItem(cafe, currentIdentity(c), id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

func (mc *MenuController) DeleteItem(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := mc.Service.DeleteItem(cafe, currentIdentity(c), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
