package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/azim-at/cafeBackend/middlewares"
	"github.com/azim-at/cafeBackend/pkg/resp"
	"github.com/azim-at/cafeBackend/services"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Service *services.AdminService
	Orders  *services.OrderService
}

func NewAdminController(service *services.AdminService, orders *services.OrderService) *AdminController {
	return &AdminController{Service: service, Orders: orders}
}

func (ac *AdminController) DashboardSummary(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	summary, err := ac.Service.DashboardSummary(cafe, currentIdentity(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, summary)
}

func adminOrdersIn(c *gin.Context) *services.AdminOrdersIn {
	limit, _ := strconv.Atoi(c.Query("limit"))
	return &services.AdminOrdersIn{
		Status: c.Query("status"),
		Range:  c.Query("range"),
		Limit:  limit,
	}
}

func (ac *AdminController) ListOrders(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	orders, err := ac.Service.ListOrders(cafe, currentIdentity(c), adminOrdersIn(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

func (ac *AdminController) ExportOrders(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	file, err := ac.Service.ExportOrders(cafe, currentIdentity(c), adminOrdersIn(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		resp.Error(c, err)
		return
	}
	filename := fmt.Sprintf("orders-%s-%s.xlsx", cafe.Slug, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

type DecideOrderReq struct {
	Action string `json:"action" binding:"required,oneof=accept deny"`
	Reason string `json:"reason"`
}

func (ac *AdminController) DecideOrder(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req DecideOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := ac.Orders.Decide(cafe, currentIdentity(c), id, req.Action, req.Reason)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}
