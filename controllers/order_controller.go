package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/azim-at/cafeBackend/middlewares"
	"github.com/azim-at/cafeBackend/pkg/resp"
	"github.com/azim-at/cafeBackend/services"
	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

type OrderController struct {
	Service       *services.OrderService
	Tokens        *services.GuestTokenService
	PublicBaseURL string
}

func NewOrderController(service *services.OrderService, tokens *services.GuestTokenService, publicBaseURL string) *OrderController {
	return &OrderController{Service: service, Tokens: tokens, PublicBaseURL: publicBaseURL}
}

func (oc *OrderController) Create(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	var req services.CreateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Service.Create(cafe, currentIdentity(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

func (oc *OrderController) CreateGuest(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	var req services.CreateGuestOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := oc.Service.CreateGuest(cafe, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

func (oc *OrderController) List(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	targetUser, ok := queryUint(c, "userId")
	if !ok {
		resp.BadRequest(c, "invalid userId")
		return
	}
	orders, err := oc.Service.List(cafe, currentIdentity(c),
		c.Query("status"), targetUser)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

func (oc *OrderController) Detail(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	order, err := oc.Service.Get(cafe, currentIdentity(c), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

func (oc *OrderController) UpdateStatus(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req services.UpdateStatusIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Service.UpdateStatus(cafe, currentIdentity(c), id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

type IssueTokenReq struct {
	ExpiresInHours int `json:"expiresInHours"`
}

func (oc *OrderController) IssueGuestToken(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req IssueTokenReq
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.ExpiresInHours <= 0 {
		req.ExpiresInHours = 24
	}
	issued, err := oc.Tokens.Issue(cafe, currentIdentity(c), id,
		time.Duration(req.ExpiresInHours)*time.Hour)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, issued)
}

// GuestTokenQR rotates the order's token and answers with a QR PNG of the
// guest tracking URL, for printing on receipts.
func (oc *OrderController) GuestTokenQR(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	id, ok := paramID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	issued, err := oc.Tokens.Issue(cafe, currentIdentity(c), id, 24*time.Hour)
	if err != nil {
		resp.Error(c, err)
		return
	}
	trackURL := fmt.Sprintf("%s/cafes/%s/orders/guest/%s", oc.PublicBaseURL, cafe.Slug, issued.Token)
	png, err := qrcode.Encode(trackURL, qrcode.Medium, 256)
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (oc *OrderController) GetByGuestToken(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	order, err := oc.Tokens.Resolve(cafe, c.Param("token"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}
