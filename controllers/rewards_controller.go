package controllers

import (
	"github.com/azim-at/cafeBackend/middlewares"
	"github.com/azim-at/cafeBackend/pkg/resp"
	"github.com/azim-at/cafeBackend/services"
	"github.com/gin-gonic/gin"
)

type RewardsController struct {
	Service *services.RewardsService
}

func NewRewardsController(service *services.RewardsService) *RewardsController {
	return &RewardsController{Service: service}
}

func (rc *RewardsController) GetAccount(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	account, err := rc.Service.GetAccount(cafe, currentIdentity(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"account": account})
}

func (rc *RewardsController) ListTransactions(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	targetUser, ok := queryUint(c, "userId")
	if !ok {
		resp.BadRequest(c, "invalid userId")
		return
	}
	transactions, err := rc.Service.ListTransactions(cafe, currentIdentity(c), targetUser)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"transactions": transactions})
}

type AppendTransactionReq struct {
	UserID      uint   `json:"userId" binding:"required"`
	PointsDelta *int64 `json:"pointsDelta" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
	OrderID     *uint  `json:"orderId"`
}

func (rc *RewardsController) CreateTransaction(c *gin.Context) {
	cafe := middlewares.CurrentCafe(c)
	var req AppendTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	result, err := rc.Service.Append(cafe, currentIdentity(c),
		req.UserID, *req.PointsDelta, req.Reason, req.OrderID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, result)
}
