package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Lulu77Donc/reggie-take-out/dto"
	"github.com/Lulu77Donc/reggie-take-out/pkg/resp"
	"github.com/Lulu77Donc/reggie-take-out/services"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /order/submit
func (h *OrderController) Submit(c *gin.Context) {
	var in dto.SubmitOrder
	if !bindJSON(c, &in) {
		return
	}
	o, err := h.Svc.Submit(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, o)
}

// GET /order/userPage
func (h *OrderController) UserPage(c *gin.Context) {
	q, ok := bindPage(c)
	if !ok {
		return
	}
	page, err := h.Svc.UserPage(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, page)
}

// POST /order/again
func (h *OrderController) Again(c *gin.Context) {
	var req struct {
		ID int64 `json:"id,string" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if err := h.Svc.Again(c.Request.Context(), req.ID); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, "items added to cart")
}

// PUT /order/:id/cancel
func (h *OrderController) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Cancel(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, "order cancelled")
}

// GET /order/page
func (h *OrderController) Page(c *gin.Context) {
	var q dto.OrderPageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	page, err := h.Svc.AdminPage(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, page)
}

// GET /order/:id
func (h *OrderController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	o, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, o)
}

// PUT /order
func (h *OrderController) UpdateStatus(c *gin.Context) {
	var req dto.OrderStatusUpdate
	if !bindJSON(c, &req) {
		return
	}
	if err := h.Svc.ChangeStatus(c.Request.Context(), req.ID, req.Status); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, "order status updated")
}

// GET /order/:id/qrcode?size=
func (h *OrderController) QRCode(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	size, _ := strconv.Atoi(c.Query("size"))
	png, err := h.Svc.QRCode(c.Request.Context(), id, size)
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
