package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Lulu77Donc/reggie-take-out/dto"
	"github.com/Lulu77Donc/reggie-take-out/pkg/resp"
	"github.com/Lulu77Donc/reggie-take-out/services"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// POST /shoppingCart/add
func (h *CartController) Add(c *gin.Context) {
	var in dto.CartItem
	if !bindJSON(c, &in) {
		return
	}
	line, err := h.Svc.Add(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, line)
}

// POST /shoppingCart/sub
func (h *CartController) Sub(c *gin.Context) {
	var in dto.CartItem
	if !bindJSON(c, &in) {
		return
	}
	line, err := h.Svc.Sub(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, line)
}

// GET /shoppingCart/list
func (h *CartController) List(c *gin.Context) {
	rows, err := h.Svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rows)
}

// DELETE /shoppingCart/clean
func (h *CartController) Clean(c *gin.Context) {
	if err := h.Svc.Clean(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, "cart cleaned")
}
