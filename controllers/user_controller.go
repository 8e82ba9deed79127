package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Lulu77Donc/reggie-take-out/dto"
	"github.com/Lulu77Donc/reggie-take-out/pkg/resp"
	"github.com/Lulu77Donc/reggie-take-out/services"
)

type UserController struct{ Svc *services.UserService }

func NewUserController(s *services.UserService) *UserController { return &UserController{Svc: s} }

// POST /user/sendMsg
func (h *UserController) SendMsg(c *gin.Context) {
	var req struct {
		Phone string `json:"phone" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if err := h.Svc.SendCode(c.Request.Context(), req.Phone); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, "code sent")
}

// POST /user/login
func (h *UserController) Login(c *gin.Context) {
	var req dto.UserLoginRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Phone, req.Code)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, res)
}

// POST /user/loginout
func (h *UserController) Logout(c *gin.Context) {
	if err := h.Svc.Logout(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, "logged out")
}
