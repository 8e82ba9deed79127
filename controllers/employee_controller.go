package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Lulu77Donc/reggie-take-out/dto"
	"github.com/Lulu77Donc/reggie-take-out/entity"
	"github.com/Lulu77Donc/reggie-take-out/pkg/resp"
	"github.com/Lulu77Donc/reggie-take-out/services"
)

type EmployeeController struct{ Svc *services.EmployeeService }

func NewEmployeeController(s *services.EmployeeService) *EmployeeController {
	return &EmployeeController{Svc: s}
}

// POST /employee/login
func (h *EmployeeController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, res)
}

// POST /employee/logout
func (h *EmployeeController) Logout(c *gin.Context) {
	if err := h.Svc.Logout(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, "logged out")
}

// POST /employee
func (h *EmployeeController) Create(c *gin.Context) {
	var e entity.Employee
	if !bindJSON(c, &e) {
		return
	}
	if e.Username == "" || e.Name == "" {
		resp.BadRequest(c, "name and username are required")
		return
	}
	if err := h.Svc.Create(c.Request.Context(), &e); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, e)
}

// GET /employee/page
func (h *EmployeeController) Page(c *gin.Context) {
	q, ok := bindPage(c)
	if !ok {
		return
	}
	page, err := h.Svc.Page(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, page)
}

// PUT /employee
func (h *EmployeeController) Update(c *gin.Context) {
	var req dto.EmployeeUpdate
	if !bindJSON(c, &req) {
		return
	}
	e, err := h.Svc.Update(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, e)
}

// GET /employee/:id
func (h *EmployeeController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	e, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, e)
}
