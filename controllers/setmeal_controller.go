package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Lulu77Donc/reggie-take-out/dto"
	"github.com/Lulu77Donc/reggie-take-out/pkg/resp"
	"github.com/Lulu77Donc/reggie-take-out/services"
)

type SetmealController struct{ Svc *services.SetmealService }

func NewSetmealController(s *services.SetmealService) *SetmealController {
	return &SetmealController{Svc: s}
}

// POST /setmeal
func (h *SetmealController) Save(c *gin.Context) {
	var in dto.SetmealDto
	if !bindJSON(c, &in) {
		return
	}
	if in.Name == "" || in.CategoryID == 0 {
		resp.BadRequest(c, "name and categoryId are required")
		return
	}
	if err := h.Svc.SaveWithDish(c.Request.Context(), &in); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, in)
}

// GET /setmeal/page
func (h *SetmealController) Page(c *gin.Context) {
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

// GET /setmeal/:id
func (h *SetmealController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	s, err := h.Svc.GetWithDish(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, s)
}

// PUT /setmeal
func (h *SetmealController) Update(c *gin.Context) {
	var in dto.SetmealUpdate
	if !bindJSON(c, &in) {
		return
	}
	out, err := h.Svc.UpdateWithDish(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// DELETE /setmeal?ids=
func (h *SetmealController) Delete(c *gin.Context) {
	ids, ok := queryIDs(c, "ids")
	if !ok {
		return
	}
	if err := h.Svc.RemoveWithDish(c.Request.Context(), ids); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, "setmeals deleted")
}

// POST /setmeal/status/:status?ids=
func (h *SetmealController) Status(c *gin.Context) {
	status, ok := saleStatus(c)
	if !ok {
		return
	}
	ids, ok := queryIDs(c, "ids")
	if !ok {
		return
	}
	if err := h.Svc.SetStatus(c.Request.Context(), status, ids); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, "status updated")
}

// GET /setmeal/list?categoryId=&status=
func (h *SetmealController) List(c *gin.Context) {
	categoryID, ok := queryID(c, "categoryId")
	if !ok {
		return
	}
	status, ok := optionalInt(c, "status")
	if !ok {
		return
	}
	rows, err := h.Svc.List(c.Request.Context(), categoryID, status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rows)
}
