package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Lulu77Donc/reggie-take-out/dto"
	"github.com/Lulu77Donc/reggie-take-out/entity"
	"github.com/Lulu77Donc/reggie-take-out/pkg/resp"
	"github.com/Lulu77Donc/reggie-take-out/services"
)

type DishController struct{ Svc *services.DishService }

func NewDishController(s *services.DishService) *DishController { return &DishController{Svc: s} }

// POST /dish
func (h *DishController) Save(c *gin.Context) {
	var in dto.DishDto
	if !bindJSON(c, &in) {
		return
	}
	if in.Name == "" || in.CategoryID == 0 {
		resp.BadRequest(c, "name and categoryId are required")
		return
	}
	if err := h.Svc.SaveWithFlavor(c.Request.Context(), &in); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, in)
}

// GET /dish/page
func (h *DishController) Page(c *gin.Context) {
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

// GET /dish/:id
func (h *DishController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	d, err := h.Svc.GetWithFlavor(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, d)
}

// PUT /dish
func (h *DishController) Update(c *gin.Context) {
	var in dto.DishUpdate
	if !bindJSON(c, &in) {
		return
	}
	out, err := h.Svc.UpdateWithFlavor(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /dish/status/:status?ids=
func (h *DishController) Status(c *gin.Context) {
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

// DELETE /dish?ids=
func (h *DishController) Delete(c *gin.Context) {
	ids, ok := queryIDs(c, "ids")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), ids); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, "dishes deleted")
}

// GET /dish/list?categoryId=&status=
func (h *DishController) List(c *gin.Context) {
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

func saleStatus(c *gin.Context) (int, bool) {
	status, err := strconv.Atoi(c.Param("status"))
	if err != nil || (status != entity.StatusOn && status != entity.StatusOff) {
		resp.BadRequest(c, "status must be 0 or 1")
		return 0, false
	}
	return status, true
}
