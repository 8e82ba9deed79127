package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Lulu77Donc/reggie-take-out/entity"
	"github.com/Lulu77Donc/reggie-take-out/pkg/resp"
	"github.com/Lulu77Donc/reggie-take-out/services"
)

type CategoryController struct{ Svc *services.CategoryService }

func NewCategoryController(s *services.CategoryService) *CategoryController {
	return &CategoryController{Svc: s}
}

// POST /category
func (h *CategoryController) Save(c *gin.Context) {
	var in entity.Category
	if !bindJSON(c, &in) {
		return
	}
	if in.Name == "" || (in.Type != entity.CategoryTypeDish && in.Type != entity.CategoryTypeSetmeal) {
		resp.BadRequest(c, "name and a valid type are required")
		return
	}
	if err := h.Svc.Save(c.Request.Context(), &in); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, in)
}

// GET /category/page
func (h *CategoryController) Page(c *gin.Context) {
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

// DELETE /category?id=
func (h *CategoryController) Delete(c *gin.Context) {
	id, ok := queryID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Remove(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, "category deleted")
}

// PUT /category
func (h *CategoryController) Update(c *gin.Context) {
	var in entity.Category
	if !bindJSON(c, &in) {
		return
	}
	if err := h.Svc.Update(c.Request.Context(), &in); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, "category updated")
}

// GET /category/list?type=
func (h *CategoryController) List(c *gin.Context) {
	typ, ok := optionalInt(c, "type")
	if !ok {
		return
	}
	t := 0
	if typ != nil {
		t = *typ
	}
	rows, err := h.Svc.List(c.Request.Context(), t)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rows)
}
