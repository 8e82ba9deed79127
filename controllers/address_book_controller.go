package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Lulu77Donc/reggie-take-out/entity"
	"github.com/Lulu77Donc/reggie-take-out/pkg/resp"
	"github.com/Lulu77Donc/reggie-take-out/services"
)

type AddressBookController struct{ Svc *services.AddressBookService }

func NewAddressBookController(s *services.AddressBookService) *AddressBookController {
	return &AddressBookController{Svc: s}
}

// POST /addressBook
func (h *AddressBookController) Save(c *gin.Context) {
	var in entity.AddressBook
	if !bindJSON(c, &in) {
		return
	}
	if in.Consignee == "" || in.Phone == "" {
		resp.BadRequest(c, "consignee and phone are required")
		return
	}
	if err := h.Svc.Save(c.Request.Context(), &in); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, in)
}

// PUT /addressBook
func (h *AddressBookController) Update(c *gin.Context) {
	var in entity.AddressBook
	if !bindJSON(c, &in) {
		return
	}
	if err := h.Svc.Update(c.Request.Context(), &in); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, in)
}

// PUT /addressBook/default
func (h *AddressBookController) SetDefault(c *gin.Context) {
	var req struct {
		ID int64 `json:"id" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if err := h.Svc.SetDefault(c.Request.Context(), req.ID); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, "default address set")
}

// GET /addressBook/default
func (h *AddressBookController) GetDefault(c *gin.Context) {
	a, err := h.Svc.GetDefault(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, a)
}

// GET /addressBook/:id
func (h *AddressBookController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	a, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, a)
}

// GET /addressBook/list
func (h *AddressBookController) List(c *gin.Context) {
	rows, err := h.Svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rows)
}

// DELETE /addressBook?ids=
func (h *AddressBookController) Delete(c *gin.Context) {
	ids, ok := queryIDs(c, "ids")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), ids); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, "address deleted")
}
