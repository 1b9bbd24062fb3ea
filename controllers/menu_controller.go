package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Rikoze777/menu-api/pkg/resp"
	"github.com/Rikoze777/menu-api/services"
)

type MenuController struct {
	svc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{svc: svc}
}

// GET /api/v1/menus
func (ctl *MenuController) List(c *gin.Context) {
	menus, err := ctl.svc.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, menus)
}

// GET /api/v1/menus/:menu_id
func (ctl *MenuController) Get(c *gin.Context) {
	id, ok := pathUUID(c, "menu_id")
	if !ok {
		return
	}
	menu, err := ctl.svc.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, menu)
}

// GET /api/v1/menus/:menu_id/count
func (ctl *MenuController) Count(c *gin.Context) {
	id, ok := pathUUID(c, "menu_id")
	if !ok {
		return
	}
	menu, err := ctl.svc.Count(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, menu)
}

// POST /api/v1/menus
func (ctl *MenuController) Create(c *gin.Context) {
	var input services.MenuInput
	if err := c.ShouldBindJSON(&input); err != nil {
		resp.Unprocessable(c, err.Error())
		return
	}
	menu, err := ctl.svc.Create(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.Created(c, menu)
}

// PATCH /api/v1/menus/:menu_id
func (ctl *MenuController) Update(c *gin.Context) {
	id, ok := pathUUID(c, "menu_id")
	if !ok {
		return
	}
	var input services.MenuInput
	if err := c.ShouldBindJSON(&input); err != nil {
		resp.Unprocessable(c, err.Error())
		return
	}
	menu, err := ctl.svc.Update(c.Request.Context(), id, input)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, menu)
}

// DELETE /api/v1/menus/:menu_id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "menu_id")
	if !ok {
		return
	}
	if err := ctl.svc.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	resp.Deleted(c, "Menu has been deleted")
}
