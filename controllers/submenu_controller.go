package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Rikoze777/menu-api/pkg/resp"
	"github.com/Rikoze777/menu-api/services"
)

type SubmenuController struct {
	svc *services.SubmenuService
}

func NewSubmenuController(svc *services.SubmenuService) *SubmenuController {
	return &SubmenuController{svc: svc}
}

// GET /api/v1/menus/:menu_id/submenus
func (ctl *SubmenuController) List(c *gin.Context) {
	menuID, ok := pathUUID(c, "menu_id")
	if !ok {
		return
	}
	submenus, err := ctl.svc.List(c.Request.Context(), menuID)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, submenus)
}

// GET /api/v1/menus/:menu_id/submenus/:submenu_id
func (ctl *SubmenuController) Get(c *gin.Context) {
	menuID, ok := pathUUID(c, "menu_id")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "submenu_id")
	if !ok {
		return
	}
	submenu, err := ctl.svc.Get(c.Request.Context(), menuID, id)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, submenu)
}

// POST /api/v1/menus/:menu_id/submenus
func (ctl *SubmenuController) Create(c *gin.Context) {
	menuID, ok := pathUUID(c, "menu_id")
	if !ok {
		return
	}
	var input services.SubmenuInput
	if err := c.ShouldBindJSON(&input); err != nil {
		resp.Unprocessable(c, err.Error())
		return
	}
	submenu, err := ctl.svc.Create(c.Request.Context(), menuID, input)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.Created(c, submenu)
}

// PATCH /api/v1/menus/:menu_id/submenus/:submenu_id
func (ctl *SubmenuController) Update(c *gin.Context) {
	menuID, ok := pathUUID(c, "menu_id")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "submenu_id")
	if !ok {
		return
	}
	var input services.SubmenuInput
	if err := c.ShouldBindJSON(&input); err != nil {
		resp.Unprocessable(c, err.Error())
		return
	}
	submenu, err := ctl.svc.Update(c.Request.Context(), menuID, id, input)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, submenu)
}

// DELETE /api/v1/menus/:menu_id/submenus/:submenu_id
func (ctl *SubmenuController) Delete(c *gin.Context) {
	menuID, ok := pathUUID(c, "menu_id")
	if !ok {
		return
	}
	id, ok := pathUUID(c, "submenu_id")
	if !ok {
		return
	}
	if err := ctl.svc.Delete(c.Request.Context(), menuID, id); err != nil {
		handleError(c, err)
		return
	}
	resp.Deleted(c, "Submenu has been deleted")
}
