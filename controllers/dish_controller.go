package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Rikoze777/menu-api/pkg/resp"
	"github.com/Rikoze777/menu-api/services"
)

type DishController struct {
	svc *services.DishService
}

func NewDishController(svc *services.DishService) *DishController {
	return &DishController{svc: svc}
}

func dishScope(c *gin.Context) (menuID, submenuID uuid.UUID, ok bool) {
	menuID, ok = pathUUID(c, "menu_id")
	if !ok {
		return
	}
	submenuID, ok = pathUUID(c, "submenu_id")
	return
}

// GET /api/v1/menus/:menu_id/submenus/:submenu_id/dishes
func (ctl *DishController) List(c *gin.Context) {
	menuID, submenuID, ok := dishScope(c)
	if !ok {
		return
	}
	dishes, err := ctl.svc.List(c.Request.Context(), menuID, submenuID)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, dishes)
}

// GET /api/v1/menus/:menu_id/submenus/:submenu_id/dishes/:dish_id
func (ctl *DishController) Get(c *gin.Context) {
	menuID, submenuID, ok := dishScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "dish_id")
	if !ok {
		return
	}
	dish, err := ctl.svc.Get(c.Request.Context(), menuID, submenuID, id)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, dish)
}

// POST /api/v1/menus/:menu_id/submenus/:submenu_id/dishes
func (ctl *DishController) Create(c *gin.Context) {
	menuID, submenuID, ok := dishScope(c)
	if !ok {
		return
	}
	var input services.DishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		resp.Unprocessable(c, err.Error())
		return
	}
	dish, err := ctl.svc.Create(c.Request.Context(), menuID, submenuID, input)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.Created(c, dish)
}

// PATCH /api/v1/menus/:menu_id/submenus/:submenu_id/dishes/:dish_id
func (ctl *DishController) Update(c *gin.Context) {
	menuID, submenuID, ok := dishScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "dish_id")
	if !ok {
		return
	}
	var input services.DishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		resp.Unprocessable(c, err.Error())
		return
	}
	dish, err := ctl.svc.Update(c.Request.Context(), menuID, submenuID, id, input)
	if err != nil {
		handleError(c, err)
		return
	}
	resp.OK(c, dish)
}

// DELETE /api/v1/menus/:menu_id/submenus/:submenu_id/dishes/:dish_id
func (ctl *DishController) Delete(c *gin.Context) {
	menuID, submenuID, ok := dishScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "dish_id")
	if !ok {
		return
	}
	if err := ctl.svc.Delete(c.Request.Context(), menuID, submenuID, id); err != nil {
		handleError(c, err)
		return
	}
	resp.Deleted(c, "The dish has been deleted")
}
