package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rikoze777/menu-api/controllers"
	"github.com/Rikoze777/menu-api/middlewares"
	"github.com/Rikoze777/menu-api/pkg/cache"
	"github.com/Rikoze777/menu-api/repository"
	"github.com/Rikoze777/menu-api/services"
)

// RegisterRoutes wires repositories, services and controllers onto the
// engine. All collaborators are constructed here and injected; nothing in
// the stack reaches for globals.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, c *cache.Cache, inv *services.Invalidator, log *zap.Logger) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	menuCtrl := controllers.NewMenuController(
		services.NewMenuService(repository.NewMenuRepository(db), c, inv, log))
	submenuCtrl := controllers.NewSubmenuController(
		services.NewSubmenuService(repository.NewSubmenuRepository(db), c, inv, log))
	dishCtrl := controllers.NewDishController(
		services.NewDishService(repository.NewDishRepository(db), c, inv, log))

	api := r.Group("/api/v1")

	menus := api.Group("/menus")
	{
		menus.GET("", menuCtrl.List)
		menus.POST("", menuCtrl.Create)
		menus.GET("/:menu_id", menuCtrl.Get)
		menus.GET("/:menu_id/count", menuCtrl.Count)
		menus.PATCH("/:menu_id", menuCtrl.Update)
		menus.DELETE("/:menu_id", menuCtrl.Delete)
	}

	submenus := menus.Group("/:menu_id/submenus")
	{
		submenus.GET("", submenuCtrl.List)
		submenus.POST("", submenuCtrl.Create)
		submenus.GET("/:submenu_id", submenuCtrl.Get)
		submenus.PATCH("/:submenu_id", submenuCtrl.Update)
		submenus.DELETE("/:submenu_id", submenuCtrl.Delete)
	}

	dishes := submenus.Group("/:submenu_id/dishes")
	{
		dishes.GET("", dishCtrl.List)
		dishes.POST("", dishCtrl.Create)
		dishes.GET("/:dish_id", dishCtrl.Get)
		dishes.PATCH("/:dish_id", dishCtrl.Update)
		dishes.DELETE("/:dish_id", dishCtrl.Delete)
	}
}
