package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Rikoze777/menu-api/pkg/resp"
	"github.com/Rikoze777/menu-api/repository"
)

// handleError translates repository sentinels into the fixed per-entity
// 404 bodies; everything else is a 500.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrMenuNotFound):
		resp.NotFound(c, "menu not found")
	case errors.Is(err, repository.ErrSubmenuNotFound):
		resp.NotFound(c, "submenu not found")
	case errors.Is(err, repository.ErrDishNotFound):
		resp.NotFound(c, "dish not found")
	default:
		resp.ServerError(c, err)
	}
}

// pathUUID parses a uuid path param. A malformed id is a validation
// failure (422), matching how malformed bodies are reported.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		resp.Unprocessable(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
