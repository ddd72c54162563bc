package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/fundunity/cmsdash/internal/common"
	"github.com/fundunity/cmsdash/internal/logging"
	"github.com/fundunity/cmsdash/internal/models"
	"github.com/fundunity/cmsdash/internal/server/services"
	"github.com/gin-gonic/gin"
)

// decoder turns a create/update request into a record and an optional
// image upload.
type decoder[T models.Record] func(c *gin.Context) (T, []byte, error)

type resourceHandler[T models.Record] struct {
	svc    *services.ContentService[T]
	decode decoder[T]
	logger logging.Logger
}

// registerResource mounts the list/get/create/update/delete routes of svc
// on g. Reads are public.
func registerResource[T models.Record](g *gin.RouterGroup, requireAuth gin.HandlerFunc, svc *services.ContentService[T], decode decoder[T], l logging.Logger) {
	h := &resourceHandler[T]{svc: svc, decode: decode, logger: l.With("resource", svc.Name())}

	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", requireAuth, h.create)
	g.PUT("/:id", requireAuth, h.update)
	g.DELETE("/:id", requireAuth, h.delete)
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", common.ErrorValidation, c.Param("id"))
	}
	return id, nil
}

func (h *resourceHandler[T]) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *resourceHandler[T]) get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}

	rec, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *resourceHandler[T]) create(c *gin.Context) {
	rec, image, err := h.decode(c)
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}

	created, err := h.svc.Create(c.Request.Context(), rec, image)
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *resourceHandler[T]) update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}

	rec, image, err := h.decode(c)
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), id, rec, image)
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *resourceHandler[T]) delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
