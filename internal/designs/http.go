package designs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sofili-studio/studio-backend/internal/auth"
	"github.com/sofili-studio/studio-backend/internal/logger"
	"github.com/sofili-studio/studio-backend/internal/users"
)

type Handler struct {
	repo *Repo
}

// Register wires the design CRUD routes plus the admin listing. The create
// route deliberately sits outside RequireUser: the external contract takes
// userId from the request body there.
func Register(rg *gin.RouterGroup, repo *Repo, adminUsers users.Reader) {
	h := &Handler{repo: repo}

	g := rg.Group("/designs")
	g.GET("", auth.RequireUser(), h.list)
	g.POST("", h.create)
	g.PATCH("/:id", h.patch)
	g.DELETE("/:id", h.delete)

	rg.GET("/admin/designs", auth.RequireAdmin(adminUsers), h.listAll)
}

func (h *Handler) list(c *gin.Context) {
	userID := auth.UserID(c)

	items, err := h.repo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		logger.Errorf("list designs user=%s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"designs": items})
}

type createReq struct {
	UserID      string   `json:"userId"`
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	JSON        string   `json:"json"`
	JewelryType *TypeRef `json:"jewelryType"`
	MetalType   *TypeRef `json:"metalType"`
	Notes       string   `json:"notes"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	if req.UserID == "" || req.Name == "" || req.Image == "" || req.JSON == "" ||
		req.JewelryType == nil || req.MetalType == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	d, err := h.repo.Create(c.Request.Context(), NewDesign{
		UserID:      req.UserID,
		Name:        req.Name,
		Image:       req.Image,
		JSON:        req.JSON,
		JewelryType: *req.JewelryType,
		MetalType:   *req.MetalType,
		Notes:       req.Notes,
	})
	if err != nil {
		logger.Errorf("create design user=%s: %v", req.UserID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, d)
}

type patchReq struct {
	Name        *string  `json:"name"`
	Notes       *string  `json:"notes"`
	Status      *string  `json:"status"`
	Image       *string  `json:"image"`
	JSON        *string  `json:"json"`
	JewelryType *TypeRef `json:"jewelryType"`
	MetalType   *TypeRef `json:"metalType"`
}

func (h *Handler) patch(c *gin.Context) {
	id := c.Param("id")

	var req patchReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
			return
		}
	}

	d, err := h.repo.ApplyPatch(c.Request.Context(), id, Patch{
		Name:        req.Name,
		Notes:       req.Notes,
		Status:      req.Status,
		Image:       req.Image,
		JSON:        req.JSON,
		JewelryType: req.JewelryType,
		MetalType:   req.MetalType,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Design not found"})
			return
		}
		logger.Errorf("patch design id=%s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, d)
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Design not found"})
			return
		}
		logger.Errorf("delete design id=%s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) listAll(c *gin.Context) {
	items, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		logger.Errorf("admin list designs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, items)
}
