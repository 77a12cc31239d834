package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blogforge/blog-service/internal/post"
	"github.com/blogforge/blog-service/internal/post/service"
	"github.com/blogforge/blog-service/pkg/logger"
)

type createRequest struct {
	Author  post.Author `json:"author"`
	Title   string      `json:"title"`
	Content string      `json:"content"`
}

// updateRequest fields are pointers: a partial body updates only what it
// carries.
type updateRequest struct {
	ID      string  `json:"id"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// RegisterPostRoutes mounts the blog-post resource on r. Store failures are
// mapped to 500 here; raw driver errors never reach the client.
func RegisterPostRoutes(r *gin.Engine, svc service.Service) {
	r.GET("/posts", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			storeError(c, "list", err)
			return
		}
		out := make([]post.Rendered, 0, len(list))
		for _, p := range list {
			out = append(out, p.Render())
		}
		c.JSON(http.StatusOK, out)
	})

	r.POST("/posts", func(c *gin.Context) {
		var req createRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p := &post.BlogPost{Author: req.Author, Title: req.Title, Content: req.Content}
		if _, err := svc.Create(c.Request.Context(), p); err != nil {
			if errors.Is(err, service.ErrInvalid) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			storeError(c, "create", err)
			return
		}
		c.JSON(http.StatusCreated, p.Render())
	})

	// The PUT contract answers 201 on success. Unconventional for an
	// update-in-place, but it is the documented behavior clients rely on.
	r.PUT("/posts/:id", func(c *gin.Context) {
		id := c.Param("id")
		var req updateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.ID != "" && req.ID != id {
			c.JSON(http.StatusBadRequest, gin.H{"error": "body id does not match path id"})
			return
		}
		if err := svc.Update(c.Request.Context(), id, req.Title, req.Content); err != nil {
			switch {
			case errors.Is(err, service.ErrInvalid):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, service.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			default:
				storeError(c, "update", err)
			}
			return
		}
		c.Status(http.StatusCreated)
	})

	// Idempotent delete: a missing id still answers 204.
	r.DELETE("/posts/:id", func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			storeError(c, "delete", err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}

func storeError(c *gin.Context, op string, err error) {
	logger.Errorf("posts %s failed: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
}
