package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the document generation endpoints
func (h *DocumentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	documents := rg.Group("/documents")
	{
		documents.POST("/preview", h.Preview)
		documents.POST("/print", h.Print)
		documents.POST("/email", h.Email)
		documents.GET("/kinds", h.Kinds)
		documents.GET("/paper-profiles", h.PaperProfiles)
	}
}
