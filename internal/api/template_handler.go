package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeCreator/internal/template"
)

// TemplateHandler 负责模板目录相关的 API。
type TemplateHandler struct{}

func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// ListTemplates 返回静态模板目录。纯读接口，不访问存储。
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, template.Catalog())
}
