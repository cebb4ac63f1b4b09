package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"resumeCreator/internal/api/middleware"
	"resumeCreator/internal/database"
	"resumeCreator/internal/resume"
)

// ResumeHandler 负责简历文档的增删改查。
// 列表与读取不做归属过滤，所有简历全局可见。
type ResumeHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewResumeHandler 构造 ResumeHandler。
func NewResumeHandler(db *gorm.DB, logger *slog.Logger) *ResumeHandler {
	return &ResumeHandler{db: db, logger: logger}
}

// CreateResume 保存一份新的简历，id 与时间戳由服务端生成。
func (h *ResumeHandler) CreateResume(c *gin.Context) {
	var draft resume.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		Validation(c, err.Error())
		return
	}

	model, err := resume.ToModel(draft)
	if err != nil {
		Validation(c, err.Error())
		return
	}
	model.ID = uuid.NewString()

	ctx := c.Request.Context()
	logger := h.loggerFromContext(c)

	// 单条插入即原子写：失败时没有任何部分提交需要回滚
	if err := h.db.WithContext(ctx).Create(&model).Error; err != nil {
		logger.Error("create resume failed", slog.Any("error", err))
		Internal(c, "failed to create resume")
		return
	}

	doc, err := resume.FromModel(model)
	if err != nil {
		logger.Error("decode created resume failed", slog.Any("error", err))
		Internal(c, "failed to create resume")
		return
	}

	logger.Info("resume created", slog.String("resume_id", doc.ID))
	c.JSON(http.StatusCreated, doc)
}

// ListResumes 列出全部简历，每份都是补全后的完整形状。
func (h *ResumeHandler) ListResumes(c *gin.Context) {
	ctx := c.Request.Context()
	logger := h.loggerFromContext(c)

	var models []database.Resume
	if err := h.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		logger.Error("list resumes failed", slog.Any("error", err))
		Internal(c, "failed to list resumes")
		return
	}

	docs := make([]resume.Document, 0, len(models))
	for _, m := range models {
		doc, err := resume.FromModel(m)
		if err != nil {
			logger.Error("decode resume failed", slog.String("resume_id", m.ID), slog.Any("error", err))
			Internal(c, "failed to list resumes")
			return
		}
		docs = append(docs, doc)
	}

	c.JSON(http.StatusOK, docs)
}

// GetResume 返回指定 id 的简历。
func (h *ResumeHandler) GetResume(c *gin.Context) {
	ctx := c.Request.Context()
	logger := h.loggerFromContext(c)

	var model database.Resume
	if err := h.db.WithContext(ctx).First(&model, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Resume not found")
			return
		}
		logger.Error("query resume failed", slog.Any("error", err))
		Internal(c, "failed to query resume")
		return
	}

	doc, err := resume.FromModel(model)
	if err != nil {
		logger.Error("decode resume failed", slog.String("resume_id", model.ID), slog.Any("error", err))
		Internal(c, "failed to query resume")
		return
	}

	c.JSON(http.StatusOK, doc)
}

// UpdateResume 整文档替换指定简历：除 id、归属与创建时间外全部覆盖，
// 输入中缺失的字段按零值写入，不保留旧值。
func (h *ResumeHandler) UpdateResume(c *gin.Context) {
	var draft resume.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		Validation(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	logger := h.loggerFromContext(c)

	var model database.Resume
	if err := h.db.WithContext(ctx).First(&model, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Resume not found")
			return
		}
		logger.Error("query resume failed", slog.Any("error", err))
		Internal(c, "failed to query resume")
		return
	}

	replacement, err := resume.ToModel(draft)
	if err != nil {
		Validation(c, err.Error())
		return
	}

	updates := map[string]any{
		"title":         replacement.Title,
		"template_id":   replacement.TemplateID,
		"personal_info": replacement.PersonalInfo,
		"experience":    replacement.Experience,
		"education":     replacement.Education,
		"skills":        replacement.Skills,
		"projects":      replacement.Projects,
		"achievements":  replacement.Achievements,
		"references":    replacement.References,
		"social_links":  replacement.SocialLinks,
		"updated_at":    time.Now().UTC(),
	}

	if err := h.db.WithContext(ctx).Model(&model).Updates(updates).Error; err != nil {
		logger.Error("update resume failed", slog.String("resume_id", model.ID), slog.Any("error", err))
		Internal(c, "failed to update resume")
		return
	}

	if err := h.db.WithContext(ctx).First(&model, "id = ?", model.ID).Error; err != nil {
		logger.Error("reload resume failed", slog.String("resume_id", model.ID), slog.Any("error", err))
		Internal(c, "failed to update resume")
		return
	}

	doc, err := resume.FromModel(model)
	if err != nil {
		logger.Error("decode resume failed", slog.String("resume_id", model.ID), slog.Any("error", err))
		Internal(c, "failed to update resume")
		return
	}

	logger.Info("resume updated", slog.String("resume_id", doc.ID))
	c.JSON(http.StatusOK, doc)
}

// DeleteResume 删除指定简历。重复删除同一 id 在第一次成功后返回 404。
func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	ctx := c.Request.Context()
	logger := h.loggerFromContext(c)

	var model database.Resume
	if err := h.db.WithContext(ctx).First(&model, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Resume not found")
			return
		}
		logger.Error("query resume failed", slog.Any("error", err))
		Internal(c, "failed to query resume")
		return
	}

	if err := h.db.WithContext(ctx).Delete(&database.Resume{}, "id = ?", model.ID).Error; err != nil {
		logger.Error("delete resume failed", slog.String("resume_id", model.ID), slog.Any("error", err))
		Internal(c, "failed to delete resume")
		return
	}

	logger.Info("resume deleted", slog.String("resume_id", model.ID))
	c.JSON(http.StatusOK, gin.H{"message": "Resume deleted successfully"})
}

func (h *ResumeHandler) loggerFromContext(c *gin.Context) *slog.Logger {
	if logger := middleware.LoggerFromContext(c); logger != nil {
		return logger
	}
	if h.logger != nil {
		return h.logger
	}
	return slog.Default()
}

func userIDFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := value.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
