package resume

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"resumeCreator/internal/database"
)

// ToModel 把规范化后的草稿编码为数据库行的 JSONB 列。
// id、归属与时间戳由调用方填写。
func ToModel(d Draft) (database.Resume, error) {
	d = d.Normalized()

	model := database.Resume{
		Title:      d.Title,
		TemplateID: d.TemplateID,
	}

	fields := []struct {
		name  string
		value any
		dst   *datatypes.JSON
	}{
		{"personal_info", d.PersonalInfo, &model.PersonalInfo},
		{"experience", d.Experience, &model.Experience},
		{"education", d.Education, &model.Education},
		{"skills", d.Skills, &model.Skills},
		{"projects", d.Projects, &model.Projects},
		{"achievements", d.Achievements, &model.Achievements},
		{"references", d.References, &model.References},
		{"social_links", d.SocialLinks, &model.SocialLinks},
	}
	for _, f := range fields {
		data, err := json.Marshal(f.value)
		if err != nil {
			return database.Resume{}, fmt.Errorf("encode %s: %w", f.name, err)
		}
		*f.dst = datatypes.JSON(data)
	}

	return model, nil
}

// FromModel 把数据库行解码为完整文档，缺失或为空的列按零值补全。
func FromModel(m database.Resume) (Document, error) {
	doc := Document{
		ID:         m.ID,
		UserID:     m.UserID,
		Title:      m.Title,
		TemplateID: m.TemplateID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}

	fields := []struct {
		name string
		src  datatypes.JSON
		dst  any
	}{
		{"personal_info", m.PersonalInfo, &doc.PersonalInfo},
		{"experience", m.Experience, &doc.Experience},
		{"education", m.Education, &doc.Education},
		{"skills", m.Skills, &doc.Skills},
		{"projects", m.Projects, &doc.Projects},
		{"achievements", m.Achievements, &doc.Achievements},
		{"references", m.References, &doc.References},
		{"social_links", m.SocialLinks, &doc.SocialLinks},
	}
	for _, f := range fields {
		if len(f.src) == 0 {
			continue
		}
		if err := json.Unmarshal(f.src, f.dst); err != nil {
			return Document{}, fmt.Errorf("decode %s: %w", f.name, err)
		}
	}

	doc.fillDefaults()
	return doc, nil
}

func (d *Document) fillDefaults() {
	if d.Title == "" {
		d.Title = DefaultTitle
	}
	if d.TemplateID == "" {
		d.TemplateID = DefaultTemplateID
	}
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Skills == nil {
		d.Skills = []string{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Achievements == nil {
		d.Achievements = []Achievement{}
	}
	if d.References == nil {
		d.References = []Reference{}
	}
	if d.SocialLinks == nil {
		d.SocialLinks = []string{}
	}
}
