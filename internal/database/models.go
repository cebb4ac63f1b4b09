package database

import (
	"time"

	"gorm.io/datatypes"
)

// User 表示系统中的账号信息。
// 邮箱唯一性由数据库唯一索引保证（大小写敏感，按存储值精确比较）。
type User struct {
	ID           string `gorm:"primaryKey;size:36"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	FullName     string `gorm:"size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	Resumes      []Resume `gorm:"constraint:OnDelete:CASCADE"`
}

// Resume 表示一份简历文档。
// 八个嵌套集合各占一个 JSONB 列，与关系表拆分相比更贴近整文档读写的访问模式。
type Resume struct {
	ID         string  `gorm:"primaryKey;size:36"`
	UserID     *string `gorm:"index;size:36"`
	Title      string  `gorm:"size:255;not null"`
	TemplateID string  `gorm:"size:64;not null"`

	PersonalInfo datatypes.JSON `gorm:"type:jsonb;not null"`
	Experience   datatypes.JSON `gorm:"type:jsonb;not null"`
	Education    datatypes.JSON `gorm:"type:jsonb;not null"`
	Skills       datatypes.JSON `gorm:"type:jsonb;not null"`
	Projects     datatypes.JSON `gorm:"type:jsonb;not null"`
	Achievements datatypes.JSON `gorm:"type:jsonb;not null"`
	References   datatypes.JSON `gorm:"type:jsonb;not null"`
	SocialLinks  datatypes.JSON `gorm:"type:jsonb;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
