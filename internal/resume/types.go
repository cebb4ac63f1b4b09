package resume

import "time"

// 缺省值约定：任何缺失的嵌套字段读出时都是空串/空列表/false，
// 文档在响应里永远是完整形状，不会出现 null。

const (
	DefaultTitle      = "My Resume"
	DefaultTemplateID = "template1"
)

// PersonalInfo 表示简历抬头的个人信息，全部字段可选。
type PersonalInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
	GitHub   string `json:"github"`
	Twitter  string `json:"twitter"`
	Summary  string `json:"summary"`
	PhotoURL string `json:"photo_url"`
}

// Experience 表示一段工作经历。
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education 表示一段教育经历。
type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	Location       string `json:"location"`
	GraduationDate string `json:"graduation_date"`
	GPA            string `json:"gpa"`
}

// Project 表示一个项目条目。
type Project struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link"`
	Featured     bool   `json:"featured"`
}

// Achievement 表示一项成就或认证。
type Achievement struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Date         string `json:"date"`
	Organization string `json:"organization"`
}

// Reference 表示一位推荐人。
type Reference struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Draft 是客户端提交的简历内容，不含服务端生成的 id 与时间戳。
// 更新走整文档替换：缺失字段按零值处理，不做字段级合并。
type Draft struct {
	Title        string        `json:"title"`
	TemplateID   string        `json:"template_id"`
	PersonalInfo PersonalInfo  `json:"personal_info"`
	Experience   []Experience  `json:"experience"`
	Education    []Education   `json:"education"`
	Skills       []string      `json:"skills"`
	Projects     []Project     `json:"projects"`
	Achievements []Achievement `json:"achievements"`
	References   []Reference   `json:"references"`
	SocialLinks  []string      `json:"social_links"`
}

// Document 是完整的简历文档，即 Draft 加上服务端字段。
type Document struct {
	ID           string        `json:"id"`
	UserID       *string       `json:"user_id"`
	Title        string        `json:"title"`
	TemplateID   string        `json:"template_id"`
	PersonalInfo PersonalInfo  `json:"personal_info"`
	Experience   []Experience  `json:"experience"`
	Education    []Education   `json:"education"`
	Skills       []string      `json:"skills"`
	Projects     []Project     `json:"projects"`
	Achievements []Achievement `json:"achievements"`
	References   []Reference   `json:"references"`
	SocialLinks  []string      `json:"social_links"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Normalized 把任意部分输入补全成完整形状：空标题与模板取默认值，
// nil 列表变为空列表。对已完整的输入是恒等变换。
func (d Draft) Normalized() Draft {
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
	return d
}
