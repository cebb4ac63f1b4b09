package template

// Template 表示一个静态的展示模板条目。
type Template struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	PreviewImage string `json:"preview_image"`
}

// 模板目录是只读的静态数据，不落库。template_id 只作为引用记录，
// 创建简历时不校验其是否存在于目录中。
var catalog = []Template{
	{
		ID:           "template1",
		Name:         "Classic Professional",
		Description:  "Clean and professional layout perfect for corporate roles",
		PreviewImage: "https://images.unsplash.com/photo-1586281380349-632531db7ed4?w=300&h=400&fit=crop",
	},
	{
		ID:           "template2",
		Name:         "Modern Creative",
		Description:  "Contemporary design with subtle color accents",
		PreviewImage: "https://images.unsplash.com/photo-1434030216411-0b793f4b4173?w=300&h=400&fit=crop",
	},
	{
		ID:           "template3",
		Name:         "Minimalist Clean",
		Description:  "Simple and elegant design focused on content",
		PreviewImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=400&fit=crop",
	},
	{
		ID:           "template4",
		Name:         "Executive Elite",
		Description:  "Sophisticated layout for senior positions",
		PreviewImage: "https://images.unsplash.com/photo-1521791136064-7986c2920216?w=300&h=400&fit=crop",
	},
	{
		ID:           "template5",
		Name:         "Tech Focus",
		Description:  "Perfect for developers and tech professionals",
		PreviewImage: "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=300&h=400&fit=crop",
	},
	{
		ID:           "template6",
		Name:         "Creative Bold",
		Description:  "Eye-catching design for creative industries",
		PreviewImage: "https://images.unsplash.com/photo-1552664730-d307ca884978?w=300&h=400&fit=crop",
	},
	{
		ID:           "template7",
		Name:         "Academic Scholar",
		Description:  "Traditional format ideal for academic positions",
		PreviewImage: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=300&h=400&fit=crop",
	},
	{
		ID:           "template8",
		Name:         "Startup Dynamic",
		Description:  "Modern layout for startup and entrepreneurial roles",
		PreviewImage: "https://images.unsplash.com/photo-1559136555-9303baea8ebd?w=300&h=400&fit=crop",
	},
	{
		ID:           "template9",
		Name:         "Healthcare Pro",
		Description:  "Professional design for healthcare professionals",
		PreviewImage: "https://images.unsplash.com/photo-1576091160399-112ba8d25d1f?w=300&h=400&fit=crop",
	},
	{
		ID:           "template10",
		Name:         "Sales Champion",
		Description:  "Results-focused layout for sales professionals",
		PreviewImage: "https://images.unsplash.com/photo-1507680434567-5739c80be1ac?w=300&h=400&fit=crop",
	},
}

// Catalog 返回模板目录的一份拷贝，调用方可以随意修改而不影响全局数据。
func Catalog() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}
