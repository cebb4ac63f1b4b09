package resume

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalized_FillsDefaults(t *testing.T) {
	got := Draft{}.Normalized()

	if got.Title != DefaultTitle {
		t.Fatalf("expected default title got %q", got.Title)
	}
	if got.TemplateID != DefaultTemplateID {
		t.Fatalf("expected default template got %q", got.TemplateID)
	}
	if got.Experience == nil || got.Education == nil || got.Skills == nil ||
		got.Projects == nil || got.Achievements == nil || got.References == nil ||
		got.SocialLinks == nil {
		t.Fatalf("nil collections survived normalization: %+v", got)
	}
}

func TestNormalized_IdentityOnCompleteInput(t *testing.T) {
	draft := Draft{
		Title:        "Engineer",
		TemplateID:   "template5",
		PersonalInfo: PersonalInfo{FullName: "名前 🚀"},
		Experience:   []Experience{{Title: "dev", Current: true}},
		Education:    []Education{{Degree: "BSc"}},
		Skills:       []string{"Go"},
		Projects:     []Project{{Name: "p", Featured: true}},
		Achievements: []Achievement{{Title: "a"}},
		References:   []Reference{{Name: "r"}},
		SocialLinks:  []string{"https://example.com"},
	}

	if got := draft.Normalized(); !reflect.DeepEqual(got, draft) {
		t.Fatalf("normalization changed complete input:\n got %+v\nwant %+v", got, draft)
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	draft := Draft{
		Title:      "Engineer",
		TemplateID: "template2",
		PersonalInfo: PersonalInfo{
			FullName: "José Żółć",
			Email:    "jose@example.com",
			GitHub:   "github.com/jose",
			Twitter:  "@jose",
			PhotoURL: "https://example.com/p.jpg",
			Summary:  "'; DROP TABLE resumes; --",
		},
		Experience:   []Experience{{Title: "dev", Company: "acme", Current: true, Description: "built things"}},
		Education:    []Education{{Degree: "MSc", Institution: "Stanford", GPA: "3.9"}},
		Skills:       []string{"Go", "SQL"},
		Projects:     []Project{{Name: "proj", Technologies: "Go", Featured: true}},
		Achievements: []Achievement{{Title: "award", Organization: "org"}},
		References:   []Reference{{Name: "ref", Position: "mgr"}},
		SocialLinks:  []string{"https://a", "https://b"},
	}

	model, err := ToModel(draft)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	doc, err := FromModel(model)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if doc.Title != draft.Title || doc.TemplateID != draft.TemplateID {
		t.Fatalf("title/template mismatch: %+v", doc)
	}
	if !reflect.DeepEqual(doc.PersonalInfo, draft.PersonalInfo) {
		t.Fatalf("personal info mismatch:\n got %+v\nwant %+v", doc.PersonalInfo, draft.PersonalInfo)
	}
	if !reflect.DeepEqual(doc.Experience, draft.Experience) ||
		!reflect.DeepEqual(doc.Education, draft.Education) ||
		!reflect.DeepEqual(doc.Skills, draft.Skills) ||
		!reflect.DeepEqual(doc.Projects, draft.Projects) ||
		!reflect.DeepEqual(doc.Achievements, draft.Achievements) ||
		!reflect.DeepEqual(doc.References, draft.References) ||
		!reflect.DeepEqual(doc.SocialLinks, draft.SocialLinks) {
		t.Fatalf("collection mismatch: %+v", doc)
	}
}

func TestFromModel_EmptyColumns(t *testing.T) {
	model, err := ToModel(Draft{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// 模拟历史数据：部分列为空
	model.Skills = nil
	model.References = nil

	doc, err := FromModel(model)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Skills == nil || doc.References == nil {
		t.Fatalf("empty columns must decode to empty lists: %+v", doc)
	}
}

func TestDocument_WireShape(t *testing.T) {
	model, err := ToModel(Draft{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	doc, err := FromModel(model)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}

	var wire map[string]json.RawMessage
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("unmarshal wire object: %v", err)
	}

	for _, key := range []string{
		"id", "user_id", "title", "template_id", "personal_info",
		"experience", "education", "skills", "projects",
		"achievements", "references", "social_links",
		"created_at", "updated_at",
	} {
		if _, ok := wire[key]; !ok {
			t.Fatalf("wire document missing %q: %s", key, data)
		}
	}

	for _, key := range []string{"experience", "skills", "social_links"} {
		if string(wire[key]) != "[]" {
			t.Fatalf("expected %q to be [] got %s", key, wire[key])
		}
	}
}
