package web

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type FAQItem struct {
	Question string
	Answer   string
}

// PageData drives one render of the analyzer page. At most one of Result,
// Warning and Error is set.
type PageData struct {
	JobDescription string
	Result         string
	Warning        string
	Error          string
	MaxFileSizeMB  int64
	Model          string
	Features       []string
	FAQ            []FAQItem
}

var features = []string{
	"ATS-Optimized Resume Analysis",
	"Resume Optimization",
	"Skill Enhancement",
	"Career Progression Guidance",
	"Tailored Profile Summaries",
	"Streamlined Application Process",
	"Personalized Recommendations",
	"Efficient Career Navigation",
}

var faq = []FAQItem{
	{
		Question: "How does ResumeIQ analyze resumes and job descriptions?",
		Answer:   "It leverages Google's Gemini AI to identify keyword matches and calculate resume-to-job-description compatibility.",
	},
	{
		Question: "Can ResumeIQ suggest improvements for my resume?",
		Answer:   "Yes! It provides a list of missing keywords and a custom profile summary to enhance your resume's ATS compatibility.",
	},
	{
		Question: "Is this suitable for entry-level or experienced professionals?",
		Answer:   "Absolutely! ResumeIQ tailors feedback to your experience level and career goals, whether you're just starting out or advancing in your career.",
	},
}

func NewPageData(maxFileSize int64, model string) PageData {
	return PageData{
		MaxFileSizeMB: maxFileSize / (1024 * 1024),
		Model:         model,
		Features:      features,
		FAQ:           faq,
	}
}

func RenderPage(w io.Writer, data PageData) error {
	return pageTemplate.Execute(w, data)
}
