package services

import "fmt"

// MissingJobDescription is interpolated in place of an absent job description.
const MissingJobDescription = "None"

type AnalysisKind string

const (
	KindQuickScan        AnalysisKind = "quick-scan"
	KindDetailedAnalysis AnalysisKind = "detailed-analysis"
	KindATSOptimization  AnalysisKind = "ats-optimization"
)

// PromptTemplate is one fixed analysis prompt. Body carries two %s verbs: the
// resume text, then the job description.
type PromptTemplate struct {
	Kind                   AnalysisKind
	Label                  string
	RequiresJobDescription bool
	Body                   string
}

var promptTemplates = []PromptTemplate{
	{
		Kind:  KindQuickScan,
		Label: "Quick Scan",
		Body: `You are ResumeChecker, an expert in resume analysis. Provide a quick scan of the following resume:

1. Identify the most suitable profession for this resume.
2. List 3 key strengths of the resume.
3. Suggest 2 quick improvements.
4. Give an overall ATS score out of 100.

Resume text: %s
Job description (if provided): %s
`,
	},
	{
		Kind:  KindDetailedAnalysis,
		Label: "Detailed Analysis",
		Body: `You are ResumeChecker, an expert in resume analysis. Provide a detailed analysis of the following resume:

1. Identify the most suitable profession for this resume.
2. List 5 strengths of the resume.
3. Suggest 3-5 areas for improvement with specific recommendations.
4. Rate the following aspects out of 10: Impact, Brevity, Style, Structure, Skills.
5. Provide a brief review of each major section (e.g., Summary, Experience, Education).
6. Give an overall ATS score out of 100 with a breakdown of the scoring.

Resume text: %s
Job description (if provided): %s
`,
	},
	{
		Kind:                   KindATSOptimization,
		Label:                  "ATS Optimization",
		RequiresJobDescription: true,
		Body: `You are ResumeChecker, an expert in ATS optimization. Analyze the following resume and provide optimization suggestions:

1. Identify keywords from the job description that should be included in the resume.
2. Suggest reformatting or restructuring to improve ATS readability.
3. Recommend changes to improve keyword density without keyword stuffing.
4. Provide 3-5 bullet points on how to tailor this resume for the specific job description.
5. Give an ATS compatibility score out of 100 and explain how to improve it.

Resume text: %s
Job description: %s
`,
	},
}

// PromptTemplates returns every analysis template in route order.
func PromptTemplates() []PromptTemplate {
	out := make([]PromptTemplate, len(promptTemplates))
	copy(out, promptTemplates)
	return out
}

func LookupPromptTemplate(kind AnalysisKind) (PromptTemplate, bool) {
	for _, tpl := range promptTemplates {
		if tpl.Kind == kind {
			return tpl, true
		}
	}
	return PromptTemplate{}, false
}

// Path is the HTTP route serving this template.
func (t PromptTemplate) Path() string {
	return "/" + string(t.Kind) + "/"
}

// Build interpolates the resume text and job description verbatim.
func (t PromptTemplate) Build(resumeText string, jobDescription *string) string {
	jd := MissingJobDescription
	if jobDescription != nil {
		jd = *jobDescription
	}
	return fmt.Sprintf(t.Body, resumeText, jd)
}
