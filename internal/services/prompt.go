package services

import "fmt"

const atsPromptTemplate = `
As an experienced ATS (Applicant Tracking System) with a deep understanding of the hiring market,
evaluate the resume against the provided job description and score how well the candidate matches it.
resume: %s
description: %s

I want the response in the following structure:
The first line indicates the percentage match with the job description (JD).
The second line presents a list of missing keywords.
The third section provides a profile summary.

Mention the title for all the three sections.
While generating the response put some space to separate all the three sections.
`

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildATSPrompt inserts the resume text and job description into the fixed
// three-section ATS template. Both values are inserted literally.
func (pb *PromptBuilder) BuildATSPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(atsPromptTemplate, resumeText, jobDescription)
}
