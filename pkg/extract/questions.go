// Package extract holds the fixed extraction question set and the
// mapping from answers to spreadsheet rows.
package extract

// FieldKey tags one extracted field. Answers are keyed by FieldKey, not
// by question wording, so rewording a question cannot break the column
// mapping.
type FieldKey string

const (
	KeyFounder1    FieldKey = "founder1"
	KeyFounder2    FieldKey = "founder2"
	KeyFounder3    FieldKey = "founder3"
	KeyCompanyName FieldKey = "company_name"
	KeyIdeaSummary FieldKey = "idea_summary"
	KeyIndustry    FieldKey = "industry"
	KeyAsk         FieldKey = "ask"
	KeyCompetitors FieldKey = "competitors"
)

// Question pairs a field key with the exact text sent to the document
// QA provider.
type Question struct {
	Key  FieldKey
	Text string
}

var questions = []Question{
	{KeyFounder1, "Who is the main team behind this company? Could be CTO, CEO, Co-Founder, Founder, Investor, etc. Definitely find upto 1 person. Only respond with name and title"},
	{KeyFounder2, "Who is the second main team behind this company? Could be CTO, CEO, Co-Founder, Founder, Investor, etc. Definitely find upto 1 person. Only respond with name and title"},
	{KeyFounder3, "Who is the third main team behind this company? Could be CTO, CEO, Co-Founder, Founder, Investor, etc. Definitely find upto 1 person. Only respond with name and title"},
	{KeyCompanyName, "What is the company name?"},
	{KeyIdeaSummary, "What is the main business idea or summary?"},
	{KeyIndustry, "What industry or sector is this company in?"},
	{KeyAsk, "How much funding are they asking for (the ask amount)?"},
	{KeyCompetitors, "Who are the competitors of this company and their details? What are other similar companies in the space and how are they doing? What are their names, revenue, valuation, etc?"},
}

// Questions returns the fixed ordered question set. The slice is a copy;
// callers cannot mutate the configuration.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}
