package entity

// Term is one encyclopedia entry: the generated summary, the parsed
// five-question FAQ, and the keyword tags written back by sync runs.
type Term struct {
	Id                int
	Name              string
	FaqTitle          string
	FaqQ1             string
	FaqA1             string
	FaqQ2             string
	FaqA2             string
	FaqQ3             string
	FaqA3             string
	FaqQ4             string
	FaqA4             string
	FaqQ5             string
	FaqA5             string
	HighKeywords      string
	MediumKeywords    string
	LowKeywords       string
	FaqHighKeywords   string
	FaqMediumKeywords string
	FaqLowKeywords    string
	Prompt            string
	Response          string
	Notes             string
}

// FaqContent concatenates the title and all question/answer pairs, the
// corpus the FAQ keyword tiers are extracted from.
func (t *Term) FaqContent() string {
	fields := []string{
		t.FaqTitle,
		t.FaqQ1, t.FaqA1,
		t.FaqQ2, t.FaqA2,
		t.FaqQ3, t.FaqA3,
		t.FaqQ4, t.FaqA4,
		t.FaqQ5, t.FaqA5,
	}
	out := ""
	for _, f := range fields {
		if f == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += f
	}
	return out
}
