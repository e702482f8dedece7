// Package prompts holds the editorial prompt templates. The wording is
// load-bearing: the FAQ template dictates the separator format the
// parser recovers, and the summary templates encode house style.
package prompts

import "fmt"

// Term categories recognized by the summary taxonomy. Anything else
// falls through to the default template.
const (
	TypeCountries         = "countries"
	TypeCities            = "cities"
	TypeScientists        = "scientists"
	TypeFirstLadies       = "first ladies"
	TypeNotablePeople     = "notable people"
	TypeMilitaryConflicts = "military conflicts"
	TypePerson            = "person"
	TypePoliticalEvents   = "political events"
	TypeUSLaws            = "us laws"
)

// Summary selects the summary-generation prompt for a term by category.
func Summary(name, termType, additionalKeywords string) string {
	additional := fmt.Sprintf(" Try to include these words: %s.", additionalKeywords)
	switch termType {
	case TypeCountries:
		return fmt.Sprintf("You are an unbiased news reporter working for C-SPAN writing a summary of %s for the website. Write 300 purely informational words providing an overview and one paragraph history of %s. Use this format: [overview, history, economic importance, political background/importance, key political and notable figures]. Do not include a summary. Do not use bullet points. Use journalism grammar and avoid idiomatic language or exaggerations.", name, name) + additional
	case TypeCities:
		return fmt.Sprintf("You are an unbiased news reporter working for C-SPAN writing a summary of %s for the website. Write a 300 word article which is purely informational providing an overview, history and the global significance of %s. Make sure to talk about its important political, economic and historical factors while remaining unbiased and factual. Do not use bullet points. Do not include a conclusion paragraph. Follow this structure: [overview, history, political, economic, historical, global significance/place in modern world]. Use journalism grammar and avoid idiomatic language or exaggerations.", name, name) + additional
	case TypeScientists, TypeFirstLadies, TypeNotablePeople:
		return fmt.Sprintf("You are an unbiased news reporter working for C-SPAN writing a summary of %s for the website. Write 300 words providing an overview and the accomplishments of %s. Do not use bullet points. Do not include a conclusion paragraph. Use journalism grammar and avoid idiomatic language or exaggerations.", name, name) + additional
	case TypeMilitaryConflicts:
		return fmt.Sprintf("You are an unbiased news reporter working for C-SPAN writing a summary of %s for the website. Write 300 words providing an overview and history of %s, including key events and major players. Do not use bullet points. Do not include a conclusion paragraph. Use journalism grammar and avoid idiomatic language or exaggerations.", name, name) + additional
	case TypePerson:
		return fmt.Sprintf("You are an unbiased news reporter working for C-SPAN writing a summary of %s for the website. Write 300 words providing an overview and the accomplishments of %s that highlight key issues and accomplishments of their political career. Do not use bullet points. Do not include a conclusion paragraph. Use journalism grammar and avoid idiomatic language or exaggerations.", name, name) + additional
	case TypePoliticalEvents:
		return fmt.Sprintf("You are an unbiased news reporter working for C-SPAN writing a summary of %s for the website. Write 300 words providing an overview and history of %s, including its key issues and outcomes. Do not use bullet points. Do not include a conclusion paragraph. Use journalism grammar and avoid idiomatic language or exaggerations.", name, name) + additional
	case TypeUSLaws:
		return fmt.Sprintf("You are an unbiased news reporter working for C-SPAN writing a summary of %s for the website. Write 300 purely informational words providing an overview and history of the %s law, including its key provisions and impact. Do not use bullet points. Do not include a conclusion paragraph. Use journalism grammar and avoid idiomatic language or exaggerations.", name, name) + additional
	default:
		return fmt.Sprintf("You are an unbiased news reporter working for C-SPAN writing a summary of %s for the website. Adhering to AP Style guidelines, write 300 purely informational words providing an overview and history of %s. Do not include a conclusion or summary paragraph. Do not use bullet points. Use journalism grammar and avoid idiomatic language or exaggerations.", name, name) + additional
	}
}

// FAQ builds the five-question FAQ prompt. The separator instructions
// here must stay in lockstep with the faq package's parser.
func FAQ(name string) string {
	return fmt.Sprintf("You are an unbiased impartial C-Span Journalist. Provide a detailed objective, factual, and unbiased FAQ about %s. Do 5 FAQs, start with \"Frequently Asked Questions about the %s\", end the title starting line with a \"*\", separate each question from answer with a ~. Separate each of the 5 entries with a \"///\". The title sentence does not need any separation besides a \"*\" from the first question. Do not number the questions and no \"-\", just write out each with the separation points \"///\" and \"~\" accordingly. Should be less than 250 words.", name, name)
}

// CustomQuestionSuffix is appended to editor-supplied FAQ questions
// before generation.
const CustomQuestionSuffix = " You are creating an FAQ for the unbiased CSPAN website. Please create an answer to this question in 15-40 words. Please have it in sentence form, be objective and unbiased in your answer, and be purely factual."

// ReplacementFAQ builds the prompt for regenerating a single FAQ pair.
// The "@" separator is split by the caller.
func ReplacementFAQ(existing string) string {
	return fmt.Sprintf("Generate a new question and Answer for an unbiased FAQ which will be put on the website of CSPAN to inform readers. Be unbiased, apolitical, and informational. This is the FAQ we are replacing, hence try to avoid repeating this one: %s. This FAQ should be informative without explicitly labeling its parts as a question or answer. Do not use formatting, put a '@' between the question and answer so I am able to separate them. Keep it the answer concise, it should not exceed 50 words.", existing)
}

// BillName builds the prompt for deriving a short display title from a
// bill's full text.
func BillName(text string) string {
	return fmt.Sprintf("You are an unbiased news reporter working for C-SPAN. Derive a short, plain-language display title for the following congressional bill. Respond with the title only, no quotes, no punctuation after it, at most 12 words. Bill text: %s", text)
}

// BillSummary builds the prompt for summarizing a bill's full text.
func BillSummary(text string) string {
	return fmt.Sprintf("You are an unbiased news reporter working for C-SPAN. Write a 150 word purely informational summary of the following congressional bill, covering its key provisions and who it affects. Do not use bullet points. Use journalism grammar and avoid idiomatic language or exaggerations. Bill text: %s", text)
}
