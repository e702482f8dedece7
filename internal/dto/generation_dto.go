package dto

type CreateTermRequest struct {
	Name               string `json:"name" validate:"required"`
	Type               string `json:"type" validate:"required"`
	Priority           string `json:"priority" validate:"required"`
	AdditionalKeywords string `json:"additional_keywords"`
	CustomPrompt       string `json:"custom_prompt"`
}

type CreateTermResponse struct {
	Id int `json:"id"`
}

type RegenerateRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type RegenerateResponse struct {
	GeneratedText string `json:"generated_text"`
}

type NewFaqRequest struct {
	ExistingFaq string `json:"existingFaq" validate:"required"`
}

// NewFaq entries keep the "question@answer" shape the editor splits.
type NewFaqResponse struct {
	NewFaq []string `json:"newFaq"`
}

type CustomQuestionRequest struct {
	CustomQuestion string `json:"customQuestion" validate:"required"`
}

type CustomQuestionResponse struct {
	Response string `json:"response"`
}
