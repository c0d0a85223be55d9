package api

import "time"

type JobExternalStatus string

const (
	JobStatusError JobExternalStatus = "Error"
)

type JobResponse struct {
	Id        string            `json:"id" example:"job_cz109"`
	SessionId string            `json:"session_id" example:"session_550"`
	Result    Result            `json:"result"`
	Error     *JobOutgoingError `json:"error,omitempty"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time,omitempty"`
}

type JobOutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Job not found"`
	Retry   bool   `json:"can_retry" example:"false"`
}

type RAGResponse struct {
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Sources    []string `json:"sources"`
	Confidence float64  `json:"confidence" example:"0.75"`
}

type Result struct {
	Status              string       `json:"status"`
	RAGExternalResponse *RAGResponse `json:"rag_response,omitempty"`
}

type InitJobResponse struct {
	Id        string `json:"id"`
	StatusURL string `json:"status_url"`
}

// AnswerResponse is the synchronous answer returned by /ask.
type AnswerResponse struct {
	Question   string   `json:"question" example:"What is karma yoga?"`
	Answer     string   `json:"answer"`
	Sources    []string `json:"sources"`
	Confidence float64  `json:"confidence" example:"0.9"`
	SessionId  string   `json:"session_id,omitempty"`
}

type RelatedQuestion struct {
	Question string `json:"question"`
	Category string `json:"category" example:"philosophy"`
}

type RelatedQuestionsResponse struct {
	Question string            `json:"question"`
	Related  []RelatedQuestion `json:"related"`
}

type CharacterResponse struct {
	Name        string   `json:"name" example:"Krishna"`
	Aliases     []string `json:"aliases,omitempty"`
	Description string   `json:"description"`
	Role        string   `json:"role"`
	Profile     string   `json:"profile,omitempty"`
	// Set when the requested spelling was corrected before the lookup.
	CorrectedFrom string `json:"corrected_from,omitempty" example:"krsihna"`
}

type ChapterResponse struct {
	Number  int    `json:"number" example:"2"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Service string `json:"service" example:"gita-qa-api"`
	// The document this deployment answers from, empty until the manifest loads
	Corpus string `json:"corpus,omitempty" example:"Bhagavad-gita As It Is"`
}

// requests---------------------

type AskRequest struct {
	Question  string `json:"question" validate:"required" example:"What is karma yoga?"`
	SessionId string `json:"session_id,omitempty"`
}

type QuestionRequest struct {
	Question  string `json:"question" validate:"required"`
	SessionId string `json:"session_id,omitempty"`
}
