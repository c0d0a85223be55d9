package adapter

import (
	"fmt"
	"strings"
	"time"

	"github.com/gitalabs/GitaAPI/internal/api"
	"github.com/gitalabs/GitaAPI/internal/domain/jobModel"
	"github.com/gitalabs/GitaAPI/internal/gita/characters"
	"github.com/gitalabs/GitaAPI/internal/gita/curated"
)

func ToInitJobResponse(id string) api.InitJobResponse {
	return api.InitJobResponse{
		Id:        id,
		StatusURL: fmt.Sprintf("status/%s", id), //pass "status/job.Id"
	}
}

func ToAPIResponse(job jobModel.Job) api.JobResponse {

	var errorPtr *api.JobOutgoingError
	if job.Error.Message != "" || job.Error.Code != 0 {
		errorPtr = &api.JobOutgoingError{
			Code:    job.Error.Code,
			Message: job.Error.Message,
			Retry:   job.Error.Retry,
		}
	}

	result := api.Result{
		Status:              string(job.Status),
		RAGExternalResponse: ToRAGExternalStatus(job.JobPayload),
	}

	return api.JobResponse{
		Id:        job.Id,
		SessionId: job.SessionId,
		StartTime: job.CreatedTime,
		EndTime:   job.EndTime,
		Error:     errorPtr,
		Result:    result,
	}
}

func ToRAGExternalStatus(ragData jobModel.JobPayload) *api.RAGResponse {
	if ragData.Answer == "" && len(ragData.Sources) == 0 {
		return nil
	}

	return &api.RAGResponse{
		Question:   ragData.Question,
		Answer:     ragData.Answer,
		Sources:    ragData.Sources,
		Confidence: ragData.Confidence,
	}
}

func ToAnswerResponse(job jobModel.Job) api.AnswerResponse {
	return api.AnswerResponse{
		Question:   job.JobPayload.Question,
		Answer:     job.JobPayload.Answer,
		Sources:    job.JobPayload.Sources,
		Confidence: job.JobPayload.Confidence,
		SessionId:  job.SessionId,
	}
}

func ToRelatedQuestionsResponse(question string, related []curated.RelatedQuestion) api.RelatedQuestionsResponse {
	out := make([]api.RelatedQuestion, 0, len(related))
	for _, rq := range related {
		out = append(out, api.RelatedQuestion{
			Question: rq.Question,
			Category: rq.Category,
		})
	}
	return api.RelatedQuestionsResponse{
		Question: question,
		Related:  out,
	}
}

func ToCharacterResponse(character characters.Character, requestedName string) api.CharacterResponse {
	resp := api.CharacterResponse{
		Name:        character.PrimaryName,
		Aliases:     character.Aliases,
		Description: character.Description,
		Role:        character.Role,
		Profile:     character.Profile,
	}
	if requestedName != "" && !strings.EqualFold(requestedName, character.PrimaryName) {
		resp.CorrectedFrom = requestedName
	}
	return resp
}

func ToChapterResponse(chapter curated.Chapter) api.ChapterResponse {
	return api.ChapterResponse{
		Number:  chapter.Number,
		Title:   chapter.Title,
		Summary: chapter.Summary,
	}
}

func BadRequest(id string, error string, code int) api.JobResponse {
	return api.JobResponse{
		Id:        id,
		SessionId: "",
		StartTime: time.Time{},
		EndTime:   time.Time{},
		Result: api.Result{
			Status:              string(api.JobStatusError),
			RAGExternalResponse: ToRAGExternalStatus(jobModel.JobPayload{}),
		},
		Error: &api.JobOutgoingError{
			Code:    code,
			Message: error,
			Retry:   false,
		},
	}
}
