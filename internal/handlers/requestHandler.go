package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/gitalabs/GitaAPI/internal/adapter"
	"github.com/gitalabs/GitaAPI/internal/adapter/utils"
	"github.com/gitalabs/GitaAPI/internal/api"
	"github.com/gitalabs/GitaAPI/internal/config"
	"github.com/gitalabs/GitaAPI/internal/domain/jobModel"
	"github.com/gitalabs/GitaAPI/pkg/logger_i"
)

var logRH *logger_i.Logger

// technically i dont need this
// but i want to eventually remove jobHandler from handlers and set it in another package
// so in anticipation for that this struct exists
type newJobData struct {
	id               string
	sessionId        string
	question         string
	isNewSession     bool
	traceId          string
	isDocumentIngest bool
	documentName     string
	documentSource   string
	ingestStartPage  int
	keepSource       bool
}

var (
	corpusNameOnce sync.Once
	corpusName     string
)

// corpusDocumentName loads the manifest once. Probes fire every few seconds,
// the manifest does not change under a running process.
func corpusDocumentName() string {
	corpusNameOnce.Do(func() {
		manifest, err := config.LoadCorpusManifest(config.DefaultCorpusManifest)
		if err != nil {
			return
		}
		corpusName = manifest.Document.Name
	})
	return corpusName
}

// HealthHandler godoc
// @Summary      Health probe
// @Description  Reports whether the service is up, and which corpus it answers from.
// @Tags         Health
// @Produce      json
// @Success      200  {object}  api.HealthResponse
// @Router       /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, api.HealthResponse{
		Status:  "ok",
		Service: config.ServiceName,
		Corpus:  corpusDocumentName(),
	})
}

// AskHandler godoc
// @Summary      Ask a question and wait for the answer
// @Description  Runs the full answering pipeline in the request and returns the grounded answer with sources and confidence.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        request  body      api.AskRequest      true  "Question and optional session ID"
// @Success      200      {object}  api.AnswerResponse  "The grounded answer"
// @Failure      400      {object}  api.JobResponse     "Invalid request data or session ID"
// @Failure      500      {object}  api.JobResponse     "Pipeline failure"
// @Router       /ask [post]
func AskHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		logRH.Warn("Invalid Context by request ", request.RemoteAddr)
		return
	}

	var requestData api.AskRequest
	defer closeBody(request.Body, "Ask")
	if err := json.NewDecoder(request.Body).Decode(&requestData); err != nil ||
		!ValidateQuestionRequest(requestData.Question, requestData.SessionId) {
		logRH.Warn("Bad Ask Request: ", "error:", err, "request data:", requestData)
		WriteErrorResponse(w, http.StatusBadRequest, requestData.SessionId, "Bad Request")
		return
	}

	if requestData.SessionId == "" {
		requestData.SessionId = utils.GetNewUUID()
		handlerInstance.initNewSession(requestData.SessionId, traceFrom(request.Context()))
	}

	askJob := jobModel.Job{
		Id:          utils.GetNewUUID(),
		SessionId:   requestData.SessionId,
		TraceId:     traceFrom(request.Context()),
		JobType:     jobModel.JobTypeQuery,
		CreatedTime: time.Now(),
		Status:      jobModel.JobStatusRunning,
		CurrentStep: jobModel.UserQueryInit,
		JobPayload:  jobModel.JobPayload{Question: requestData.Question},
	}

	result := handlerInstance.answerInRequest(request.Context(), askJob)
	if result.Status == jobModel.JobStatusError {
		WriteErrorResponse(w, result.Error.Code, askJob.Id, result.Error.Message)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToAnswerResponse(result))
}

// QuestionsHandler godoc
// @Summary      Queue a question for background answering
// @Description  Accepts a question, initializes a background processing job, and returns a job ID to track status.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        request  body      api.QuestionRequest  true  "Question and optional session ID"
// @Success      202      {object}  api.InitJobResponse  "Job successfully created"
// @Failure      400      {object}  api.JobResponse      "Invalid request data or session ID"
// @Router       /questions [post]
func QuestionsHandler(w http.ResponseWriter, request *http.Request) {

	if validateContext(request.Context()) {

		var requestData api.QuestionRequest
		defer closeBody(request.Body, "Questions")
		if err := json.NewDecoder(request.Body).Decode(&requestData); err != nil ||
			!ValidateQuestionRequest(requestData.Question, requestData.SessionId) {

			logRH.Warn("Bad Question Request: ", "error:", err, "request data:", requestData)
			WriteErrorResponse(w, http.StatusBadRequest, requestData.SessionId, "Bad Request")
			return
		}
		processNewJobData(request, w, requestData)
		return
	}
	logRH.Warn("Invalid Context by request ", request.RemoteAddr)
}

// GetStatusHandler godoc
// @Summary      Get job status
// @Description  Retrieves the current status of a specific job using its ID.
// @Tags         Job Status
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Job ID "
// @Success      200  {object}  api.JobResponse   "Successful retrieval of job status"
// @Failure      404  {object}  api.JobResponse   "Job not found (returns Error object within JobResponse)"
// @Router       /status/{id} [get]
func GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		idString := utils.GetChiURLParam(r, "id")
		result, isFound := validateId(idString, traceFrom(r.Context()))

		logRH.Debug("Get Status Request:", "URL path", r.URL.Path)
		if !isFound {
			WriteErrorResponse(w, http.StatusNotFound, idString, "Job not found")
			return
		}

		writeJsonResponse(w, http.StatusOK, adapter.ToAPIResponse(result))
	}
}

// PostIngestHandler handles the uploading of PDF or DOCX documents for ingestion.
// @Summary      Upload a document for ingestion
// @Description  Receives a file via multipart/form-data, saves it to a temporary directory, and queues an ingestion job.
// @Tags         Ingestion
// @Accept       multipart/form-data
// @Produce      json
// @Param        document_name  formData  string  true   "The display name of the document"
// @Param        document       formData  file    true   "The PDF, DOCX or TXT file to upload"
// @Param        start_page     formData  int     false  "First page to keep, pages before it are treated as front matter"
// @Success      202  {object}  api.InitJobResponse "Accepted - returns job ID and status URL"
// @Failure      400  {object}  api.JobResponse "Bad Request - Missing fields or file too large"
// @Failure      500  {object}  api.JobResponse "Internal Server Error - Storage or Write Error"
// @Router       /ingest [post]
func PostIngestHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {

		targetDir, errString := getTargetDirectory()

		if errString != "" {
			logRH.Error("Couldn't get target directory :", "err", errString)
			WriteErrorResponse(w, http.StatusInternalServerError, "", errString)
			return
		}

		const maxUploadSize = 32 << 20 //32mb
		err := r.ParseMultipartForm(maxUploadSize)
		if err != nil {
			WriteErrorResponse(w, http.StatusBadRequest, "", "File too large or bad request")
			return
		}

		//process request
		docName := r.FormValue("document_name")
		if docName == "" {
			WriteErrorResponse(w, http.StatusBadRequest, "", "document_name is required")
			return
		}
		startPage := 0
		if raw := r.FormValue("start_page"); raw != "" {
			startPage, err = strconv.Atoi(raw)
			if err != nil || startPage < 0 {
				WriteErrorResponse(w, http.StatusBadRequest, docName, "start_page must be a non-negative number")
				return
			}
		}

		//get the document name the user uploads
		fileReader, fileMetadata, err := r.FormFile("document")
		if err != nil {
			WriteErrorResponse(w, http.StatusBadRequest, docName, "Could not retrieve file")
			return
		}
		defer fileReader.Close()

		filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), fileMetadata.Filename)
		tempFilePath := filepath.Join(targetDir, filename)
		destinationFileWriter, err := os.Create(tempFilePath)
		if err != nil {
			WriteErrorResponse(w, http.StatusInternalServerError, docName, "Storage error")
			return
		}
		defer destinationFileWriter.Close()

		if _, err := io.Copy(destinationFileWriter, fileReader); err != nil {
			WriteErrorResponse(w, http.StatusInternalServerError, docName, "Write error")
			return
		}
		// Sources cite the display name, the timestamped filename is a storage detail.
		queueIngestJob(r, w, docName, tempFilePath, startPage)
		return
	}
	logRH.Warn("Invalid Context by request ", r.RemoteAddr)
}

func closeBody(body io.ReadCloser, which string) {
	if err := body.Close(); err != nil {
		logRH.Error("Couldn't close the request body reader", "handler", which, "error", err)
	}
}
