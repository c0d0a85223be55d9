package middleware

import (
	"net/http"
	"strconv"

	"github.com/gitalabs/GitaAPI/internal/handlers"
	"github.com/gitalabs/GitaAPI/internal/metrics"
	"github.com/gitalabs/GitaAPI/pkg/logger_i"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
	id           string
}

var AskHandler = Wrap(handlers.AskHandler)
var QuestionsHandler = Wrap(handlers.QuestionsHandler)
var GetStatusHandler = Wrap(handlers.GetStatusHandler)
var PostIngestHandler = Wrap(handlers.PostIngestHandler)
var RelatedQuestionsHandler = Wrap(handlers.RelatedQuestionsHandler)
var CharacterHandler = Wrap(handlers.CharacterHandler)
var ChapterHandler = Wrap(handlers.ChapterHandler)

// Probes carry no bearer token, /health skips authentication only.
var HealthHandler = WrapPublic(handlers.HealthHandler)

func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return wrapWith(next, true)
}

func WrapPublic(next http.HandlerFunc) http.HandlerFunc {
	return wrapWith(next, false)
}

func wrapWith(next http.HandlerFunc, authenticated bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: 200} //metrics
		re := processRequest(requestResponseStruct{req: r, writer: rec}, authenticated)

		if re.badRequest.isBadRequest {
			handleBadRequest(re)
			return
		}
		next(rec, re.req)

		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc() //metrics
	}
}

// processRequest runs the chain and stops at the first failure. Writing the
// error response is the caller's job, exactly once.
func processRequest(re requestResponseStruct, authenticated bool) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re.logger.Info("New request received")
	re = injectTrace(re)
	if re.badRequest.isBadRequest {
		return re
	}
	if authenticated {
		re = authenticate(re)
		if re.badRequest.isBadRequest {
			return re
		}
	}
	re = rateLimiter(re)

	return re
}
