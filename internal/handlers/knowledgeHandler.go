package handlers

import (
	"net/http"
	"strconv"

	"github.com/gitalabs/GitaAPI/internal/adapter"
	"github.com/gitalabs/GitaAPI/internal/adapter/utils"
	"github.com/gitalabs/GitaAPI/internal/config"
	"github.com/gitalabs/GitaAPI/internal/gita/characters"
	"github.com/gitalabs/GitaAPI/internal/gita/curated"
)

// These endpoints answer from the curated tables alone. No job, no queue,
// no model call.

// RelatedQuestionsHandler godoc
// @Summary      Suggest related questions
// @Description  Returns catalog questions similar to the one given in the q parameter.
// @Tags         Questions
// @Produce      json
// @Param        q    query     string  true  "The question to find related questions for"
// @Success      200  {object}  api.RelatedQuestionsResponse
// @Failure      400  {object}  api.JobResponse "Missing q parameter"
// @Router       /questions/related [get]
func RelatedQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	question := r.URL.Query().Get("q")
	if question == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "", "q parameter is required")
		return
	}

	related := curated.RelatedQuestions(question, config.RelatedQuestionsLimit)
	writeJsonResponse(w, http.StatusOK, adapter.ToRelatedQuestionsResponse(question, related))
}

// CharacterHandler godoc
// @Summary      Look up a character
// @Description  Returns the profile of a Bhagavad Gita character. Misspelled and alias names are resolved to the canonical figure.
// @Tags         Knowledge
// @Produce      json
// @Param        name  path      string  true  "Character name, alias or close misspelling"
// @Success      200   {object}  api.CharacterResponse
// @Failure      404   {object}  api.JobResponse "No character close enough to the given name"
// @Router       /characters/{name} [get]
func CharacterHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	name := utils.GetChiURLParam(r, "name")
	corrected, confidence := characters.Correct(name)
	if corrected == "" {
		logRH.Debug("No character match", "name", name)
		WriteErrorResponse(w, http.StatusNotFound, name, "Character not found")
		return
	}

	character, found := characters.Lookup(corrected)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, name, "Character not found")
		return
	}

	logRH.Debug("Character resolved", "requested", name, "resolved", character.PrimaryName, "confidence", confidence)
	writeJsonResponse(w, http.StatusOK, adapter.ToCharacterResponse(character, name))
}

// ChapterHandler godoc
// @Summary      Get a chapter summary
// @Description  Returns the title and summary of one of the eighteen chapters.
// @Tags         Knowledge
// @Produce      json
// @Param        number  path      int  true  "Chapter number, 1 to 18"
// @Success      200     {object}  api.ChapterResponse
// @Failure      400     {object}  api.JobResponse "Not a number"
// @Failure      404     {object}  api.JobResponse "Chapter out of range"
// @Router       /chapters/{number} [get]
func ChapterHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	raw := utils.GetChiURLParam(r, "number")
	number, err := strconv.Atoi(raw)
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, raw, "Chapter number must be a number")
		return
	}

	chapter, found := curated.ChapterSummary(number)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, raw, "The Gita has chapters 1 to 18")
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToChapterResponse(chapter))
}
