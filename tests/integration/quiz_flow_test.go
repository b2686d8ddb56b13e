//go:build integration

package integration

import (
	"net/http"
	"testing"

	"dcn-community/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createQuiz(t *testing.T, judul string) dto.QuizResponse {
	t.Helper()
	var quiz dto.QuizResponse
	resp := doJSON(t, http.MethodPost, "/api/quiz", dto.CreateQuizRequest{
		Judul: judul,
		Questions: []dto.QuestionInput{
			{Pertanyaan: "Keyword untuk goroutine?", OpsiA: "go", OpsiB: "async", OpsiC: "spawn", OpsiD: "thread", JawabanBenar: "a"},
			{Pertanyaan: "Zero value slice?", OpsiA: "[]", OpsiB: "0", OpsiC: "nil", OpsiD: "panic", JawabanBenar: "C"},
			{Pertanyaan: "Package entry point?", OpsiA: "init", OpsiB: "main", OpsiC: "start", OpsiD: "run", JawabanBenar: "b"},
		},
	}, superToken, &quiz)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return quiz
}

func TestQuizFlow(t *testing.T) {
	quiz := createQuiz(t, "Dasar Go")
	assert.Equal(t, "dasar-go", quiz.Slug)

	second := createQuiz(t, "Dasar Go")
	assert.Equal(t, "dasar-go-2", second.Slug)

	var detail dto.QuizResponse
	resp := doJSON(t, http.MethodGet, "/api/quiz/"+quiz.ID, nil, superToken, &detail)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, detail.Questions, 3)
	assert.Equal(t, "A", detail.Questions[0].JawabanBenar)

	var link dto.GenerateLinkResponse
	resp = doJSON(t, http.MethodPost, "/api/quiz/"+quiz.ID+"/generate-link", nil, superToken, &link)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "https://dcn.test/quiz/"+link.Token, link.URL)

	var active dto.ActiveSessionResponse
	resp = doJSON(t, http.MethodGet, "/api/quiz/"+quiz.ID+"/generate-link", nil, superToken, &active)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, active.IsActive)
	assert.Equal(t, link.Token, active.Token)

	var raw map[string]interface{}
	resp = doJSON(t, http.MethodGet, "/api/quiz/session/"+link.Token, nil, "", &raw)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, q := range raw["questions"].([]interface{}) {
		_, leaked := q.(map[string]interface{})["jawaban_benar"]
		assert.False(t, leaked)
	}
	sessionID := raw["session_id"].(string)

	answers := map[string]string{
		detail.Questions[0].ID: "A",
		detail.Questions[1].ID: "c",
		detail.Questions[2].ID: "D",
	}
	var result dto.SubmitQuizResponse
	resp = doJSON(t, http.MethodPost, "/api/quiz/submit", dto.SubmitQuizRequest{
		SessionID: sessionID, NamaPeserta: "Ani Lestari", Jawaban: answers,
	}, "", &result)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, result.Skor)
	assert.Equal(t, 3, result.TotalSoal)
	assert.Equal(t, 67, result.Persentase)

	var dup map[string]interface{}
	resp = doJSON(t, http.MethodPost, "/api/quiz/submit", dto.SubmitQuizRequest{
		SessionID: sessionID, NamaPeserta: "Budi", Jawaban: answers,
	}, "", &dup)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, "/api/quiz/session/"+link.Token, nil, "", &dup)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, true, dup["already_submitted"])

	var results []dto.SubmissionResponse
	resp = doJSON(t, http.MethodGet, "/api/quiz/"+quiz.ID+"/results", nil, superToken, &results)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, results, 1)
	assert.Equal(t, "Ani Lestari", results[0].NamaPeserta)

	resp = doJSON(t, http.MethodGet, "/api/quiz/"+quiz.ID+"/results/export", nil, superToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

	resp = doJSON(t, http.MethodDelete, "/api/quiz/"+second.ID, nil, superToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, http.MethodGet, "/api/quiz/"+second.ID, nil, superToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestQuizAdmin_RequiresSession(t *testing.T) {
	resp := doJSON(t, http.MethodGet, "/api/quiz", nil, "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var me dto.AdminResponse
	resp = doJSON(t, http.MethodGet, "/api/auth/me", nil, superToken, &me)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "root@dcn.test", me.Email)
}
