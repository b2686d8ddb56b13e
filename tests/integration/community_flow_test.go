//go:build integration

package integration

import (
	"net/http"
	"testing"
	"time"

	"dcn-community/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createKontributor(t *testing.T, nim, nama, email string) dto.KontributorResponse {
	t.Helper()
	var k dto.KontributorResponse
	resp := doJSON(t, http.MethodPost, "/api/kontributor", dto.CreateKontributorRequest{NIM: nim, Nama: nama, Email: email}, superToken, &k)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return k
}

func submitQuizAs(t *testing.T, nama string) {
	t.Helper()
	quiz := createQuiz(t, "Kuis "+nama)
	var link dto.GenerateLinkResponse
	require.Equal(t, http.StatusCreated, doJSON(t, http.MethodPost, "/api/quiz/"+quiz.ID+"/generate-link", nil, superToken, &link).StatusCode)
	var session dto.SessionQuizResponse
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, "/api/quiz/session/"+link.Token, nil, "", &session).StatusCode)
	resp := doJSON(t, http.MethodPost, "/api/quiz/submit", dto.SubmitQuizRequest{
		SessionID: session.SessionID, NamaPeserta: nama, Jawaban: map[string]string{},
	}, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCodeRedeemFlow(t *testing.T) {
	k := createKontributor(t, "3301001", "Cici Rahma", "cici@student.test")

	var code dto.CodeRedeemResponse
	resp := doJSON(t, http.MethodPost, "/api/code-redeem", dto.CreateCodeRequest{Code: "kopdar01", Poin: 25, MaxUsage: 1}, superToken, &code)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "KOPDAR01", code.Code)

	var claim dto.ClaimCodeResponse
	resp = doJSON(t, http.MethodPost, "/api/code-redeem/claim", dto.ClaimCodeRequest{Code: " kopdar01 ", NIM: k.NIM}, "", &claim)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 25, claim.PoinDidapat)
	assert.Equal(t, 25, claim.TotalPoin)

	var errBody map[string]interface{}
	resp = doJSON(t, http.MethodPost, "/api/code-redeem/claim", dto.ClaimCodeRequest{Code: "KOPDAR01", NIM: k.NIM}, "", &errBody)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	other := createKontributor(t, "3301002", "Dodi Pratama", "")
	resp = doJSON(t, http.MethodPost, "/api/code-redeem/claim", dto.ClaimCodeRequest{Code: "KOPDAR01", NIM: other.NIM}, "", &errBody)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "QUOTA_EXHAUSTED", errBody["code"])

	var usage []dto.CodeUsageResponse
	resp = doJSON(t, http.MethodGet, "/api/code-redeem/"+code.ID+"/usage", nil, superToken, &usage)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, usage, 1)
	assert.Equal(t, k.ID, usage[0].KontributorID)

	var profile dto.KontributorProfileResponse
	resp = doJSON(t, http.MethodGet, "/api/kontributor/"+k.NIM, nil, "", &profile)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 25, profile.TotalPoin)

	var board []dto.LeaderboardEntry
	resp = doJSON(t, http.MethodGet, "/api/kontributor/leaderboard?limit=100", nil, "", &board)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	found := false
	for _, e := range board {
		if e.ID == k.ID {
			found = true
			assert.Equal(t, 25, e.TotalPoin)
		}
	}
	assert.True(t, found)
}

func TestPertemuanCertificateFlow(t *testing.T) {
	k := createKontributor(t, "3301003", "Eka Putri", "eka@student.test")
	absent := createKontributor(t, "3301004", "Fajar Nugroho", "fajar@student.test")

	var meeting dto.PertemuanResponse
	resp := doJSON(t, http.MethodPost, "/api/pertemuan", dto.CreatePertemuanRequest{
		Judul: "Workshop Golang", Tanggal: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), HasSertifikat: true,
	}, superToken, &meeting)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, "/api/pertemuan/"+meeting.ID+"/absensi", dto.UpsertAbsensiRequest{Records: []dto.AbsensiInput{
		{KontributorID: k.ID, Status: "izin"},
		{KontributorID: absent.ID, Status: "alpha"},
	}}, superToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	// A second upsert overwrites the earlier status.
	resp = doJSON(t, http.MethodPost, "/api/pertemuan/"+meeting.ID+"/absensi", dto.UpsertAbsensiRequest{Records: []dto.AbsensiInput{
		{KontributorID: k.ID, Status: "hadir"},
	}}, superToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var eligibility dto.EligibilityResponse
	resp = doJSON(t, http.MethodGet, "/api/sertifikat?email=EKA@student.test", nil, "", &eligibility)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, eligibility.Pertemuan, 1)
	assert.False(t, eligibility.Pertemuan[0].SudahKlaim)

	req := dto.IssueSertifikatRequest{KontributorID: k.ID, Tipe: "pertemuan", PertemuanID: meeting.ID}
	var first dto.IssueSertifikatResponse
	resp = doJSON(t, http.MethodPost, "/api/sertifikat", req, "", &first)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, first.Created)
	assert.Regexp(t, `^DCN-PTM-\d{4}-[0-9A-Z]{6}$`, first.Sertifikat.NomorSertifikat)

	var again dto.IssueSertifikatResponse
	resp = doJSON(t, http.MethodPost, "/api/sertifikat", req, "", &again)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, again.Created)
	assert.Equal(t, first.Sertifikat.NomorSertifikat, again.Sertifikat.NomorSertifikat)

	resp = doJSON(t, http.MethodPost, "/api/sertifikat", dto.IssueSertifikatRequest{
		KontributorID: absent.ID, Tipe: "pertemuan", PertemuanID: meeting.ID,
	}, "", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var verified dto.VerifySertifikatResponse
	resp = doJSON(t, http.MethodGet, "/api/sertifikat/verify?nomor="+first.Sertifikat.NomorSertifikat, nil, "", &verified)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, verified.Valid)
	assert.Equal(t, "Eka Putri", verified.Sertifikat.Nama)
	assert.Equal(t, "Workshop Golang", verified.Sertifikat.JudulPertemuan)

	var missing map[string]interface{}
	resp = doJSON(t, http.MethodGet, "/api/sertifikat/verify?nomor=DCN-PTM-2025-ZZZZZZ", nil, "", &missing)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, missing["valid"])
}

func TestQuizCertificateFlow(t *testing.T) {
	k := createKontributor(t, "3301005", "Gita Sari", "gita@student.test")

	resp := doJSON(t, http.MethodPost, "/api/sertifikat", dto.IssueSertifikatRequest{KontributorID: k.ID, Tipe: "quiz"}, "", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	submitQuizAs(t, "Gita Sari")

	var eligibility dto.EligibilityResponse
	resp = doJSON(t, http.MethodGet, "/api/sertifikat?email=gita@student.test", nil, "", &eligibility)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, eligibility.Quiz.JumlahQuiz)
	assert.True(t, eligibility.Quiz.Eligible)

	var issued dto.IssueSertifikatResponse
	resp = doJSON(t, http.MethodPost, "/api/sertifikat", dto.IssueSertifikatRequest{KontributorID: k.ID, Tipe: "quiz"}, "", &issued)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Regexp(t, `^DCN-QUZ-`, issued.Sertifikat.NomorSertifikat)
}

func TestActivityLogRecordsAdminActions(t *testing.T) {
	createKontributor(t, "3301006", "Hana Wijaya", "")
	activity.Wait()

	var logs []dto.ActivityLogResponse
	resp := doJSON(t, http.MethodGet, "/api/activity-log?limit=100", nil, superToken, &logs)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	actions := make([]string, 0, len(logs))
	for _, l := range logs {
		actions = append(actions, l.Action)
	}
	assert.Contains(t, actions, "kontributor.create")
}
