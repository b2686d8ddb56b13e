package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"dcn-community/internal/domain"
	"dcn-community/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func question(p, answer string) dto.QuestionInput {
	return dto.QuestionInput{Pertanyaan: p, OpsiA: "a", OpsiB: "b", OpsiC: "c", OpsiD: "d", JawabanBenar: answer}
}

func TestCreateQuiz(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	tx := &MockTransactionManager{}
	svc := NewQuizAdminService(quizRepo, new(MockQuizSessionRepository), tx)
	ctx := context.Background()

	quizRepo.On("SlugExists", ctx, "dasar-go").Return(false, nil)
	quizRepo.On("CreateQuiz", ctx, mock.MatchedBy(func(q *domain.Quiz) bool {
		return q.Slug == "dasar-go" && q.CreatedBy == "A1" && len(q.Questions) == 2 &&
			q.Questions[0].Urutan == 1 && q.Questions[1].Urutan == 2 && q.Questions[1].JawabanBenar == "C"
	})).Return(nil)

	resp, err := svc.CreateQuiz(ctx, "A1", &dto.CreateQuizRequest{
		Judul:     "Dasar Go",
		Questions: []dto.QuestionInput{question("1+1?", "A"), question("2+2?", " c ")},
	})
	require.NoError(t, err)
	assert.Equal(t, "dasar-go", resp.Slug)
	require.Len(t, resp.Questions, 2)
	assert.Equal(t, 1, tx.calls)
}

func TestCreateQuiz_Invalid(t *testing.T) {
	svc := NewQuizAdminService(new(MockQuizRepository), new(MockQuizSessionRepository), &MockTransactionManager{})
	ctx := context.Background()

	_, err := svc.CreateQuiz(ctx, "A1", &dto.CreateQuizRequest{Judul: "Kosong"})
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "questions", verrs[0].Field)

	_, err = svc.CreateQuiz(ctx, "A1", &dto.CreateQuizRequest{Judul: "Salah", Questions: []dto.QuestionInput{question("?", "E")}})
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "jawaban_benar", verrs[0].Field)
}

func TestAddQuestions_ContinuesNumbering(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	svc := NewQuizAdminService(quizRepo, new(MockQuizSessionRepository), &MockTransactionManager{})
	ctx := context.Background()

	quizRepo.On("GetQuizByID", ctx, "Q1").Return(&domain.Quiz{ID: "Q1"}, nil)
	quizRepo.On("GetQuestions", ctx, "Q1").Return([]*domain.QuizQuestion{{Urutan: 1}, {Urutan: 4}}, nil)
	quizRepo.On("AddQuestions", ctx, "Q1", mock.MatchedBy(func(qs []*domain.QuizQuestion) bool {
		return len(qs) == 2 && qs[0].Urutan == 5 && qs[1].Urutan == 6
	})).Return(nil)

	n, err := svc.AddQuestions(ctx, "Q1", []dto.QuestionInput{question("x", "B"), question("y", "D")})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	quizRepo.On("GetQuizByID", ctx, "Q404").Return(nil, nil)
	_, err = svc.AddQuestions(ctx, "Q404", []dto.QuestionInput{question("x", "B")})
	requireCode(t, err, domain.CodeNotFound)
}

func TestGetQuizDetail_IncludesAnswerKey(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	svc := NewQuizAdminService(quizRepo, new(MockQuizSessionRepository), &MockTransactionManager{})
	ctx := context.Background()

	quizRepo.On("GetQuizByID", ctx, "Q1").Return(&domain.Quiz{ID: "Q1", Judul: "Dasar Go", Slug: "dasar-go"}, nil)
	quizRepo.On("GetQuestions", ctx, "Q1").Return([]*domain.QuizQuestion{{ID: "QQ1", JawabanBenar: "B", Urutan: 1}}, nil)

	resp, err := svc.GetQuizDetail(ctx, "Q1")
	require.NoError(t, err)
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, "B", resp.Questions[0].JawabanBenar)
}

func TestExportSubmissions(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	sessionRepo := new(MockQuizSessionRepository)
	svc := NewQuizAdminService(quizRepo, sessionRepo, &MockTransactionManager{})
	ctx := context.Background()

	quizRepo.On("GetQuizByID", ctx, "Q1").Return(&domain.Quiz{ID: "Q1", Slug: "dasar-go"}, nil)
	sessionRepo.On("ListSubmissions", ctx, "Q1").Return([]*domain.QuizSubmission{
		{ID: "S1", NamaPeserta: "Ani", Skor: 2, TotalSoal: 3, SubmittedAt: time.Date(2025, 3, 14, 10, 5, 0, 0, time.UTC)},
	}, nil)

	b, name, err := svc.ExportSubmissions(ctx, "Q1")
	require.NoError(t, err)
	assert.Contains(t, name, "hasil_dasar-go")

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Hasil Kuis")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "Ani", "2", "3", "67", "2025-03-14 10:05:00"}, rows[1])
}

func TestDeleteQuiz_NotFound(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	svc := NewQuizAdminService(quizRepo, new(MockQuizSessionRepository), &MockTransactionManager{})
	quizRepo.On("DeleteQuiz", mock.Anything, "Q404").Return(domain.NewNotFoundError("Kuis tidak ditemukan"))

	requireCode(t, svc.DeleteQuiz(context.Background(), "Q404"), domain.CodeNotFound)
}
