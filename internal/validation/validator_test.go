package validation

import (
	"testing"

	"dcn-community/internal/domain"
	"dcn-community/internal/dto"
	"dcn-community/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct_CreateQuiz(t *testing.T) {
	v := NewValidator()

	valid := dto.CreateQuizRequest{
		Judul: "Go Dasar",
		Questions: []dto.QuestionInput{{
			Pertanyaan: "1+1?", OpsiA: "1", OpsiB: "2", OpsiC: "3", OpsiD: "4", JawabanBenar: "b",
		}},
	}
	assert.Nil(t, v.Struct(valid))

	invalid := valid
	invalid.Judul = ""
	invalid.Questions = []dto.QuestionInput{{Pertanyaan: "x", OpsiA: "a", OpsiB: "b", OpsiC: "c", JawabanBenar: "E"}}
	errs := v.Struct(invalid)
	require.Len(t, errs, 3)

	byField := map[string]domain.ErrorCode{}
	for _, e := range errs {
		byField[e.Field] = e.Code
	}
	assert.Equal(t, domain.CodeMissingField, byField["judul"])
	assert.Equal(t, domain.CodeMissingField, byField["questions[0].opsi_d"])
	assert.Equal(t, domain.CodeInvalidFormat, byField["questions[0].jawaban_benar"])
}

func TestStruct_IssueSertifikat(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		req   dto.IssueSertifikatRequest
		field string
		code  domain.ErrorCode
	}{
		{"pertemuan without id", dto.IssueSertifikatRequest{KontributorID: "k", Tipe: "pertemuan"}, "pertemuan_id", domain.CodeMissingField},
		{"quiz with id", dto.IssueSertifikatRequest{KontributorID: "k", Tipe: "quiz", PertemuanID: "p"}, "pertemuan_id", domain.CodeInvalidInput},
		{"unknown tipe", dto.IssueSertifikatRequest{KontributorID: "k", Tipe: "lomba"}, "tipe", domain.CodeInvalidFormat},
		{"missing kontributor", dto.IssueSertifikatRequest{Tipe: "quiz"}, "kontributor_id", domain.CodeMissingField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Struct(tt.req)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, tt.code, errs[0].Code)
		})
	}

	assert.Nil(t, v.Struct(dto.IssueSertifikatRequest{KontributorID: "k", Tipe: "quiz"}))
	assert.Nil(t, v.Struct(dto.IssueSertifikatRequest{KontributorID: "k", Tipe: "pertemuan", PertemuanID: "p"}))
}

func TestStruct_OutOfRangeMessage(t *testing.T) {
	v := NewValidator()
	errs := v.Struct(dto.CreateCodeRequest{Poin: -1, MaxUsage: 1})
	require.Len(t, errs, 1)
	assert.Equal(t, "poin", errs[0].Field)
	assert.Equal(t, domain.CodeOutOfRange, errs[0].Code)
	assert.Equal(t, "poin harus lebih dari 0", errs[0].Message)
}

func TestValidateSessionToken(t *testing.T) {
	v := NewValidator()
	token, err := util.NewSessionToken()
	require.NoError(t, err)

	assert.Nil(t, v.ValidateSessionToken(token))
	assert.Equal(t, domain.CodeMissingField, v.ValidateSessionToken(" ")[0].Code)
	assert.Equal(t, domain.CodeInvalidFormat, v.ValidateSessionToken("short")[0].Code)
}

func TestValidateID(t *testing.T) {
	v := NewValidator()
	assert.Nil(t, v.ValidateID("id", util.NewULID()))
	assert.Equal(t, domain.CodeInvalidFormat, v.ValidateID("id", "not-a-ulid")[0].Code)
	assert.Equal(t, domain.CodeMissingField, v.ValidateID("id", "")[0].Code)
}
