package service

import (
	"context"
	"testing"
	"time"

	"dcn-community/internal/domain"
	"dcn-community/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreatePertemuan(t *testing.T) {
	repo := new(MockPertemuanRepository)
	activity := &recordingActivityLogger{}
	svc := NewPertemuanService(repo, new(MockKontributorRepository), &MockTransactionManager{}, activity)
	ctx := context.Background()
	tanggal := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

	repo.On("SlugExists", ctx, "workshop-golang").Return(true, nil)
	repo.On("SlugExists", ctx, "workshop-golang-2").Return(false, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Pertemuan")).Return(nil)

	resp, err := svc.Create(ctx, "A1", &dto.CreatePertemuanRequest{Judul: " Workshop Golang ", Tanggal: tanggal, HasSertifikat: true})
	require.NoError(t, err)
	assert.Equal(t, "Workshop Golang", resp.Judul)
	assert.Equal(t, "workshop-golang-2", resp.Slug)
	assert.True(t, resp.HasSertifikat)
	assert.Equal(t, []string{"pertemuan.create"}, activity.actions())

	_, err = svc.Create(ctx, "A1", &dto.CreatePertemuanRequest{Judul: "Tanpa tanggal"})
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "tanggal", verrs[0].Field)
}

func TestUpsertAbsensi(t *testing.T) {
	ctx := context.Background()
	meeting := &domain.Pertemuan{ID: "P1", Judul: "Kopdar", HasSertifikat: true}

	t.Run("writes normalized records in one transaction", func(t *testing.T) {
		repo := new(MockPertemuanRepository)
		kRepo := new(MockKontributorRepository)
		tx := &MockTransactionManager{}
		svc := NewPertemuanService(repo, kRepo, tx, &recordingActivityLogger{})

		repo.On("GetByID", ctx, "P1").Return(meeting, nil)
		kRepo.On("GetByID", ctx, "K1").Return(&domain.Kontributor{ID: "K1"}, nil)
		kRepo.On("GetByID", ctx, "K2").Return(&domain.Kontributor{ID: "K2"}, nil)
		repo.On("UpsertAbsensi", ctx, mock.MatchedBy(func(rs []*domain.Absensi) bool {
			return len(rs) == 2 && rs[0].Status == domain.StatusHadir && rs[1].Status == domain.StatusIzin && rs[0].PertemuanID == "P1"
		})).Return(nil)

		n, err := svc.UpsertAbsensi(ctx, "A1", "P1", &dto.UpsertAbsensiRequest{Records: []dto.AbsensiInput{
			{KontributorID: "K1", Status: "HADIR"},
			{KontributorID: "K2", Status: " izin "},
		}})
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, 1, tx.calls)
	})

	t.Run("unknown meeting", func(t *testing.T) {
		repo := new(MockPertemuanRepository)
		svc := NewPertemuanService(repo, new(MockKontributorRepository), &MockTransactionManager{}, &recordingActivityLogger{})
		repo.On("GetByID", ctx, "P404").Return(nil, nil)

		_, err := svc.UpsertAbsensi(ctx, "A1", "P404", &dto.UpsertAbsensiRequest{Records: []dto.AbsensiInput{{KontributorID: "K1", Status: "hadir"}}})
		requireCode(t, err, domain.CodeNotFound)
	})

	t.Run("invalid status", func(t *testing.T) {
		repo := new(MockPertemuanRepository)
		tx := &MockTransactionManager{}
		svc := NewPertemuanService(repo, new(MockKontributorRepository), tx, &recordingActivityLogger{})
		repo.On("GetByID", ctx, "P1").Return(meeting, nil)

		_, err := svc.UpsertAbsensi(ctx, "A1", "P1", &dto.UpsertAbsensiRequest{Records: []dto.AbsensiInput{{KontributorID: "K1", Status: "telat"}}})
		var verrs domain.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, domain.CodeInvalidFormat, verrs[0].Code)
		assert.Zero(t, tx.calls)
	})

	t.Run("unknown contributor aborts the batch", func(t *testing.T) {
		repo := new(MockPertemuanRepository)
		kRepo := new(MockKontributorRepository)
		svc := NewPertemuanService(repo, kRepo, &MockTransactionManager{}, &recordingActivityLogger{})
		repo.On("GetByID", ctx, "P1").Return(meeting, nil)
		kRepo.On("GetByID", ctx, "K1").Return(&domain.Kontributor{ID: "K1"}, nil)
		kRepo.On("GetByID", ctx, "K9").Return(nil, nil)

		_, err := svc.UpsertAbsensi(ctx, "A1", "P1", &dto.UpsertAbsensiRequest{Records: []dto.AbsensiInput{
			{KontributorID: "K1", Status: "hadir"},
			{KontributorID: "K9", Status: "hadir"},
		}})
		de := requireCode(t, err, domain.CodeNotFound)
		assert.Equal(t, "K9", de.Context["kontributor_id"])
		repo.AssertNotCalled(t, "UpsertAbsensi", mock.Anything, mock.Anything)
	})
}
