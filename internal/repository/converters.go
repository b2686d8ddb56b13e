package repository

import (
	"dcn-community/internal/domain"
	"dcn-community/internal/repository/models"
	"dcn-community/internal/util"
)

func toDomainAdmin(m *models.Admin) *domain.Admin {
	if m == nil {
		return nil
	}
	return &domain.Admin{
		ID:          m.ID,
		Email:       m.Email,
		Nama:        m.Nama,
		Role:        m.Role,
		Permissions: []string(m.Permissions),
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromDomainAdmin(a *domain.Admin) *models.Admin {
	if a == nil {
		return nil
	}
	return &models.Admin{
		ID:          a.ID,
		Email:       a.Email,
		Nama:        a.Nama,
		Role:        a.Role,
		Permissions: models.StringSlice(a.Permissions),
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toDomainKontributor(m *models.Kontributor) *domain.Kontributor {
	if m == nil {
		return nil
	}
	return &domain.Kontributor{
		ID:        m.ID,
		NIM:       m.NIM,
		Nama:      m.Nama,
		Email:     m.Email.String,
		TotalPoin: m.TotalPoin,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromDomainKontributor(k *domain.Kontributor) *models.Kontributor {
	if k == nil {
		return nil
	}
	return &models.Kontributor{
		ID:        k.ID,
		NIM:       k.NIM,
		Nama:      k.Nama,
		Email:     util.StringToNullString(k.Email),
		TotalPoin: k.TotalPoin,
		CreatedAt: k.CreatedAt,
		UpdatedAt: k.UpdatedAt,
	}
}

func toDomainPertemuan(m *models.Pertemuan) *domain.Pertemuan {
	if m == nil {
		return nil
	}
	return &domain.Pertemuan{
		ID:            m.ID,
		Judul:         m.Judul,
		Slug:          m.Slug,
		Tanggal:       m.Tanggal,
		HasSertifikat: m.HasSertifikat,
		CreatedAt:     m.CreatedAt,
	}
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	if m == nil {
		return nil
	}
	return &domain.Quiz{
		ID:        m.ID,
		Judul:     m.Judul,
		Slug:      m.Slug,
		Deskripsi: m.Deskripsi,
		CreatedBy: m.CreatedBy.String,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toDomainQuestion(m *models.QuizQuestion) *domain.QuizQuestion {
	if m == nil {
		return nil
	}
	return &domain.QuizQuestion{
		ID:           m.ID,
		QuizID:       m.QuizID,
		Pertanyaan:   m.Pertanyaan,
		OpsiA:        m.OpsiA,
		OpsiB:        m.OpsiB,
		OpsiC:        m.OpsiC,
		OpsiD:        m.OpsiD,
		JawabanBenar: m.JawabanBenar,
		Urutan:       m.Urutan,
	}
}

func toDomainSession(m *models.QuizSession) *domain.QuizSession {
	if m == nil {
		return nil
	}
	return &domain.QuizSession{
		ID:        m.ID,
		QuizID:    m.QuizID,
		Token:     m.Token,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

func toDomainSubmission(m *models.QuizSubmission) *domain.QuizSubmission {
	if m == nil {
		return nil
	}
	return &domain.QuizSubmission{
		ID:          m.ID,
		SessionID:   m.SessionID,
		NamaPeserta: m.NamaPeserta,
		Jawaban:     map[string]string(m.Jawaban),
		Skor:        m.Skor,
		TotalSoal:   m.TotalSoal,
		SubmittedAt: m.SubmittedAt,
	}
}

func toDomainSertifikat(m *models.Sertifikat) *domain.Sertifikat {
	if m == nil {
		return nil
	}
	return &domain.Sertifikat{
		ID:              m.ID,
		KontributorID:   m.KontributorID,
		NomorSertifikat: m.NomorSertifikat,
		Tipe:            m.Tipe,
		PertemuanID:     m.PertemuanID.String,
		TanggalTerbit:   m.TanggalTerbit,
		CreatedAt:       m.CreatedAt,
	}
}

func fromDomainSertifikat(s *domain.Sertifikat) *models.Sertifikat {
	if s == nil {
		return nil
	}
	return &models.Sertifikat{
		ID:              s.ID,
		KontributorID:   s.KontributorID,
		NomorSertifikat: s.NomorSertifikat,
		Tipe:            s.Tipe,
		PertemuanID:     util.StringToNullString(s.PertemuanID),
		TanggalTerbit:   s.TanggalTerbit,
		CreatedAt:       s.CreatedAt,
	}
}

func toDomainCodeRedeem(m *models.CodeRedeem) *domain.CodeRedeem {
	if m == nil {
		return nil
	}
	return &domain.CodeRedeem{
		ID:           m.ID,
		Code:         m.Code,
		Poin:         m.Poin,
		MaxUsage:     m.MaxUsage,
		CurrentUsage: m.CurrentUsage,
		IsActive:     m.IsActive,
		ExpiresAt:    util.NullTimeToPtr(m.ExpiresAt),
		CreatedAt:    m.CreatedAt,
	}
}

func fromDomainCodeRedeem(c *domain.CodeRedeem) *models.CodeRedeem {
	if c == nil {
		return nil
	}
	return &models.CodeRedeem{
		ID:           c.ID,
		Code:         c.Code,
		Poin:         c.Poin,
		MaxUsage:     c.MaxUsage,
		CurrentUsage: c.CurrentUsage,
		IsActive:     c.IsActive,
		ExpiresAt:    util.TimePtrToNullTime(c.ExpiresAt),
		CreatedAt:    c.CreatedAt,
	}
}

func toDomainActivityLog(m *models.ActivityLog) *domain.ActivityLog {
	if m == nil {
		return nil
	}
	return &domain.ActivityLog{
		ID:        m.ID,
		AdminID:   m.AdminID.String,
		Action:    m.Action,
		Entity:    m.Entity,
		EntityID:  m.EntityID.String,
		Detail:    map[string]interface{}(m.Detail),
		CreatedAt: m.CreatedAt,
	}
}

func toDomainPushSubscription(m *models.PushSubscription) *domain.PushSubscription {
	if m == nil {
		return nil
	}
	return &domain.PushSubscription{
		ID:        m.ID,
		Endpoint:  m.Endpoint,
		P256dh:    m.P256dh,
		Auth:      m.Auth,
		CreatedAt: m.CreatedAt,
	}
}
