package dto

import "time"

// CreatePertemuanRequest represents a new meeting.
type CreatePertemuanRequest struct {
	Judul         string    `json:"judul" validate:"required,max=200"`
	Tanggal       time.Time `json:"tanggal" validate:"required"`
	HasSertifikat bool      `json:"has_sertifikat"`
}

// PertemuanResponse is a meeting
type PertemuanResponse struct {
	ID            string    `json:"id"`
	Judul         string    `json:"judul"`
	Slug          string    `json:"slug"`
	Tanggal       time.Time `json:"tanggal"`
	HasSertifikat bool      `json:"has_sertifikat"`
}

// AbsensiInput is one attendance mark.
type AbsensiInput struct {
	KontributorID string `json:"kontributor_id" validate:"required"`
	Status        string `json:"status" validate:"required,oneof=hadir izin alpha"`
}

// UpsertAbsensiRequest replaces attendance marks for the listed contributors.
type UpsertAbsensiRequest struct {
	Records []AbsensiInput `json:"records" validate:"required,min=1,dive"`
}
