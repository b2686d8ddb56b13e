package domain

import (
	"strings"
	"time"
)

// Admin roles.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
)

// Permission names checked by the permission gate.
const (
	PermQuizManage        = "quiz:manage"
	PermSertifikatManage  = "sertifikat:manage"
	PermCodeRedeemManage  = "code_redeem:manage"
	PermKontributorManage = "kontributor:manage"
	PermPertemuanManage   = "pertemuan:manage"
	PermNotifikasiSend    = "notifikasi:send"
)

// AllPermissions lists every permission known to the service.
var AllPermissions = []string{
	PermQuizManage,
	PermSertifikatManage,
	PermCodeRedeemManage,
	PermKontributorManage,
	PermPertemuanManage,
	PermNotifikasiSend,
}

// Admin is a dashboard operator.
type Admin struct {
	ID          string
	Email       string
	Nama        string
	Role        string
	Permissions []string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewAdmin creates a new Admin instance
func NewAdmin(email, nama, role string, permissions []string) *Admin {
	now := time.Now()
	return &Admin{
		Email:       strings.ToLower(strings.TrimSpace(email)),
		Nama:        nama,
		Role:        role,
		Permissions: permissions,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Can reports whether the admin holds perm. Super admins hold everything.
func (a *Admin) Can(perm string) bool {
	if !a.IsActive {
		return false
	}
	if a.Role == RoleSuperAdmin {
		return true
	}
	for _, p := range a.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}
