package model

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleAnalyst Role = "ANALYST"
	RoleViewer  Role = "VIEWER"
)

type Principal struct {
	UserID uuid.UUID
	Name   string
	Role   Role
}

func (p Principal) IsAdmin() bool   { return p.Role == RoleAdmin }
func (p Principal) IsAnalyst() bool { return p.Role == RoleAnalyst }
func (p Principal) IsViewer() bool  { return p.Role == RoleViewer }

// CanMutate reports whether the principal may change master data or raise
// tariffs and queries.
func (p Principal) CanMutate() bool { return p.Role == RoleAdmin || p.Role == RoleAnalyst }
