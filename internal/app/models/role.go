package models

import "neuroshield-service/internal/pkg/constvars"

type Role string

const (
	RolePatient Role = constvars.RolePatient
	RoleDoctor  Role = constvars.RoleDoctor
	RoleAdmin   Role = constvars.RoleAdmin
)

func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}
