// Package principalrepo provides data transfer objects and mapping
// functions for principal persistence. A principal row exists only once the
// first role has been granted; identities the store has never seen read back
// as principals with no roles.
package principalrepo

import (
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/principal"

	"github.com/google/uuid"
)

// PrincipalDTO represents the database structure for persisting principals.
type PrincipalDTO struct {
	ID    uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Roles []PrincipalRoleDTO `gorm:"foreignKey:PrincipalID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "principals".
func (PrincipalDTO) TableName() string {
	return "principals"
}

// PrincipalRoleDTO represents one granted role.
type PrincipalRoleDTO struct {
	PrincipalID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role        int       `gorm:"primaryKey;autoIncrement:false"`
}

// TableName overrides GORM's default naming convention to use "principal_roles".
func (PrincipalRoleDTO) TableName() string {
	return "principal_roles"
}

// fromDomain converts a principal aggregate to its database representation.
func fromDomain(p *principal.Principal) PrincipalDTO {
	id := p.ID().Bytes()
	roles := make([]PrincipalRoleDTO, 0, len(p.Roles()))
	for _, role := range p.Roles() {
		roles = append(roles, PrincipalRoleDTO{
			PrincipalID: id,
			Role:        int(role),
		})
	}

	return PrincipalDTO{
		ID:    id,
		Roles: roles,
	}
}

// toDomain converts a database row to a principal aggregate via
// RestorePrincipal.
func toDomain(dto PrincipalDTO) (*principal.Principal, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	roles := make([]principal.Role, 0, len(dto.Roles))
	for _, r := range dto.Roles {
		roles = append(roles, principal.Role(r.Role))
	}

	return principal.RestorePrincipal(id, roles)
}
