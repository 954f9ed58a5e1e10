package auth

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantScope restricts every domain query to a single company. Super admins
// read across tenants; everyone else is pinned to their own company.
type TenantScope struct {
	CompanyID  *uuid.UUID
	SuperAdmin bool
}

// Apply adds the tenant filter to a query. The column is always company_id.
func (s TenantScope) Apply(db *gorm.DB) *gorm.DB {
	if s.SuperAdmin {
		return db
	}
	if s.CompanyID == nil {
		// A tenanted caller without a company can match nothing.
		return db.Where("1 = 0")
	}
	return db.Where("company_id = ?", *s.CompanyID)
}

// CanAccessCompany reports whether the scope admits rows of the given company.
// A nil company (global row) is visible to super admins only.
func (s TenantScope) CanAccessCompany(companyID *uuid.UUID) bool {
	if s.SuperAdmin {
		return true
	}
	if companyID == nil || s.CompanyID == nil {
		return false
	}
	return *companyID == *s.CompanyID
}

// ScopeFromClaims builds the tenant scope of an authenticated caller.
func ScopeFromClaims(claims *Claims) TenantScope {
	return TenantScope{
		CompanyID:  claims.CompanyID,
		SuperAdmin: claims.Role == "super_admin",
	}
}
