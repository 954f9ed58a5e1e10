package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"
	"projextpal-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Auditor records accepted mutations to the append-only audit log. An audit
// write failure is logged, never surfaced: the mutation already committed.
type Auditor struct {
	repo repository.AuditRepositoryInterface
}

// NewAuditor creates a new auditor
func NewAuditor(repo repository.AuditRepositoryInterface) *Auditor {
	return &Auditor{repo: repo}
}

// Record appends an audit entry for a mutation by the given actor.
func (a *Auditor) Record(actor *auth.Claims, companyID *uuid.UUID, action, entityType string, entityID uuid.UUID, before, after interface{}) {
	if a == nil || a.repo == nil {
		return
	}
	entry := &models.AuditLog{
		CompanyID:  companyID,
		ActorID:    actor.UserID,
		ActorEmail: actor.Email,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Before:     marshalSnapshot(before),
		After:      marshalSnapshot(after),
	}
	if err := a.repo.Append(entry); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"action": action,
			"entity": entityType,
		}).Error("failed to append audit entry")
	}
}

func marshalSnapshot(v interface{}) json.RawMessage {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}

// AuditService exposes tenant-scoped reads over the audit log
type AuditService struct {
	repo repository.AuditRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repository.AuditRepositoryInterface) *AuditService {
	return &AuditService{repo: repo}
}

// List retrieves audit entries for the tenant
func (s *AuditService) List(scope auth.TenantScope, entityType string, page, pageSize int) ([]models.AuditLog, int64, error) {
	limit, offset := paginate(page, pageSize)
	entries, total, err := s.repo.List(scope, entityType, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, total, nil
}

// paginate normalizes page inputs into limit/offset; defaults to page 1,
// page size 50, capped at 500.
func paginate(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	if pageSize > 500 {
		pageSize = 500
	}
	return pageSize, (page - 1) * pageSize
}

// notFoundOr maps gorm's record-not-found onto the domain error, wrapping
// anything else.
func notFoundOr(err error, domainErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr
	}
	return fmt.Errorf("database error: %w", err)
}
