// Package auditsvc implements ports.AuditService: an append-only trail
// of successful API mutations (payment operations, refunds, connector
// and profile configuration changes), written both to the structured
// log and, when a repository is wired, to the audit_logs table.
package auditsvc

import (
	"context"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"

	"github.com/rs/zerolog"
)

// Service implements ports.AuditService.
type Service struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// New builds a Service. A nil repo keeps the trail log-only.
func New(repo ports.AuditRepository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

var _ ports.AuditService = (*Service)(nil)

// Log records an audit entry asynchronously (fire-and-forget): the
// mutation already succeeded, so a slow or failing audit write must
// not affect the response.
func (s *Service) Log(ctx context.Context, entry *domain.AuditEntry) {
	go func() {
		s.log.Info().
			Str("action", string(entry.Action)).
			Str("resource_type", entry.ResourceType).
			Str("resource_id", entry.ResourceID).
			Str("ip", entry.IPAddress).
			Msg("audit")

		if s.repo == nil {
			return
		}
		if err := s.repo.Create(context.Background(), entry); err != nil {
			s.log.Warn().Err(err).Str("action", string(entry.Action)).Msg("failed to persist audit entry")
		}
	}()
}
