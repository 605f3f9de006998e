package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mholloway/ptr-tracker/gen/ent"
	"github.com/mholloway/ptr-tracker/gen/ent/parseissue"
	"github.com/mholloway/ptr-tracker/internal/entity"
)

type IssueRepository interface {
	// SaveAll appends issues. Existing rows are never updated or deleted.
	SaveAll(ctx context.Context, issues []entity.ParseIssue) error
	ListByDocID(ctx context.Context, docID string) ([]*entity.ParseIssue, error)
}

type issueRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewIssueRepository(client *ent.Client, logger *slog.Logger) IssueRepository {
	return &issueRepository{client: client, logger: logger}
}

func (r *issueRepository) SaveAll(ctx context.Context, issues []entity.ParseIssue) error {
	if len(issues) == 0 {
		return nil
	}
	builders := make([]*ent.ParseIssueCreate, len(issues))
	for i := range issues {
		iss := &issues[i]
		b := r.client.ParseIssue.Create().
			SetDocID(iss.DocID).
			SetSeverity(string(iss.Severity)).
			SetCategory(string(iss.Category)).
			SetMessage(iss.Message).
			SetDetails(iss.Details).
			SetLocation(iss.Location)
		if !iss.CreatedAt.IsZero() {
			b = b.SetCreatedAt(iss.CreatedAt)
		}
		builders[i] = b
	}
	if err := r.client.ParseIssue.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("save parse issues: %w", err)
	}
	r.logger.Debug("repository.issues.saved", "count", len(issues))
	return nil
}

func (r *issueRepository) ListByDocID(ctx context.Context, docID string) ([]*entity.ParseIssue, error) {
	recs, err := r.client.ParseIssue.Query().
		Where(parseissue.DocID(docID)).
		Order(ent.Asc(parseissue.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list parse issues for %s: %w", docID, err)
	}

	result := make([]*entity.ParseIssue, len(recs))
	for i, rec := range recs {
		result[i] = toParseIssue(rec)
	}
	return result, nil
}
