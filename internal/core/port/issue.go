package port

import (
	"context"
	"slackcmd/internal/core/domain"
)

type IssueCreator interface {
	// CreateIssue files a new issue and returns its browse URL.
	CreateIssue(ctx context.Context, issue domain.Issue) (string, error)
}
