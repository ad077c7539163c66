package application

import (
	"context"
	"fmt"

	"github.com/openkraft/ngkit/internal/ctxlog"
	"github.com/openkraft/ngkit/internal/domain"
	"github.com/openkraft/ngkit/internal/domain/prelint"
)

// PrelintExcludes are skipped when prelint walks the project itself.
var PrelintExcludes = []string{"dist", "coverage", ".git"}

// PrelintService rejects empty files and files with leading whitespace.
type PrelintService struct {
	walker domain.FileWalker
	files  domain.FileStore
	cfg    domain.ProjectConfig
	root   string
}

// NewPrelintService creates a PrelintService. walker should exclude
// PrelintExcludes.
func NewPrelintService(walker domain.FileWalker, files domain.FileStore, cfg domain.ProjectConfig) *PrelintService {
	return &PrelintService{walker: walker, files: files, cfg: cfg, root: "."}
}

// Scan checks files, or every file of the project when none are given,
// and returns all failures in order.
func (s *PrelintService) Scan(ctx context.Context, files []string) ([]domain.Failure, error) {
	candidates := files
	if len(candidates) == 0 {
		if err := s.walker.Walk(s.root, func(path string) {
			candidates = append(candidates, path)
		}); err != nil {
			return nil, fmt.Errorf("walking project: %w", err)
		}
	}
	ctxlog.FromContext(ctx).Debug("prelint", "files", len(candidates))

	var failures []domain.Failure
	for _, path := range candidates {
		contents, err := s.files.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		failures = append(failures, prelint.Check(path, contents, s.cfg.Placeholder)...)
	}
	return failures, nil
}

// Run scans and turns any failure into a *domain.FailuresError.
func (s *PrelintService) Run(ctx context.Context, opts domain.PrelintOptions) error {
	failures, err := s.Scan(ctx, opts.Files)
	if err != nil {
		return err
	}
	return domain.ReportFailures(failures)
}
