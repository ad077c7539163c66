package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/openkraft/ngkit/internal/ctxlog"
	"github.com/openkraft/ngkit/internal/domain"
	"github.com/openkraft/ngkit/internal/domain/htmlfmt"
)

// MsgHTMLFormatting is the failure recorded for a template that is not
// formatted.
const MsgHTMLFormatting = "html formatting"

// FormatHTMLService formats Angular templates in place or lists the ones
// that need it.
type FormatHTMLService struct {
	walker domain.FileWalker
	files  domain.FileStore
	cfg    domain.ProjectConfig
	style  htmlfmt.Style
}

func NewFormatHTMLService(walker domain.FileWalker, files domain.FileStore, cfg domain.ProjectConfig) *FormatHTMLService {
	return &FormatHTMLService{walker: walker, files: files, cfg: cfg, style: htmlfmt.DefaultStyle()}
}

// Candidates returns files when given, otherwise every .html file under
// the app root.
func (s *FormatHTMLService) Candidates(files []string) ([]string, error) {
	if len(files) > 0 {
		return files, nil
	}
	var found []string
	err := s.walker.Walk(s.cfg.AppRoot, func(path string) {
		if strings.HasSuffix(path, ".html") {
			found = append(found, path)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", s.cfg.AppRoot, err)
	}
	return found, nil
}

// Check lists the candidate files whose formatted form differs from their
// contents. It never writes.
func (s *FormatHTMLService) Check(ctx context.Context, files []string) ([]domain.Failure, error) {
	candidates, err := s.Candidates(files)
	if err != nil {
		return nil, err
	}
	var failures []domain.Failure
	for _, path := range candidates {
		_, changed, err := s.format(path)
		if err != nil {
			return nil, err
		}
		ctxlog.FromContext(ctx).Debug("checked template", "path", path, "changed", changed)
		if changed {
			failures = append(failures, domain.Failure{Path: path, Message: MsgHTMLFormatting})
		}
	}
	return failures, nil
}

// Run validates opts, then either rewrites every differing file (fix) or
// reports each one as a failure (list).
func (s *FormatHTMLService) Run(ctx context.Context, opts domain.FormatHTMLOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if opts.List {
		failures, err := s.Check(ctx, opts.Files)
		if err != nil {
			return err
		}
		return domain.ReportFailures(failures)
	}

	candidates, err := s.Candidates(opts.Files)
	if err != nil {
		return err
	}
	for _, path := range candidates {
		formatted, changed, err := s.format(path)
		if err != nil {
			return err
		}
		if !changed {
			continue
		}
		if err := s.files.WriteFile(path, formatted); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

func (s *FormatHTMLService) format(path string) (string, bool, error) {
	contents, err := s.files.ReadFile(path)
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", path, err)
	}
	formatted := htmlfmt.Format(contents, s.style)
	return formatted, formatted != contents, nil
}
