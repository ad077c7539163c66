package application_test

import (
	"context"
	"errors"
	"sort"

	"github.com/openkraft/ngkit/internal/domain"
)

// fakeRunner records every command and answers with scripted exit codes.
// codes[command] is consumed one per call; the last code repeats.
type fakeRunner struct {
	commands []string
	opts     []domain.RunOptions
	codes    map[string][]int
	stdout   map[string]string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{codes: map[string][]int{}, stdout: map[string]string{}}
}

func (r *fakeRunner) Run(_ context.Context, command string, opts domain.RunOptions) (domain.ExecResult, error) {
	r.commands = append(r.commands, command)
	r.opts = append(r.opts, opts)

	code := 0
	if seq := r.codes[command]; len(seq) > 0 {
		code = seq[0]
		if len(seq) > 1 {
			r.codes[command] = seq[1:]
		}
	}
	res := domain.ExecResult{Code: code}
	if opts.Capture {
		res.Stdout = r.stdout[command]
	}
	if opts.FailFast && code != 0 {
		return res, &domain.CommandError{Command: command, Code: code}
	}
	return res, nil
}

func (r *fakeRunner) count(command string) int {
	n := 0
	for _, c := range r.commands {
		if c == command {
			n++
		}
	}
	return n
}

type fakeGit struct {
	files []string
	err   error
}

func (g *fakeGit) IsGitRepo(string) bool { return true }

func (g *fakeGit) LastCommitFiles(string) ([]string, error) { return g.files, g.err }

// memStore is an in-memory domain.FileStore and domain.DirCleaner.
type memStore struct {
	files    map[string]string
	written  []string
	cleaned  []string
	cleanErr error
}

func newMemStore(files map[string]string) *memStore {
	if files == nil {
		files = map[string]string{}
	}
	return &memStore{files: files}
}

func (m *memStore) ReadFile(path string) (string, error) {
	s, ok := m.files[path]
	if !ok {
		return "", errors.New("no such file: " + path)
	}
	return s, nil
}

func (m *memStore) WriteFile(path, contents string) error {
	m.files[path] = contents
	m.written = append(m.written, path)
	return nil
}

func (m *memStore) Exists(path string) bool {
	_, ok := m.files[path]
	return ok
}

func (m *memStore) Clean(dir string) error {
	if m.cleanErr != nil {
		return m.cleanErr
	}
	m.cleaned = append(m.cleaned, dir)
	return nil
}

// sliceWalker visits the memStore's paths in sorted order.
type sliceWalker struct {
	store *memStore
	roots []string
}

func (w *sliceWalker) Walk(root string, visit func(string)) error {
	w.roots = append(w.roots, root)
	paths := make([]string, 0, len(w.store.files))
	for p := range w.store.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		visit(p)
	}
	return nil
}

func stepNames(steps []domain.Step) []string {
	names := make([]string, len(steps))
	for i, st := range steps {
		names[i] = st.Name
	}
	return names
}
