// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

package runner

import (
	"errors"
	"fmt"
	"time"

	"github.com/babel-tcc/translations-validator/check"
	"github.com/babel-tcc/translations-validator/config"
	"github.com/babel-tcc/translations-validator/dataset"
	"github.com/babel-tcc/translations-validator/metrics"

	"github.com/mattermost/mattermost/server/public/shared/mlog"
)

// ErrValidationFailed is returned by callers when a run produced findings.
var ErrValidationFailed = errors.New("validation failed")

const (
	StageSyntax       = "syntax"
	StageSchema       = "schema"
	StageCompleteness = "completeness"
	StageUniqueness   = "uniqueness"
)

// StageCount is the number of stages of a full run.
const StageCount = 4

// StageResult is the outcome of one validation stage.
type StageResult struct {
	// Number is the 1-based position of the stage in the run.
	Number   int
	ID       string
	Title    string
	Findings []check.Finding
	// Summary describes a passing stage.
	Summary  string
	Duration time.Duration
}

func (s StageResult) Passed() bool {
	return len(s.Findings) == 0
}

// Result is the outcome of a validation run.
type Result struct {
	Stages []StageResult
	// Aborted is set when syntax errors prevented the remaining stages.
	Aborted bool
}

// Total returns the number of findings across all stages that ran.
func (r *Result) Total() int {
	total := 0
	for _, s := range r.Stages {
		total += len(s.Findings)
	}
	return total
}

// Failed reports whether the run found any problem.
func (r *Result) Failed() bool {
	return r.Aborted || r.Total() > 0
}

// Reporter receives the progress of a run as it happens.
type Reporter interface {
	Start()
	Stage(res StageResult)
	Abort()
	Finish(res *Result)
}

// Runner validates a single dataset root.
type Runner struct {
	root     string
	cfg      *config.Config
	reporter Reporter
	metrics  *metrics.Metrics
}

// New returns a Runner for the dataset at root. m may be nil.
func New(root string, cfg *config.Config, reporter Reporter, m *metrics.Metrics) *Runner {
	return &Runner{
		root:     root,
		cfg:      cfg,
		reporter: reporter,
		metrics:  m,
	}
}

// Run executes the syntax, schema, completeness and uniqueness stages in
// order. Syntax errors stop the run before the schema stage. Errors are
// only returned for failures to read the dataset, never for findings.
func (r *Runner) Run() (*Result, error) {
	tree, err := dataset.Discover(r.root, r.cfg.Layout)
	if err != nil {
		return nil, fmt.Errorf("failed to discover dataset files: %w", err)
	}

	mlog.Debug("Dataset discovered",
		mlog.String("root", tree.Root),
		mlog.Int("documents", len(tree.Documents)),
		mlog.Int("keyword_bases", len(tree.KeywordBases)),
		mlog.Int("translations", len(tree.Translations)))

	if r.metrics != nil {
		r.metrics.ObserveFiles("document", len(tree.Documents))
		r.metrics.ObserveFiles("keyword_base", len(tree.KeywordBases))
		r.metrics.ObserveFiles("translation", len(tree.Translations))
	}

	res := &Result{}
	r.reporter.Start()

	syntax, err := r.stage(res, 1, StageSyntax, "Validacao de sintaxe JSON",
		fmt.Sprintf("%d ficheiros JSON validos", len(tree.Documents)),
		func() ([]check.Finding, error) {
			return check.Syntax(tree)
		})
	if err != nil {
		return nil, err
	}

	if !syntax.Passed() {
		res.Aborted = true
		r.reporter.Abort()
		r.observeResult(res)
		return res, nil
	}

	bases, err := tree.LoadKeywordBases()
	if err != nil {
		return nil, err
	}
	translations, err := tree.LoadTranslations()
	if err != nil {
		return nil, err
	}

	stages := []struct {
		id      string
		title   string
		summary string
		run     func() []check.Finding
	}{
		{
			id:      StageSchema,
			title:   "Validacao de schema",
			summary: "todos os ficheiros cumprem os schemas",
			run: func() []check.Finding {
				return check.Schema(bases, translations, r.cfg.Schema)
			},
		},
		{
			id:      StageCompleteness,
			title:   "Validacao de completude",
			summary: "todas as traducoes cobrem todos os IDs",
			run: func() []check.Finding {
				return check.Completeness(bases, translations)
			},
		},
		{
			id:      StageUniqueness,
			title:   "Validacao de unicidade",
			summary: "sem traducoes duplicadas",
			run: func() []check.Finding {
				return check.Uniqueness(translations)
			},
		},
	}

	for i, s := range stages {
		run := s.run
		if _, err := r.stage(res, i+2, s.id, s.title, s.summary, func() ([]check.Finding, error) {
			return run(), nil
		}); err != nil {
			return nil, err
		}
	}

	r.reporter.Finish(res)
	r.observeResult(res)
	return res, nil
}

func (r *Runner) stage(res *Result, number int, id, title, summary string, fn func() ([]check.Finding, error)) (StageResult, error) {
	start := time.Now()
	findings, err := fn()
	if err != nil {
		return StageResult{}, fmt.Errorf("%s stage failed: %w", id, err)
	}

	sr := StageResult{
		Number:   number,
		ID:       id,
		Title:    title,
		Findings: findings,
		Summary:  summary,
		Duration: time.Since(start),
	}
	res.Stages = append(res.Stages, sr)

	mlog.Debug("Stage finished",
		mlog.String("stage", id),
		mlog.Int("findings", len(findings)),
		mlog.Duration("duration", sr.Duration))

	if r.metrics != nil {
		r.metrics.ObserveStage(id, len(findings), sr.Duration)
	}

	r.reporter.Stage(sr)
	return sr, nil
}

func (r *Runner) observeResult(res *Result) {
	if r.metrics != nil {
		r.metrics.ObserveResult(!res.Failed())
	}
}
