package patch

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/EchoTools/textpatch/pkg/snapshot"
	"github.com/EchoTools/textpatch/pkg/textfile"
)

// ErrUnmatched is returned in strict mode when a rule finds nothing to replace.
var ErrUnmatched = errors.New("rules did not match")

// Store is the file access a Patcher needs.
type Store interface {
	Read(ctx context.Context, path string) (string, os.FileMode, error)
	Write(ctx context.Context, path, text string, mode os.FileMode) error
	WriteBytes(ctx context.Context, path string, data []byte, mode os.FileMode) error
}

// Result describes one PatchFile run.
type Result struct {
	Path    string
	Report  Report
	Changed bool
	Backup  string // Snapshot path, empty when none was written
}

// Patcher rewrites a file in place using a rule set.
type Patcher struct {
	rules  RuleSet
	store  Store
	logger *zap.Logger
	strict bool
	dryRun bool
	backup bool
}

// Option configures a Patcher.
type Option func(*Patcher)

// WithRules sets the rules to apply.
func WithRules(rules RuleSet) Option {
	return func(p *Patcher) {
		p.rules = rules
	}
}

// WithStore sets the file store.
func WithStore(s Store) Option {
	return func(p *Patcher) {
		p.store = s
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Patcher) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithStrict makes any unmatched rule an error. Nothing is written in that case.
func WithStrict(strict bool) Option {
	return func(p *Patcher) {
		p.strict = strict
	}
}

// WithDryRun computes the result without writing anything.
func WithDryRun(dryRun bool) Option {
	return func(p *Patcher) {
		p.dryRun = dryRun
	}
}

// WithBackup writes a snapshot of the original content next to the target
// before overwriting it.
func WithBackup(backup bool) Option {
	return func(p *Patcher) {
		p.backup = backup
	}
}

// New creates a Patcher. Rules must be valid.
func New(opts ...Option) (*Patcher, error) {
	p := &Patcher{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.store == nil {
		p.store = textfile.NewStore()
	}
	if err := p.rules.Validate(); err != nil {
		return nil, fmt.Errorf("validate rules: %w", err)
	}
	return p, nil
}

// Rules returns the rule set in use.
func (p *Patcher) Rules() RuleSet {
	return p.rules
}

// PatchFile loads path, applies the rules and writes the result back over it.
func (p *Patcher) PatchFile(ctx context.Context, path string) (Result, error) {
	res := Result{Path: path}

	original, mode, err := p.store.Read(ctx, path)
	if err != nil {
		return res, fmt.Errorf("load target: %w", err)
	}
	p.logger.Debug("Loaded target", zap.String("path", path), zap.Int("bytes", len(original)))

	patched, report := Apply(original, p.rules)
	res.Report = report
	res.Changed = patched != original

	for _, r := range report {
		p.logger.Info("Rule applied", zap.String("rule", r.Name), zap.Int("matches", r.Matches))
	}

	if p.strict {
		if missing := report.Unmatched(); len(missing) > 0 {
			return res, fmt.Errorf("%w: %v", ErrUnmatched, missing)
		}
	}

	if p.dryRun {
		p.logger.Debug("Dry run, not writing", zap.String("path", path))
		return res, nil
	}

	if p.backup {
		snap, err := snapshot.Encode([]byte(original))
		if err != nil {
			return res, fmt.Errorf("encode snapshot: %w", err)
		}
		backupPath := snapshot.PathFor(path)
		if err := p.store.WriteBytes(ctx, backupPath, snap, mode); err != nil {
			return res, fmt.Errorf("write snapshot: %w", err)
		}
		res.Backup = backupPath
		p.logger.Debug("Wrote snapshot", zap.String("path", backupPath), zap.Int("bytes", len(snap)))
	}

	if err := p.store.Write(ctx, path, patched, mode); err != nil {
		return res, fmt.Errorf("write target: %w", err)
	}
	p.logger.Debug("Wrote target", zap.String("path", path), zap.Bool("changed", res.Changed))

	return res, nil
}
