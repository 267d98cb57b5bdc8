package generator

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mrz1836/dprpwg-gen/internal/fileutil"
	"github.com/mrz1836/dprpwg-gen/internal/metrics"
	generr "github.com/mrz1836/dprpwg-gen/pkg/errors"
)

// writePerm is the mode the output is created with before it is demoted
// to fileutil.ReadOnlyPerm.
const writePerm os.FileMode = 0o600

// Filesystem hooks, replaced in tests.
//
//nolint:gochecknoglobals // Swappable for tests
var (
	writeExclusiveFn = fileutil.WriteExclusive
	makeReadOnlyFn   = fileutil.MakeReadOnly
)

// Logger is the logging surface the generator needs.
type Logger interface {
	Debug(format string, args ...any)
	Error(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Error(string, ...any) {}

// Generator produces configuration headers from a template.
type Generator struct {
	bits   int
	logger Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithBits sets the width of every generated value.
func WithBits(bits int) Option {
	return func(g *Generator) {
		g.bits = bits
	}
}

// WithLogger sets the logger. Generated values are never logged.
func WithLogger(l Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a Generator drawing 32-bit values unless configured otherwise.
func New(opts ...Option) *Generator {
	g := &Generator{
		bits:   32,
		logger: nopLogger{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Result describes a completed generation.
type Result struct {
	Template    string   `json:"template"`
	Output      string   `json:"output"`
	Bits        int      `json:"bits"`
	Lines       int      `json:"lines"`
	Substituted int      `json:"substituted"`
	Variables   []string `json:"variables"`
}

// Generate writes a new header at outputPath from the template at
// templatePath and makes it owner read-only. An existing outputPath aborts
// the run before any entropy is drawn or the template is read.
func (g *Generator) Generate(templatePath, outputPath string) (res *Result, err error) {
	start := time.Now()
	defer func() { metrics.Global.RecordRun(time.Since(start), err) }()

	if fileutil.IsRegularFile(outputPath) {
		g.logger.Error("refusing to overwrite %s", outputPath)
		metrics.Global.RecordConflict()
		return nil, alreadyExists(outputPath, nil)
	}

	var buf bytes.Buffer
	stats, err := g.render(templatePath, &buf)
	if err != nil {
		return nil, err
	}

	if err := writeExclusiveFn(outputPath, buf.Bytes(), writePerm); err != nil {
		if generr.Is(err, fileutil.ErrExists) {
			metrics.Global.RecordConflict()
			return nil, alreadyExists(outputPath, err)
		}
		g.logger.Error("writing %s: %v", outputPath, err)
		return nil, generr.WithDetails(generr.WithCause(generr.ErrFileAccess, err),
			map[string]string{"path": outputPath})
	}
	g.logger.Debug("wrote %d bytes to %s", buf.Len(), outputPath)

	if err := makeReadOnlyFn(outputPath); err != nil {
		g.logger.Error("protecting %s: %v", outputPath, err)
		return nil, generr.WithSuggestion(
			generr.WithDetails(generr.WithCause(generr.ErrPermissionChange, err),
				map[string]string{"path": outputPath}),
			fmt.Sprintf("the header was written; run 'chmod 400 %s' manually", outputPath))
	}

	return g.result(templatePath, outputPath, stats), nil
}

// GenerateTo renders the template to w without touching the filesystem
// beyond reading the template. Used for standard output.
func (g *Generator) GenerateTo(templatePath string, w io.Writer) (res *Result, err error) {
	start := time.Now()
	defer func() { metrics.Global.RecordRun(time.Since(start), err) }()

	stats, err := g.render(templatePath, w)
	if err != nil {
		return nil, err
	}
	return g.result(templatePath, "-", stats), nil
}

func (g *Generator) render(templatePath string, w io.Writer) (Stats, error) {
	table, err := NewTable(g.bits)
	if err != nil {
		return Stats{}, generr.WithCause(generr.ErrEntropy, err)
	}
	metrics.Global.RecordEntropy(table.Len() * table.Bits() / 8)
	g.logger.Debug("drew %d values of %d bits", table.Len(), table.Bits())

	// #nosec G304 -- template path is chosen by the invoking user
	f, err := os.Open(templatePath)
	if err != nil {
		g.logger.Error("opening template %s: %v", templatePath, err)
		return Stats{}, generr.WithDetails(generr.WithCause(generr.ErrFileAccess, err),
			map[string]string{"path": templatePath})
	}
	defer func() { _ = f.Close() }()

	stats, err := Substitute(f, w, table)
	if err != nil {
		g.logger.Error("substituting %s: %v", templatePath, err)
		return stats, generr.WithDetails(generr.WithCause(generr.ErrFileAccess, err),
			map[string]string{"path": templatePath})
	}
	metrics.Global.RecordLines(stats.Lines, stats.Substituted)
	g.logger.Debug("substituted %d of %d lines from %s", stats.Substituted, stats.Lines, templatePath)

	return stats, nil
}

func (g *Generator) result(templatePath, outputPath string, stats Stats) *Result {
	names := make([]string, len(stats.Variables))
	for i, v := range stats.Variables {
		names[i] = v.String()
	}
	return &Result{
		Template:    templatePath,
		Output:      outputPath,
		Bits:        g.bits,
		Lines:       stats.Lines,
		Substituted: stats.Substituted,
		Variables:   names,
	}
}

func alreadyExists(path string, cause error) error {
	err := generr.WithCause(generr.ErrAlreadyExists, cause)
	err = generr.WithDetails(err, map[string]string{"path": path})
	return generr.WithSuggestion(err, "each run draws new secrets; choose a new output path or remove the old header first")
}
