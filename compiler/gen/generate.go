package gen

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/dave/jennifer/jen"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/conjen/schema"
)

// Generator generates one file per definition with parallel execution.
// Definitions are independent: each task reads only the Registry and its
// own definition.
type Generator struct {
	cfg    *Config
	reg    *Registry
	mapper *Mapper
	writer *Writer

	target   MinimalTarget
	aliasGen AliasGenerator
}

// NewGenerator creates a new generator over a complete Registry.
// You must call WithTarget() before calling Generate().
//
// Example:
//
//	g := gen.NewGenerator(cfg, reg).WithTarget(golang.NewTarget())
//	report, err := g.Generate(ctx)
func NewGenerator(cfg *Config, reg *Registry) *Generator {
	return &Generator{
		cfg:    cfg,
		reg:    reg,
		mapper: NewMapper(cfg, reg),
		writer: NewWriter(cfg.Target),
	}
}

// WithTarget sets the target generator. Optional capabilities are detected
// via type assertion.
func (g *Generator) WithTarget(t MinimalTarget) *Generator {
	if t != nil {
		g.target = t
		if ag, ok := t.(AliasGenerator); ok {
			g.aliasGen = ag
		}
	}
	return g
}

// Report summarizes a generation run.
type Report struct {
	mu sync.Mutex
	// Files lists the written files, sorted.
	Files []string
	// Skipped lists definitions the target does not generate.
	Skipped []schema.TypeName
	// Failures holds one error per definition that could not be generated.
	Failures []error
}

// Err joins the per-definition failures.
func (r *Report) Err() error {
	return errors.Join(r.Failures...)
}

func (r *Report) addFile(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Files = append(r.Files, path)
}

func (r *Report) skip(n schema.TypeName) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Skipped = append(r.Skipped, n)
}

func (r *Report) fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Failures = append(r.Failures, err)
}

func (r *Report) sort() {
	slices.Sort(r.Files)
	slices.SortFunc(r.Skipped, compareNames)
	slices.SortFunc(r.Failures, func(a, b error) int {
		switch {
		case a.Error() < b.Error():
			return -1
		case a.Error() > b.Error():
			return 1
		}
		return 0
	})
}

// Generate generates all definitions. A definition that fails (for
// example on an unresolved reference) is recorded in the report and the
// run continues; the joined failures are returned at the end. Write errors
// and context cancellation abort the run.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	if g.target == nil {
		return nil, NewConfigError("Target", nil, "no target set: call WithTarget() before Generate()")
	}
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	log := g.cfg.log().With(zap.String("target", g.target.Name()))
	report := &Report{}

	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.cfg.Workers)
	for _, def := range g.reg.Definitions() {
		errg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return g.generate(log, def, report)
			}
		})
	}
	if err := errg.Wait(); err != nil {
		return report, err
	}

	report.sort()
	log.Info("generation finished",
		zap.Int("definitions", g.reg.Len()),
		zap.Int("files", len(report.Files)),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("failures", len(report.Failures)),
	)
	return report, report.Err()
}

func (g *Generator) generate(log *zap.Logger, def schema.TypeDefinition, report *Report) error {
	name := def.TypeName()
	f, err := g.render(def)
	if err != nil {
		log.Warn("definition not generated", zap.Stringer("type", name), zap.Error(err))
		report.fail(err)
		return nil
	}
	if f == nil {
		log.Debug("definition skipped", zap.Stringer("type", name), zap.Stringer("kind", def.Kind()))
		report.skip(name)
		return nil
	}
	path, err := g.writer.Write(f, g.cfg.PackageDir(name), FileName(name.Name))
	if err != nil {
		return NewGenerationError("write", path, "", err)
	}
	log.Debug("file written", zap.Stringer("type", name), zap.String("path", path))
	report.addFile(path)
	return nil
}

func (g *Generator) render(def schema.TypeDefinition) (*jen.File, error) {
	switch d := def.(type) {
	case *schema.ObjectDefinition:
		return g.target.GenObject(g, d)
	case *schema.EnumDefinition:
		return g.target.GenEnum(g, d)
	case *schema.AliasDefinition:
		if g.aliasGen == nil {
			return nil, nil
		}
		return g.aliasGen.GenAlias(g, d)
	default:
		return nil, nil
	}
}

// Metrics returns the writer metrics of the run.
func (g *Generator) Metrics() WriterMetrics {
	return g.writer.Metrics()
}

// =============================================================================
// GeneratorHelper interface implementation
// =============================================================================

// Config returns the codegen configuration.
func (g *Generator) Config() *Config {
	return g.cfg
}

// Registry returns the definitions of the run.
func (g *Generator) Registry() *Registry {
	return g.reg
}

// Mapper returns the type mapper.
func (g *Generator) Mapper() *Mapper {
	return g.mapper
}

// NewFile creates a new Jennifer file for the package of name with the
// header comment.
func (g *Generator) NewFile(name schema.TypeName) *jen.File {
	f := jen.NewFilePathName(g.cfg.PackagePath(name), g.cfg.PackageName(name))
	if g.cfg.Header != "" {
		f.HeaderComment(g.cfg.Header)
	}
	f.ImportName(RuntimePackage, "conjen")
	f.ImportName(uuidPkg, "uuid")
	f.ImportName("github.com/vmihailenco/msgpack/v5", "msgpack")
	return f
}

// FeatureEnabled reports if the given feature name is enabled.
func (g *Generator) FeatureEnabled(name string) bool {
	enabled, _ := g.cfg.FeatureEnabled(name)
	return enabled
}

// Logger returns the run logger.
func (g *Generator) Logger() *zap.Logger {
	return g.cfg.log()
}

// Verify Generator implements GeneratorHelper at compile time.
var _ GeneratorHelper = (*Generator)(nil)

// Generate is the convenience entry point: it builds the configuration and
// the registry, then runs target over defs.
func Generate(ctx context.Context, target MinimalTarget, defs []schema.TypeDefinition, opts ...Option) (*Report, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	reg, err := NewRegistry(defs...)
	if err != nil {
		return nil, err
	}
	return NewGenerator(cfg, reg).WithTarget(target).Generate(ctx)
}
