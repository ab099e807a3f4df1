package pipeline

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/chenryang/LaTeX-merge/internal/config"
	"github.com/chenryang/LaTeX-merge/internal/fileset"
	"github.com/chenryang/LaTeX-merge/internal/graphics"
	"github.com/chenryang/LaTeX-merge/internal/project"
	"github.com/chenryang/LaTeX-merge/internal/tex"
)

// Flattener runs the full flattening pipeline for one document.
type Flattener struct {
	cfg config.Config
	log *slog.Logger
}

func NewFlattener(cfg config.Config, log *slog.Logger) *Flattener {
	return &Flattener{cfg: cfg, log: log}
}

// Result tracks what a run produced and removed.
type Result struct {
	ReferencedPDFs int
	TexDeleted     int
	TexKept        int
	PDFsDeleted    int
	PDFsKept       int
}

// Run executes the pipeline: read, strip, expand, normalize, scan, write,
// then the optional cleanup passes. Cleanup only runs after a successful
// write.
func (f *Flattener) Run() (Result, error) {
	log := f.log.With("input", f.cfg.InputPath)

	// Phase 1: Read and strip the main document.
	log.Info("reading main file")
	data, err := os.ReadFile(f.cfg.InputPath)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", f.cfg.InputPath, err)
	}
	content := tex.StripComments(string(data))

	// Phase 2: Expand \input and \include directives recursively.
	log.Info("expanding include directives")
	content, err = tex.NewExpander(f.log).Expand(content, f.cfg.ProjectRoot)
	if err != nil {
		return Result{}, err
	}

	// Phase 3: Collapse runs of blank lines.
	log.Info("collapsing blank lines")
	content = tex.CollapseBlankLines(content)

	// Phase 4: Identify the PDF files the expanded document references.
	resolver := graphics.Resolver{Root: f.cfg.ProjectRoot}
	used := resolver.ResolveAll(graphics.Scan(content))
	log.Info("identified referenced PDF files", "count", len(used))

	if f.cfg.CheckPDFs {
		f.inspectPDFs(used)
	}

	// Phase 5: Write the flattened document.
	if err := os.MkdirAll(filepath.Dir(f.cfg.OutputPath), 0o755); err != nil {
		return Result{}, fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(f.cfg.OutputPath, []byte(content), 0o644); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", f.cfg.OutputPath, err)
	}
	log.Info("wrote flattened document", "output", f.cfg.OutputPath, "bytes", len(content))

	// Phase 6: Cleanup passes, each behind its own flag.
	res := Result{ReferencedPDFs: len(used)}
	if f.cfg.DeleteTex {
		res.TexDeleted, res.TexKept = project.DeleteTexFiles(f.cfg.TexRoot, f.cfg.OutputPath, f.log)
		log.Info("tex cleanup complete", "deleted", res.TexDeleted, "kept", res.TexKept)
	}
	if f.cfg.DeleteUnusedPDFs {
		res.PDFsDeleted, res.PDFsKept = project.DeleteUnusedPDFs(f.cfg.ProjectRoot, used, f.log)
		log.Info("pdf cleanup complete", "deleted", res.PDFsDeleted, "kept", res.PDFsKept)
	}
	if !f.cfg.DeleteTex && !f.cfg.DeleteUnusedPDFs {
		log.Info("no files deleted (use --delete-tex or --delete-unused-pdf to enable deletion)")
	}

	return res, nil
}

// inspectPDFs opens every referenced PDF and reports its page count.
// Unreadable files are warnings, never fatal.
func (f *Flattener) inspectPDFs(used fileset.Set) {
	for _, path := range used.Sorted() {
		pages, err := graphics.Inspect(path)
		if err != nil {
			f.log.Warn("cannot inspect PDF", "path", path, "error", err)
			continue
		}
		f.log.Info("inspected PDF", "path", path, "pages", pages)
	}
}
