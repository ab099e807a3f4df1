package project

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/chenryang/LaTeX-merge/internal/fileset"
)

// DeleteTexFiles removes every .tex file under root except keep (the
// generated output file). Individual failures are logged and skipped; the
// pass always runs to completion.
func DeleteTexFiles(root, keep string, log *slog.Logger) (deleted, kept int) {
	files, err := FindFiles(root, ".tex")
	if err != nil {
		log.Error("cannot enumerate .tex files", "root", root, "error", err)
		return 0, 0
	}

	for _, path := range files {
		if path == keep {
			kept++
			continue
		}
		if err := removeFile(path); err != nil {
			log.Warn("cannot delete", "path", relTo(root, path), "error", err)
			continue
		}
		log.Info("deleted", "path", relTo(root, path))
		deleted++
	}
	return deleted, kept
}

// DeleteUnusedPDFs removes every .pdf file under root that is not in used.
// Returns how many files were deleted and how many were kept as used.
func DeleteUnusedPDFs(root string, used fileset.Set, log *slog.Logger) (deleted, kept int) {
	files, err := FindFiles(root, ".pdf")
	if err != nil {
		log.Error("cannot enumerate .pdf files", "root", root, "error", err)
		return 0, 0
	}

	all := fileset.New(files...)
	unused := all.Diff(used)
	kept = len(all) - len(unused)

	if len(unused) == 0 {
		log.Info("no unused PDF files found")
		return 0, kept
	}

	for _, path := range unused.Sorted() {
		if err := removeFile(path); err != nil {
			log.Warn("cannot delete", "path", relTo(root, path), "error", err)
			continue
		}
		log.Info("deleted unused PDF", "path", relTo(root, path))
		deleted++
	}
	return deleted, kept
}

// removeFile deletes a single file. Directories whose names match a file
// pattern are never removed, not even empty ones; symlinks are unlinked
// without following them.
func removeFile(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return os.Remove(path)
}

// relTo shortens path for log output; reporting falls back to the absolute
// path when it cannot be made relative.
func relTo(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
