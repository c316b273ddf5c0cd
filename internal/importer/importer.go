// Package importer drives the note import pipeline: parse, detect change,
// convert, repair, write the managed page, and maintain journal backlinks.
package importer

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/veldrin/notable2zim/internal/convert"
	"github.com/veldrin/notable2zim/internal/ledger"
	"github.com/veldrin/notable2zim/internal/localtime"
	"github.com/veldrin/notable2zim/internal/models"
	"github.com/veldrin/notable2zim/internal/parser"
	"github.com/veldrin/notable2zim/internal/slug"
	"github.com/veldrin/notable2zim/internal/storage"
	"github.com/veldrin/notable2zim/internal/zim"
)

// Config wires an Importer.
type Config struct {
	Logger     *slog.Logger
	SourceDir  string // absolute path of the Notable notes directory
	Recursive  bool
	NotesDir   string // notebook-relative managed page directory
	Store      storage.Provider
	Ledger     *ledger.DB
	Converter  convert.Converter
	Normalizer *localtime.Normalizer
	Journal    *zim.Journal
	DryRun     bool
}

// Importer processes every candidate note sequentially, isolating per-note
// failures so one bad note never aborts the batch.
type Importer struct {
	log     *slog.Logger
	source  string
	recurse bool
	notes   string
	ns      string
	store   storage.Provider
	reg     *ledger.DB
	conv    convert.Converter
	norm    *localtime.Normalizer
	journal *zim.Journal
	dryRun  bool
}

// New builds an Importer from cfg.
func New(cfg Config) *Importer {
	return &Importer{
		log:     cfg.Logger,
		source:  cfg.SourceDir,
		recurse: cfg.Recursive,
		notes:   cfg.NotesDir,
		ns:      zim.Namespace(cfg.NotesDir),
		store:   cfg.Store,
		reg:     cfg.Ledger,
		conv:    cfg.Converter,
		norm:    cfg.Normalizer,
		journal: cfg.Journal,
		dryRun:  cfg.DryRun,
	}
}

// Run imports the whole source directory once and returns the per-outcome
// counts. Per-note failures are counted, not returned; the error is
// non-nil only for batch-level problems (unreadable source dir,
// cancellation between notes).
func (im *Importer) Run(ctx context.Context) (models.Summary, error) {
	var sum models.Summary

	files, err := im.collectFiles()
	if err != nil {
		return sum, err
	}
	if len(files) == 0 {
		im.log.Warn("no markdown files found", slog.String("source", im.source))
		return sum, nil
	}

	notes, failed := im.loadNotes(files)
	sum.Total = len(files)
	sum.Failed = failed

	// Chronological processing keeps journal link lists in created order.
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].CreatedAt().Before(notes[j].CreatedAt())
	})

	alloc, err := im.buildAllocator()
	if err != nil {
		return sum, err
	}

	if !im.dryRun {
		if err := im.ensureRootPage(); err != nil {
			im.log.Warn("root page creation failed", slog.String("error", err.Error()))
		}
	}

	for i, note := range notes {
		if err := ctx.Err(); err != nil {
			im.log.Info("run cancelled, stopping before next note",
				slog.Int("processed", i), slog.Int("total", len(notes)))
			return sum, err
		}

		im.log.Info("processing note",
			slog.Int("index", i+1),
			slog.Int("total", len(notes)),
			slog.String("path", note.Path))

		action, err := im.processNote(ctx, alloc, note)
		switch {
		case err != nil:
			sum.Failed++
			im.log.Error("note failed",
				slog.String("path", note.Path),
				slog.String("error", err.Error()))
		case action == models.ActionCreate:
			sum.Imported++
		case action == models.ActionUpdate:
			sum.Updated++
		default:
			sum.Skipped++
		}
	}

	im.log.Info("import finished",
		slog.Bool("dry_run", im.dryRun),
		slog.Int("total", sum.Total),
		slog.Int("imported", sum.Imported),
		slog.Int("updated", sum.Updated),
		slog.Int("skipped", sum.Skipped),
		slog.Int("failed", sum.Failed))
	return sum, nil
}

// processNote runs the pipeline for one note and returns the action taken.
func (im *Importer) processNote(ctx context.Context, alloc *slug.Allocator, note *models.Note) (models.Action, error) {
	if strings.TrimSpace(note.Body) == "" {
		return models.ActionSkip, fmt.Errorf("empty body after front matter")
	}

	title := note.ResolvedTitle()
	pageSlug := alloc.Allocate(note.Path, title)
	pageRel := path.Join(im.notes, pageSlug+".txt")

	action, err := im.detect(note, pageRel)
	if err != nil {
		return models.ActionSkip, err
	}
	if action == models.ActionSkip {
		im.log.Debug("note unchanged, skipping",
			slog.String("path", note.Path),
			slog.String("page", pageRel))
		return action, nil
	}

	if im.dryRun {
		im.log.Info("dry run: would write page",
			slog.String("action", action.String()),
			slog.String("page", pageRel),
			slog.String("slug", pageSlug))
		return action, nil
	}

	converted, err := im.conv.Convert(ctx, note.Body)
	if err != nil {
		return action, err
	}
	body := convert.RemoveDuplicateHeading(converted, title, pageSlug)

	spec := zim.PageSpec{
		Title:     title,
		Created:   im.norm.ToLocal(note.CreatedAt()),
		Modified:  im.norm.ToLocal(note.ModifiedAt()),
		Body:      body,
		Tags:      note.Meta.Tags,
		JournalNS: im.journalNS(),
	}
	if err := im.store.Write(pageRel, []byte(spec.Render())); err != nil {
		return action, err
	}
	if err := im.reg.Record(note.Path, pageSlug, title, time.Now()); err != nil {
		// The page is written; losing the record only costs slug
		// adoption on the next run.
		im.log.Warn("ledger record failed",
			slog.String("path", note.Path),
			slog.String("error", err.Error()))
	}

	if err := im.addJournalLinks(note, pageSlug, title, action); err != nil {
		return action, err
	}

	im.log.Info("page written",
		slog.String("action", action.String()),
		slog.String("page", pageRel),
		slog.String("title", title))
	return action, nil
}

// addJournalLinks maintains the per-date backlinks. A fresh import links
// the creation day, plus the modification day when it differs; an update
// links the modification day.
func (im *Importer) addJournalLinks(note *models.Note, pageSlug, title string, action models.Action) error {
	if action == models.ActionCreate {
		if _, err := im.journal.AddLink(note.CreatedAt(), im.ns, pageSlug, title, models.EventCreated); err != nil {
			return err
		}
		if !im.norm.SameLocalDay(note.CreatedAt(), note.ModifiedAt()) {
			if _, err := im.journal.AddLink(note.ModifiedAt(), im.ns, pageSlug, title, models.EventUpdated); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := im.journal.AddLink(note.ModifiedAt(), im.ns, pageSlug, title, models.EventUpdated)
	return err
}

// collectFiles lists candidate .md files, recursively when configured.
func (im *Importer) collectFiles() ([]string, error) {
	var out []string
	if im.recurse {
		err := filepath.WalkDir(im.source, func(p string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), ".md") {
				out = append(out, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("importer: walk source: %w", err)
		}
		return out, nil
	}

	entries, err := os.ReadDir(im.source)
	if err != nil {
		return nil, fmt.Errorf("importer: read source: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			out = append(out, filepath.Join(im.source, e.Name()))
		}
	}
	return out, nil
}

// loadNotes reads and parses every file, logging and counting per-file
// failures without stopping the batch.
func (im *Importer) loadNotes(files []string) ([]*models.Note, int) {
	notes := make([]*models.Note, 0, len(files))
	failed := 0

	for _, p := range files {
		data, err := os.ReadFile(p)
		if err != nil {
			failed++
			im.log.Error("read failed", slog.String("path", p), slog.String("error", err.Error()))
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			failed++
			im.log.Error("stat failed", slog.String("path", p), slog.String("error", err.Error()))
			continue
		}

		meta, body, parseErr := parser.Parse(data)
		if parseErr != nil {
			im.log.Warn("malformed front matter, using empty metadata",
				slog.String("path", p),
				slog.String("error", parseErr.Error()))
		}

		base := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		notes = append(notes, &models.Note{
			Path:        p,
			Base:        base,
			Body:        body,
			Meta:        meta,
			FileModTime: info.ModTime().UTC(),
		})
	}
	return notes, failed
}

// buildAllocator seeds slug ownership from the ledger, then marks pages
// found on disk without a record as adoptable.
func (im *Importer) buildAllocator() (*slug.Allocator, error) {
	owners, err := im.reg.Owners()
	if err != nil {
		return nil, err
	}
	pages, err := im.store.ListPages(im.notes)
	if err != nil {
		return nil, err
	}
	for _, p := range pages {
		if _, ok := owners[p]; !ok {
			owners[p] = ""
		}
	}
	return slug.NewAllocator(owners), nil
}

// ensureRootPage creates the managed subtree's index page once, so Zim
// lists the imported notes under a proper parent.
func (im *Importer) ensureRootPage() error {
	rel := im.notes + ".txt"
	exists, err := im.store.Exists(rel)
	if err != nil || exists {
		return err
	}
	header := zim.Header(zim.HumanizeTitle(path.Base(im.notes)), time.Now().In(im.norm.Location()))
	return im.store.Write(rel, []byte(header))
}

// journalNS returns the namespace the page writer links journal days
// under.
func (im *Importer) journalNS() string {
	return zim.Namespace(im.journal.Root())
}
