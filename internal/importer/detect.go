package importer

import (
	"fmt"
	"os"

	"github.com/veldrin/notable2zim/internal/models"
)

// detect decides what to do with a note: no managed page → create; note
// newer than the page → update; otherwise skip. Both sides are compared in
// UTC so daylight-saving transitions cannot flip the comparison.
//
// The note side is its metadata modified time, falling back to the source
// file's mtime; the page side is the page file's mtime (the recorded state
// of the last import).
func (im *Importer) detect(note *models.Note, pageRel string) (models.Action, error) {
	info, err := im.store.Stat(pageRel)
	if os.IsNotExist(err) {
		return models.ActionCreate, nil
	}
	if err != nil {
		return models.ActionSkip, fmt.Errorf("stat page %s: %w", pageRel, err)
	}

	if note.ModifiedAt().UTC().After(info.ModTime().UTC()) {
		return models.ActionUpdate, nil
	}
	return models.ActionSkip, nil
}
