package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"prdforge/internal/logging"
	"prdforge/internal/session"
)

// maxReferenceDocs caps how many reference documents get folded into the
// system prompt; more than this blows the context budget for no gain.
const maxReferenceDocs = 4

// ReadReferenceDocs loads up to maxReferenceDocs .docx files from dir, in
// lexical order, as context documents. A missing directory is not an
// error: sessions simply start without reference material.
func ReadReferenceDocs(dir string) ([]session.ContextDocument, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		logging.Get(logging.CategoryExtract).Info("reference dir %s absent, continuing without context docs", dir)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading reference dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".docx") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	if len(names) > maxReferenceDocs {
		names = names[:maxReferenceDocs]
	}

	docs := make([]session.ContextDocument, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		text, err := extractDocx(data)
		if err != nil {
			return nil, fmt.Errorf("extracting %s: %w", name, err)
		}
		docs = append(docs, session.ContextDocument{Name: name, Text: text})
	}

	logging.Get(logging.CategoryExtract).Info("loaded %d reference documents from %s", len(docs), dir)
	return docs, nil
}
