package gallery

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/becked/pinacotheca/internal/manifest"
)

//go:embed gallery.html.tmpl
var pageTemplate string

var page = template.Must(template.New("gallery").Parse(pageTemplate))

// navEntry is one category in the sidebar.
type navEntry struct {
	ID    string
	Label string
	Icon  string
	Count int
}

// pageData is the template payload. Sprite records are not inlined; the
// page script loads manifest.json and drives the grid from it.
type pageData struct {
	Title      string
	Total      int
	Categories []navEntry
}

// Renderer writes the static gallery page into an output tree.
type Renderer struct {
	Root   string // output root, alongside manifest.json and sprites/
	Title  string
	Logger *log.Logger
}

// Render writes index.html for the given manifest. The page restores its
// filter state from the query string and keeps it synchronized as the
// user searches and browses.
func (r *Renderer) Render(m *manifest.Manifest) error {
	logger := r.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	title := r.Title
	if title == "" {
		title = "Sprite Gallery"
	}

	data := pageData{Title: title, Total: m.Total}
	for id, cat := range m.Categories {
		data.Categories = append(data.Categories, navEntry{
			ID:    id,
			Label: cat.Label,
			Icon:  cat.Icon,
			Count: cat.Count,
		})
	}
	sort.Slice(data.Categories, func(i, j int) bool {
		return data.Categories[i].ID < data.Categories[j].ID
	})

	path := filepath.Join(r.Root, "index.html")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create gallery page: %w", err)
	}
	if err := page.Execute(f, data); err != nil {
		f.Close()
		return fmt.Errorf("failed to render gallery page: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("Gallery generated", "path", path, "sprites", m.Total)
	return nil
}
