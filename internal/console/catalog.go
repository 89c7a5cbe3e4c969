package console

import (
	"log/slog"
	"sync"

	"github.com/vogue360/studio/internal/editor"
	"github.com/vogue360/studio/internal/model"
	"github.com/vogue360/studio/internal/notify"
	"github.com/vogue360/studio/internal/projection"
	"github.com/vogue360/studio/internal/store"
)

// CatalogView is a render snapshot of the gallery management screen.
type CatalogView struct {
	Criteria     projection.Criteria
	Items        []model.CatalogItem
	Total        int
	Editor       *EditorView[editor.CatalogDraft]
	Notification *notify.Notification
}

// CatalogScreen manages gallery items for one admin session.
type CatalogScreen struct {
	mu       sync.Mutex
	store    *store.Catalog
	criteria projection.Criteria
	editor   *editor.Session[model.CatalogItem, editor.CatalogDraft]
	notifier *notify.Emitter
	log      *slog.Logger
}

// NewCatalogScreen returns a screen over catalog reporting through n.
func NewCatalogScreen(catalog *store.Catalog, n *notify.Emitter, log *slog.Logger) *CatalogScreen {
	return &CatalogScreen{
		store:    catalog,
		criteria: projection.Criteria{Filter: projection.All},
		editor:   editor.New(editor.CatalogForm(), catalog, n),
		notifier: n,
		log:      log,
	}
}

// SetCriteria changes the category filter and search text.
func (s *CatalogScreen) SetCriteria(c projection.Criteria) {
	s.mu.Lock()
	s.criteria = c.Normalize()
	s.mu.Unlock()
}

// Visible returns the items matching the current criteria.
func (s *CatalogScreen) Visible() []model.CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return projection.Catalog(s.store.List(), s.criteria)
}

// OpenCreate opens the editor on an empty item.
func (s *CatalogScreen) OpenCreate() {
	s.mu.Lock()
	s.editor.OpenForCreate()
	s.mu.Unlock()
}

// OpenEdit opens the editor on the item with the given ID.
func (s *CatalogScreen) OpenEdit(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.store.Get(id)
	if !ok {
		return false
	}
	s.editor.OpenForEdit(item)
	return true
}

// CancelEdit closes the editor.
func (s *CatalogScreen) CancelEdit() {
	s.mu.Lock()
	s.editor.Cancel()
	s.mu.Unlock()
}

// Editing reports whether the editor is open.
func (s *CatalogScreen) Editing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editor.IsOpen()
}

// Submit saves the editor draft.
func (s *CatalogScreen) Submit(d editor.CatalogDraft) (model.CatalogItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, editing := s.editor.Target()
	item, err := s.editor.Submit(d)
	if err != nil {
		return item, err
	}
	if editing {
		s.log.Info("catalog item updated", "item", item.ID, "name", item.Name)
	} else {
		s.log.Info("catalog item added", "item", item.ID, "name", item.Name)
	}
	return item, nil
}

// Reject shows msg as an error without touching the editor. It is used when
// a draft could not be assembled, such as a failed image upload.
func (s *CatalogScreen) Reject(msg string) {
	s.notifier.Error(msg)
}

// Delete removes the item with the given ID.
func (s *CatalogScreen) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.Remove(id) {
		return false
	}
	s.notifier.Success("Item deleted successfully")
	s.log.Info("catalog item deleted", "item", id)
	return true
}

// Notification returns the active notification.
func (s *CatalogScreen) Notification() (notify.Notification, bool) {
	return s.notifier.Current()
}

// Dismiss clears the active notification.
func (s *CatalogScreen) Dismiss() {
	s.notifier.Dismiss()
}

// View returns everything needed to render the screen.
func (s *CatalogScreen) View() CatalogView {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.store.List()
	v := CatalogView{
		Criteria: s.criteria,
		Items:    projection.Catalog(all, s.criteria),
		Total:    len(all),
		Editor:   editorView(s.editor),
	}
	if n, ok := s.notifier.Current(); ok {
		v.Notification = &n
	}
	return v
}
