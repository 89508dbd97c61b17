package markline

import (
	"sync"

	"github.com/markline-io/markline/internal/constants"
)

// ContentState is the observable state of a ContentStore. Items are ordered
// newest-created first; otherwise they keep server order from the last page.
type ContentState struct {
	Items           []Content
	Selected        *Content
	TotalItems      int
	CurrentPage     int
	TotalPages      int
	ItemsPerPage    int
	HasNextPage     bool
	HasPreviousPage bool
	Loading         bool
	Err             string
}

// ContentStore is the in-memory mirror of server content state. It performs
// no I/O: callers apply a transition only after the corresponding API call
// has resolved. Each transition is total and atomic; given the same prior
// state and argument it always produces the same next state.
//
// Two racing ReplacePage calls are not ordered relative to each other —
// whichever resolves last wins.
type ContentStore struct {
	mu    sync.Mutex
	state ContentState
}

// NewContentStore returns a store in its initial empty state.
func NewContentStore() *ContentStore {
	store := &ContentStore{}
	store.state = initialContentState()

	return store
}

func initialContentState() ContentState {
	return ContentState{
		Items:        []Content{},
		CurrentPage:  constants.DefaultPage,
		ItemsPerPage: constants.DefaultPageSize,
	}
}

// Snapshot returns a copy of the current state. The copy shares nothing with
// the store; mutating it has no effect on later transitions.
func (s *ContentStore) Snapshot() ContentState {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state
	snapshot.Items = make([]Content, len(s.state.Items))
	copy(snapshot.Items, s.state.Items)

	if s.state.Selected != nil {
		selected := *s.state.Selected
		snapshot.Selected = &selected
	}

	return snapshot
}

// BeginLoading marks an operation in flight. The last error is left alone so
// it stays visible until the operation resolves.
func (s *ContentStore) BeginLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Loading = true
}

// FailWith records a failed operation.
func (s *ContentStore) FailWith(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Err = message
	s.state.Loading = false
}

// ReplacePage overwrites the item list and every pagination field from a
// freshly fetched page.
func (s *ContentStore) ReplacePage(page *ContentPage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Items = make([]Content, len(page.Items))
	copy(s.state.Items, page.Items)
	s.state.TotalItems = page.TotalItems
	s.state.CurrentPage = page.CurrentPage
	s.state.TotalPages = page.TotalPages
	s.state.ItemsPerPage = page.ItemsPerPage
	s.state.HasNextPage = page.HasNextPage
	s.state.HasPreviousPage = page.HasPreviousPage
	s.resolve()
}

// SetSelected records the currently selected content. Selection is tracked
// by id and survives the item leaving the list.
func (s *ContentStore) SetSelected(content Content) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Selected = &content
	s.resolve()
}

// InsertCreated prepends a freshly created content item and bumps the total
// count.
func (s *ContentStore) InsertCreated(content Content) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Items = append([]Content{content}, s.state.Items...)
	s.state.TotalItems++
	s.resolve()
}

// ApplyUpdate replaces the listed item whose id matches, and the selection
// if it matches too. An id with no match leaves the list untouched but still
// resolves the in-flight operation.
func (s *ContentStore) ApplyUpdate(content Content) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Items {
		if s.state.Items[i].ID == content.ID {
			s.state.Items[i] = content

			break
		}
	}

	if s.state.Selected != nil && s.state.Selected.ID == content.ID {
		selected := content
		s.state.Selected = &selected
	}

	s.resolve()
}

// ApplyDelete removes the item with the given id, decrements the total
// count, and drops a matching selection.
func (s *ContentStore) ApplyDelete(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.state.Items[:0]

	for _, item := range s.state.Items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}

	s.state.Items = filtered
	s.state.TotalItems--

	if s.state.Selected != nil && s.state.Selected.ID == id {
		s.state.Selected = nil
	}

	s.resolve()
}

// ClearSelected drops the current selection without touching anything else.
func (s *ContentStore) ClearSelected() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Selected = nil
}

// Reset returns the store to its initial empty state, e.g. on logout.
func (s *ContentStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = initialContentState()
}

// resolve clears the transient flags after a successful mutation. Callers
// must hold the lock.
func (s *ContentStore) resolve() {
	s.state.Loading = false
	s.state.Err = ""
}
