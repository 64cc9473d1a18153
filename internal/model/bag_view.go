package model

import (
	"context"
	"log/slog"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/shhac/discbag/internal/domain"
	apperrors "github.com/shhac/discbag/internal/errors"
	"github.com/shhac/discbag/internal/logging"
	"github.com/shhac/discbag/internal/storage"
)

// BagFetcher looks up the bag for an identifier. An empty identifier
// requests the default bag.
type BagFetcher interface {
	FetchBag(ctx context.Context, identifier string) (domain.Bag, error)
}

// urlResolver is implemented by fetchers that can report the address they
// query, which is then recorded in lookup history.
type urlResolver interface {
	BagURL(identifier string) string
}

// SearchOutcome describes what a Search did to the view.
type SearchOutcome int

const (
	OutcomeApplied    SearchOutcome = iota // Bag replaced with the response
	OutcomeFailed                          // Error shown, bag emptied
	OutcomeSuperseded                      // A newer search was issued; result dropped
)

func (o SearchOutcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeFailed:
		return "failed"
	case OutcomeSuperseded:
		return "superseded"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent copy of the view state for rendering.
type Snapshot struct {
	SearchTerm       string // Pending input
	SearchedTerm     string // Identifier of the latest issued search
	Searched         bool   // Whether any search has completed
	Bag              domain.Bag
	Error            string // Inline message, empty when none
	Err              error  // Underlying lookup error, nil when none
	Loading          bool
	DiscExpanded     map[int]bool
	CategoryExpanded map[domain.Category]bool
}

// BagView owns the search input, the displayed bag and the expand/collapse
// state of every disc and category.
//
// Each Search takes a new sequence number and cancels the one before it;
// a response is applied only while its sequence number is the latest.
type BagView struct {
	fetcher BagFetcher
	history storage.Repository
	logger  *slog.Logger

	mu               sync.Mutex
	searchTerm       string
	searchedTerm     string
	searched         bool
	bag              domain.Bag
	errMsg           string
	lastErr          error
	loading          bool
	discExpanded     map[int]bool
	categoryExpanded map[domain.Category]bool
	seq              uint64
	cancel           context.CancelFunc

	listenerMu sync.Mutex
	listeners  []func()
}

// BagViewOption configures a BagView.
type BagViewOption func(*BagView)

// WithHistory records every completed search in repo.
func WithHistory(repo storage.Repository) BagViewOption {
	return func(v *BagView) {
		v.history = repo
	}
}

// NewBagView creates a view with an empty bag and everything collapsed.
func NewBagView(fetcher BagFetcher, logger *slog.Logger, opts ...BagViewOption) *BagView {
	v := &BagView{
		fetcher:          fetcher,
		logger:           logging.Component(logger, "bagview"),
		bag:              domain.EmptyBag(),
		discExpanded:     make(map[int]bool),
		categoryExpanded: make(map[domain.Category]bool),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// AddListener registers fn to be called after every state change except
// SetSearchTerm. Listeners run on the goroutine that made the change.
func (v *BagView) AddListener(fn func()) {
	v.listenerMu.Lock()
	defer v.listenerMu.Unlock()
	v.listeners = append(v.listeners, fn)
}

func (v *BagView) notify() {
	v.listenerMu.Lock()
	listeners := append([]func(){}, v.listeners...)
	v.listenerMu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// SetSearchTerm updates the pending identifier used by the next Search.
// It never triggers a lookup.
func (v *BagView) SetSearchTerm(input string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.searchTerm = input
}

// SearchTerm returns the pending identifier.
func (v *BagView) SearchTerm() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.searchTerm
}

// Search looks up the bag for the pending identifier. It blocks until the
// lookup completes, so callers on the UI goroutine should run it with go.
// Failures never escape: they are turned into the inline error message and
// an empty bag.
func (v *BagView) Search(ctx context.Context) SearchOutcome {
	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	v.seq++
	seq := v.seq
	identifier := strings.TrimSpace(v.searchTerm)
	ctx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.searchedTerm = identifier
	v.loading = true
	v.mu.Unlock()
	defer cancel()

	v.logger.Debug("search issued",
		slog.String("identifier", identifier),
		slog.Uint64("seq", seq),
	)
	v.notify()

	start := time.Now()
	bag, err := v.fetcher.FetchBag(ctx, identifier)
	duration := time.Since(start)

	v.mu.Lock()
	if seq != v.seq {
		v.mu.Unlock()
		v.logger.Debug("search superseded",
			slog.String("identifier", identifier),
			slog.Uint64("seq", seq),
		)
		return OutcomeSuperseded
	}
	v.cancel = nil
	v.loading = false
	v.searched = true
	outcome := OutcomeApplied
	if err != nil {
		outcome = OutcomeFailed
		v.bag = domain.EmptyBag()
		v.errMsg = apperrors.DisplayMessage(err)
		v.lastErr = err
	} else {
		v.bag = bag.Normalize()
		v.errMsg = ""
		v.lastErr = nil
	}
	v.pruneDiscExpansion()
	discCount := v.bag.Count()
	v.mu.Unlock()

	if err != nil {
		v.logger.Warn("search failed",
			slog.String("identifier", identifier),
			slog.Duration("duration", duration),
			slog.Any("error", err),
		)
	} else {
		v.logger.Info("search applied",
			slog.String("identifier", identifier),
			slog.Int("discs", discCount),
			slog.Duration("duration", duration),
		)
	}

	v.recordLookup(identifier, err, discCount, duration)
	v.notify()
	return outcome
}

// pruneDiscExpansion drops flags for discs that are not in the current bag.
// Callers hold v.mu.
func (v *BagView) pruneDiscExpansion() {
	present := make(map[int]bool, v.bag.Count())
	for _, disc := range v.bag.AllDiscs() {
		present[disc.ID] = true
	}
	for id := range v.discExpanded {
		if !present[id] {
			delete(v.discExpanded, id)
		}
	}
}

// recordLookup adds a completed search to the session history, if any.
func (v *BagView) recordLookup(identifier string, err error, discCount int, duration time.Duration) {
	if v.history == nil {
		return
	}

	entry := domain.LookupEntry{
		Identifier: identifier,
		Status:     domain.LookupSuccess,
		DiscCount:  discCount,
		Duration:   duration,
	}
	if resolver, ok := v.fetcher.(urlResolver); ok {
		entry.URL = resolver.BagURL(identifier)
	}
	if err != nil {
		entry.Status = domain.LookupError
		entry.Error = err.Error()
	}

	if err := v.history.AddLookup(entry); err != nil {
		v.logger.Warn("failed to record lookup", slog.Any("error", err))
	}
}

// Cancel abandons the in-flight search, if any, keeping the displayed bag
// and error. It reports whether a search was running.
func (v *BagView) Cancel() bool {
	v.mu.Lock()
	if v.cancel == nil {
		v.mu.Unlock()
		return false
	}
	v.cancel()
	v.cancel = nil
	v.seq++
	v.loading = false
	v.mu.Unlock()

	v.logger.Debug("search cancelled")
	v.notify()
	return true
}

// Close cancels any in-flight search. Results arriving afterwards are
// discarded.
func (v *BagView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.seq++
	v.loading = false
}

// ToggleDiscDetail flips the detail panel of one disc.
func (v *BagView) ToggleDiscDetail(discID int) {
	v.mu.Lock()
	if v.discExpanded[discID] {
		delete(v.discExpanded, discID)
	} else {
		v.discExpanded[discID] = true
	}
	v.mu.Unlock()
	v.notify()
}

// ToggleCategory flips the list of one category. Labels outside the bag
// are accepted and simply never rendered.
func (v *BagView) ToggleCategory(category domain.Category) {
	v.mu.Lock()
	if v.categoryExpanded[category] {
		delete(v.categoryExpanded, category)
	} else {
		v.categoryExpanded[category] = true
	}
	v.mu.Unlock()
	v.notify()
}

// ExpandAllDiscs expands exactly the discs currently in the bag.
func (v *BagView) ExpandAllDiscs() {
	v.mu.Lock()
	expanded := make(map[int]bool, v.bag.Count())
	for _, disc := range v.bag.AllDiscs() {
		expanded[disc.ID] = true
	}
	v.discExpanded = expanded
	v.mu.Unlock()
	v.notify()
}

// CollapseAllDiscs clears every disc expansion flag.
func (v *BagView) CollapseAllDiscs() {
	v.mu.Lock()
	v.discExpanded = make(map[int]bool)
	v.mu.Unlock()
	v.notify()
}

// ExpandAllCategories opens all four category lists.
func (v *BagView) ExpandAllCategories() {
	v.mu.Lock()
	expanded := make(map[domain.Category]bool, len(domain.Categories))
	for _, c := range domain.Categories {
		expanded[c] = true
	}
	v.categoryExpanded = expanded
	v.mu.Unlock()
	v.notify()
}

// CollapseAllCategories closes every category list.
func (v *BagView) CollapseAllCategories() {
	v.mu.Lock()
	v.categoryExpanded = make(map[domain.Category]bool)
	v.mu.Unlock()
	v.notify()
}

// IsDiscExpanded reports whether a disc's detail panel is open.
func (v *BagView) IsDiscExpanded(discID int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.discExpanded[discID]
}

// IsCategoryExpanded reports whether a category's list is open.
func (v *BagView) IsCategoryExpanded(category domain.Category) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.categoryExpanded[category]
}

// Bag returns the displayed bag.
func (v *BagView) Bag() domain.Bag {
	v.mu.Lock()
	defer v.mu.Unlock()
	return maps.Clone(v.bag)
}

// Error returns the inline error message, empty when the last search
// succeeded.
func (v *BagView) Error() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.errMsg
}

// Snapshot returns a copy of the whole view state.
func (v *BagView) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot{
		SearchTerm:       v.searchTerm,
		SearchedTerm:     v.searchedTerm,
		Searched:         v.searched,
		Bag:              maps.Clone(v.bag),
		Error:            v.errMsg,
		Err:              v.lastErr,
		Loading:          v.loading,
		DiscExpanded:     maps.Clone(v.discExpanded),
		CategoryExpanded: maps.Clone(v.categoryExpanded),
	}
}
