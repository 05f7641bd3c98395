// Package navigation provides an in-memory address bar for deep links.
//
// A terminal program has no URL, so History stands in for the browser's
// history stack: every SetQueryParam pushes a new entry, Back and Forward move
// through them, and Link renders the current entry as a folio:// URI that
// can be passed back with --q.
package navigation

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
)

// Ensure History implements the interface.
var _ driven.Navigator = (*History)(nil)

// Scheme is the URI scheme of rendered links.
const Scheme = "folio"

// History is a push-only stack of query states.
type History struct {
	mu      sync.RWMutex
	entries []url.Values
	current int
}

// NewHistory creates a history whose first entry is initial.
func NewHistory(initial url.Values) *History {
	return &History{
		entries: []url.Values{cloneValues(initial)},
	}
}

// ParseLink creates a history starting at link. link may be a full
// folio:// URI, a bare query ("q=about" or "?q=about") or empty.
func ParseLink(link string) (*History, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return NewHistory(nil), nil
	}

	raw := link
	if strings.Contains(link, "://") {
		u, err := url.Parse(link)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		if u.Scheme != Scheme {
			return nil, fmt.Errorf("%w: link scheme must be %s, got %q", domain.ErrInvalidInput, Scheme, u.Scheme)
		}
		raw = u.RawQuery
	}

	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return NewHistory(values), nil
}

// WithTopic creates a history starting at key, or empty when key is "".
func WithTopic(key string) *History {
	if key == "" {
		return NewHistory(nil)
	}
	return NewHistory(url.Values{driven.QueryParam: {key}})
}

// QueryParam returns the value of name in the current entry.
func (h *History) QueryParam(name string) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.entries[h.current].Get(name)
}

// SetQueryParam pushes a new entry with name set to value.
// Entries after the current one are discarded, as in a browser.
func (h *History) SetQueryParam(name, value string) error {
	if name == "" {
		return fmt.Errorf("%w: empty query parameter name", domain.ErrInvalidInput)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	next := cloneValues(h.entries[h.current])
	next.Set(name, value)
	h.entries = append(h.entries[:h.current+1], next)
	h.current = len(h.entries) - 1
	return nil
}

// Back moves to the previous entry. It reports false at the start.
func (h *History) Back() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current == 0 {
		return false
	}
	h.current--
	return true
}

// Forward moves to the next entry. It reports false at the end.
func (h *History) Forward() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current >= len(h.entries)-1 {
		return false
	}
	h.current++
	return true
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Link renders the current entry, e.g. "folio://?q=about".
// An entry without parameters renders as "folio://".
func (h *History) Link() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	link := Scheme + "://"
	if q := h.entries[h.current].Encode(); q != "" {
		link += "?" + q
	}
	return link
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
