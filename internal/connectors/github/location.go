package github

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/custodia-labs/folio/internal/core/domain"
)

// Scheme is the URI scheme handled by this package.
const Scheme = "github"

// Location identifies one file in a repository.
type Location struct {
	Owner string
	Repo  string
	Path  string

	// Ref is a branch, tag or commit SHA. Empty means the default branch.
	Ref string
}

// ParseLocation parses a github://owner/repo/path[?ref=...] URI.
func ParseLocation(raw string) (Location, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if u.Scheme != Scheme {
		return Location{}, fmt.Errorf("%w: scheme %q", domain.ErrUnsupportedSource, u.Scheme)
	}

	parts := strings.SplitN(strings.Trim(u.Path, "/"), "/", 2)
	loc := Location{
		Owner: u.Host,
		Ref:   u.Query().Get("ref"),
	}
	if len(parts) == 2 {
		loc.Repo = parts[0]
		loc.Path = parts[1]
	}

	if loc.Owner == "" || loc.Repo == "" || loc.Path == "" {
		return Location{}, fmt.Errorf("%w: %s must be github://owner/repo/path", domain.ErrInvalidInput, raw)
	}
	return loc, nil
}

// String renders the location as a github:// URI.
func (l Location) String() string {
	s := Scheme + "://" + l.Owner + "/" + l.Repo + "/" + l.Path
	if l.Ref != "" {
		s += "?ref=" + url.QueryEscape(l.Ref)
	}
	return s
}
