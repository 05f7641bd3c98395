// Package github fetches content resources from GitHub repositories.
//
// Locations use the github scheme:
//
//	github://owner/repo/path/to/file.md
//	github://owner/repo/path/to/file.md?ref=main
//
// Files are read with the repository contents API. Files over 1 MB, which
// the API returns without inline content, are downloaded instead.
//
// # Authentication
//
// A personal access token is optional. Without one requests are
// unauthenticated and limited to 60 per hour, which is plenty for the three
// resources folio loads at startup. The token is read from github.token in
// config.toml or the GITHUB_TOKEN environment variable.
//
// # Rate limiting
//
// The client throttles proactively with a token bucket and reacts to the
// X-RateLimit-* headers of every response. Once the quota is spent, Wait
// blocks until the reset time or until the context is cancelled.
package github
