// Package connectors provides the fetchers that read folio's content
// resources. Each subpackage knows one kind of location (local files,
// HTTP(S) URLs, GitHub repositories); Router picks between them by scheme.
//
// Fetchers are registered with a Router at startup.
package connectors
