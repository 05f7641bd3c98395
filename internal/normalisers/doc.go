// Package normalisers provides parsers that turn fetched content into
// domain values. The markdown normaliser splits the Q&A document into
// sections.
package normalisers
