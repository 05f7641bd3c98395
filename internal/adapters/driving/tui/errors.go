package tui

import "errors"

// ErrMissingLoader is returned when the snapshot loader is not provided.
var ErrMissingLoader = errors.New("tui: snapshot loader is required")

// ErrMissingRevealer is returned when the revealer is not provided.
var ErrMissingRevealer = errors.New("tui: revealer is required")

// ErrMissingConversationFactory is returned when no conversation factory is provided.
var ErrMissingConversationFactory = errors.New("tui: conversation factory is required")
