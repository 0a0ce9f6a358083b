package watcher

import "context"

// Watcher monitors a drop directory for newly created transcripts.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one transcript file.
type EventHandler func(ctx context.Context, filePath string) error
