package interfaces

import "context"

// IMigrationRepository persists one-shot migration flags.
//
// A flag that was marked done stays done; the bulk expense sync must never
// run twice.

type IMigrationRepository interface {
	IsDone(ctx context.Context, name string) (bool, error)
	MarkDone(ctx context.Context, name string) error
}
