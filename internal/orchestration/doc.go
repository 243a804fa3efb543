// Package orchestration coordinates sequence generation and derives the
// result shape shared by every surface. It decouples business logic from
// presentation via the ResultPresenter interface.
package orchestration
