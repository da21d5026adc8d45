// Package diag defines positioned diagnostics and the ordered collector the
// validation passes write through.
//
// Diagnostic order is part of the observable contract: editors and snapshot
// tests rely on a stable sequence, so the collector is strictly append-only
// and never sorts or deduplicates.
package diag
