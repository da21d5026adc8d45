// Package store provides cache backends for scanned catalog metadata.
//
// A backend persists the inputs and outputs extracted from each definition
// file, keyed by file path and modification time, so large catalogs do not
// have to be re-parsed on every validation request. The memory backend is
// the default; the SQLite backend keeps the cache warm across restarts of a
// long-lived language server.
package store
