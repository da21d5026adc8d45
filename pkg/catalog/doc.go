// Package catalog is the source of truth for which applications and
// services exist on disk and what inputs and outputs each declares.
//
// A catalog reads resource definitions from a directory tree:
//
//	<root>/applications/<name>/<name>.yaml
//	<root>/services/<name>/<name>.yaml
//
// Terraform-backed services additionally harvest their variables from
// sibling *.tfvars files. A definition that cannot be read or is not in a
// recognized format degrades to empty metadata for that resource instead of
// failing the scan; the resource name itself still comes from the directory
// listing.
//
// Catalogs can be layered with a store.Backend to cache extracted metadata
// between scans, with a file watcher that invalidates on change, and with a
// cron refresher that rescans on a schedule.
package catalog
