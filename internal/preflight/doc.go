// Package preflight provides readiness checks for the converter binary and
// the filesystem paths a conversion run writes to.
//
// The "dngconv check" command prints one status line per result; convert runs
// the directory check before handing any file to dnglab so an unwritable
// output folder is reported once instead of once per file.
package preflight
