// Package deps reports whether the external binaries dngconv shells out to
// are installed and launchable.
//
// A requirement is probed either with a plain PATH lookup or, when version
// arguments are supplied, by actually starting the binary so that permission
// problems and broken installs are caught before a conversion run.
package deps
