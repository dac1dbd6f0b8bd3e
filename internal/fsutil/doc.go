// Package fsutil holds the filesystem side effects pact performs on its own:
// checking for and creating project directories and copying template trees
// into them.
package fsutil
