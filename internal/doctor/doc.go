// Package doctor checks that the tools and directories pact depends on are
// present: git and tmux (with minimum versions), the init shell, the
// configuration and the template directories.
package doctor
