// Package paths builds the on-disk location of a project. It is pure string
// manipulation: nothing here touches the filesystem except ExpandHome, which
// only asks the OS for the current user's home directory.
package paths
