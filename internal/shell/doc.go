// Package shell turns a resolved environment into an activation script for a
// target shell dialect (bash, zsh, fish, powershell, cmd). Scripts are written
// to stdout by the CLI and evaluated by the calling shell; this package never
// executes anything itself. Output is a pure function of the environment, the
// dialect and the generator's ambient snapshot.
package shell
