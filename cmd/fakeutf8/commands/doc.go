// Package commands defines the fakeutf8 CLI.
//
// Commands
//
//   - widen        Print the UTF-8 carrier of a string
//   - narrow       Decode a carrier given as hex or comma-separated units
//   - repair       Restore a string whose UTF-8 bytes were widened into characters
//   - concat       Join two strings inside a byte-blind wasm guest
//   - interactive  Live widen/repair view in the terminal
//
// When a command that takes text gets no argument and stdin is not a
// terminal, the text is read from stdin.
package commands
