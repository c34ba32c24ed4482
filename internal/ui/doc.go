// Package ui styles the CLI's own messages (errors and warnings on stderr).
//
// The dashboard frame itself is drawn by package monitor; this package only
// covers text around it. Colors are basic ANSI codes rendered through a Lip
// Gloss renderer with an explicit termenv profile, so termenv.Ascii gives
// plain text that matches errors.Error.Error() byte for byte.
package ui
