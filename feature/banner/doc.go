// Package banner prints the human-readable startup instructions.
//
// Testers start the server and read the console: where the app lives,
// which accounts to log in with, and what to click through. The content
// comes from the active profile. Output is coloured with fatih/color,
// which turns itself off when stdout is not a terminal.
package banner
