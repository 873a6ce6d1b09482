package banner

import (
	"fmt"
	"io"
	"strings"

	"qa-preview/core/profile"

	"github.com/fatih/color"
)

const rule = 60

// Info is what the banner describes.
type Info struct {
	Profile profile.Profile
	Port    int
	Root    string
}

// URL is the primary application URL.
func (i Info) URL() string {
	return fmt.Sprintf("http://localhost:%d/", i.Port)
}

// AltURL is the loopback address, for browsers that resolve localhost to ::1.
func (i Info) AltURL() string {
	return fmt.Sprintf("http://127.0.0.1:%d/", i.Port)
}

// Print writes the startup banner for a running server.
func Print(w io.Writer, info Info) {
	title := color.New(color.FgGreen, color.Bold)
	heading := color.New(color.FgYellow, color.Bold)
	link := color.New(color.FgCyan, color.Underline)

	title.Fprintf(w, "%s started\n", info.Profile.Title)
	fmt.Fprintln(w, strings.Repeat("=", rule))
	fmt.Fprint(w, "Application URL: ")
	link.Fprintln(w, info.URL())
	fmt.Fprint(w, "Alternative URL: ")
	link.Fprintln(w, info.AltURL())
	fmt.Fprintf(w, "Serving:         %s\n", info.Root)

	if len(info.Profile.Credentials) > 0 {
		fmt.Fprintln(w)
		heading.Fprintln(w, "LOGIN CREDENTIALS:")
		for _, c := range info.Profile.Credentials {
			fmt.Fprintf(w, "   %-6s %s / %s\n", c.Role+":", c.Email, c.Password)
		}
	}

	if len(info.Profile.Steps) > 0 {
		fmt.Fprintln(w)
		heading.Fprintln(w, "WHAT TO TEST:")
		for i, step := range info.Profile.Steps {
			fmt.Fprintf(w, "   %d. %s\n", i+1, step)
		}
	}

	if len(info.Profile.Notes) > 0 {
		fmt.Fprintln(w)
		for _, note := range info.Profile.Notes {
			fmt.Fprintf(w, " * %s\n", note)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Press Ctrl+C to stop")
	fmt.Fprintln(w, strings.Repeat("=", rule))
}

// PrintMissingBuild explains a failed startup precondition.
func PrintMissingBuild(w io.Writer, err error) {
	color.New(color.FgRed, color.Bold).Fprintf(w, "Error: %v\n", err)
	fmt.Fprintln(w, "Run 'npm run build' first to create the production build.")
}
