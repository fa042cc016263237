package render

import "github.com/charmbracelet/glamour"

// Markdown renders markdown for the terminal. On render failure the raw
// text is returned so advisor output is never lost.
func Markdown(text string) string {
	out, err := glamour.Render(text, "auto")
	if err != nil {
		return text
	}
	return out
}
