package topics

// Renderer formats topic content for display
type Renderer interface {
	// Render receives the raw content and the file extension (".md", ".txt")
	Render(content string, format string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
