package m3u

import (
	"fmt"
	"io"
	"strings"
)

// TVGTags holds the attributes written between the duration and the title.
// Empty attributes are omitted.
type TVGTags struct {
	ID         string
	Name       string
	GroupTitle string
	Logo       string
}

func (t *TVGTags) empty() bool {
	return t.ID == "" && t.Name == "" && t.GroupTitle == "" && t.Logo == ""
}

func (t *TVGTags) encode(w io.Writer) error {
	attrs := make([]string, 0, 4)
	if t.ID != "" {
		attrs = append(attrs, fmt.Sprintf(`tvg-id="%s"`, t.ID))
	}
	if t.Name != "" {
		attrs = append(attrs, fmt.Sprintf(`tvg-name="%s"`, t.Name))
	}
	if t.GroupTitle != "" {
		attrs = append(attrs, fmt.Sprintf(`group-title="%s"`, t.GroupTitle))
	}
	if t.Logo != "" {
		attrs = append(attrs, fmt.Sprintf(`tvg-logo="%s"`, t.Logo))
	}

	_, err := io.WriteString(w, strings.Join(attrs, " "))
	return err
}

// LogoNamePlaceholder marks where the channel name goes in a logo URL template.
const LogoNamePlaceholder = "{name}"

// LogoURL expands template with the channel name, used verbatim.
func LogoURL(template, name string) string {
	return strings.ReplaceAll(template, LogoNamePlaceholder, name)
}
