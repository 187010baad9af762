package pdflayout

import "strings"

// TemplateMarker is the placeholder replaced by a formatted value in a
// pagination template. The first marker receives the page, the second the
// total page count.
const TemplateMarker = "%s"

// fillTemplate substitutes values into the markers of template in order.
// "%%" renders a literal percent sign. Markers without a matching value are
// left untouched and surplus values are dropped, so a malformed template
// still yields a string.
func fillTemplate(template string, values ...string) string {
	if !strings.Contains(template, "%") {
		return template
	}

	var sb strings.Builder
	sb.Grow(len(template))

	next := 0
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' || i+1 >= len(template) {
			sb.WriteByte(c)
			continue
		}

		switch template[i+1] {
		case '%':
			sb.WriteByte('%')
			i++
		case 's':
			if next < len(values) {
				sb.WriteString(values[next])
				next++
			} else {
				sb.WriteString(TemplateMarker)
			}
			i++
		default:
			sb.WriteByte(c)
		}
	}

	return sb.String()
}
