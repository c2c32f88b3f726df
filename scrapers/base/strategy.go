package base

import "strings"

// Mode selects what is read from a matched element
type Mode int

const (
	ModeText Mode = iota
	ModeAttr
	// ModeTextOrAttr reads the text and falls back to the attribute when
	// the text is blank.
	ModeTextOrAttr
)

// Candidate is one step of a field's selector fallback chain
type Candidate struct {
	Selector string
	Mode     Mode
	Attr     string
}

// Text reads the visible text of the first match
func Text(selector string) Candidate {
	return Candidate{Selector: selector, Mode: ModeText}
}

// Attr reads the named attribute of the first match
func Attr(selector, name string) Candidate {
	return Candidate{Selector: selector, Mode: ModeAttr, Attr: name}
}

// TextOr reads the text of the first match, else its attribute
func TextOr(selector, name string) Candidate {
	return Candidate{Selector: selector, Mode: ModeTextOrAttr, Attr: name}
}

// Meta reads the content attribute of a meta tag
func Meta(selector string) Candidate {
	return Attr(selector, "content")
}

// FirstMatch walks the candidates in order and returns the first non-blank
// trimmed value. Lookup failures count as no match.
func FirstMatch(page Page, candidates ...Candidate) *string {
	for _, c := range candidates {
		els, err := page.Find(c.Selector)
		if err != nil || len(els) == 0 {
			continue
		}
		if v := c.extract(els[0]); v != "" {
			return &v
		}
	}
	return nil
}

func (c Candidate) extract(el Element) string {
	switch c.Mode {
	case ModeAttr:
		return attr(el, c.Attr)
	case ModeTextOrAttr:
		if v := text(el); v != "" {
			return v
		}
		return attr(el, c.Attr)
	default:
		return text(el)
	}
}

// CollectImages gathers src (or data-src) URLs from the first selector group
// that yields any image, keeping first-seen order without duplicates. At
// most limit URLs are returned; limit <= 0 disables the cap.
func CollectImages(page Page, limit int, selectors ...string) []string {
	images := []string{}
	seen := make(map[string]bool)

	for _, sel := range selectors {
		els, err := page.Find(sel)
		if err != nil {
			continue
		}
		for _, el := range els {
			src := attr(el, "src")
			if src == "" {
				src = attr(el, "data-src")
			}
			if src != "" && !seen[src] {
				seen[src] = true
				images = append(images, src)
			}
		}
		if len(images) > 0 {
			break
		}
	}

	if limit > 0 && len(images) > limit {
		images = images[:limit]
	}
	return images
}

// ScanTable reads key/value pairs from table rows. Rows missing either cell
// are skipped, as are pairs with a blank key or value.
func ScanTable(page Page, rowSelector, keySelector, valueSelector string) map[string]string {
	extras := map[string]string{}

	rows, err := page.Find(rowSelector)
	if err != nil {
		return extras
	}
	for _, row := range rows {
		k, ok := cellText(row, keySelector)
		if !ok {
			continue
		}
		v, ok := cellText(row, valueSelector)
		if !ok {
			continue
		}
		if k != "" && v != "" {
			extras[k] = v
		}
	}
	return extras
}

func cellText(row Element, selector string) (string, bool) {
	cells, err := row.Find(selector)
	if err != nil || len(cells) == 0 {
		return "", false
	}
	t, err := cells[0].Text()
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(t), true
}

func text(el Element) string {
	t, err := el.Text()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(t)
}

func attr(el Element, name string) string {
	v, ok := el.Attribute(name)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}
