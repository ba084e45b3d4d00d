// Package profile keeps a single zshift-owned block inside the user's shell profile.
package profile

import "strings"

// Block markers. The legacy pair was written by older setup scripts and is
// migrated to the current pair on the next update.
const (
	BeginMarker       = "# >>> zshift config >>>"
	EndMarker         = "# <<< zshift config <<<"
	LegacyBeginMarker = "### BEGIN wrkstrm-configs (zshrc.txt)"
	LegacyEndMarker   = "### END wrkstrm-configs (zshrc.txt)"
)

// Action is what Splice did to the profile text.
type Action int

const (
	// Unchanged means the block was already current.
	Unchanged Action = iota
	// Appended means no block existed and one was added at the end.
	Appended
	// Refreshed means an existing, legacy or duplicated block was rewritten.
	Refreshed
)

func (a Action) String() string {
	switch a {
	case Appended:
		return "appended"
	case Refreshed:
		return "refreshed"
	default:
		return "unchanged"
	}
}

// RenderBlock wraps body in the current markers, without a trailing newline.
func RenderBlock(body string) string {
	return BeginMarker + "\n" + strings.TrimRight(body, "\n") + "\n" + EndMarker
}

// Splice returns existing with exactly one current block holding body.
//
// Legacy blocks are rewritten in place under the current markers, the first
// current block is replaced in place, and any later current blocks are
// removed. With no block present, one is appended.
func Splice(existing, body string) (string, Action) {
	block := RenderBlock(body)
	text := existing
	found := false

	for from := 0; ; {
		start, stop, ok := findBlock(text, LegacyBeginMarker, LegacyEndMarker, from)
		if !ok {
			break
		}
		text = text[:start] + block + text[stop:]
		from = start + len(block)
		found = true
	}

	start, stop, ok := findBlock(text, BeginMarker, EndMarker, 0)
	if ok {
		text = text[:start] + block + text[stop:]
		found = true
		text = dropDuplicates(text, start+len(block))
	}

	if !found {
		text = existing + separator(existing) + block + "\n"
		return text, Appended
	}
	if text == existing {
		return text, Unchanged
	}
	return text, Refreshed
}

// dropDuplicates removes every current block that starts at or after from,
// together with the newline that follows it.
func dropDuplicates(text string, from int) string {
	for {
		start, stop, ok := findBlock(text, BeginMarker, EndMarker, from)
		if !ok {
			return text
		}
		if stop < len(text) && text[stop] == '\n' {
			stop++
		}
		text = text[:start] + text[stop:]
	}
}

// findBlock locates the first begin..end region at or after from. stop is the
// offset just past the end marker. When several begin markers precede the
// same end marker, the last one opens the block so an orphaned begin marker
// never swallows the user's text.
func findBlock(text, begin, end string, from int) (start, stop int, ok bool) {
	b := strings.Index(text[from:], begin)
	if b < 0 {
		return 0, 0, false
	}
	b += from
	e := strings.Index(text[b+len(begin):], end)
	if e < 0 {
		return 0, 0, false
	}
	e += b + len(begin)
	if last := strings.LastIndex(text[b:e], begin); last > 0 {
		b += last
	}
	return b, e + len(end), true
}

func separator(existing string) string {
	switch {
	case existing == "":
		return ""
	case strings.HasSuffix(existing, "\n"):
		return "\n"
	default:
		return "\n\n"
	}
}
