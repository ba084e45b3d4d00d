package selector

import "github.com/sahilm/fuzzy"

// maxSuggestions caps "did you mean" output.
const maxSuggestions = 3

// Suggest returns up to three candidates that fuzzy-match name, best first.
func Suggest(name string, candidates []string) []string {
	if name == "" || len(candidates) == 0 {
		return nil
	}
	matches := fuzzy.Find(name, candidates)
	out := make([]string, 0, min(len(matches), maxSuggestions))
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
