package editor

import "strings"

// Completer supplies candidates for the text before the cursor.
// Implementations must return candidates in a stable, deterministic
// order for identical input, so prefix completion is reproducible.
// Each call is independent; candidates are never retained.
type Completer interface {
	Complete(prefix string) []string
}

// CompleterFunc adapts a plain function to the Completer interface.
type CompleterFunc func(prefix string) []string

func (f CompleterFunc) Complete(prefix string) []string { return f(prefix) }

// CompletionResult reports what a Tab press did.
type CompletionResult struct {
	// Applied is true when the buffer was mutated.
	Applied bool
	// Candidates is non-empty when the ambiguous candidate list
	// should be presented to the user (buffer untouched).
	Candidates []string
}

// RequestCompletion runs one Tab press against the completer.
//
// Policy (deterministic, documented to users):
//   - exactly one candidate: it replaces the text before the cursor;
//   - several candidates: the text is extended to their longest common
//     prefix (case-insensitive match, casing taken from the first
//     candidate);
//   - several candidates and no further extension possible: the buffer
//     is left untouched and the candidate list is returned for display.
func (e *LineEditor) RequestCompletion(c Completer) CompletionResult {
	if c == nil {
		return CompletionResult{}
	}
	prefix := string(e.buf[:e.cursor])
	candidates := c.Complete(prefix)
	if len(candidates) == 0 {
		return CompletionResult{}
	}
	if len(candidates) == 1 {
		e.replaceHead(candidates[0])
		return CompletionResult{Applied: true}
	}

	common := commonPrefix(candidates)
	if len([]rune(common)) > len([]rune(prefix)) {
		e.replaceHead(common)
		return CompletionResult{Applied: true}
	}
	return CompletionResult{Candidates: candidates}
}

// commonPrefix finds the longest case-insensitive common prefix among
// candidates, preserving the casing of the first one.
func commonPrefix(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	ref := []rune(candidates[0])
	rest := make([][]rune, 0, len(candidates)-1)
	shortest := len(ref)
	for _, c := range candidates[1:] {
		rs := []rune(c)
		if len(rs) < shortest {
			shortest = len(rs)
		}
		rest = append(rest, rs)
	}

	end := 0
	for i := 0; i < shortest; i++ {
		want := strings.ToLower(string(ref[i]))
		same := true
		for _, rs := range rest {
			if strings.ToLower(string(rs[i])) != want {
				same = false
				break
			}
		}
		if !same {
			break
		}
		end = i + 1
	}
	return string(ref[:end])
}
