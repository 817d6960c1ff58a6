package editor

import (
	"reflect"
	"strings"
	"testing"
)

// staticCompleter matches candidates by case-insensitive prefix, the
// way the game collaborator does.
func staticCompleter(all ...string) Completer {
	return CompleterFunc(func(prefix string) []string {
		p := strings.ToLower(prefix)
		var out []string
		for _, c := range all {
			if strings.HasPrefix(strings.ToLower(c), p) {
				out = append(out, c)
			}
		}
		return out
	})
}

func typeInto(e *LineEditor, s string) {
	for _, r := range s {
		e.Insert(r)
	}
}

func TestCompletionSingleCandidate(t *testing.T) {
	var e LineEditor
	typeInto(&e, "inv")

	res := e.RequestCompletion(staticCompleter("inventory", "look", "help"))
	if !res.Applied {
		t.Fatal("single candidate should be applied")
	}
	if got := e.String(); got != "inventory" {
		t.Errorf("buffer = %q, want %q", got, "inventory")
	}
	if e.Cursor() != len("inventory") {
		t.Errorf("cursor = %d, want end of completion", e.Cursor())
	}
}

func TestCompletionCommonPrefixExtension(t *testing.T) {
	var e LineEditor
	typeInto(&e, "w")

	res := e.RequestCompletion(staticCompleter("warrior", "wander", "who"))
	if res.Applied {
		// "w" is already the common prefix of warrior/wander/who,
		// no extension possible, so the list must be surfaced.
		t.Fatal("no extension possible, buffer must stay untouched")
	}
	if len(res.Candidates) != 3 {
		t.Fatalf("candidates = %v, want 3 entries", res.Candidates)
	}

	// "wa" narrows to warrior/wander, whose common prefix is still
	// "wa": again no extension, so the narrowed list is surfaced.
	e = LineEditor{}
	typeInto(&e, "wa")
	res = e.RequestCompletion(staticCompleter("warrior", "wander", "who"))
	if res.Applied {
		t.Fatal("no extension possible, buffer must stay untouched")
	}
	if want := []string{"warrior", "wander"}; !reflect.DeepEqual(res.Candidates, want) {
		t.Errorf("candidates = %v, want %v", res.Candidates, want)
	}
	if got := e.String(); got != "wa" {
		t.Errorf("buffer = %q, want %q", got, "wa")
	}
}

func TestCompletionExtendsThenLists(t *testing.T) {
	var e LineEditor
	typeInto(&e, "c")

	// clone/closed share "clo".
	res := e.RequestCompletion(staticCompleter("clone", "closed"))
	if !res.Applied {
		t.Fatal("expected extension to common prefix")
	}
	if got := e.String(); got != "clo" {
		t.Fatalf("buffer = %q, want %q", got, "clo")
	}

	// Second Tab: no further extension, list the candidates.
	res = e.RequestCompletion(staticCompleter("clone", "closed"))
	if res.Applied {
		t.Fatal("second Tab must not mutate the buffer")
	}
	if want := []string{"clone", "closed"}; !reflect.DeepEqual(res.Candidates, want) {
		t.Errorf("candidates = %v, want %v", res.Candidates, want)
	}
}

func TestCompletionNoCandidates(t *testing.T) {
	var e LineEditor
	typeInto(&e, "xyzzy")

	res := e.RequestCompletion(staticCompleter("look", "help"))
	if res.Applied || len(res.Candidates) != 0 {
		t.Errorf("no candidates should leave everything untouched, got %+v", res)
	}
	if got := e.String(); got != "xyzzy" {
		t.Errorf("buffer = %q, want %q", got, "xyzzy")
	}
}

func TestCompletionNilCompleter(t *testing.T) {
	var e LineEditor
	typeInto(&e, "lo")
	res := e.RequestCompletion(nil)
	if res.Applied || res.Candidates != nil {
		t.Errorf("nil completer must be a no-op, got %+v", res)
	}
}

func TestCompletionPreservesTail(t *testing.T) {
	var e LineEditor
	typeInto(&e, "lotail")
	e.MoveCursor(-4) // cursor after "lo"

	res := e.RequestCompletion(staticCompleter("look"))
	if !res.Applied {
		t.Fatal("expected completion")
	}
	if got := e.String(); got != "looktail" {
		t.Errorf("buffer = %q, want %q (tail after cursor preserved)", got, "looktail")
	}
	if e.Cursor() != 4 {
		t.Errorf("cursor = %d, want 4", e.Cursor())
	}
}

func TestCompletionDeterministic(t *testing.T) {
	c := staticCompleter("mage", "warrior", "rogue", "cleric")
	first := c.Complete("")
	for i := 0; i < 5; i++ {
		if got := c.Complete(""); !reflect.DeepEqual(got, first) {
			t.Fatalf("candidate order changed between calls: %v vs %v", got, first)
		}
	}
}

func TestCommonPrefix(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"look"}, "look"},
		{[]string{"Warrior", "wander"}, "Wa"},
		{[]string{"yes", "no"}, ""},
		{[]string{"go east", "go west"}, "go "},
	}
	for _, tt := range tests {
		if got := commonPrefix(tt.in); got != tt.want {
			t.Errorf("commonPrefix(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
