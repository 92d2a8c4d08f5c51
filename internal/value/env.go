package value

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Env is a lexical scope: a mapping from symbol name to Value, with a
// parent link forming the lexical chain. A name maps to at most one value
// per level (spec.md §3 invariants).
type Env struct {
	parent *Env
	names  []string
	values []*Value
}

// NewEnv creates an environment with the given parent (nil for a root
// environment).
func NewEnv(parent *Env) *Env {
	return &Env{parent: parent}
}

// Get looks up name, searching this level then each parent in turn. If no
// binding exists anywhere in the chain, it returns an Unbound Symbol Error
// carrying sym's own context, with a fuzzy-matched suggestion appended when
// a visible name is a plausible typo of it (spec_full.md §4.8 — this is an
// expansion over the original interpreter, which has no such suggestion).
func (e *Env) Get(sym *Value) *Value {
	if v := e.lookup(sym.Str); v != nil {
		return v.Copy()
	}
	msg := "Unbound Symbol '" + sym.Str + "'"
	if suggestion := e.suggest(sym.Str); suggestion != "" {
		msg += ". Did you mean '" + suggestion + "'?"
	}
	return &Value{Kind: Error, Str: msg, Ctx: sym.Ctx}
}

func (e *Env) lookup(name string) *Value {
	for env := e; env != nil; env = env.parent {
		for i, n := range env.names {
			if n == name {
				return env.values[i]
			}
		}
	}
	return nil
}

// Put binds name to a deep copy of v in the current level, replacing any
// existing binding with that name at this level.
func (e *Env) Put(name string, v *Value) {
	for i, n := range e.names {
		if n == name {
			e.values[i] = v.Copy()
			return
		}
	}
	e.names = append(e.names, name)
	e.values = append(e.values, v.Copy())
}

// Def walks to the root-most environment and binds name there.
func (e *Env) Def(name string, v *Value) {
	e.Root().Put(name, v)
}

// Root returns the parent-less environment at the top of e's lexical chain.
func (e *Env) Root() *Env {
	env := e
	for env.parent != nil {
		env = env.parent
	}
	return env
}

// Copy produces a new environment with the same parent pointer and
// deep-copied bindings. Used by Value.Copy whenever a user-defined
// Function is deep-copied (binding, lookup, partial application).
func (e *Env) Copy() *Env {
	cp := &Env{parent: e.parent}
	if len(e.names) > 0 {
		cp.names = append([]string(nil), e.names...)
		cp.values = make([]*Value, len(e.values))
		for i, v := range e.values {
			cp.values[i] = v.Copy()
		}
	}
	return cp
}

// SetParent reassigns e's parent link. Used exactly once per call, at the
// moment a user-defined function's captured environment receives its
// call-site environment (spec.md §4.6, §9).
func (e *Env) SetParent(parent *Env) { e.parent = parent }

// Names flattens every name visible from e (this level and all parents,
// nearest first) without duplicates. Used by the suggestion engine and by
// the REPL's `:env` meta-command.
func (e *Env) Names() []string {
	seen := make(map[string]bool)
	var out []string
	for env := e; env != nil; env = env.parent {
		for _, n := range env.names {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}

// suggest fuzzy-matches name against every visible binding and returns the
// closest candidate, or "" if none is close enough to be worth offering.
// Grounded on github.com/lithammer/fuzzysearch's rank-based matching.
func (e *Env) suggest(name string) string {
	candidates := e.Names()
	if len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindNormalizedFold(name, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks) // ascending by edit distance
	best := ranks[0]
	maxDistance := len(name)/2 + 1
	if best.Distance > maxDistance {
		return ""
	}
	return best.Target
}
