// ABOUTME: Dependency ordering of modules from the tables they produce, consume, and clear.
// ABOUTME: Kahn's algorithm with ties broken by module name.

package core

import (
	"sort"
	"strings"

	seederrors "github.com/2389/demoseed/internal/errors"
)

// All is the pseudo-module name that runs every registered module.
const All = "all"

// Edge says From must run before To, because of Table.
type Edge struct {
	From, To string
	Table    string
}

// Edges derives the ordering constraints between modules:
//   - a producer of a table runs before every module that consumes it;
//   - a module that clears a table runs before any other producer of it,
//     unless that producer clears the table itself.
func Edges(mods []Module) []Edge {
	producers := map[string][]Module{}
	clearsOwn := map[string]map[string]bool{}
	for _, m := range mods {
		for _, t := range m.Produces() {
			producers[t] = append(producers[t], m)
		}
		own := map[string]bool{}
		for _, t := range m.Clears() {
			own[t] = true
		}
		clearsOwn[m.Name()] = own
	}

	seen := map[Edge]bool{}
	var edges []Edge
	add := func(from, to, table string) {
		if from == to {
			return
		}
		e := Edge{From: from, To: to, Table: table}
		if !seen[e] {
			seen[e] = true
			edges = append(edges, e)
		}
	}

	for _, m := range mods {
		for _, t := range m.Consumes() {
			for _, p := range producers[t] {
				add(p.Name(), m.Name(), t)
			}
		}
		for _, t := range m.Clears() {
			for _, p := range producers[t] {
				if !clearsOwn[p.Name()][t] {
					add(m.Name(), p.Name(), t)
				}
			}
		}
	}
	return edges
}

// Order sorts mods so that every edge points forward. Among modules that are
// ready at the same time, the one with the smaller name runs first. A cycle
// is an OrchestrationError naming the modules left unsorted.
func Order(mods []Module) ([]Module, error) {
	byName := map[string]Module{}
	indegree := map[string]int{}
	for _, m := range mods {
		byName[m.Name()] = m
		indegree[m.Name()] = 0
	}
	next := map[string][]string{}
	for _, e := range Edges(mods) {
		next[e.From] = append(next[e.From], e.To)
		indegree[e.To]++
	}

	var ready []string
	for name, d := range indegree {
		if d == 0 {
			ready = append(ready, name)
		}
	}

	ordered := make([]Module, 0, len(mods))
	for len(ready) > 0 {
		sort.Strings(ready)
		name := ready[0]
		ready = ready[1:]
		ordered = append(ordered, byName[name])
		for _, to := range next[name] {
			indegree[to]--
			if indegree[to] == 0 {
				ready = append(ready, to)
			}
		}
	}

	if len(ordered) != len(mods) {
		var stuck []string
		for name, d := range indegree {
			if d > 0 {
				stuck = append(stuck, name)
			}
		}
		sort.Strings(stuck)
		return nil, &seederrors.OrchestrationError{
			Module: All,
			Reason: "dependency cycle between " + strings.Join(stuck, ", "),
		}
	}
	return ordered, nil
}
