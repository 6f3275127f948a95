package sites

import (
	"fmt"

	"github.com/LanceVCS/claude-thinking-toggle/internal/jsast"
)

// ContentColorSite recolors the panel body. Two coupled shapes: the
// switch case dispatching on the content tag returns a construction call
// for the content component (discriminated from other cases sharing the
// tag by a true-like italic field in its props), and the component
// function itself destructures `children` from its first parameter. The
// patch colors the call site and threads a color binding through the
// component so nested text elements inherit it.
type ContentColorSite struct{}

// Name implements Site.
func (s *ContentColorSite) Name() string { return "content-color" }

// InScope implements Site.
func (s *ContentColorSite) InScope(goal Goal) bool { return goal.ContentColor != "" }

// Scan implements Site.
func (s *ContentColorSite) Scan(tree *jsast.Tree, goal Goal) (Result, error) {
	occurrences := tree.FindLiteral(contentTag)
	if len(occurrences) == 0 {
		return Result{Site: s.Name(), Status: StatusNotFound, Detail: "content tag literal absent"}, nil
	}

	var (
		cands      []candidate
		mismatches int
	)

	for _, occ := range occurrences {
		c, ok, err := s.scanCase(tree, occ, goal.ContentColor)
		if err != nil {
			return Result{Site: s.Name()}, err
		}

		if !ok {
			mismatches++

			continue
		}

		if c != nil {
			cands = append(cands, *c)
		}
	}

	cands = dedupe(cands)
	if len(cands) == 0 {
		return Result{
			Site:   s.Name(),
			Status: StatusMismatch,
			Detail: fmt.Sprintf("tag present but no case matches the content shape (%d occurrence(s))", mismatches),
		}, nil
	}

	chosen, err := disambiguate(s.Name(), cands)
	if err != nil {
		return Result{Site: s.Name()}, err
	}

	if chosen.patched {
		return Result{Site: s.Name(), Status: StatusPatched}, nil
	}

	return Result{Site: s.Name(), Status: StatusDetected, Edits: chosen.edits}, nil
}

// scanCase examines one occurrence of the content tag. Occurrences that
// are not a switch-case test are silently irrelevant (nil, true, nil);
// occurrences that are but whose case has no recognizable body count as
// mismatches (nil, false, nil).
func (s *ContentColorSite) scanCase(tree *jsast.Tree, occ jsast.Occurrence, hex string) (*candidate, bool, error) {
	if len(occ.Chain) == 0 {
		return nil, true, nil
	}

	switchCase := occ.Chain[len(occ.Chain)-1]
	if tree.Kind(switchCase) != jsast.KindSwitchCase || tree.SwitchCaseValue(switchCase) != occ.Node {
		return nil, true, nil
	}

	call := contentReturnCall(tree, switchCase)
	if call == jsast.NoNode {
		return nil, false, nil
	}

	callEdits, callPatched, ok := colorPropEdits(tree, elementProps(tree, call), hex)
	if !ok {
		return nil, false, nil
	}

	args := tree.CallArguments(call)

	component := tree.Unwrap(args[0])
	if tree.Kind(component) != jsast.KindIdentifier {
		return nil, false, nil
	}

	fnEdits, fnPatched, ok, err := s.threadComponent(tree, tree.Text(component))
	if err != nil {
		return nil, false, err
	}

	if !ok {
		return nil, false, nil
	}

	c := &candidate{key: switchCase, patched: callPatched && fnPatched}
	if !c.patched {
		c.edits = append(c.edits, callEdits...)
		c.edits = append(c.edits, fnEdits...)
	}

	return c, true, nil
}

// contentReturnCall finds, in the case body (unwrapped from an optional
// block), a return of a UI construction call whose props carry the
// true-like discriminator field.
func contentReturnCall(tree *jsast.Tree, switchCase jsast.NodeID) jsast.NodeID {
	for _, stmt := range tree.SwitchCaseBody(switchCase) {
		if tree.Kind(stmt) != jsast.KindReturn {
			continue
		}

		expr := tree.Unwrap(tree.Child(stmt, 0))
		if !isCreateElement(tree, expr) {
			continue
		}

		props := elementProps(tree, expr)
		if tree.Kind(props) != jsast.KindObject {
			continue
		}

		prop, found := tree.ObjectProperty(props, discriminatorProp)
		if found && tree.IsTrueLike(prop.Value) {
			return expr
		}
	}

	return jsast.NoNode
}

// threadComponent resolves the content component by its bound name and
// computes the edits that extend its first-parameter destructuring with
// a color binding and forward that binding into every nested
// construction call lacking a color field.
func (s *ContentColorSite) threadComponent(tree *jsast.Tree, name string) (edits []Edit, patched, ok bool, err error) {
	var fns []candidate

	for _, fn := range tree.FunctionBindings(name) {
		pattern := firstObjectPattern(tree, fn)
		if pattern == jsast.NoNode {
			continue
		}

		if _, hasChildren := tree.ObjectProperty(pattern, childrenProp); !hasChildren {
			continue
		}

		fnEdits, fnPatched, usable := s.threadEdits(tree, fn, pattern)
		if !usable {
			continue
		}

		fns = append(fns, candidate{key: fn, patched: fnPatched, edits: fnEdits})
	}

	if len(fns) == 0 {
		return nil, false, false, nil
	}

	chosen, disambErr := disambiguate(s.Name(), fns)
	if disambErr != nil {
		// More than one unpatched component bound to the same name;
		// guessing could thread color through unrelated code.
		return nil, false, false, disambErr
	}

	return chosen.edits, chosen.patched, true, nil
}

// firstObjectPattern returns the function's first parameter when it is
// an object destructuring pattern.
func firstObjectPattern(tree *jsast.Tree, fn jsast.NodeID) jsast.NodeID {
	params := tree.FunctionParams(fn)
	if len(params) == 0 {
		return jsast.NoNode
	}

	if tree.Kind(params[0]) != jsast.KindObjectPattern {
		return jsast.NoNode
	}

	return params[0]
}

// threadEdits computes the destructuring extension and the per-call
// forwarding edits for one component function. The component is patched
// when the pattern already binds color and every nested construction
// call with literal props carries some color field.
func (s *ContentColorSite) threadEdits(tree *jsast.Tree, fn, pattern jsast.NodeID) (edits []Edit, patched, ok bool) {
	localName := ""

	if prop, found := tree.ObjectProperty(pattern, colorProp); found {
		localName = boundName(tree, prop)
		if localName == "" {
			// A color key bound to something other than a plain
			// identifier is not a shape this tool produced.
			return nil, false, false
		}

		patched = true
	}

	if localName == "" {
		localName = freshIdentifier(tree, fn)

		_, patternEnd := tree.Span(pattern)
		// Before the closing brace; the pattern always has at least the
		// children binding, so a separating comma is required.
		edits = append(edits, Edit{
			Start:       patternEnd - 1,
			End:         patternEnd - 1,
			Replacement: "," + colorProp + ":" + localName,
		})
	}

	body := tree.FunctionBody(fn)

	forward, complete := forwardingEdits(tree, body, localName)
	edits = append(edits, forward...)

	return edits, patched && complete, true
}

// forwardingEdits adds a color field bound to localName to every UI
// construction call inside the body whose props are an object literal
// without one. complete is true when no call needed the addition.
func forwardingEdits(tree *jsast.Tree, body jsast.NodeID, localName string) (edits []Edit, complete bool) {
	complete = true

	if body == jsast.NoNode {
		return nil, complete
	}

	var visit func(jsast.NodeID)

	visit = func(id jsast.NodeID) {
		if tree.Kind(id) == jsast.KindCall && isCreateElement(tree, id) {
			props := elementProps(tree, id)
			if tree.Kind(props) == jsast.KindObject && !hasColorProp(tree, props) {
				complete = false

				start, _ := tree.Span(props)
				insert := colorProp + ":" + localName

				if len(tree.Children(props)) > 0 {
					insert += ","
				}

				edits = append(edits, Edit{Start: start + 1, End: start + 1, Replacement: insert})
			}
		}

		for _, child := range tree.Children(id) {
			visit(child)
		}
	}

	visit(body)

	return edits, complete
}

// boundName extracts the local identifier a pattern property binds.
func boundName(tree *jsast.Tree, prop jsast.Property) string {
	if prop.Value == prop.Node {
		// Shorthand binds its own name.
		return tree.Text(prop.Node)
	}

	if tree.Kind(prop.Value) == jsast.KindIdentifier {
		return tree.Text(prop.Value)
	}

	return ""
}

// freshIdentifier picks a binding name absent from the entire function
// subtree, so it cannot shadow or collide with minified locals.
func freshIdentifier(tree *jsast.Tree, fn jsast.NodeID) string {
	used := tree.Identifiers(fn)

	for i := 0; ; i++ {
		name := fmt.Sprintf("c%d", i)
		if _, taken := used[name]; !taken {
			return name
		}
	}
}
