package sites

// Anchors are exact literal values known to appear in every supported
// build near the sites to patch. They are user-facing copy, never
// internal identifiers: the minifier renames identifiers on every
// vendor release, but rendered text survives.
var headerAnchors = []string{
	"✻ Thinking…",
	"Thinking…",
	"Thinking",
}

// contentTag is the switch-case tag selecting the thinking content
// renderer. Other cases elsewhere in the tree share this tag; the
// discriminatorProp on the returned element's props tells them apart.
const contentTag = "thinking"

// discriminatorProp is the boolean styling field carried only by the
// thinking content element among the cases sharing contentTag.
const discriminatorProp = "italic"

// createElementMethod is the UI construction call's method name. The
// receiver is minifier-renamed; the method name is stable library API.
const createElementMethod = "createElement"

// colorProp is the styling field the color sites add or replace.
const colorProp = "color"

// childrenProp is the destructured field naming a component's rendered
// children; used to recover the local binding inside the content
// component.
const childrenProp = "children"
