package guidefmt

// LinkKind identifies one of the four navigation links a node can carry.
type LinkKind uint8

const (
	// LinkPrev points at the previous node in reading order.
	LinkPrev LinkKind = iota
	// LinkNext points at the next node in reading order.
	LinkNext
	// LinkToc points at the table-of-contents node for this section.
	LinkToc
	// LinkIndex points at the index node for this section.
	LinkIndex

	linkKinds
)

var linkKeywords = [linkKinds]string{"@prev", "@next", "@toc", "@index"}

// Keyword returns the declaration keyword for the link kind.
func (k LinkKind) Keyword() string {
	return linkKeywords[k]
}

// linkSet is an optional-valued mapping from link kind to target node
// name. set overwrites unconditionally (and deletes on an empty target);
// fill writes only when no value is present, so back-filled defaults can
// never clobber an author's explicit choice.
type linkSet struct {
	target [linkKinds]string
	has    [linkKinds]bool
}

func (ls *linkSet) set(kind LinkKind, target string) {
	if target == "" {
		ls.target[kind] = ""
		ls.has[kind] = false
		return
	}
	ls.target[kind] = target
	ls.has[kind] = true
}

func (ls *linkSet) fill(kind LinkKind, target string) {
	if ls.has[kind] || target == "" {
		return
	}
	ls.target[kind] = target
	ls.has[kind] = true
}

func (ls *linkSet) get(kind LinkKind) (string, bool) {
	return ls.target[kind], ls.has[kind]
}

// Node is one addressable unit of the document: a unique name, an optional
// header remainder (typically a quoted title), navigation links, and an
// ordered body of finished output lines.
type Node struct {
	Name  string
	Title string
	Lines []string

	links linkSet
}

// Link returns the target of the given navigation link, if set.
func (n *Node) Link(kind LinkKind) (string, bool) {
	return n.links.get(kind)
}

// Document owns the preamble lines and the node sequence in creation
// order. Nodes reference each other only by name.
type Document struct {
	Preamble []string
	Nodes    []*Node

	width int
}

// Width returns the wrap width the document was formatted for.
func (d *Document) Width() int {
	if d.width <= 0 {
		return DefaultWidth
	}
	return d.width
}

// Backfill supplies default navigation links for nodes that did not set
// them explicitly. A forward pass carries the previous node's name and the
// most recent toc/index targets; a reverse pass carries the next node's
// name. Explicit links always win.
func (d *Document) Backfill() {
	var prev, toc, index string
	for _, n := range d.Nodes {
		n.links.fill(LinkPrev, prev)
		n.links.fill(LinkToc, toc)
		n.links.fill(LinkIndex, index)
		if v, ok := n.links.get(LinkToc); ok {
			toc = v
		}
		if v, ok := n.links.get(LinkIndex); ok {
			index = v
		}
		prev = n.Name
	}

	var next string
	for i := len(d.Nodes) - 1; i >= 0; i-- {
		n := d.Nodes[i]
		n.links.fill(LinkNext, next)
		next = n.Name
	}
}
