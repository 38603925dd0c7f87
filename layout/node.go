package layout

// Node is a tree node participating in box layout: parent/sibling/child
// links, an owned Style, the LayoutInfo resolved from it, layout
// outputs, and a lazily-constructed, cached LayoutAlgorithm.
//
// Children are exclusively owned: inserting a node elsewhere first
// unlinks it from its current parent, so the parent/sibling graph is
// always a forest by construction.
type Node struct {
	parent, prev, next         *Node
	firstChild, lastChild      *Node
	childCount                 int
	dirty                      bool
	style                      Style
	layoutInfo                 LayoutInfo
	algorithm                  LayoutAlgorithm
	offsetTop, offsetLeft      float32
	offsetWidth, offsetHeight  float32
}

// NewNode returns a Node with default style and zeroed layout outputs.
func NewNode() *Node {
	return &Node{style: DefaultStyle(), layoutInfo: defaultLayoutInfo()}
}

func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Prev() *Node       { return n.prev }
func (n *Node) Next() *Node       { return n.next }
func (n *Node) FirstChild() *Node { return n.firstChild }
func (n *Node) LastChild() *Node  { return n.lastChild }
func (n *Node) ChildCount() int   { return n.childCount }
func (n *Node) Dirty() bool       { return n.dirty }

// Style returns a pointer to the node's style so a collaborator (e.g.
// a string-based style parser) can mutate it directly via Set, or read
// individual fields.
func (n *Node) Style() *Style { return &n.style }

func (n *Node) LayoutInfo() LayoutInfo { return n.layoutInfo }

func (n *Node) OffsetTop() float32    { return n.offsetTop }
func (n *Node) OffsetLeft() float32   { return n.offsetLeft }
func (n *Node) OffsetWidth() float32  { return n.offsetWidth }
func (n *Node) OffsetHeight() float32 { return n.offsetHeight }

// FindChild returns the child at index, or nil if out of range.
func (n *Node) FindChild(index int) *Node {
	if index < 0 {
		return nil
	}
	child := n.firstChild
	for ; index > 0 && child != nil; index-- {
		child = child.next
	}
	return child
}

// IndexOf returns the index of child among n's children, or the
// number of children if not found.
func (n *Node) IndexOf(child *Node) int {
	index := 0
	for c := n.firstChild; c != nil; c = c.next {
		if c == child {
			return index
		}
		index++
	}
	return index
}

// InsertChildBefore inserts child immediately before reference,
// unlinking it from any current parent first. A nil reference appends
// child at the end.
func (n *Node) InsertChildBefore(child, reference *Node) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	if n.childCount == 0 {
		n.firstChild, n.lastChild = child, child
	} else if reference == nil {
		n.lastChild.next = child
		child.prev = n.lastChild
		n.lastChild = child
	} else {
		pre := reference.prev
		if pre != nil {
			pre.next = child
			child.prev = pre
			child.next = reference
			reference.prev = child
		} else {
			child.next = n.firstChild
			n.firstChild.prev = child
			n.firstChild = child
		}
	}
	child.parent = n
	n.childCount++
	n.MarkDirty(true)
}

// InsertChildAt inserts child at index, unlinking it from any current
// parent first. A negative index appends.
func (n *Node) InsertChildAt(child *Node, index int) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	n.InsertChildBefore(child, n.FindChild(index))
}

// AppendChild appends child as the last child, unlinking it from any
// current parent first.
func (n *Node) AppendChild(child *Node) {
	n.InsertChildAt(child, -1)
}

// RemoveChild unlinks child from n's children. A no-op if child is nil
// or not a child of n.
func (n *Node) RemoveChild(child *Node) {
	if child == nil || n.childCount == 0 || child.parent != n {
		return
	}
	pre, next := child.prev, child.next
	child.parent = nil
	switch {
	case pre == nil && next == nil:
		n.firstChild, n.lastChild = nil, nil
	case pre == nil:
		next.prev = nil
		n.firstChild = next
	case next == nil:
		pre.next = nil
		n.lastChild = pre
	default:
		next.prev = pre
		pre.next = next
	}
	child.prev, child.next = nil, nil
	n.childCount--
	n.MarkDirty(true)
}

// RemoveChildAt removes and returns the child at index, or nil if out
// of range.
func (n *Node) RemoveChildAt(index int) *Node {
	child := n.FindChild(index)
	n.RemoveChild(child)
	return child
}

// SetStyleProperty applies a single named style property and marks the
// subtree dirty, mirroring LayoutNode::SetStyle forwarding to its
// CSSStyle then calling MarkDirty.
func (n *Node) SetStyleProperty(name, value string, reset bool) {
	n.style.Set(name, value, reset)
	n.MarkDirty(true)
}

// MarkDirty marks this node dirty. If recursion is true and this node
// was not already dirty, the parent is marked dirty too, propagating
// to the root. Dirty is purely informational for callers: the core
// itself recomputes on every Measure/Align regardless of this flag.
func (n *Node) MarkDirty(recursion bool) {
	if n.dirty {
		return
	}
	n.dirty = true
	if n.parent != nil && recursion {
		n.parent.MarkDirty(true)
	}
}

// UpdateLayoutInfo resolves min/max and padding/margin against a
// parent content box.
func (n *Node) UpdateLayoutInfo(parentWidth, parentHeight float32) {
	n.layoutInfo.resolve(&n.style, parentWidth, parentHeight)
}

// ApplyWidthConstraints clamps w between min-width and max-width, then
// floors the result at the minimum border-box width (padding + border
// on the left/right). The floor is applied last, so it wins over both
// bounds if the border-box is larger than either.
func (n *Node) ApplyWidthConstraints(w float32) float32 {
	li := &n.layoutInfo
	w = maxF32(w, li.MinWidth)
	w = minF32(w, li.MaxWidth)
	minBorderBox := li.Padding[SideLeft] + li.Padding[SideRight] + n.style.BorderLeft + n.style.BorderRight
	return maxF32(w, minBorderBox)
}

// ApplyHeightConstraints is ApplyWidthConstraints on the vertical axis.
func (n *Node) ApplyHeightConstraints(h float32) float32 {
	li := &n.layoutInfo
	h = maxF32(h, li.MinHeight)
	h = minF32(h, li.MaxHeight)
	minBorderBox := li.Padding[SideTop] + li.Padding[SideBottom] + n.style.BorderTop + n.style.BorderBottom
	return maxF32(h, minBorderBox)
}

// Measure dispatches on display:
//   - None: zeroes this subtree's outputs, drops any cached algorithm,
//     and returns (0, 0).
//   - Flex: constructs (first call) or updates (subsequent calls) the
//     flex algorithm, runs Measure, and returns the resulting offsets.
//   - Grid: reserved; a no-op that returns the previous outputs.
func (n *Node) Measure(width, height float32, widthMode, heightMode LayoutMode) (float32, float32) {
	switch n.style.Display {
	case DisplayNone:
		n.measureDisplayNone()
		return 0, 0
	case DisplayFlex:
		if n.algorithm != nil {
			n.algorithm.Update(width, height, widthMode, heightMode)
		} else {
			alg := newFlexLayoutAlgorithm(n)
			n.algorithm = alg
			alg.Initialize(width, height, widthMode, heightMode)
		}
		n.algorithm.Measure()
	case DisplayGrid:
		// Reserved enumeration without an implementation.
	}
	return n.offsetWidth, n.offsetHeight
}

// measureDisplayNone zeroes this node and every descendant's layout
// outputs and drops any cached algorithm, recursively.
func (n *Node) measureDisplayNone() {
	n.algorithm = nil
	n.offsetTop, n.offsetLeft, n.offsetWidth, n.offsetHeight = 0, 0, 0, 0
	for c := n.firstChild; c != nil; c = c.next {
		c.measureDisplayNone()
	}
}

// Align runs this node's cached algorithm's Alignment, then recurses
// pre-order into children. A node with no cached algorithm (display
// none, or never measured — e.g. an absolutely positioned item) is
// skipped, and its subtree is left untouched.
func (n *Node) Align() {
	if n.algorithm == nil {
		return
	}
	n.algorithm.Alignment()
	for c := n.firstChild; c != nil; c = c.next {
		c.Align()
	}
}

func (n *Node) setOffsetTop(v float32)    { n.offsetTop = v }
func (n *Node) setOffsetLeft(v float32)   { n.offsetLeft = v }
func (n *Node) setOffsetWidth(v float32)  { n.offsetWidth = v }
func (n *Node) setOffsetHeight(v float32) { n.offsetHeight = v }
