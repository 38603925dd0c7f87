package layout

// LayoutAlgorithm is the polymorphic capability a container node
// dispatches to based on its display value. Initialize runs once, the
// first time a node with a non-None display is measured; Update runs
// on every subsequent measure of the same node.
type LayoutAlgorithm interface {
	Initialize(width, height float32, widthMode, heightMode LayoutMode)
	Update(width, height float32, widthMode, heightMode LayoutMode)
	Measure()
	Alignment()
}
