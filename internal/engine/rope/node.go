package rope

import "strings"

// Tree structure constants
const (
	// MinChildren is the minimum children per internal node (except root).
	MinChildren = 4

	// MaxChildren is the maximum children per internal node before splitting.
	MaxChildren = 8

	// MaxChunksPerLeaf is the maximum chunks in a leaf node.
	MaxChunksPerLeaf = 4
)

// Node represents a node in the rope B+ tree.
// Leaf nodes (height == 0) contain text chunks.
// Internal nodes (height > 0) contain child node references.
type Node struct {
	height  uint8       // 0 for leaves, >0 for internal
	summary TextSummary // Aggregated metrics for entire subtree

	// Internal node fields (height > 0)
	children       []*Node       // Child nodes
	childSummaries []TextSummary // Per-child summaries for efficient seeking

	// Leaf node fields (height == 0)
	chunks []Chunk // Text chunks in this leaf
}

// newLeafNode creates an empty leaf node.
func newLeafNode() *Node {
	return &Node{
		height: 0,
		chunks: make([]Chunk, 0, MaxChunksPerLeaf),
	}
}

// newLeafNodeWithChunks creates a leaf node with the given chunks.
func newLeafNodeWithChunks(chunks []Chunk) *Node {
	n := &Node{
		height: 0,
		chunks: chunks,
	}
	n.recomputeSummary()
	return n
}

// newInternalNode creates an internal node with the given children.
func newInternalNode(children []*Node) *Node {
	if len(children) == 0 {
		return newLeafNode()
	}

	height := children[0].height + 1
	summaries := make([]TextSummary, len(children))
	var total TextSummary

	for i, child := range children {
		summaries[i] = child.summary
		total = total.Add(child.summary)
	}

	return &Node{
		height:         height,
		summary:        total,
		children:       children,
		childSummaries: summaries,
	}
}

// IsLeaf returns true if this is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.height == 0
}

// Chars returns the rune count of text in this subtree.
func (n *Node) Chars() int {
	return n.summary.Chars
}

// recomputeSummary recalculates the summary from children or chunks.
func (n *Node) recomputeSummary() {
	n.summary = TextSummary{}
	if n.IsLeaf() {
		for _, chunk := range n.chunks {
			n.summary = n.summary.Add(chunk.Summary())
		}
		return
	}

	n.childSummaries = make([]TextSummary, len(n.children))
	for i, child := range n.children {
		n.childSummaries[i] = child.summary
		n.summary = n.summary.Add(child.summary)
	}
}

// clone creates a shallow copy of the node.
func (n *Node) clone() *Node {
	if n.IsLeaf() {
		chunks := make([]Chunk, len(n.chunks))
		copy(chunks, n.chunks)
		return &Node{
			height:  0,
			summary: n.summary,
			chunks:  chunks,
		}
	}

	children := make([]*Node, len(n.children))
	copy(children, n.children)
	summaries := make([]TextSummary, len(n.childSummaries))
	copy(summaries, n.childSummaries)

	return &Node{
		height:         n.height,
		summary:        n.summary,
		children:       children,
		childSummaries: summaries,
	}
}

// appendTo appends all text in this subtree to the builder.
func (n *Node) appendTo(sb *strings.Builder) {
	if n.IsLeaf() {
		for _, chunk := range n.chunks {
			sb.WriteString(chunk.String())
		}
		return
	}

	for _, child := range n.children {
		child.appendTo(sb)
	}
}

// textInRange extracts text in the rune range [start, end).
func (n *Node) textInRange(start, end int) string {
	if start >= end || start >= n.Chars() {
		return ""
	}
	if end > n.Chars() {
		end = n.Chars()
	}

	var sb strings.Builder
	n.appendRange(&sb, start, end)
	return sb.String()
}

// appendRange appends text in the rune range to the builder.
func (n *Node) appendRange(sb *strings.Builder, start, end int) {
	if start >= end {
		return
	}

	if n.IsLeaf() {
		offset := 0
		for _, chunk := range n.chunks {
			chunkChars := chunk.Chars()
			chunkEnd := offset + chunkChars

			if chunkEnd <= start {
				offset = chunkEnd
				continue
			}
			if offset >= end {
				break
			}

			sliceStart := 0
			if start > offset {
				sliceStart = start - offset
			}
			sliceEnd := chunkChars
			if end < chunkEnd {
				sliceEnd = end - offset
			}

			data := chunk.String()
			from := byteIndexOfChar(data, sliceStart)
			to := byteIndexOfChar(data, sliceEnd)
			sb.WriteString(data[from:to])
			offset = chunkEnd
		}
		return
	}

	offset := 0
	for i, child := range n.children {
		childChars := n.childSummaries[i].Chars
		childEnd := offset + childChars

		if childEnd <= start {
			offset = childEnd
			continue
		}
		if offset >= end {
			break
		}

		childStart := 0
		if start > offset {
			childStart = start - offset
		}
		childEndAdj := childChars
		if end < childEnd {
			childEndAdj = end - offset
		}

		child.appendRange(sb, childStart, childEndAdj)
		offset = childEnd
	}
}

// charToByte converts a rune offset within this subtree to a byte offset.
func (n *Node) charToByte(c int) int {
	if c <= 0 {
		return 0
	}
	if c >= n.summary.Chars {
		return n.summary.Bytes
	}

	if n.IsLeaf() {
		bytes := 0
		for _, chunk := range n.chunks {
			if c < chunk.Chars() {
				return bytes + byteIndexOfChar(chunk.String(), c)
			}
			c -= chunk.Chars()
			bytes += chunk.Len()
		}
		return bytes
	}

	bytes := 0
	for i, child := range n.children {
		s := n.childSummaries[i]
		if c < s.Chars {
			return bytes + child.charToByte(c)
		}
		c -= s.Chars
		bytes += s.Bytes
	}
	return bytes
}

// newlinesBeforeChar counts '\n' runes among the first c runes of this subtree.
func (n *Node) newlinesBeforeChar(c int) int {
	if c <= 0 {
		return 0
	}
	if c >= n.summary.Chars {
		return n.summary.Newlines
	}

	if n.IsLeaf() {
		newlines := 0
		for _, chunk := range n.chunks {
			if c < chunk.Chars() {
				return newlines + newlinesInFirstChars(chunk.String(), c)
			}
			c -= chunk.Chars()
			newlines += chunk.Summary().Newlines
		}
		return newlines
	}

	newlines := 0
	for i, child := range n.children {
		s := n.childSummaries[i]
		if c < s.Chars {
			return newlines + child.newlinesBeforeChar(c)
		}
		c -= s.Chars
		newlines += s.Newlines
	}
	return newlines
}

// charForLine returns the rune offset of the start of the given line,
// i.e. the position just after the line-th newline.
func (n *Node) charForLine(line int) int {
	if line <= 0 {
		return 0
	}
	if line > n.summary.Newlines {
		return n.summary.Chars
	}

	if n.IsLeaf() {
		chars := 0
		remaining := line
		for _, chunk := range n.chunks {
			nl := chunk.Summary().Newlines
			if remaining <= nl {
				count, _ := charsThroughNewline(chunk.String(), remaining)
				return chars + count
			}
			remaining -= nl
			chars += chunk.Chars()
		}
		return chars
	}

	chars := 0
	remaining := line
	for i, child := range n.children {
		s := n.childSummaries[i]
		if remaining <= s.Newlines {
			return chars + child.charForLine(remaining)
		}
		remaining -= s.Newlines
		chars += s.Chars
	}
	return chars
}

// charAt returns the rune at the given rune offset.
func (n *Node) charAt(c int) (rune, bool) {
	if c < 0 || c >= n.summary.Chars {
		return 0, false
	}

	if n.IsLeaf() {
		for _, chunk := range n.chunks {
			if c < chunk.Chars() {
				return runeAtIndex(chunk.String(), c), true
			}
			c -= chunk.Chars()
		}
		return 0, false
	}

	for i, child := range n.children {
		s := n.childSummaries[i]
		if c < s.Chars {
			return child.charAt(c)
		}
		c -= s.Chars
	}
	return 0, false
}

// split splits the node at the given rune offset.
// Returns two nodes: left contains [0, offset), right contains [offset, end).
func (n *Node) split(offset int) (*Node, *Node) {
	if offset <= 0 {
		return newLeafNode(), n.clone()
	}
	if offset >= n.Chars() {
		return n.clone(), newLeafNode()
	}

	if n.IsLeaf() {
		return n.splitLeaf(offset)
	}
	return n.splitInternal(offset)
}

// splitLeaf splits a leaf node at the given rune offset.
func (n *Node) splitLeaf(offset int) (*Node, *Node) {
	var leftChunks, rightChunks []Chunk
	current := 0

	for _, chunk := range n.chunks {
		chunkChars := chunk.Chars()

		if current+chunkChars <= offset {
			leftChunks = append(leftChunks, chunk)
		} else if current >= offset {
			rightChunks = append(rightChunks, chunk)
		} else {
			left, right := chunk.Split(offset - current)
			if !left.IsEmpty() {
				leftChunks = append(leftChunks, left)
			}
			if !right.IsEmpty() {
				rightChunks = append(rightChunks, right)
			}
		}
		current += chunkChars
	}

	return newLeafNodeWithChunks(leftChunks), newLeafNodeWithChunks(rightChunks)
}

// splitInternal splits an internal node at the given rune offset.
func (n *Node) splitInternal(offset int) (*Node, *Node) {
	var leftChildren, rightChildren []*Node
	current := 0

	for i, child := range n.children {
		childChars := n.childSummaries[i].Chars

		if current+childChars <= offset {
			leftChildren = append(leftChildren, child)
		} else if current >= offset {
			rightChildren = append(rightChildren, child)
		} else {
			leftChild, rightChild := child.split(offset - current)
			if leftChild.Chars() > 0 {
				leftChildren = append(leftChildren, leftChild)
			}
			if rightChild.Chars() > 0 {
				rightChildren = append(rightChildren, rightChild)
			}
		}
		current += childChars
	}

	return buildNodeFromChildren(leftChildren), buildNodeFromChildren(rightChildren)
}

// buildNodeFromChildren creates a balanced tree from a list of child nodes.
func buildNodeFromChildren(children []*Node) *Node {
	if len(children) == 0 {
		return newLeafNode()
	}
	if len(children) == 1 {
		return children[0]
	}
	if len(children) <= MaxChildren {
		return newInternalNode(children)
	}

	var parents []*Node
	for i := 0; i < len(children); i += MaxChildren {
		end := i + MaxChildren
		if end > len(children) {
			end = len(children)
		}
		parents = append(parents, newInternalNode(children[i:end]))
	}

	return buildNodeFromChildren(parents)
}

// concat concatenates two nodes.
func concat(left, right *Node) *Node {
	if left == nil || left.Chars() == 0 {
		if right == nil {
			return newLeafNode()
		}
		return right
	}
	if right == nil || right.Chars() == 0 {
		return left
	}

	if left.IsLeaf() && right.IsLeaf() {
		return concatLeaves(left, right)
	}

	// Bring to same height by wrapping the shorter one.
	for left.height < right.height {
		left = newInternalNode([]*Node{left})
	}
	for right.height < left.height {
		right = newInternalNode([]*Node{right})
	}

	return mergeNodes(left, right)
}

// concatLeaves concatenates two leaf nodes.
func concatLeaves(left, right *Node) *Node {
	totalChunks := len(left.chunks) + len(right.chunks)

	if totalChunks <= MaxChunksPerLeaf {
		chunks := make([]Chunk, 0, totalChunks)
		chunks = append(chunks, left.chunks...)
		chunks = append(chunks, right.chunks...)
		return newLeafNodeWithChunks(chunks)
	}

	return newInternalNode([]*Node{left.clone(), right.clone()})
}

// mergeNodes merges two nodes of the same height.
func mergeNodes(left, right *Node) *Node {
	if left.IsLeaf() {
		return concatLeaves(left, right)
	}

	allChildren := make([]*Node, 0, len(left.children)+len(right.children))
	allChildren = append(allChildren, left.children...)
	allChildren = append(allChildren, right.children...)

	if len(allChildren) <= MaxChildren {
		return newInternalNode(allChildren)
	}

	return buildNodeFromChildren(allChildren)
}
