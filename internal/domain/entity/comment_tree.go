package entity

import "strings"

// CommentNode is a comment with its nested replies.
type CommentNode struct {
	Comment
	Children []*CommentNode `json:"children"`
}

// BuildCommentTree turns a flat list into a forest. Replies are appended to
// their parent in input order; a reply whose parent is not in the list is
// kept as a root.
func BuildCommentTree(comments []Comment) []*CommentNode {
	index := make(map[string]*CommentNode, len(comments))
	nodes := make([]*CommentNode, len(comments))
	for i, c := range comments {
		n := &CommentNode{Comment: c, Children: []*CommentNode{}}
		nodes[i] = n
		if _, dup := index[c.ID]; !dup {
			index[c.ID] = n
		}
	}

	roots := make([]*CommentNode, 0, len(comments))
	for i, c := range comments {
		n := nodes[i]
		if c.ParentCommentID != "" {
			if parent, ok := index[c.ParentCommentID]; ok && parent != n {
				parent.Children = append(parent.Children, n)
				continue
			}
		}
		roots = append(roots, n)
	}
	return roots
}

// WalkCommentTree visits every node depth first, parents before children.
func WalkCommentTree(forest []*CommentNode, fn func(n *CommentNode, depth int)) {
	var walk func(nodes []*CommentNode, depth int)
	walk = func(nodes []*CommentNode, depth int) {
		for _, n := range nodes {
			fn(n, depth)
			walk(n.Children, depth+1)
		}
	}
	walk(forest, 0)
}

// RenderCommentTree returns one line per comment, indented two spaces per level.
func RenderCommentTree(forest []*CommentNode) []string {
	var lines []string
	WalkCommentTree(forest, func(n *CommentNode, depth int) {
		var b strings.Builder
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(n.User.Name)
		b.WriteString(": ")
		if n.ReplyTo != nil && n.ReplyTo.Name != "" {
			b.WriteString("@")
			b.WriteString(n.ReplyTo.Name)
			b.WriteString(" ")
		}
		b.WriteString(n.Content)
		lines = append(lines, b.String())
	})
	return lines
}
