package comment_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/marquee/internal/social/comment"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newComment(id string, parentID string, minute int) *comment.Comment {
	c := &comment.Comment{
		ID:        id,
		MovieID:   "movie",
		AuthorID:  "author-" + id,
		Body:      "body " + id,
		CreatedAt: epoch.Add(time.Duration(minute) * time.Minute),
	}
	if parentID != "" {
		c.ParentID = &parentID
	}
	return c
}

func ids(nodes []*comment.Node) []string {
	out := make([]string, len(nodes))
	for i, node := range nodes {
		out[i] = node.ID
	}
	return out
}

func TestAssemble_Chain(t *testing.T) {
	forest := comment.Assemble([]*comment.Comment{
		newComment("C", "B", 2),
		newComment("A", "", 0),
		newComment("B", "A", 1),
	})

	require.Len(t, forest, 1)
	a := forest[0]
	assert.Equal(t, "A", a.ID)
	require.Len(t, a.Children, 1)
	b := a.Children[0]
	assert.Equal(t, "B", b.ID)
	require.Len(t, b.Children, 1)
	assert.Equal(t, "C", b.Children[0].ID)
	assert.Empty(t, b.Children[0].Children)
	assert.NotNil(t, b.Children[0].Children)
}

func TestAssemble_OrphanBecomesRoot(t *testing.T) {
	forest := comment.Assemble([]*comment.Comment{
		newComment("A", "", 0),
		newComment("D", "deleted", 1),
	})

	assert.ElementsMatch(t, []string{"A", "D"}, ids(forest))
}

func TestAssemble_DuplicatesKeepFirst(t *testing.T) {
	first := newComment("A", "", 0)
	second := newComment("A", "", 5)
	second.Body = "second"

	forest := comment.Assemble([]*comment.Comment{first, second, nil})

	require.Len(t, forest, 1)
	assert.Same(t, first, forest[0].Comment)
}

func TestAssemble_SelfParent(t *testing.T) {
	forest := comment.Assemble([]*comment.Comment{newComment("A", "A", 0)})

	require.Len(t, forest, 1)
	assert.Empty(t, forest[0].Children)
}

func TestAssemble_CycleIsBroken(t *testing.T) {
	forest := comment.Assemble([]*comment.Comment{
		newComment("X", "Y", 0),
		newComment("Y", "X", 1),
		newComment("R", "", 2),
	})

	require.Len(t, forest, 2)
	assert.Equal(t, []string{"R", "X"}, ids(forest))
	require.Len(t, forest[1].Children, 1)
	assert.Equal(t, "Y", forest[1].Children[0].ID)
	assert.Empty(t, forest[1].Children[0].Children)
}

func TestAssemble_CycleKeepsReplyHangingOffLoop(t *testing.T) {
	forest := comment.Assemble([]*comment.Comment{
		newComment("C", "A", 0),
		newComment("A", "B", 1),
		newComment("B", "A", 2),
	})

	require.Len(t, forest, 1)
	assert.Equal(t, "A", forest[0].ID)
	assert.Equal(t, []string{"C", "B"}, ids(forest[0].Children))
	assert.Empty(t, forest[0].Children[1].Children)
}

func TestAssemble_CycleCutAtEarliestMember(t *testing.T) {
	forest := comment.Assemble([]*comment.Comment{
		newComment("T2", "T1", 0),
		newComment("T1", "L2", 1),
		newComment("L1", "L3", 2),
		newComment("L2", "L1", 3),
		newComment("L3", "L2", 4),
	})

	require.Len(t, forest, 1)
	assert.Equal(t, "L1", forest[0].ID)

	visited := 0
	comment.Walk(forest, func(*comment.Node) { visited++ })
	assert.Equal(t, 5, visited)
}

func TestAssemble_DeepChain(t *testing.T) {
	const depth = 5000

	comments := make([]*comment.Comment, 0, depth)
	comments = append(comments, newComment("n0", "", 0))
	for i := 1; i < depth; i++ {
		comments = append(comments, newComment(fmt.Sprintf("n%d", i), fmt.Sprintf("n%d", i-1), i))
	}

	forest := comment.Assemble(comments)
	require.Len(t, forest, 1)

	visited := 0
	comment.Walk(forest, func(*comment.Node) { visited++ })
	assert.Equal(t, depth, visited)

	comment.SortForest(forest, comment.SortNewest)
}

func TestWalk_ParentsBeforeChildren(t *testing.T) {
	forest := comment.Assemble([]*comment.Comment{
		newComment("A", "", 0),
		newComment("A1", "A", 1),
		newComment("A2", "A", 2),
		newComment("B", "", 3),
	})

	var order []string
	comment.Walk(forest, func(node *comment.Node) { order = append(order, node.ID) })

	assert.Equal(t, []string{"A", "A1", "A2", "B"}, order)
}
