package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackui/internal/view"
)

// grid builds root(vertical) > [row0(horizontal) > a0 a1, row1(horizontal) > b0 b1].
func grid(t *testing.T) (*view.Tree, *view.Node, [][]*view.Node) {
	t.Helper()
	tree := view.NewTree()
	root := tree.New("root", view.WithLayout(view.NewBox(view.Vertical)))
	var cells [][]*view.Node
	for r, name := range []string{"a", "b"} {
		row := tree.New(name, view.WithLayout(view.NewBox(view.Horizontal)))
		root.AddChild(row)
		cells = append(cells, nil)
		for c := range 2 {
			cell := tree.New(name+string(rune('0'+c)), view.Focusable())
			row.AddChild(cell)
			cells[r] = append(cells[r], cell)
		}
	}
	return tree, root, cells
}

func TestManager_GiveResolvesDefaultFocus(t *testing.T) {
	tree, root, cells := grid(t)
	m := NewManager(tree)
	var changes []*view.Node
	m.Changed.Subscribe(func(n *view.Node) { changes = append(changes, n) })

	m.Give(root)

	require.Equal(t, cells[0][0], m.Current())
	assert.True(t, cells[0][0].IsFocused())
	assert.Equal(t, []*view.Node{cells[0][0]}, changes)

	m.Give(cells[0][0])
	assert.Len(t, changes, 1, "giving focus to the focused node is a no-op")
}

func TestManager_GiveRunsHooks(t *testing.T) {
	tree := view.NewTree()
	var log []string
	hooks := view.Hooks{
		FocusGained: func(n *view.Node) { log = append(log, "gained "+n.Name) },
		FocusLost:   func(n *view.Node) { log = append(log, "lost "+n.Name) },
	}
	a := tree.New("a", view.Focusable(), view.WithHooks(hooks))
	b := tree.New("b", view.Focusable(), view.WithHooks(hooks))
	m := NewManager(tree)

	m.Give(a)
	m.Give(b)
	m.Give(nil)

	assert.Equal(t, []string{"gained a", "lost a", "gained b", "lost b"}, log)
	assert.Nil(t, m.Current())
}

func TestManager_DestroyedFocusResolvesNil(t *testing.T) {
	tree := view.NewTree()
	a := tree.New("a", view.Focusable())
	m := NewManager(tree)
	m.Give(a)
	tree.Destroy(a)
	assert.Nil(t, m.Current())
}

func TestNavigate_WithinRow(t *testing.T) {
	tree, root, cells := grid(t)
	m := NewManager(tree)
	nv := &Navigator{Focus: m}
	m.Give(root)

	assert.True(t, nv.Navigate(view.Right))
	assert.Equal(t, cells[0][1], m.Current())
}

func TestNavigate_ClimbsToAncestor(t *testing.T) {
	tree, root, cells := grid(t)
	m := NewManager(tree)
	nv := &Navigator{Focus: m}
	m.Give(root)

	// Row "a" has no vertical neighbour for a0; the root box finds row "b".
	assert.True(t, nv.Navigate(view.Down))
	assert.Equal(t, cells[1][0], m.Current())
}

func TestNavigate_RejectsAtBoundary(t *testing.T) {
	tree, root, cells := grid(t)
	m := NewManager(tree)
	var rejected []view.Direction
	nv := &Navigator{Focus: m, Reject: func(n *view.Node, dir view.Direction) {
		assert.Equal(t, cells[0][0], n)
		rejected = append(rejected, dir)
	}}
	m.Give(root)

	assert.False(t, nv.Navigate(view.Left))
	assert.False(t, nv.Navigate(view.Up))
	assert.Equal(t, cells[0][0], m.Current())
	assert.Equal(t, []view.Direction{view.Left, view.Up}, rejected)
}

func TestNavigate_NoParentIsNoop(t *testing.T) {
	tree := view.NewTree()
	lone := tree.New("lone", view.Focusable())
	m := NewManager(tree)
	rejected := false
	nv := &Navigator{Focus: m, Reject: func(*view.Node, view.Direction) { rejected = true }}

	assert.False(t, nv.Navigate(view.Down), "no focus")
	m.Give(lone)
	assert.False(t, nv.Navigate(view.Down), "rootless focus")
	assert.False(t, rejected)
	assert.Equal(t, lone, m.Current())
}
