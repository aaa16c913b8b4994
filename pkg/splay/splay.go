// Package splay implements top-down splay trees over an index arena.
//
// Nodes are int32 indices into parallel link slices, so several trees can
// share one arena and nodes can be reused between passes without allocation.
// Reference: Sleator and Tarjan, "Self-adjusting Binary Search Trees",
// JACM 32(3), 1985, p. 668.
package splay

// Nil is the empty link.
const Nil int32 = -1

// Cut reports where the target lies relative to node i:
// negative for left of i, zero for at i, positive for right of i.
type Cut func(i int32) int

type Arena struct {
	left  []int32
	right []int32
}

// NewArena returns an arena with n unlinked nodes.
func NewArena(n int) *Arena {
	a := &Arena{}
	a.Reset(n)
	return a
}

// Reset resizes the arena to n nodes and unlinks all of them.
func (a *Arena) Reset(n int) {
	if cap(a.left) < n {
		a.left = make([]int32, n)
		a.right = make([]int32, n)
	}
	a.left = a.left[:n]
	a.right = a.right[:n]
	for i := range a.left {
		a.left[i] = Nil
		a.right[i] = Nil
	}
}

// Alloc appends one unlinked node and returns its index.
func (a *Arena) Alloc() int32 {
	a.left = append(a.left, Nil)
	a.right = append(a.right, Nil)
	return int32(len(a.left) - 1)
}

func (a *Arena) Size() int { return len(a.left) }

func (a *Arena) Left(i int32) int32  { return a.left[i] }
func (a *Arena) Right(i int32) int32 { return a.right[i] }

func (a *Arena) SetLeft(i, c int32)  { a.left[i] = c }
func (a *Arena) SetRight(i, c int32) { a.right[i] = c }

// Unlink clears both children of i.
func (a *Arena) Unlink(i int32) {
	a.left[i] = Nil
	a.right[i] = Nil
}

// assembly keeps the tails of the left and right trees built during a
// top-down splay.
type assembly struct {
	lRoot, lTail int32
	rRoot, rTail int32
}

func newAssembly() assembly {
	return assembly{Nil, Nil, Nil, Nil}
}

// linkLeft hangs x as the largest node of the left tree.
func (s *assembly) linkLeft(a *Arena, x int32) {
	if s.lTail == Nil {
		s.lRoot = x
	} else {
		a.right[s.lTail] = x
	}
	s.lTail = x
}

// linkRight hangs x as the smallest node of the right tree.
func (s *assembly) linkRight(a *Arena, x int32) {
	if s.rTail == Nil {
		s.rRoot = x
	} else {
		a.left[s.rTail] = x
	}
	s.rTail = x
}

// finish makes x the root with the left and right trees as its children.
func (s *assembly) finish(a *Arena, x int32) int32 {
	if s.lTail == Nil {
		s.lRoot = a.left[x]
	} else {
		a.right[s.lTail] = a.left[x]
	}
	a.left[x] = s.lRoot

	if s.rTail == Nil {
		s.rRoot = a.right[x]
	} else {
		a.left[s.rTail] = a.right[x]
	}
	a.right[x] = s.rRoot
	return x
}

// Splay rotates the node selected by c to the root of the tree at t and
// returns it. When no node matches exactly, the last node visited before a
// nil child would have been followed becomes the root; callers compare it
// themselves.
func (a *Arena) Splay(t int32, c Cut) int32 {
	if t == Nil {
		return Nil
	}

	x := t
	s := newAssembly()

	for {
		v := c(x)
		if v == 0 {
			break
		}

		if v < 0 {
			y := a.left[x]
			if y == Nil {
				break
			}
			vv := c(y)
			if vv == 0 {
				// zig
				s.linkRight(a, x)
				x = y
				break
			}
			if vv < 0 {
				z := a.left[y]
				if z == Nil {
					s.linkRight(a, x)
					x = y
					break
				}
				// zig-zig
				a.left[x] = a.right[y]
				a.right[y] = x
				s.linkRight(a, y)
				x = z
			} else {
				z := a.right[y]
				if z == Nil {
					s.linkRight(a, x)
					x = y
					break
				}
				// zig-zag
				s.linkLeft(a, y)
				s.linkRight(a, x)
				x = z
			}
			continue
		}

		y := a.right[x]
		if y == Nil {
			break
		}
		vv := c(y)
		if vv == 0 {
			s.linkLeft(a, x)
			x = y
			break
		}
		if vv > 0 {
			z := a.right[y]
			if z == Nil {
				s.linkLeft(a, x)
				x = y
				break
			}
			a.right[x] = a.left[y]
			a.left[y] = x
			s.linkLeft(a, y)
			x = z
		} else {
			z := a.left[y]
			if z == Nil {
				s.linkLeft(a, x)
				x = y
				break
			}
			s.linkRight(a, y)
			s.linkLeft(a, x)
			x = z
		}
	}

	return s.finish(a, x)
}

// SplayMin rotates the smallest node of t to the root. The result has no
// left child.
func (a *Arena) SplayMin(t int32) int32 {
	if t == Nil {
		return Nil
	}

	x := t
	s := newAssembly()
	for {
		y := a.left[x]
		if y == Nil {
			break
		}
		z := a.left[y]
		if z == Nil {
			s.linkRight(a, x)
			x = y
			break
		}
		a.left[x] = a.right[y]
		a.right[y] = x
		s.linkRight(a, y)
		x = z
	}
	return s.finish(a, x)
}

// SplayMax rotates the largest node of t to the root. The result has no
// right child.
func (a *Arena) SplayMax(t int32) int32 {
	if t == Nil {
		return Nil
	}

	x := t
	s := newAssembly()
	for {
		y := a.right[x]
		if y == Nil {
			break
		}
		z := a.right[y]
		if z == Nil {
			s.linkLeft(a, x)
			x = y
			break
		}
		a.right[x] = a.left[y]
		a.left[y] = x
		s.linkLeft(a, y)
		x = z
	}
	return s.finish(a, x)
}

// Walk calls fn for every node of t in order. It stops early when fn
// returns false.
func (a *Arena) Walk(t int32, fn func(i int32) bool) bool {
	for t != Nil {
		if !a.Walk(a.left[t], fn) {
			return false
		}
		if !fn(t) {
			return false
		}
		t = a.right[t]
	}
	return true
}

// Len counts the nodes of t.
func (a *Arena) Len(t int32) int {
	n := 0
	a.Walk(t, func(int32) bool {
		n++
		return true
	})
	return n
}
