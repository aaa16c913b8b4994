package splay

import (
	"math/rand"
	"testing"

	"github.com/tdewolff/test"
)

// keyed builds a right-leaning chain over keys (which must be sorted) so
// the first splays have to do real work.
func keyed(keys []int) (*Arena, int32) {
	a := NewArena(len(keys))
	root := Nil
	for i := len(keys) - 1; i >= 0; i-- {
		a.SetRight(int32(i), root)
		root = int32(i)
	}
	return a, root
}

func cutFor(keys []int, target int) Cut {
	return func(i int32) int {
		switch {
		case target < keys[i]:
			return -1
		case target > keys[i]:
			return 1
		}
		return 0
	}
}

func inorder(a *Arena, t int32) []int32 {
	var out []int32
	a.Walk(t, func(i int32) bool {
		out = append(out, i)
		return true
	})
	return out
}

func TestSplayEmpty(t *testing.T) {
	a := NewArena(0)
	test.T(t, a.Splay(Nil, func(int32) int { return 0 }), Nil)
	test.T(t, a.SplayMin(Nil), Nil)
	test.T(t, a.SplayMax(Nil), Nil)
	test.T(t, a.Len(Nil), 0)
}

func TestSplayFindsEveryKey(t *testing.T) {
	keys := []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}
	a, root := keyed(keys)

	order := []int{13, 1, 19, 7, 5, 5, 17, 3, 11, 9, 15}
	for _, k := range order {
		root = a.Splay(root, cutFor(keys, k))
		test.T(t, keys[root], k)
		test.T(t, len(inorder(a, root)), len(keys))
	}

	got := inorder(a, root)
	for i, n := range got {
		test.T(t, n, int32(i), "in-order traversal must survive splaying")
	}
}

func TestSplayNearest(t *testing.T) {
	keys := []int{10, 20, 30, 40}
	a, root := keyed(keys)

	root = a.Splay(root, cutFor(keys, 25))
	k := keys[root]
	test.That(t, k == 20 || k == 30, "nearest node must neighbour the target, got", k)

	root = a.Splay(root, cutFor(keys, 100))
	test.T(t, keys[root], 40)
	test.T(t, a.Right(root), Nil)

	root = a.Splay(root, cutFor(keys, -5))
	test.T(t, keys[root], 10)
	test.T(t, a.Left(root), Nil)
}

func TestSplayMinMax(t *testing.T) {
	keys := make([]int, 50)
	for i := range keys {
		keys[i] = i * 2
	}
	a, root := keyed(keys)
	root = a.Splay(root, cutFor(keys, 48))

	root = a.SplayMin(root)
	test.T(t, root, int32(0))
	test.T(t, a.Left(root), Nil)
	test.T(t, a.Len(root), len(keys))

	root = a.SplayMax(root)
	test.T(t, root, int32(len(keys)-1))
	test.T(t, a.Right(root), Nil)
	test.T(t, a.Len(root), len(keys))
}

func TestSplayRandomAccess(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	keys := make([]int, 300)
	for i := range keys {
		keys[i] = i
	}
	a, root := keyed(keys)

	for n := 0; n < 2000; n++ {
		switch rng.Intn(3) {
		case 0:
			root = a.SplayMin(root)
			test.T(t, root, int32(0))
		case 1:
			root = a.SplayMax(root)
			test.T(t, root, int32(len(keys)-1))
		default:
			k := rng.Intn(len(keys))
			root = a.Splay(root, cutFor(keys, k))
			test.T(t, keys[root], k)
		}
	}

	got := inorder(a, root)
	test.T(t, len(got), len(keys))
	for i, n := range got {
		test.T(t, n, int32(i))
	}
}

func TestArenaAllocReset(t *testing.T) {
	a := NewArena(2)
	a.SetRight(0, 1)
	i := a.Alloc()
	test.T(t, i, int32(2))
	test.T(t, a.Size(), 3)
	test.T(t, a.Left(i), Nil)

	a.Reset(2)
	test.T(t, a.Size(), 2)
	test.T(t, a.Right(0), Nil)
}

func BenchmarkSplay(b *testing.B) {
	keys := make([]int, 1024)
	for i := range keys {
		keys[i] = i
	}
	a, root := keyed(keys)
	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		root = a.Splay(root, cutFor(keys, rng.Intn(len(keys))))
	}
}
