package react_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/delaneyj/cellparty/react"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder[T comparable] struct {
	values []T
}

func (rec *recorder[T]) listen(v T) {
	rec.values = append(rec.values, v)
}

func TestDiamond(t *testing.T) {
	//     x
	//   /   \
	//  b     c
	//   \   /
	//     d
	r := react.New[int]()
	x := r.CreateInput(1)

	var bCalls, cCalls, dCalls int
	b, err := react.Compute1(r, x, func(v int) int {
		bCalls++
		return v + 1
	})
	require.NoError(t, err)
	c, err := react.Compute1(r, x, func(v int) int {
		cCalls++
		return v * 10
	})
	require.NoError(t, err)
	d, err := react.Compute2(r, b, c, func(b, c int) int {
		dCalls++
		return b + c
	})
	require.NoError(t, err)

	got, _ := r.Value(d)
	assert.Equal(t, 12, got)

	recB, recC, recD := &recorder[int]{}, &recorder[int]{}, &recorder[int]{}
	r.AddCallback(b, recB.listen)
	r.AddCallback(c, recC.listen)
	r.AddCallback(d, recD.listen)

	bCalls, cCalls, dCalls = 0, 0, 0
	assert.True(t, r.SetValue(x, 3))

	got, _ = r.Value(b)
	assert.Equal(t, 4, got)
	got, _ = r.Value(c)
	assert.Equal(t, 30, got)
	got, _ = r.Value(d)
	assert.Equal(t, 34, got)

	assert.Equal(t, []int{4}, recB.values)
	assert.Equal(t, []int{30}, recC.values)
	assert.Equal(t, []int{34}, recD.values)
	assert.Equal(t, 1, bCalls)
	assert.Equal(t, 1, cCalls)
	assert.Equal(t, 1, dCalls)

	t.Run("same value again is a no-op", func(t *testing.T) {
		assert.True(t, r.SetValue(x, 3))
		assert.Equal(t, []int{4}, recB.values)
		assert.Equal(t, []int{30}, recC.values)
		assert.Equal(t, []int{34}, recD.values)
		assert.Equal(t, 1, dCalls)
	})
}

func TestDiamondTail(t *testing.T) {
	//     a
	//   /   \
	//  b     c
	//   \   /
	//     d
	//     |
	//     e
	r := react.New[string]()
	a := r.CreateInput("a")
	b, _ := react.Compute1(r, a, func(v string) string { return v })
	c, _ := react.Compute1(r, a, func(v string) string { return v })
	d, _ := react.Compute2(r, b, c, func(b, c string) string { return b + " " + c })

	eCalls := 0
	e, err := react.Compute1(r, d, func(v string) string {
		eCalls++
		return v
	})
	require.NoError(t, err)

	rec := &recorder[string]{}
	r.AddCallback(e, rec.listen)

	r.SetValue(a, "aa")
	got, _ := r.Value(e)
	assert.Equal(t, "aa aa", got)
	assert.Equal(t, 2, eCalls)
	assert.Equal(t, []string{"aa aa"}, rec.values)
}

func TestCallbackFiresWithFinalValue(t *testing.T) {
	// d is reachable from x directly and through a longer chain; it must
	// be recomputed once, after every path into it is settled.
	//
	//  x
	//  |\
	//  a |
	//  | |
	//  b |
	//  |/
	//  d
	r := react.New[int]()
	x := r.CreateInput(1)
	a, _ := react.Compute1(r, x, func(v int) int { return v + 1 })
	b, _ := react.Compute1(r, a, func(v int) int { return v * 2 })

	var seen [][2]int
	d, err := react.Compute2(r, x, b, func(x, b int) int {
		seen = append(seen, [2]int{x, b})
		return x + b
	})
	require.NoError(t, err)

	rec := &recorder[int]{}
	r.AddCallback(d, rec.listen)
	seen = nil

	r.SetValue(x, 5)
	assert.Equal(t, [][2]int{{5, 12}}, seen)
	assert.Equal(t, []int{17}, rec.values)
}

func TestCallbacks(t *testing.T) {
	t.Run("only fire on change", func(t *testing.T) {
		r := react.New[int]()
		x := r.CreateInput(1)
		c, _ := react.Compute1(r, x, func(v int) int {
			if v < 3 {
				return 111
			}
			return 222
		})
		rec := &recorder[int]{}
		r.AddCallback(c, rec.listen)

		r.SetValue(x, 2)
		assert.Empty(t, rec.values)
		r.SetValue(x, 4)
		assert.Equal(t, []int{222}, rec.values)
	})

	t.Run("no fire when dependency change is masked", func(t *testing.T) {
		//  x
		//  |\
		//  a b   a = x+1, b = x-1
		//  |/
		//  d     d = a-b, always 2
		r := react.New[int]()
		x := r.CreateInput(1)
		a, _ := react.Compute1(r, x, func(v int) int { return v + 1 })
		b, _ := react.Compute1(r, x, func(v int) int { return v - 1 })
		d, _ := react.Compute2(r, a, b, func(a, b int) int { return a - b })
		rec := &recorder[int]{}
		r.AddCallback(d, rec.listen)

		r.SetValue(x, 4)
		assert.Empty(t, rec.values)
		got, _ := r.Value(d)
		assert.Equal(t, 2, got)
	})

	t.Run("multiple callbacks on one cell", func(t *testing.T) {
		r := react.New[int]()
		x := r.CreateInput(1)
		c, _ := react.Compute1(r, x, func(v int) int { return v + 1 })
		rec1, rec2 := &recorder[int]{}, &recorder[int]{}
		id1, ok := r.AddCallback(c, rec1.listen)
		require.True(t, ok)
		id2, ok := r.AddCallback(c, rec2.listen)
		require.True(t, ok)
		assert.NotEqual(t, id1, id2)

		r.SetValue(x, 10)
		assert.Equal(t, []int{11}, rec1.values)
		assert.Equal(t, []int{11}, rec2.values)
	})

	t.Run("callback ids are per cell", func(t *testing.T) {
		r := react.New[int]()
		x := r.CreateInput(1)
		a, _ := react.Compute1(r, x, func(v int) int { return v })
		b, _ := react.Compute1(r, x, func(v int) int { return v })
		idA, _ := r.AddCallback(a, func(int) {})
		idB, _ := r.AddCallback(b, func(int) {})
		assert.Equal(t, react.CallbackID(0), idA)
		assert.Equal(t, react.CallbackID(0), idB)
	})

	t.Run("add to unknown cell", func(t *testing.T) {
		r := react.New[int]()
		_, ok := r.AddCallback(react.ComputeCellID(0), func(int) {})
		assert.False(t, ok)
	})

	t.Run("remove", func(t *testing.T) {
		r := react.New[int]()
		x := r.CreateInput(1)
		c, _ := react.Compute1(r, x, func(v int) int { return v + 1 })
		rec1, rec2 := &recorder[int]{}, &recorder[int]{}
		id1, _ := r.AddCallback(c, rec1.listen)
		r.AddCallback(c, rec2.listen)

		r.SetValue(x, 2)
		require.NoError(t, r.RemoveCallback(c, id1))
		r.SetValue(x, 3)

		assert.Equal(t, []int{3}, rec1.values)
		assert.Equal(t, []int{3, 4}, rec2.values)

		assert.ErrorIs(t, r.RemoveCallback(c, id1), react.ErrNonexistentCallback)
		assert.ErrorIs(t, r.RemoveCallback(c, react.CallbackID(42)), react.ErrNonexistentCallback)
		assert.ErrorIs(t, r.RemoveCallback(react.ComputeCellID(9), id1), react.ErrNonexistentCell)
	})

	t.Run("removing one does not disturb the others", func(t *testing.T) {
		r := react.New[int]()
		x := r.CreateInput(1)
		c, _ := react.Compute1(r, x, func(v int) int { return v + 1 })
		recs := make([]*recorder[int], 3)
		ids := make([]react.CallbackID, 3)
		for i := range recs {
			recs[i] = &recorder[int]{}
			ids[i], _ = r.AddCallback(c, recs[i].listen)
		}
		require.NoError(t, r.RemoveCallback(c, ids[1]))

		// ids are not reused after a removal
		id, _ := r.AddCallback(c, func(int) {})
		assert.Equal(t, react.CallbackID(3), id)

		r.SetValue(x, 5)
		assert.Equal(t, []int{6}, recs[0].values)
		assert.Empty(t, recs[1].values)
		assert.Equal(t, []int{6}, recs[2].values)
	})

	t.Run("delivery after all cells are updated", func(t *testing.T) {
		r := react.New[int]()
		x := r.CreateInput(1)
		a, _ := react.Compute1(r, x, func(v int) int { return v + 1 })
		b, _ := react.Compute1(r, a, func(v int) int { return v + 1 })

		var bWhenANotified int
		r.AddCallback(a, func(int) {
			bWhenANotified, _ = r.Value(b)
		})
		r.SetValue(x, 10)
		assert.Equal(t, 12, bWhenANotified)
	})
}

func TestRecomputeOncePerRound(t *testing.T) {
	// wide fan-in: every cell in layer n reads every cell in layer n-1
	r := react.New[int]()
	x := r.CreateInput(1)

	prev := []react.CellID{x}
	counts := map[react.ComputeCellID]*int{}
	for layer := 0; layer < 4; layer++ {
		var next []react.CellID
		for w := 0; w < 5; w++ {
			n := new(int)
			id, err := r.CreateCompute(prev, func(v []int) int {
				*n++
				sum := 0
				for _, x := range v {
					sum += x
				}
				return sum
			})
			require.NoError(t, err)
			counts[id] = n
			next = append(next, id)
		}
		prev = next
	}

	for _, n := range counts {
		*n = 0
	}
	r.SetValue(x, 2)
	for id, n := range counts {
		assert.Equal(t, 1, *n, "cell %s", id)
	}

	leaf, _ := r.Value(prev[0])
	assert.Equal(t, 2*5*5*5, leaf)
}

func TestUnrelatedCellsAreNotRecomputed(t *testing.T) {
	r := react.New[int]()
	x := r.CreateInput(1)
	y := r.CreateInput(1)
	calls := 0
	react.Compute1(r, y, func(v int) int {
		calls++
		return v
	})
	calls = 0

	r.SetValue(x, 2)
	assert.Equal(t, 0, calls)
}

func TestObserver(t *testing.T) {
	var rounds []react.RoundStats
	r := react.New[int](react.WithObserver(react.ObserverFunc(func(s react.RoundStats) {
		rounds = append(rounds, s)
	})))
	x := r.CreateInput(1)
	a, _ := react.Compute1(r, x, func(v int) int { return v % 2 })
	react.Compute1(r, a, func(v int) int { return v })
	r.AddCallback(a, func(int) {})

	r.SetValue(x, 1) // no-op
	r.SetValue(x, 3) // a unchanged, its dependent is still recomputed
	r.SetValue(x, 4) // a changes

	require.Len(t, rounds, 2)
	assert.Equal(t, x, rounds[0].Input)
	assert.Equal(t, 2, rounds[0].Recomputed)
	assert.Equal(t, 0, rounds[0].Changed)
	assert.Equal(t, 0, rounds[0].Notified)

	assert.Equal(t, 2, rounds[1].Recomputed)
	assert.Equal(t, 2, rounds[1].Changed)
	assert.Equal(t, 1, rounds[1].Notified)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := react.New[int](react.WithLogger(logger))
	x := r.CreateInput(1)
	react.Compute1(r, x, func(v int) int { return v })
	r.SetValue(x, 2)

	out := buf.String()
	assert.Contains(t, out, "input created")
	assert.Contains(t, out, "compute created")
	assert.Contains(t, out, "round complete")
	assert.Equal(t, 1, strings.Count(out, "recomputed=1"))
}
