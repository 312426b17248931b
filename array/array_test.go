package array

import (
	"errors"
	"testing"
)

func TestNew_StartsEmpty(t *testing.T) {
	a := New[int]()

	if a.Size() != 0 {
		t.Fatalf("expected size 0, got %d", a.Size())
	}
	if !a.IsEmpty() {
		t.Error("expected IsEmpty to be true")
	}
	if a.Capacity() != 0 {
		t.Errorf("expected lazy array to have capacity 0, got %d", a.Capacity())
	}
}

func TestNewWithCapacity(t *testing.T) {
	t.Run("valid capacities start empty", func(t *testing.T) {
		for _, capacity := range []int{0, 1, 10, 100} {
			a, err := NewWithCapacity[string](capacity)
			if err != nil {
				t.Fatalf("capacity %d: unexpected error: %v", capacity, err)
			}
			if a.Size() != 0 {
				t.Errorf("capacity %d: expected size 0, got %d", capacity, a.Size())
			}
			if a.Capacity() != capacity {
				t.Errorf("capacity %d: expected capacity %d, got %d", capacity, capacity, a.Capacity())
			}
		}
	})

	t.Run("negative capacity fails", func(t *testing.T) {
		_, err := NewWithCapacity[string](-1)
		if !errors.Is(err, ErrNegativeCapacity) {
			t.Fatalf("expected ErrNegativeCapacity, got %v", err)
		}
	})
}

func TestFromSlice(t *testing.T) {
	t.Run("copies elements in order", func(t *testing.T) {
		src := []int{1, 2, 3}
		a, err := FromSlice(src)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Size() != 3 {
			t.Fatalf("expected size 3, got %d", a.Size())
		}
		for i, want := range src {
			got, err := a.Get(i)
			if err != nil {
				t.Fatalf("Get(%d): unexpected error: %v", i, err)
			}
			if got != want {
				t.Errorf("Get(%d): expected %d, got %d", i, want, got)
			}
		}
	})

	t.Run("is independent of the source", func(t *testing.T) {
		src := []int{1, 2, 3}
		a, _ := FromSlice(src)

		src[0] = 99
		got, _ := a.Get(0)
		if got != 1 {
			t.Errorf("mutating the source changed the array: got %d", got)
		}
	})

	t.Run("nil source fails", func(t *testing.T) {
		_, err := FromSlice[int](nil)
		if !errors.Is(err, ErrNilSource) {
			t.Fatalf("expected ErrNilSource, got %v", err)
		}
	})
}

func TestAdd_SizeAndOrder(t *testing.T) {
	a := New[int]()

	const n = 25
	for i := 0; i < n; i++ {
		if !a.Add(i * 10) {
			t.Fatalf("Add(%d) reported no change", i*10)
		}
		if a.Size() != i+1 {
			t.Fatalf("after %d adds: expected size %d, got %d", i+1, i+1, a.Size())
		}
		last, err := a.Get(a.Size() - 1)
		if err != nil {
			t.Fatalf("Get(last): unexpected error: %v", err)
		}
		if last != i*10 {
			t.Fatalf("expected last element %d, got %d", i*10, last)
		}
	}
}

func TestGrowthPolicy(t *testing.T) {
	t.Run("lazy array grows to the default floor first", func(t *testing.T) {
		a := New[int]()
		a.Add(1)
		if a.Capacity() != 10 {
			t.Fatalf("expected first growth to capacity 10, got %d", a.Capacity())
		}
	})

	t.Run("then grows by half the old capacity", func(t *testing.T) {
		a := New[int]()
		for i := 0; i < 11; i++ {
			a.Add(i)
		}
		// 11th element overflows capacity 10; 10 + 10/2 = 15.
		if a.Capacity() != 15 {
			t.Fatalf("expected capacity 15 after 11 adds, got %d", a.Capacity())
		}
	})

	t.Run("growth is clamped up to an oversized immediate need", func(t *testing.T) {
		a := New[int]()
		a.Add(1)
		big := make([]int, 40)
		if _, err := a.AddAllSlice(big); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Capacity() != 41 {
			t.Fatalf("expected capacity 41 (exact requirement), got %d", a.Capacity())
		}
	})

	t.Run("explicit zero capacity grows to exactly what is needed", func(t *testing.T) {
		a, _ := NewWithCapacity[int](0)
		a.Add(1)
		if a.Capacity() != 1 {
			t.Fatalf("expected capacity 1, got %d", a.Capacity())
		}
	})
}

func TestGetSet_Bounds(t *testing.T) {
	a, _ := FromSlice([]int{1, 2, 3})

	for _, index := range []int{-1, 3, 100} {
		if _, err := a.Get(index); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Get(%d): expected ErrIndexOutOfRange, got %v", index, err)
		}
		if err := a.Set(index, 9); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Set(%d): expected ErrIndexOutOfRange, got %v", index, err)
		}
	}

	if err := a.Set(1, 42); err != nil {
		t.Fatalf("Set(1): unexpected error: %v", err)
	}
	got, _ := a.Get(1)
	if got != 42 {
		t.Errorf("expected 42 after Set, got %d", got)
	}
}

func TestRemove(t *testing.T) {
	t.Run("shifts subsequent elements left", func(t *testing.T) {
		a, _ := FromSlice([]int{10, 20, 30, 40})

		removed, err := a.Remove(2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if removed != 30 {
			t.Errorf("expected removed value 30, got %d", removed)
		}
		if a.Size() != 3 {
			t.Fatalf("expected size 3, got %d", a.Size())
		}

		want := []int{10, 20, 40}
		for i, w := range want {
			got, _ := a.Get(i)
			if got != w {
				t.Errorf("index %d: expected %d, got %d", i, w, got)
			}
		}
	})

	t.Run("clears the vacated trailing slot", func(t *testing.T) {
		a, _ := FromSlice([]string{"a", "b"})
		if _, err := a.Remove(1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf := a.UncheckedSlice(); buf[1] != "" {
			t.Errorf("expected trailing slot to be cleared, got %q", buf[1])
		}
	})

	t.Run("out of range fails", func(t *testing.T) {
		a, _ := FromSlice([]int{1})
		if _, err := a.Remove(1); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
		}
	})
}

func TestIndexOf(t *testing.T) {
	a, _ := FromSlice([]string{"x", "", "y", "x"})

	cases := []struct {
		needle string
		want   int
	}{
		{"x", 0},
		{"", 1}, // zero-value needle matches only a stored zero value
		{"y", 2},
		{"z", -1},
	}
	for _, tc := range cases {
		if got := a.IndexOf(tc.needle); got != tc.want {
			t.Errorf("IndexOf(%q): expected %d, got %d", tc.needle, tc.want, got)
		}
	}

	empty := New[string]()
	if got := empty.IndexOf(""); got != -1 {
		t.Errorf("IndexOf on empty array: expected -1, got %d", got)
	}
}

func TestAddAll(t *testing.T) {
	t.Run("appends preserving source order", func(t *testing.T) {
		a, _ := FromSlice([]int{1, 2})
		b, _ := FromSlice([]int{3, 4, 5})

		changed, err := a.AddAll(b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !changed {
			t.Error("expected AddAll to report a change")
		}

		want := []int{1, 2, 3, 4, 5}
		for i, w := range want {
			got, _ := a.Get(i)
			if got != w {
				t.Errorf("index %d: expected %d, got %d", i, w, got)
			}
		}
	})

	t.Run("self append fails", func(t *testing.T) {
		a, _ := FromSlice([]int{1, 2})
		if _, err := a.AddAll(a); !errors.Is(err, ErrSelfAppend) {
			t.Fatalf("expected ErrSelfAppend, got %v", err)
		}
		if a.Size() != 2 {
			t.Errorf("failed AddAll mutated the array: size %d", a.Size())
		}
	})

	t.Run("nil argument fails", func(t *testing.T) {
		a := New[int]()
		if _, err := a.AddAll(nil); !errors.Is(err, ErrNilSource) {
			t.Fatalf("expected ErrNilSource, got %v", err)
		}
		if _, err := a.AddAllSlice(nil); !errors.Is(err, ErrNilSource) {
			t.Fatalf("expected ErrNilSource, got %v", err)
		}
	})

	t.Run("appending nothing reports no change", func(t *testing.T) {
		a, _ := FromSlice([]int{1})
		changed, err := a.AddAll(New[int]())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if changed {
			t.Error("expected no change")
		}
		if a.Size() != 1 {
			t.Errorf("expected size 1, got %d", a.Size())
		}
	})

	t.Run("bulk append grows at most once", func(t *testing.T) {
		a := New[int]()
		a.Add(0)
		src := make([]int, 100)
		if _, err := a.AddAllSlice(src); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Capacity() != 101 {
			t.Errorf("expected exact pre-grow to 101, got %d", a.Capacity())
		}
		if a.Size() != 101 {
			t.Errorf("expected size 101, got %d", a.Size())
		}
	})
}

func TestForEach(t *testing.T) {
	t.Run("visits elements in order", func(t *testing.T) {
		a, _ := FromSlice([]int{1, 2, 3})

		var seen []int
		err := a.ForEach(func(v int) error {
			seen = append(seen, v)
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(seen) != 3 || seen[0] != 1 || seen[2] != 3 {
			t.Errorf("unexpected traversal: %v", seen)
		}
	})

	t.Run("aborts on the first action error", func(t *testing.T) {
		a, _ := FromSlice([]int{1, 2, 3})
		boom := errors.New("boom")

		var visited int
		err := a.ForEach(func(v int) error {
			visited++
			if v == 2 {
				return boom
			}
			return nil
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected the action error, got %v", err)
		}
		if visited != 2 {
			t.Errorf("expected traversal to stop after 2 visits, got %d", visited)
		}
	})
}

func TestReplaceAll(t *testing.T) {
	a, _ := FromSlice([]int{1, 2, 3})

	a.ReplaceAll(func(v int) int { return v * v })

	want := []int{1, 4, 9}
	if a.Size() != len(want) {
		t.Fatalf("ReplaceAll changed the size: got %d", a.Size())
	}
	for i, w := range want {
		got, _ := a.Get(i)
		if got != w {
			t.Errorf("index %d: expected %d, got %d", i, w, got)
		}
	}
}

func TestToSlice_IsDefensiveCopy(t *testing.T) {
	a, _ := FromSlice([]int{1, 2, 3})

	out := a.ToSlice()
	out[0] = 99
	got, _ := a.Get(0)
	if got != 1 {
		t.Errorf("mutating ToSlice result changed the array: got %d", got)
	}

	a.Set(1, 77)
	if out[1] != 2 {
		t.Errorf("mutating the array changed the ToSlice result: got %d", out[1])
	}
}

func TestCopyInto(t *testing.T) {
	t.Run("small destination gets a fresh exact-size slice", func(t *testing.T) {
		a, _ := FromSlice([]int{1, 2, 3, 4})
		dest := make([]int, 2)

		out := a.CopyInto(dest)
		if len(out) != 4 {
			t.Fatalf("expected a fresh slice of length 4, got %d", len(out))
		}
		if &out[0] == &dest[0] {
			t.Error("expected a newly allocated slice, got the destination")
		}
		for i, w := range []int{1, 2, 3, 4} {
			if out[i] != w {
				t.Errorf("index %d: expected %d, got %d", i, w, out[i])
			}
		}
	})

	t.Run("large destination is filled in place and terminated", func(t *testing.T) {
		a, _ := FromSlice([]int{1, 2, 3, 4})
		dest := []int{9, 9, 9, 9, 9}

		out := a.CopyInto(dest)
		if &out[0] != &dest[0] {
			t.Fatal("expected the destination to be reused")
		}
		for i, w := range []int{1, 2, 3, 4} {
			if dest[i] != w {
				t.Errorf("index %d: expected %d, got %d", i, w, dest[i])
			}
		}
		if dest[4] != 0 {
			t.Errorf("expected the slot after the copied elements to be cleared, got %d", dest[4])
		}
	})
}

func TestUncheckedSlice_AliasesInternalBuffer(t *testing.T) {
	a := New[int]()
	a.Add(1)

	buf := a.UncheckedSlice()
	if len(buf) != a.Capacity() {
		t.Fatalf("expected raw buffer length %d, got %d", a.Capacity(), len(buf))
	}

	buf[0] = 42
	got, _ := a.Get(0)
	if got != 42 {
		t.Error("expected UncheckedSlice to alias the internal buffer")
	}
}
