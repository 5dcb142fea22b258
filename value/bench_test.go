package value_test

import (
	"testing"

	"github.com/hasbyte1/go-underscore-utils/value"
)

// makeNested builds a map of width entries, each holding a sequence of width
// scalars, nested depth levels deep.
func makeNested(depth, width int) value.Value {
	if depth == 0 {
		items := make([]value.Value, width)
		for i := range items {
			items[i] = value.Int(i)
		}
		return value.SeqFrom(items).Value()
	}
	m := value.NewMap()
	for i := 0; i < width; i++ {
		m.Set(value.IntKey(i+1), makeNested(depth-1, width))
	}
	return m.Value()
}

func BenchmarkEqual(b *testing.B) {
	x := makeNested(3, 8)
	y := value.DeepCopy(x)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		value.Equal(x, y)
	}
}

func BenchmarkEqualFastPath(b *testing.B) {
	x := makeNested(3, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		value.Equal(x, x)
	}
}

func BenchmarkDeepCopy(b *testing.B) {
	x := makeNested(3, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		value.DeepCopy(x)
	}
}

func BenchmarkIsArrayShaped(b *testing.B) {
	m := value.NewMap()
	for i := 0; i < 1000; i++ {
		m.Set(value.IntKey(i+1), value.Int(i))
	}
	v := m.Value()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		value.IsArrayShaped(v)
	}
}
