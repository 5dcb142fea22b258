package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underscore-utils/value"
)

func seq123() value.Value {
	return value.SeqValue(value.Int(1), value.Int(2), value.Int(3))
}

func TestSizeAndHas(t *testing.T) {
	n, err := value.Size(seq123())
	require.NoError(t, err)
	require.Equal(t, 3, n)

	m := value.MapOf(value.Entry{Key: value.StringKey("a"), Val: value.Int(1)})
	n, err = value.Size(m.Value())
	require.NoError(t, err)
	require.Equal(t, 1, n)

	ok, err := value.Has(seq123(), value.IntKey(3))
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = value.Has(seq123(), value.IntKey(4))
	require.NoError(t, err)
	require.False(t, ok)

	_, err = value.Size(value.Number(1))
	require.ErrorIs(t, err, value.ErrNotContainer)
}

func TestAt(t *testing.T) {
	v, err := value.At(seq123(), 2)
	require.NoError(t, err)
	require.True(t, value.Equal(value.Int(2), v))

	m := value.MapOf(value.Entry{Key: value.IntKey(1), Val: value.String("a")})
	v, err = value.At(m.Value(), 1)
	require.NoError(t, err)
	require.True(t, value.Equal(value.String("a"), v))

	_, err = value.At(seq123(), 0)
	require.ErrorIs(t, err, value.ErrIndexOutOfRange)
	_, err = value.At(seq123(), 4)
	require.ErrorIs(t, err, value.ErrIndexOutOfRange)
	_, err = value.At(value.Number(1), 1)
	require.ErrorIs(t, err, value.ErrNotSequence)
}

func TestKeysAndValuesOrder(t *testing.T) {
	keys, err := value.Keys(seq123())
	require.NoError(t, err)
	require.Equal(t, []value.Key{value.IntKey(1), value.IntKey(2), value.IntKey(3)}, keys)

	m := value.MapOf(
		value.Entry{Key: value.StringKey("b"), Val: value.Int(2)},
		value.Entry{Key: value.StringKey("a"), Val: value.Int(1)},
		value.Entry{Key: value.IntKey(7), Val: value.Int(3)},
	)
	keys, err = value.Keys(m.Value())
	require.NoError(t, err)
	// Numbers sort before strings in the package's total key order.
	require.Equal(t, []value.Key{value.IntKey(7), value.StringKey("a"), value.StringKey("b")}, keys)

	vals, err := value.Values(m.Value())
	require.NoError(t, err)
	require.Len(t, vals, 3)
	require.True(t, value.Equal(value.Int(3), vals[0]))
}

func TestEachStopsEarly(t *testing.T) {
	visited := 0
	err := value.Each(seq123(), func(_ value.Key, _ value.Value) bool {
		visited++
		return visited < 2
	})
	require.NoError(t, err)
	require.Equal(t, 2, visited)
}

func TestMapValues(t *testing.T) {
	doubled, err := value.MapValues(seq123(), func(_ value.Key, v value.Value) value.Value {
		n, _ := v.AsNumber()
		return value.Number(n * 2)
	})
	require.NoError(t, err)
	require.True(t, value.Equal(value.SeqValue(value.Int(2), value.Int(4), value.Int(6)), doubled))

	m := value.MapOf(value.Entry{Key: value.StringKey("a"), Val: value.Int(1)})
	upped, err := value.MapValues(m.Value(), func(_ value.Key, v value.Value) value.Value {
		n, _ := v.AsNumber()
		return value.Number(n + 10)
	})
	require.NoError(t, err)
	require.Equal(t, value.KindMap, upped.Kind(), "a map maps to a map")
	got, _ := value.Has(upped, value.StringKey("a"))
	require.True(t, got)
}

func TestFilterAndReject(t *testing.T) {
	odd := func(_ value.Key, v value.Value) bool {
		n, _ := v.AsNumber()
		return int(n)%2 == 1
	}
	odds, err := value.Filter(seq123(), odd)
	require.NoError(t, err)
	require.True(t, value.Equal(value.SeqValue(value.Int(1), value.Int(3)), odds))

	evens, err := value.Reject(seq123(), odd)
	require.NoError(t, err)
	require.True(t, value.Equal(value.SeqValue(value.Int(2)), evens))

	m := value.MapOf(
		value.Entry{Key: value.StringKey("keep"), Val: value.Int(1)},
		value.Entry{Key: value.StringKey("drop"), Val: value.Int(2)},
	)
	kept, err := value.Filter(m.Value(), func(k value.Key, _ value.Value) bool {
		s, _ := k.Value().AsString()
		return s == "keep"
	})
	require.NoError(t, err)
	n, _ := value.Size(kept)
	require.Equal(t, 1, n, "a map keeps its keys when filtering")
}

func TestReduce(t *testing.T) {
	sum, err := value.Reduce(seq123(), value.Number(0),
		func(acc value.Value, _ value.Key, v value.Value) value.Value {
			a, _ := acc.AsNumber()
			n, _ := v.AsNumber()
			return value.Number(a + n)
		})
	require.NoError(t, err)
	require.True(t, value.Equal(value.Number(6), sum))

	_, err = value.Reduce(value.Bool(true), value.Nil(),
		func(acc value.Value, _ value.Key, _ value.Value) value.Value { return acc })
	require.ErrorIs(t, err, value.ErrNotContainer)
}

func TestFindEverySomeContains(t *testing.T) {
	big := func(_ value.Key, v value.Value) bool {
		n, _ := v.AsNumber()
		return n > 1
	}
	found, ok, err := value.Find(seq123(), big)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, value.Equal(value.Int(2), found), "first match in iteration order")

	_, ok, err = value.Find(seq123(), func(_ value.Key, _ value.Value) bool { return false })
	require.NoError(t, err)
	require.False(t, ok)

	all, err := value.Every(seq123(), big)
	require.NoError(t, err)
	require.False(t, all)
	any, err := value.Some(seq123(), big)
	require.NoError(t, err)
	require.True(t, any)

	vacuous, err := value.Every(value.SeqValue(), big)
	require.NoError(t, err)
	require.True(t, vacuous)

	has, err := value.Contains(
		value.SeqValue(value.Int(1), mapAB().Value()),
		mapAB().Value(),
	)
	require.NoError(t, err)
	require.True(t, has, "Contains compares deeply, not by reference")
}

func TestJoin(t *testing.T) {
	s, err := value.Join(value.SeqValue(value.Int(1), value.String("two"), value.Bool(true)), ", ")
	require.NoError(t, err)
	require.Equal(t, "1, two, true", s)

	_, err = value.Join(value.SeqValue(value.SeqValue()), ", ")
	require.ErrorIs(t, err, value.ErrTypeMismatch)

	_, err = value.Join(value.Number(5), ", ")
	require.ErrorIs(t, err, value.ErrNotSequence)
}

func TestReverse(t *testing.T) {
	rev, err := value.Reverse(seq123())
	require.NoError(t, err)
	require.True(t, value.Equal(value.SeqValue(value.Int(3), value.Int(2), value.Int(1)), rev))

	str, err := value.Reverse(value.String("héllo"))
	require.NoError(t, err)
	got, _ := str.AsString()
	require.Equal(t, "olléh", got, "strings reverse by rune")

	_, err = value.Reverse(value.Bool(true))
	require.ErrorIs(t, err, value.ErrNotSequence)
}

func TestFlatten(t *testing.T) {
	nested := value.SeqValue(
		value.Int(1),
		value.SeqValue(value.Int(2), value.SeqValue(value.Int(3))),
		value.MapOf(value.Entry{Key: value.IntKey(1), Val: value.Int(4)}).Value(),
	)
	flat, err := value.Flatten(nested)
	require.NoError(t, err)
	require.True(t, value.Equal(
		value.SeqValue(value.Int(1), value.Int(2), value.Int(3), value.Int(4)),
		flat,
	), "array-shaped maps flatten like sequences")
}

func TestExtend(t *testing.T) {
	dst := value.MapOf(value.Entry{Key: value.StringKey("a"), Val: value.Int(1)})
	src := value.MapOf(
		value.Entry{Key: value.StringKey("a"), Val: value.Int(9)},
		value.Entry{Key: value.StringKey("b"), Val: value.Int(2)},
	)
	got := value.Extend(dst, src, nil)
	require.Same(t, dst, got)

	a, _ := dst.Get(value.StringKey("a"))
	require.True(t, value.Equal(value.Int(9), a), "later sources win")
	require.True(t, dst.Has(value.StringKey("b")))
}

func TestPickAndOmit(t *testing.T) {
	m := value.MapOf(
		value.Entry{Key: value.StringKey("a"), Val: value.Int(1)},
		value.Entry{Key: value.StringKey("b"), Val: value.Int(2)},
		value.Entry{Key: value.StringKey("c"), Val: value.Int(3)},
	)

	picked, err := value.Pick(m.Value(), value.StringKey("a"), value.StringKey("missing"))
	require.NoError(t, err)
	want := value.MapOf(value.Entry{Key: value.StringKey("a"), Val: value.Int(1)})
	require.True(t, value.Equal(want.Value(), picked))

	omitted, err := value.Omit(m.Value(), value.StringKey("a"))
	require.NoError(t, err)
	n, _ := value.Size(omitted)
	require.Equal(t, 2, n)
	has, _ := value.Has(omitted, value.StringKey("a"))
	require.False(t, has)
}

func TestInvert(t *testing.T) {
	m := value.MapOf(
		value.Entry{Key: value.StringKey("one"), Val: value.Int(1)},
		value.Entry{Key: value.StringKey("two"), Val: value.Int(2)},
	)
	inv, err := value.Invert(m.Value())
	require.NoError(t, err)
	got, ok := inv.AsMap()
	require.True(t, ok)
	one, found := got.Get(value.IntKey(1))
	require.True(t, found)
	require.True(t, value.Equal(value.String("one"), one))

	bad := value.MapOf(value.Entry{Key: value.StringKey("k"), Val: value.SeqValue()})
	_, err = value.Invert(bad.Value())
	require.ErrorIs(t, err, value.ErrInvalidKey)
}

func TestRange(t *testing.T) {
	s, err := value.Range(0, 5, 1)
	require.NoError(t, err)
	require.True(t, value.Equal(
		value.SeqValue(value.Int(0), value.Int(1), value.Int(2), value.Int(3), value.Int(4)),
		s.Value(),
	))

	down, err := value.Range(3, 0, -1)
	require.NoError(t, err)
	require.Equal(t, 3, down.Len())

	empty, err := value.Range(5, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Len())

	_, err = value.Range(0, 5, 0)
	require.ErrorIs(t, err, value.ErrInvalidArgument)
}

func TestToSeq(t *testing.T) {
	m := value.MapOf(
		value.Entry{Key: value.IntKey(1), Val: value.String("a")},
		value.Entry{Key: value.IntKey(2), Val: value.String("b")},
	)
	s, err := value.ToSeq(m.Value())
	require.NoError(t, err)
	require.True(t, value.Equal(value.SeqValue(value.String("a"), value.String("b")), s.Value()))

	gap := value.MapOf(value.Entry{Key: value.IntKey(2), Val: value.String("b")})
	_, err = value.ToSeq(gap.Value())
	require.ErrorIs(t, err, value.ErrNotSequence)

	// The materialised view is a copy, not the original container.
	orig := value.NewSeq(value.Int(1))
	view, err := value.ToSeq(orig.Value())
	require.NoError(t, err)
	require.NotSame(t, orig, view)
}
