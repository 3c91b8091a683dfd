package pipe_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KasperOmsK/itemfn"
	"github.com/KasperOmsK/itemfn/pipe"
)

func TestMap_AppliesMapper(t *testing.T) {
	src := pipe.FromItems(items(
		map[string]any{"name": "Alice", "age": 30},
		map[string]any{"name": "Bob", "age": 40},
	))

	p := pipe.Map(src, itemfn.GetField[string]("name"))

	vals, errs := collect(p)

	require.Equal(t, []string{"Alice", "Bob"}, vals)
	require.Empty(t, errs)
}

func TestMap_ForwardsErrors(t *testing.T) {
	src := pipe.FromItems(items(
		map[string]any{"age": 30},
		map[string]any{"name": "Bob"},
		map[string]any{"age": "old"},
	))

	p := pipe.Map(src, itemfn.GetField[int]("age"))

	vals, errs := collect(p)

	require.Equal(t, []int{30}, vals)
	require.Len(t, errs, 2)
	require.ErrorIs(t, errs[0], itemfn.ErrFieldNotFound)
	require.ErrorIs(t, errs[1], itemfn.ErrTypeMismatch)
}

func TestFilter_FiltersCorrectly(t *testing.T) {
	src := pipe.FromItems(items(
		map[string]any{"city": "NYC", "n": 1},
		map[string]any{"city": "LA", "n": 2},
		map[string]any{"city": "NYC", "n": 3},
	))

	p := pipe.Map(pipe.Filter(src, itemfn.FieldIn("city", "NYC")), itemfn.GetField[int]("n"))

	vals, errs := collect(p)

	require.Equal(t, []int{1, 3}, vals)
	require.Empty(t, errs)
}

func TestFilter_ForwardsErrors(t *testing.T) {
	src := pipe.FromItems(items(
		map[string]any{"city": "NYC"},
		map[string]any{"zip": "10115"},
	))

	p := pipe.Filter(src, itemfn.FieldIn("city", "NYC"))

	vals, errs := collect(p)

	require.Len(t, vals, 1)
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], itemfn.ErrFieldNotFound)
	require.True(t, errs[0].Item.(*itemfn.Item).Has("zip"))
}

func TestGroupByField(t *testing.T) {
	src := pipe.FromItems(items(
		map[string]any{"city": "NYC", "t": 1},
		map[string]any{"city": "NYC", "t": 2},
		map[string]any{"city": "LA", "t": 3},
		map[string]any{"city": "NYC", "t": 4},
	))

	groups, errs := collect(pipe.GroupByField(src, "city"))
	require.Empty(t, errs)
	require.Len(t, groups, 3)

	var cities []string
	var sizes []int
	for _, g := range groups {
		city, err := itemfn.GetField[string]("city").Apply(g)
		require.NoError(t, err)
		cities = append(cities, city)

		n, err := itemfn.OutputSubStream(itemfn.Func[[]*itemfn.Item, int](func(s []*itemfn.Item) (int, error) {
			return len(s), nil
		})).Apply(g)
		require.NoError(t, err)
		sizes = append(sizes, n)
	}

	require.Equal(t, []string{"NYC", "LA", "NYC"}, cities)
	require.Equal(t, []int{2, 1, 1}, sizes)
}

func TestGroupByField_ForwardsErrors(t *testing.T) {
	src := pipe.FromItems(items(
		map[string]any{"k": 1},
		map[string]any{"other": true},
		map[string]any{"k": []int{1}},
		map[string]any{"k": 1},
		map[string]any{"k": nil},
	))

	groups, errs := collect(pipe.GroupByField(src, "k"))

	require.Len(t, errs, 2)
	require.ErrorIs(t, errs[0], itemfn.ErrFieldNotFound)
	require.ErrorContains(t, errs[1], "cannot group by []int")

	// the failing items do not split the run of k=1
	require.Len(t, groups, 2)
	sub, err := itemfn.GetField[[]*itemfn.Item](itemfn.SubStreamField).Apply(groups[0])
	require.NoError(t, err)
	require.Len(t, sub, 2)

	key, ok := groups[1].Get("k")
	require.True(t, ok)
	require.Nil(t, key)
}

func TestGroupByField_Empty(t *testing.T) {
	groups, errs := collect(pipe.GroupByField(pipe.FromItems(nil), "k"))
	require.Empty(t, groups)
	require.Empty(t, errs)
}

func TestGroupByField_StopsEarly(t *testing.T) {
	src := pipe.FromItems(items(
		map[string]any{"k": 1},
		map[string]any{"k": 2},
		map[string]any{"k": 3},
	))

	n := 0
	for range pipe.GroupByField(src, "k").Values() {
		n++
		break
	}
	require.Equal(t, 1, n)
}

func TestPipeline_CountPerGroup(t *testing.T) {
	src := pipe.FromItems(items(
		map[string]any{"city": "NYC", "email": "a@x"},
		map[string]any{"city": "NYC", "email": "b@x"},
		map[string]any{"email": "c@x"},
		map[string]any{"city": "LA", "email": "d@x"},
	))

	count := itemfn.Func[[]*itemfn.Item, int](func(s []*itemfn.Item) (int, error) {
		return len(s), nil
	})

	withCity := pipe.Filter(src, itemfn.ContainsField("city"))
	public := pipe.Map(withCity, itemfn.ExcludeFields("email"))
	counts := pipe.Map(pipe.GroupByField(public, "city"), itemfn.OutputSubStream(count))

	vals, errs := collect(counts)

	require.Equal(t, []int{2, 1}, vals)
	require.Empty(t, errs)
}

type holder struct {
	v any
}

func TestGroupByField_UncomparableDynamicKey(t *testing.T) {
	src := pipe.FromItems(items(
		map[string]any{"k": holder{v: []int{1}}},
		map[string]any{"k": holder{v: []int{2}}},
		map[string]any{"k": holder{v: 1}},
	))

	var (
		groups []*itemfn.Item
		errs   []pipe.PipelineError
	)
	require.NotPanics(t, func() {
		groups, errs = collect(pipe.GroupByField(src, "k"))
	})

	require.Len(t, errs, 2)
	for _, err := range errs {
		require.ErrorContains(t, err, "cannot group by pipe_test.holder")
	}

	require.Len(t, groups, 1)
	key, _ := groups[0].Get("k")
	require.Equal(t, holder{v: 1}, key)
}
