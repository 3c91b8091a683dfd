/*
Package itemfn provides composable predicates and mappers over items, the
dynamically-keyed records that flow through a streaming pipeline.

An Item maps field names to values of any type. Nested records are stored
as *Item and embedded sequences as []*Item. Absence of a field is distinct
from a field holding nil, and every function in this package is exact
about the difference:

  - reads that need a value (GetField, FieldIn, GetSubItem, OutputSubStream)
    fail with *FieldNotFoundError when the field is absent;
  - ContainsField and Project treat absence as data and never fail.

Values are never coerced. Asking for a type the field does not hold is a
*TypeMismatchError. Both error types match the sentinels ErrFieldNotFound
and ErrTypeMismatch under errors.Is.

Every constructor returns a small value implementing Function, built once
at pipeline-assembly time and applied per item:

	isAdult := itemfn.FieldIn("age_group", "adult", "senior")
	withNext := itemfn.SetFieldFromFunction("age_next",
		itemfn.Then(itemfn.GetField[int]("age"), itemfn.Func[int, int](func(age int) (int, error) {
			return age + 1, nil
		})))
	public := itemfn.ExcludeFields("email", "phone")

Mappers that produce items are copy-on-write: SetFieldFromValue,
SetFieldFromFunction and Project return a new item and leave their input
untouched. Copies are shallow, so unmodified values, nested items
included, are shared between input and output.

# Group items

A group item holds an embedded sequence of items under SubStreamField
("sub_stream"), typically produced by grouping a stream (see
pipe.GroupByField). OutputSubStream applies a caller-supplied reducer to
that sequence:

	count := itemfn.Func[[]*itemfn.Item, int](func(items []*itemfn.Item) (int, error) {
		return len(items), nil
	})
	n, err := itemfn.OutputSubStream(count).Apply(group)

# Concurrency

Functions hold no mutable state and are safe for concurrent use on
distinct items. Item itself is not synchronized.
*/
package itemfn
