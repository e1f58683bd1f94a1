package tree

import (
	"errors"
	"sort"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/blackwithwhite666/goart/internal/node"
	"github.com/blackwithwhite666/goart/pkg/arena"
)

func TestVisit(t *testing.T) {
	Convey("Given a tree with several keys", t, func() {
		a := &arena.Arena{}
		var root = insertAll(t, a, nil, map[string]int{
			"bar": 2, "foo": 1, "baz": 3,
		})

		Convey("Visit yields every pair in ascending key order", func() {
			var order []string
			err := Visit[int](root, func(key []byte, _ int) error {
				order = append(order, string(key))

				return nil
			})

			So(err, ShouldBeNil)
			So(order, ShouldResemble, []string{"bar", "baz", "foo"})
		})

		Convey("A callback error aborts traversal and propagates unchanged", func() {
			boom := errors.New("boom")
			var seen []string

			err := Visit[int](root, func(key []byte, _ int) error {
				seen = append(seen, string(key))
				if string(key) == "baz" {
					return boom
				}

				return nil
			})

			So(errors.Is(err, boom), ShouldBeTrue)
			So(seen, ShouldResemble, []string{"bar", "baz"})
		})

		Convey("Visiting a nil tree calls back nothing and returns no error", func() {
			err := Visit[int](nil, func([]byte, int) error {
				t.Fatal("callback must not run on an empty tree")

				return nil
			})
			So(err, ShouldBeNil)
		})
	})
}

func TestVisitPrefix(t *testing.T) {
	Convey("Given foo and foobar stored", t, func() {
		a := &arena.Arena{}
		root := insertAll(t, a, nil, map[string]int{"foo": 1, "foobar": 2})

		Convey("An empty prefix yields everything", func() {
			var order []string
			_ = VisitPrefix[int](root, nil, func(key []byte, _ int) error {
				order = append(order, string(key))

				return nil
			})
			So(order, ShouldResemble, []string{"foo", "foobar"})
		})

		Convey("A prefix matching only the longer key yields just that one", func() {
			var order []string
			_ = VisitPrefix[int](root, []byte("foob"), func(key []byte, _ int) error {
				order = append(order, string(key))

				return nil
			})
			So(order, ShouldResemble, []string{"foobar"})
		})

		Convey("A prefix with no match yields nothing", func() {
			var order []string
			_ = VisitPrefix[int](root, []byte("bar"), func(key []byte, _ int) error {
				order = append(order, string(key))

				return nil
			})
			So(order, ShouldBeEmpty)
		})
	})
}

func insertAll(t *testing.T, a *arena.Arena, root node.Node[int], kv map[string]int) node.Node[int] {
	t.Helper()

	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		root, _, _ = Insert[int](a, root, []byte(k), kv[k], 0, true)
	}

	return root
}
