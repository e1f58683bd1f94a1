package node

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/blackwithwhite666/goart/pkg/arena"
)

func TestCheckFullPrefix(t *testing.T) {
	Convey("Given a Node4 with a short, fully materialized prefix", t, func() {
		a := &arena.Arena{}
		n := arena.New(a, Node4[int]{})
		n.SetPrefix([]byte("abc"))

		Convey("A fully matching key reports the whole prefix length", func() {
			So(CheckFullPrefix[int](n, []byte("abcdef"), 0), ShouldEqual, 3)
		})

		Convey("A mismatch reports the count of bytes that did match", func() {
			So(CheckFullPrefix[int](n, []byte("abXdef"), 0), ShouldEqual, 2)
		})

		Convey("A key shorter than the prefix reports only the available bytes", func() {
			So(CheckFullPrefix[int](n, []byte("ab"), 0), ShouldEqual, 2)
		})
	})

	Convey("Given a Node4 whose true prefix exceeds MaxPrefixLen", t, func() {
		a := &arena.Arena{}
		n := arena.New(a, Node4[int]{})

		full := []byte("this-is-a-very-long-shared-prefix")
		n.SetPrefix(full)
		n.AddChild(a, '/', NewLeaf(a, append(append([]byte{}, full...), '/', 'x'), 1))

		So(n.PrefixLen(), ShouldEqual, len(full))
		So(len(n.Prefix()), ShouldEqual, MaxPrefixLen)

		Convey("A key matching the full true prefix verifies the optimistic tail via the minimum leaf", func() {
			key := append(append([]byte{}, full...), '/', 'x')
			So(CheckFullPrefix[int](n, key, 0), ShouldEqual, len(full))
		})

		Convey("A key diverging only past MaxPrefixLen is caught by the leaf-verified tail", func() {
			key := append([]byte{}, full...)
			key[len(key)-1] = 'Z'

			matched := CheckFullPrefix[int](n, key, 0)
			So(matched, ShouldBeLessThan, len(full))
		})
	})
}
