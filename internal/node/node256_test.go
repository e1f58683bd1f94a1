package node

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/blackwithwhite666/goart/pkg/arena"
)

func TestNode256(t *testing.T) {
	Convey("Given a Node256", t, func() {
		a := &arena.Arena{}
		n := arena.New(a, Node256[int]{})

		Convey("When checking basic properties", func() {
			So(n.Kind(), ShouldEqual, KindNode256)
			So(n.Full(), ShouldBeFalse)
		})

		Convey("AddChild never needs to grow", func() {
			n.AddChild(a, 0, NewLeaf(a, []byte{0}, 0))
			n.AddChild(a, 255, NewLeaf(a, []byte{255}, 255))

			So(n.NumChildren(), ShouldEqual, 2)
			So(n.FindChild(0).(*Leaf[int]).Value, ShouldEqual, 0)
			So(n.FindChild(255).(*Leaf[int]).Value, ShouldEqual, 255)
		})

		Convey("RemoveChild clears the slot directly", func() {
			n.AddChild(a, 'x', NewLeaf(a, []byte("x"), 1))
			n.RemoveChild(a, 'x')

			So(n.NumChildren(), ShouldEqual, 0)
			So(n.FindChild('x'), ShouldBeNil)
		})

		Convey("Shrink demotes to Node48 at exactly 37 children", func() {
			for i := 0; i < 37; i++ {
				n.AddChild(a, byte(i), NewLeaf(a, []byte{byte(i)}, i))
			}

			shrunk := n.Shrink(a).(*Node48[int])
			So(shrunk.NumChildren(), ShouldEqual, 37)

			for i := 0; i < 37; i++ {
				So(shrunk.FindChild(byte(i)).(*Leaf[int]).Value, ShouldEqual, i)
			}
		})

		Convey("Minimum and Maximum scan from byte 0 and byte 255", func() {
			n.AddChild(a, 100, NewLeaf(a, []byte{100}, 100))
			n.AddChild(a, 5, NewLeaf(a, []byte{5}, 5))

			So(n.Minimum().Value, ShouldEqual, 5)
			So(n.Maximum().Value, ShouldEqual, 100)
		})
	})
}
