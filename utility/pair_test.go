package utility_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/katalvlaran/fdt/utility"
)

func TestPair(t *testing.T) {
	Convey("Given two pairs", t, func() {
		a := utility.MakePair(1, "one")
		b := utility.MakePair(2, "two")

		Convey("Unpack returns both fields", func() {
			n, s := a.Unpack()
			So(n, ShouldEqual, 1)
			So(s, ShouldEqual, "one")
		})

		Convey("Swap exchanges contents", func() {
			a.Swap(&b)
			So(a.First, ShouldEqual, 2)
			So(b.Second, ShouldEqual, "one")
		})

		Convey("PairEqual compares both fields", func() {
			So(utility.PairEqual(a, utility.MakePair(1, "one")), ShouldBeTrue)
			So(utility.PairEqual(a, utility.MakePair(1, "uno")), ShouldBeFalse)
		})

		Convey("PairLess is lexicographic", func() {
			So(utility.PairLess(a, b), ShouldBeTrue)
			So(utility.PairLess(b, a), ShouldBeFalse)
			So(utility.PairLess(utility.MakePair(1, "a"), utility.MakePair(1, "b")), ShouldBeTrue)
			So(utility.PairLess(utility.MakePair(1, "z"), utility.MakePair(2, "a")), ShouldBeTrue)
			So(utility.PairLess(a, a), ShouldBeFalse)
		})
	})
}

func TestIsNil(t *testing.T) {
	Convey("IsNil on typed pointers", t, func() {
		var p *int
		So(utility.IsNil(p), ShouldBeTrue)
		x := 3
		So(utility.IsNil(&x), ShouldBeFalse)
	})

	Convey("IsNilAny sees through interfaces", t, func() {
		var p *int
		var m map[string]int
		So(utility.IsNilAny(nil), ShouldBeTrue)
		So(utility.IsNilAny(p), ShouldBeTrue)
		So(utility.IsNilAny(m), ShouldBeTrue)
		So(utility.IsNilAny(0), ShouldBeFalse)
		So(utility.IsNilAny(""), ShouldBeFalse)
		So(utility.IsNilAny([]int{}), ShouldBeFalse)
	})
}
