package clutch

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestIsClutch(t *testing.T) {
	Convey("Given the clutch window classifier", t, func() {
		Convey("Overtime is always clutch", func() {
			for _, minutes := range []int{0, 5, 12, 99} {
				So(IsClutch(5, minutes), ShouldBeTrue)
				So(IsClutch(7, minutes), ShouldBeTrue)
			}
		})

		Convey("The final period is clutch at five minutes or fewer", func() {
			So(IsClutch(4, 5), ShouldBeTrue)
			So(IsClutch(4, 0), ShouldBeTrue)
			So(IsClutch(4, 6), ShouldBeFalse)
			So(IsClutch(4, 12), ShouldBeFalse)
		})

		Convey("Earlier periods are never clutch", func() {
			So(IsClutch(3, 0), ShouldBeFalse)
			So(IsClutch(1, 1), ShouldBeFalse)
		})

		Convey("Raw clocks go through the parser", func() {
			So(IsClutchClock(4, "PT05M59.90S"), ShouldBeTrue)
			So(IsClutchClock(4, "PT06M00.00S"), ShouldBeFalse)
			So(IsClutchClock(4, "garbage"), ShouldBeTrue)
			So(IsClutchClock(3, "garbage"), ShouldBeFalse)
		})
	})
}
