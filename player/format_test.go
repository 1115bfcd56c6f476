package player

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFormatDuration(t *testing.T) {
	Convey("FormatDuration", t, func() {
		So(FormatDuration(0), ShouldEqual, "0:00")
		So(FormatDuration(12.5), ShouldEqual, "0:12")
		So(FormatDuration(65), ShouldEqual, "1:05")
		So(FormatDuration(3599.9), ShouldEqual, "59:59")
		So(FormatDuration(3600), ShouldEqual, "1:00:00")
		So(FormatDuration(3725), ShouldEqual, "1:02:05")
		So(FormatDuration(math.NaN()), ShouldEqual, "0:00")
		So(FormatDuration(-3), ShouldEqual, "0:00")
	})
}
