package log

import (
	"testing"

	"github.com/flixstream/flixstream/filesystem"
	"github.com/flixstream/flixstream/key"
	"github.com/flixstream/flixstream/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeFalse)

		Convey("Entries are discarded", func() {
			So(func() { WithField("source", "rule34").Error("boom") }, ShouldNotPanic)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "not-a-level")
		defer func() { viper.Set(key.LogsWrite, false); enabled = false }()

		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeTrue)

		Convey("A dated file is created under the logs directory", func() {
			Info("hello")
			files, err := filesystem.API().ReadDir(where.Logs())
			So(err, ShouldBeNil)
			So(files, ShouldNotBeEmpty)
		})
	})
}
