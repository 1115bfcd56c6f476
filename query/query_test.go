package query

import (
	"testing"
	"time"

	"github.com/flixstream/flixstream/filesystem"
	"github.com/flixstream/flixstream/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuery(t *testing.T) {
	Convey("Given query history", t, func() {
		viper.Set(key.SearchShowQuerySuggestions, true)
		viper.Set(key.SearchRememberQueries, true)
		So(Clear(), ShouldBeNil)

		tick := time.Unix(0, 0)
		now = func() time.Time {
			tick = tick.Add(time.Second)
			return tick
		}

		Convey("When remembering queries", func() {
			So(Remember("naruto", 1), ShouldBeNil)
			So(Remember("bleach", 10), ShouldBeNil)
			So(Remember("Black Clover", 3), ShouldBeNil)

			Convey("Then suggestions are fuzzy and sorted by rank", func() {
				So(SuggestMany("bl"), ShouldResemble, []string{"bleach", "black clover"})
				So(Suggest("nar").OrEmpty(), ShouldEqual, "naruto")
			})

			Convey("Then remembering again raises the rank", func() {
				So(SuggestMany("bl"), ShouldResemble, []string{"bleach", "black clover"})
				So(Remember("black clover", 20), ShouldBeNil)
				So(SuggestMany("bl"), ShouldResemble, []string{"black clover", "bleach"})
			})

			Convey("Then ties go to the most recent query", func() {
				So(Remember("blue lock", 10), ShouldBeNil)
				So(SuggestMany("bl"), ShouldResemble, []string{"blue lock", "bleach", "black clover"})
			})

			Convey("Then nothing matches an unrelated query", func() {
				So(Suggest("zzz").IsAbsent(), ShouldBeTrue)
			})
		})

		Convey("When remembering is disabled", func() {
			viper.Set(key.SearchRememberQueries, false)
			So(Remember("one piece", 1), ShouldBeNil)
			viper.Set(key.SearchRememberQueries, true)

			So(SuggestMany("one"), ShouldBeEmpty)
		})

		Convey("When suggestions are disabled", func() {
			So(Remember("naruto", 1), ShouldBeNil)
			viper.Set(key.SearchShowQuerySuggestions, false)

			So(SuggestMany("nar"), ShouldBeEmpty)
		})

		Convey("Input is sanitized", func() {
			So(sanitize("  NARUTO  "), ShouldEqual, "naruto")
			So(sanitize("black   Clover"), ShouldEqual, "black clover")
		})
	})
}
