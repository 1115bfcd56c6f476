package source

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSummary(t *testing.T) {
	Convey("Given a summary", t, func() {
		Convey("Identifier prefers the id", func() {
			s := &Summary{ID: "42", URL: "https://example.com/v/42"}
			So(s.Identifier(), ShouldEqual, "42")
		})

		Convey("Identifier falls back to the url", func() {
			s := &Summary{URL: "https://example.com/v/42"}
			So(s.Identifier(), ShouldEqual, "https://example.com/v/42")
		})
	})

	Convey("Text decodes loosely typed scalars", t, func() {
		var payload struct {
			Duration Text `json:"duration"`
			Views    Text `json:"views"`
			Rating   Text `json:"rating"`
			Added    Text `json:"added"`
		}

		err := json.Unmarshal([]byte(`{"duration":"12:34","views":1500,"rating":98.5,"added":null}`), &payload)
		So(err, ShouldBeNil)
		So(payload.Duration, ShouldEqual, Text("12:34"))
		So(payload.Views, ShouldEqual, Text("1500"))
		So(payload.Rating, ShouldEqual, Text("98.5"))
		So(payload.Added, ShouldEqual, Text(""))
	})

	Convey("Text rejects objects", t, func() {
		var v Text
		So(json.Unmarshal([]byte(`{"a":1}`), &v), ShouldNotBeNil)
	})
}
