package source

import (
	"encoding/json"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRequired(t *testing.T) {
	type payload struct {
		Results Required[[]string] `json:"results"`
	}

	Convey("Given a payload with a required list", t, func() {
		Convey("A present list is returned", func() {
			var p payload
			So(json.Unmarshal([]byte(`{"results":["a","b"]}`), &p), ShouldBeNil)
			results, err := p.Results.Get("test", "results")
			So(err, ShouldBeNil)
			So(results, ShouldResemble, []string{"a", "b"})
		})

		Convey("An explicit null is an empty list", func() {
			var p payload
			So(json.Unmarshal([]byte(`{"results":null}`), &p), ShouldBeNil)
			results, err := p.Results.Get("test", "results")
			So(err, ShouldBeNil)
			So(results, ShouldBeEmpty)
		})

		Convey("An explicit null is rejected when a value is needed", func() {
			var p payload
			So(json.Unmarshal([]byte(`{"results":null}`), &p), ShouldBeNil)
			_, err := p.Results.GetNonNull("test", "results")
			So(errors.Is(err, ErrResponseShape), ShouldBeTrue)

			So(json.Unmarshal([]byte(`{"results":[]}`), &p), ShouldBeNil)
			results, err := p.Results.GetNonNull("test", "results")
			So(err, ShouldBeNil)
			So(results, ShouldBeEmpty)
		})

		Convey("An absent key is a shape error", func() {
			var p payload
			So(json.Unmarshal([]byte(`{"error":"nope"}`), &p), ShouldBeNil)
			_, err := p.Results.Get("test", "results")
			So(errors.Is(err, ErrResponseShape), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, `"results"`)
		})
	})
}
