package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/flixstream/flixstream/aggregate"
	"github.com/flixstream/flixstream/source"
	"github.com/flixstream/flixstream/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Picker narrows search results down to the ones to output.
type Picker func([]*source.Summary) []*source.Summary

type Options struct {
	Out        io.Writer
	Aggregator *aggregate.Aggregator
	// Sources to search. More than one, or none, searches them concurrently.
	Sources  []string
	Query    string
	Page     int
	Json     bool
	Picker   mo.Option[Picker]
	Variants bool
	// Width truncates plain output titles. Zero disables truncation.
	Width int
	// Hints receives a pointer to the next page after a non-empty plain output.
	Hints io.Writer
	// Suggest proposes another query when nothing was found.
	Suggest func(query string) mo.Option[string]
}

// ParsePicker parses a result selector:
//
//	first, last, all
//	N        result at index N, starting from 0
//	N-M      results N through M
//	@text@   results whose title contains text
func ParsePicker(description string) (Picker, error) {
	switch description {
	case "first":
		return func(videos []*source.Summary) []*source.Summary {
			return lo.Slice(videos, 0, 1)
		}, nil
	case "last":
		return func(videos []*source.Summary) []*source.Summary {
			return lo.Slice(videos, len(videos)-1, len(videos))
		}, nil
	case "all":
		return func(videos []*source.Summary) []*source.Summary {
			return videos
		}, nil
	}

	if strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") && len(description) > 1 {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(videos []*source.Summary) []*source.Summary {
			return lo.Filter(videos, func(v *source.Summary, _ int) bool {
				return strings.Contains(strings.ToLower(v.Title), sub)
			})
		}, nil
	}

	if from, to, ok := strings.Cut(description, "-"); ok {
		start, err1 := strconv.ParseUint(from, 10, 16)
		end, err2 := strconv.ParseUint(to, 10, 16)
		if err1 == nil && err2 == nil {
			return func(videos []*source.Summary) []*source.Summary {
				if start > end {
					return []*source.Summary{}
				}
				return lo.Slice(videos, int(start), int(util.Min(end+1, uint64(len(videos)))))
			}, nil
		}
	}

	if idx, err := strconv.ParseUint(description, 10, 16); err == nil {
		return func(videos []*source.Summary) []*source.Summary {
			if uint64(len(videos)) <= idx {
				return []*source.Summary{}
			}
			return []*source.Summary{videos[idx]}
		}, nil
	}

	return nil, fmt.Errorf("invalid picker: %s", description)
}
