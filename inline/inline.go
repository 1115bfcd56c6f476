// Package inline runs searches non-interactively for scripts and pipes.
package inline

import (
	"context"
	"fmt"
	"os"

	"github.com/flixstream/flixstream/log"
	"github.com/flixstream/flixstream/provider"
	"github.com/flixstream/flixstream/source"
	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
)

// Run searches, picks and prints results as options describe.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	summaries, err := search(ctx, options)
	if err != nil {
		return err
	}

	if picker, ok := options.Picker.Get(); ok {
		summaries = picker(summaries)
	}

	videos := lo.Map(summaries, func(s *source.Summary, _ int) *Video {
		return &Video{Source: s.Source, Video: s}
	})

	if options.Variants {
		for _, video := range videos {
			variants, err := options.Aggregator.Variants(ctx, video.Video.Identifier(), video.Source)
			if err != nil {
				log.Warnf("failed to fetch variants for %s: %v", video.Video.Identifier(), err)
				continue
			}
			video.Variants = variants
		}
	}

	if options.Json {
		return writeJson(options.Out, videos, options)
	}

	for _, video := range videos {
		title := video.Video.Title
		if options.Width > 0 {
			title = truncate.StringWithTail(title, uint(options.Width), "…")
		}

		fmt.Fprintf(options.Out, "%s\t%s\t%s\n", video.Source, video.Video.Identifier(), title)
		for _, variant := range video.Variants {
			fmt.Fprintf(options.Out, "\t%s\t%s\n", variant.Quality, variant.URL)
		}
	}

	if options.Hints == nil {
		return nil
	}

	if len(videos) > 0 {
		fmt.Fprintf(options.Hints, "next page: --page %d\n", source.NormalizePage(options.Page)+1)
	} else if options.Suggest != nil {
		if suggestion, ok := options.Suggest(options.Query).Get(); ok && suggestion != options.Query {
			fmt.Fprintf(options.Hints, "nothing found, did you mean %q?\n", suggestion)
		}
	}

	return nil
}

// search queries one source directly, or several concurrently.
// With several sources, failures are tolerated as long as one source answers.
func search(ctx context.Context, options *Options) ([]*source.Summary, error) {
	if len(options.Sources) == 1 {
		return options.Aggregator.Search(ctx, options.Query, options.Page, options.Sources[0])
	}

	results, err := options.Aggregator.SearchAll(ctx, options.Query, options.Page, options.Sources...)
	if len(results) == 0 && err != nil {
		return nil, err
	}
	if err != nil {
		log.Warnf("some sources failed: %v", err)
	}

	var summaries []*source.Summary
	for _, id := range provider.IDs() {
		summaries = append(summaries, results[id]...)
	}
	return summaries, nil
}
