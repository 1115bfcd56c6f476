// Package version checks for newer application releases.
package version

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/flixstream/flixstream/constant"
	"github.com/flixstream/flixstream/filesystem"
	"github.com/flixstream/flixstream/network"
	"github.com/flixstream/flixstream/where"
	"github.com/metafates/gache"
)

const latestTimeout = 5 * time.Second

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// releasesURL is overridden in tests.
var releasesURL = fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", constant.Repository)

// Latest returns the newest released version, cached for two days.
func Latest() (version string, err error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), latestTimeout)
	defer cancel()

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err = network.GetJSON(ctx, network.Client, "github", releasesURL, nil, &release); err != nil {
		return
	}

	if release.TagName == "" {
		err = errors.New("empty tag name")
		return
	}

	version = strings.TrimPrefix(release.TagName, "v")
	_ = versionCacher.Set(version)
	return
}
