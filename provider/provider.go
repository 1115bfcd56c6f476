// Package provider is the registry of the supported video sites.
package provider

import (
	"net/http"
	"strings"

	"github.com/flixstream/flixstream/key"
	"github.com/flixstream/flixstream/provider/hamster"
	"github.com/flixstream/flixstream/provider/rule34"
	"github.com/flixstream/flixstream/provider/xanimu"
	"github.com/flixstream/flixstream/provider/youjizz"
	"github.com/flixstream/flixstream/source"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// ID is the dispatch key of a source.
type ID string

const (
	YouJizz ID = youjizz.ID
	XAnimu  ID = xanimu.ID
	Rule34  ID = rule34.ID
	Hamster ID = hamster.ID
)

// IDs lists every supported source in display order.
func IDs() []ID {
	return []ID{YouJizz, XAnimu, Rule34, Hamster}
}

// maxSuggestionDistance bounds how far a typo can be from a suggested name.
const maxSuggestionDistance = 3

// ParseID resolves a source name case-insensitively.
// Unknown names yield *source.UnknownSourceError, with a suggestion when one is close enough.
func ParseID(name string) (ID, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if id, ok := lo.Find(IDs(), func(id ID) bool { return string(id) == normalized }); ok {
		return id, nil
	}

	err := &source.UnknownSourceError{Name: name}
	closest := lo.MinBy(IDs(), func(a, b ID) bool {
		return levenshtein.Distance(normalized, string(a)) < levenshtein.Distance(normalized, string(b))
	})
	if normalized != "" && levenshtein.Distance(normalized, string(closest)) <= maxSuggestionDistance {
		err.Suggestion = string(closest)
	}
	return "", err
}

// Provider describes a built-in source.
type Provider struct {
	ID   ID
	Name string
	// EndpointKey is the configuration key overriding the worker endpoint.
	EndpointKey string
	// CreateSource builds a client over the given HTTP client.
	CreateSource func(client *http.Client) source.Source
}

func (p *Provider) String() string {
	return p.Name
}

// Endpoint is the configured worker endpoint.
func (p *Provider) Endpoint() string {
	return viper.GetString(p.EndpointKey)
}

var builtins = map[ID]*Provider{
	YouJizz: {
		ID:          YouJizz,
		Name:        youjizz.Name,
		EndpointKey: key.YouJizzEndpoint,
	},
	XAnimu: {
		ID:          XAnimu,
		Name:        xanimu.Name,
		EndpointKey: key.XAnimuEndpoint,
	},
	Rule34: {
		ID:          Rule34,
		Name:        rule34.Name,
		EndpointKey: key.Rule34Endpoint,
	},
	Hamster: {
		ID:          Hamster,
		Name:        hamster.Name,
		EndpointKey: key.HamsterEndpoint,
	},
}

func init() {
	builtins[YouJizz].CreateSource = func(client *http.Client) source.Source {
		return youjizz.New(client, builtins[YouJizz].Endpoint())
	}
	builtins[XAnimu].CreateSource = func(client *http.Client) source.Source {
		return xanimu.New(client, builtins[XAnimu].Endpoint())
	}
	builtins[Rule34].CreateSource = func(client *http.Client) source.Source {
		return rule34.New(client, builtins[Rule34].Endpoint())
	}
	builtins[Hamster].CreateSource = func(client *http.Client) source.Source {
		return hamster.New(client, builtins[Hamster].Endpoint())
	}
}

// Builtins returns the providers in display order.
func Builtins() []*Provider {
	return lo.Map(IDs(), func(id ID, _ int) *Provider {
		return builtins[id]
	})
}

// Get finds a provider by source name, case-insensitively.
func Get(name string) (*Provider, error) {
	id, err := ParseID(name)
	if err != nil {
		return nil, err
	}
	return builtins[id], nil
}
