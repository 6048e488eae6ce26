package config

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hamed0406/uptimeping/internal/domain"
)

var prefixes = []struct {
	prefix string
	kind   domain.Kind
}{
	{"HTTP_", domain.KindHTTP},
	{"COMMAND_", domain.KindCommand},
	{"TCP_", domain.KindTCP},
	{"P2P_", domain.KindTCP},
}

// Keys that share a probe prefix but belong to something else.
var reserved = map[string]bool{
	"HTTP_PROXY": true,
}

// DiscoverTargets turns prefixed keys with non-empty values into targets,
// in environment order.
func DiscoverTargets(environ []string) []domain.Target {
	title := cases.Title(language.English)
	var out []domain.Target
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || reserved[key] || value == "" {
			continue
		}
		for _, p := range prefixes {
			rest, found := strings.CutPrefix(key, p.prefix)
			if !found || rest == "" {
				continue
			}
			out = append(out, domain.Target{
				Name:     HumanizeName(title, rest),
				Kind:     p.kind,
				Endpoint: value,
			})
			break
		}
	}
	return out
}

// HumanizeName turns "BEACON_NODE" into "Beacon Node".
func HumanizeName(title cases.Caser, key string) string {
	return title.String(strings.ReplaceAll(key, "_", " "))
}
