package envconfig

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/mibar/dictextra/pkg/dictextra"
)

var (
	// Set via TALLY_DEBUG in the environment
	Debug bool
	// Set via TALLY_FOLD_CASE in the environment
	FoldCase bool
)

type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// Values lists the recognised variables with their current values, in
// display order.
func Values() *dictextra.Dict[string, EnvVar] {
	return dictextra.FromListBy(func(v EnvVar) string { return v.Name }, []EnvVar{
		{"TALLY_DEBUG", Debug, "Show additional debug information (e.g. TALLY_DEBUG=1)"},
		{"TALLY_FOLD_CASE", FoldCase, "Lower-case records before counting by default"},
	})
}

func init() {
	LoadConfig()
}

// LoadConfig reads the environment into the package variables.
func LoadConfig() {
	Debug = parseBool("TALLY_DEBUG")
	FoldCase = parseBool("TALLY_FOLD_CASE")
}

func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

func parseBool(key string) bool {
	s := clean(key)
	if s == "" {
		return false
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		slog.Warn("invalid boolean environment variable, ignoring", "key", key, "value", s)
		return false
	}
	return b
}
