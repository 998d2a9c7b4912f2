package pathlist

import (
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ScottMcKellar/catpath/internal/logging"
)

// Builder accumulates directory paths in first-seen order, applying the
// configured expansion, existence, and duplicate policies to each token
// as it arrives. The zero value is not usable; call NewBuilder.
type Builder struct {
	cfg     Config
	entries []string
	seen    map[string]struct{}

	// The home directory is looked up when the first "~/" token arrives
	// and cached for the rest of the run.
	home       string
	homeCached bool

	log zerolog.Logger
}

// NewBuilder returns a Builder that assembles paths under cfg.
func NewBuilder(cfg Config) *Builder {
	return &Builder{
		cfg:     cfg,
		entries: []string{},
		seen:    make(map[string]struct{}),
		log:     logging.GetLogger("pathlist"),
	}
}

// Add processes each token in order: tilde expansion first, then the
// directory-existence check, then duplicate removal. A token must clear
// all three to be appended to the entry list.
func (b *Builder) Add(tokens ...string) {
	for _, tok := range tokens {
		b.add(tok)
	}
}

func (b *Builder) add(tok string) {
	// Expand a tilde only when it starts the token and is followed by a
	// slash. A bare "~" or a tilde further in stays literal.
	if b.cfg.ExpandTilde && strings.HasPrefix(tok, "~/") {
		if home := b.homeDir(); home != "" {
			expanded := home + tok[1:]
			b.log.Trace().Str("from", tok).Str("to", expanded).Msg("expanded leading tilde")
			tok = expanded
		}
	}

	// Only absolute paths are checked for existence; a relative path may
	// be valid from some other working directory.
	if !b.cfg.Force && strings.HasPrefix(tok, "/") && !DirExists(tok) {
		b.log.Debug().Str("path", tok).Msg("dropped: no such directory")
		return
	}

	if !b.cfg.AllowDuplicates {
		if _, dup := b.seen[tok]; dup {
			b.log.Debug().Str("path", tok).Msg("dropped: duplicate")
			return
		}
		b.seen[tok] = struct{}{}
	}

	b.entries = append(b.entries, tok)
}

// homeDir reads HOME at most once per Builder. An unset or empty HOME
// leaves tilde tokens unexpanded.
func (b *Builder) homeDir() string {
	if !b.homeCached {
		b.home = os.Getenv("HOME")
		b.homeCached = true
	}
	return b.home
}

// Entries returns the accepted paths in first-seen order.
func (b *Builder) Entries() []string {
	return b.entries
}

// String joins the accepted paths with the configured separator.
func (b *Builder) String() string {
	return strings.Join(b.entries, b.cfg.Separator)
}
