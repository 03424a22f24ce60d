package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/khalid-nowaf/lexicon/pkg/lexicon"
)

// Context carries the shared state every command runs against.
type Context struct {
	Lex    *lexicon.Lexicon
	Logger zerolog.Logger
	Out    io.Writer
}

// CLI is the top-level command tree parsed by kong.
var CLI struct {
	Check  CheckCmd  `cmd:"" help:"Load dictionaries and report membership of words or prefixes"`
	Filter FilterCmd `cmd:"" help:"Load dictionaries, drop words or whole prefixes, and write the survivors"`
	Serve  ServeCmd  `cmd:"" help:"Load dictionaries and serve the lexicon over HTTP"`
}

// NewContext builds the default command context: a fresh lexicon and a
// console logger on stderr.
func NewContext() *Context {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	return &Context{
		Lex:    lexicon.New(),
		Logger: logger,
		Out:    os.Stdout,
	}
}

// loadDictionaries funnels every command's dictionary loading through
// one place so failures report the offending file.
func loadDictionaries(ctx *Context, files []string, assumeLower bool) error {
	for _, file := range files {
		if err := ctx.Lex.AddFile(file, assumeLower); err != nil {
			return err
		}
		ctx.Logger.Debug().Str("file", file).Int("words", ctx.Lex.WordCount()).Msg("dictionary loaded")
	}
	return nil
}
