package cli

import "fmt"

// FilterCmd loads dictionaries, drops the requested words and prefix
// subtrees, and writes whatever survives.
type FilterCmd struct {
	Dicts          []string `arg:"" type:"existingfile" help:"Dictionary files, one word per line"`
	Remove         []string `help:"Words to remove"`
	RemovePrefixes []string `help:"Prefixes whose whole subtree is removed"`
	AssumeLower    bool     `help:"Trust the dictionaries to be lowercase already (faster load)"`
	JSON           bool     `help:"Write the surviving words as a JSON array instead of plain lines"`
	Output         string   `help:"Output directory" default:"." type:"existingdir"`
}

// Stats counts what the filter did, for the closing summary line.
type Stats struct {
	Loaded  int
	Missed  int
	Removed int
	Output  int
}

// Run executes the filter command.
func (cmd *FilterCmd) Run(ctx *Context) error {
	if err := loadDictionaries(ctx, cmd.Dicts, cmd.AssumeLower); err != nil {
		return err
	}
	stats := &Stats{Loaded: ctx.Lex.WordCount()}

	before := ctx.Lex.WordCount()
	for _, word := range cmd.Remove {
		if !ctx.Lex.Remove(word) {
			ctx.Logger.Warn().Str("word", word).Msg("not in the lexicon, nothing removed")
			stats.Missed++
		}
	}
	for _, prefix := range cmd.RemovePrefixes {
		if !ctx.Lex.RemovePrefix(prefix) {
			ctx.Logger.Warn().Str("prefix", prefix).Msg("no words under this prefix, nothing removed")
			stats.Missed++
		}
	}
	stats.Removed = before - ctx.Lex.WordCount()

	var writer Writer = &TextWriter{Stats: stats}
	if cmd.JSON {
		writer = &JSONWriter{Stats: stats}
	}
	if err := writer.Write(ctx.Lex, cmd.Output); err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "loaded %d, removed %d, wrote %d (%d targets not found)\n",
		stats.Loaded, stats.Removed, stats.Output, stats.Missed)
	return nil
}
