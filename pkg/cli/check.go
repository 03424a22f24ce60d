package cli

import "fmt"

// CheckCmd answers membership and prefix queries against one or more
// dictionary files.
type CheckCmd struct {
	Dicts       []string `arg:"" type:"existingfile" help:"Dictionary files, one word per line"`
	Words       []string `short:"w" help:"Words to look up"`
	Prefixes    []string `short:"p" help:"Prefixes to look up"`
	AssumeLower bool     `help:"Trust the dictionaries to be lowercase already (faster load)"`
}

// Run executes the check command.
func (cmd *CheckCmd) Run(ctx *Context) error {
	if err := loadDictionaries(ctx, cmd.Dicts, cmd.AssumeLower); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "loaded %d words\n", ctx.Lex.WordCount())

	for _, word := range cmd.Words {
		fmt.Fprintf(ctx.Out, "word   %-20s %v\n", word, ctx.Lex.Contains(word))
	}
	for _, prefix := range cmd.Prefixes {
		fmt.Fprintf(ctx.Out, "prefix %-20s %v\n", prefix, ctx.Lex.ContainsPrefix(prefix))
	}
	return nil
}
