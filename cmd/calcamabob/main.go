package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/zephyrtronium/calcamabob"
)

// defaultSource is evaluated when neither an expression nor a file is given.
const defaultSource = "0."

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "calcamabob",
		Usage:     "evaluate an arithmetic expression",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "expression",
				Aliases: []string{"e"},
				Usage:   "expression to evaluate",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "file containing the expression to evaluate, or - for stdin",
			},
			&cli.StringFlag{
				Name:  "fmt",
				Value: defaultConfig().Format,
				Usage: "result formatting verb",
			},
			&cli.BoolFlag{
				Name:  "echo",
				Usage: "print the parse tree before the result",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "reject unrecognized characters instead of ignoring them",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log tokens and parse trees",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "TOML file with defaults for fmt, echo, strict, and verbose",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	cfg := defaultConfig()
	if path := c.String("config"); path != "" {
		if err := loadConfig(path, &cfg); err != nil {
			return err
		}
	}
	cfg.override(c)
	log := newLogger(c.App.ErrWriter, cfg.Verbose)

	src, err := source(c, log)
	if err != nil {
		return err
	}
	a, err := parse(src, cfg.Strict, log)
	if err != nil {
		return err
	}
	r, err := a.Eval()
	if err != nil {
		return err
	}
	if cfg.Echo {
		fmt.Fprintf(c.App.Writer, "%v : ", a)
	}
	fmt.Fprintf(c.App.Writer, cfg.Format+"\n", r)
	return nil
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	lvl := zerolog.WarnLevel
	if verbose {
		lvl = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: color.NoColor}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// source picks the text to evaluate. An expression wins over a file.
func source(c *cli.Context, log zerolog.Logger) (string, error) {
	switch {
	case c.IsSet("expression") && c.IsSet("file"):
		log.Warn().Str("file", c.String("file")).Msg("both a file and an expression were given; using the expression")
		return c.String("expression"), nil
	case c.IsSet("expression"):
		return c.String("expression"), nil
	case c.IsSet("file"):
		return readSource(c.String("file"), c.App.Reader)
	default:
		return defaultSource, nil
	}
}

func readSource(path string, stdin io.Reader) (string, error) {
	var b []byte
	var err error
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return string(b), nil
}

func parse(src string, strict bool, log zerolog.Logger) (*calcamabob.Expr, error) {
	var toks []calcamabob.Token
	if strict {
		var err error
		toks, err = calcamabob.TokenizeStrict(src)
		if err != nil {
			return nil, err
		}
	} else {
		toks = calcamabob.Tokenize(src)
	}
	if e := log.Debug(); e.Enabled() {
		strs := make([]string, len(toks))
		for i, tok := range toks {
			strs[i] = tok.String()
		}
		e.Str("tokens", strings.Join(strs, " ")).Msg("tokenized")
	}
	a, err := calcamabob.Parse(toks)
	if err != nil {
		return nil, err
	}
	log.Debug().Stringer("tree", a).Msg("parsed")
	return a, nil
}
