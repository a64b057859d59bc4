// Command blueprint builds a choice structure from flags and prints either the
// follow-up questions or the generated blueprint as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"vibecraft/internal/adapter/repo"
	"vibecraft/internal/domain"
	"vibecraft/internal/domain/jsoncfg"
	"vibecraft/internal/i18n"
	"vibecraft/internal/infra"
	"vibecraft/internal/promptgen"
	"vibecraft/internal/questions"
	"vibecraft/internal/service"
)

type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(v string) error {
	*l = append(*l, v)
	return nil
}

type options struct {
	goal          string
	intent        string
	category      string
	locale        string
	moods         listFlag
	details       listFlag
	sliders       listFlag
	showQuestions bool
	save          bool
}

func main() {
	_ = godotenv.Load()
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		exitWithError(err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	req, err := buildRequest(opts)
	if err != nil {
		return err
	}
	req.Normalize()
	if err := req.Validate(!opts.showQuestions); err != nil {
		return err
	}
	choices := req.Choices()

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if opts.showQuestions {
		locale := i18n.Match(opts.locale)
		if locale == "" {
			locale = i18n.DefaultLocale
		}
		return enc.Encode(i18n.LocalizeQuestions(locale, questions.Compute(choices)))
	}

	if !opts.save {
		return enc.Encode(promptgen.Generate(choices))
	}

	cfg, err := infra.LoadConfig()
	if err != nil {
		return err
	}
	logger := infra.NewLogger(cfg.AppEnv).With().Str("cmd", "blueprint").Logger()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	library, closeLibrary, err := repo.OpenLibrary(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open library: %w", err)
	}
	defer closeLibrary()

	bp, err := service.NewBlueprintService(library, nil, nil, logger).Generate(ctx, choices)
	if err != nil {
		return err
	}
	return enc.Encode(bp)
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("blueprint", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.goal, "goal", "", "goal to build for (video, image, game, tool)")
	fs.StringVar(&opts.intent, "intent", "", "intent (commercial, artistic, educational, cinematic)")
	fs.StringVar(&opts.category, "category", "", "goal specific category, e.g. portrait")
	fs.StringVar(&opts.locale, "locale", "", "display locale for -questions (en, tr, ar)")
	fs.Var(&opts.moods, "mood", "mood to select; repeat up to four times")
	fs.Var(&opts.details, "detail", "question answer as id=value; repeatable")
	fs.Var(&opts.sliders, "slider", "slider value as name=0..100; repeatable")
	fs.BoolVar(&opts.showQuestions, "questions", false, "print the follow-up questions instead of generating")
	fs.BoolVar(&opts.save, "save", false, "append the blueprint to the configured library")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if opts.showQuestions && opts.save {
		return options{}, errors.New("-questions and -save cannot be combined")
	}
	return opts, nil
}

func buildRequest(opts options) (jsoncfg.ChoicesJSON, error) {
	req := jsoncfg.ChoicesJSON{
		Goal:     domain.Goal(opts.goal),
		Moods:    append([]string{}, opts.moods...),
		Intent:   opts.intent,
		Category: opts.category,
		Details:  map[string]string{},
		Sliders:  map[string]int{},
	}
	for _, kv := range opts.details {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return req, fmt.Errorf("-detail %q: want id=value", kv)
		}
		req.Details[k] = v
	}
	for _, kv := range opts.sliders {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return req, fmt.Errorf("-slider %q: want name=value", kv)
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return req, fmt.Errorf("-slider %q: %w", kv, err)
		}
		req.Sliders[strings.TrimSpace(k)] = n
	}
	return req, nil
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
