package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/klippa-app/go-pdfium/webassembly"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
	"golang.org/x/text/language"

	"github.com/ivanvanderbyl/pdflayout"
)

func main() {
	cmd := &cli.Command{
		Name:  "pdflayout",
		Usage: "Render page labels and inspect table cell alignment",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "paginate",
				Usage: "Print the page label of every page",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "Input PDF file path (the page count is read from it)",
					},
					&cli.IntFlag{
						Name:  "pages",
						Usage: "Total page count when no input PDF is given",
					},
					&cli.StringFlag{
						Name:  "style",
						Usage: "Pagination style: default, roman, locale, roman-lower",
						Value: "default",
					},
					&cli.StringFlag{
						Name:  "template",
						Usage: "Label template; the first %s is the page, the second the total",
						Value: "%s / %s",
					},
					&cli.StringFlag{
						Name:  "locale",
						Usage: "BCP 47 language tag used by the locale style",
						Value: "en",
					},
					&cli.IntFlag{
						Name:  "start",
						Usage: "First labelled page (1-indexed, 0 for the first page)",
					},
					&cli.IntFlag{
						Name:  "end",
						Usage: "Last labelled page (1-indexed, 0 for the last page)",
					},
					&cli.IntSliceFlag{
						Name:  "hide",
						Usage: "Pages that never receive a label",
					},
				},
				Action: paginate,
			},
			{
				Name:  "align",
				Usage: "Show where content of a given size lands inside a cell",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "alignment",
						Usage: "Cell alignment, e.g. top-left, center, bottom-right",
						Value: "top-left",
					},
					&cli.FloatFlag{Name: "cell-width", Value: 100},
					&cli.FloatFlag{Name: "cell-height", Value: 40},
					&cli.FloatFlag{Name: "width", Usage: "Content width", Value: 50},
					&cli.FloatFlag{Name: "height", Usage: "Content height", Value: 10},
				},
				Action: align,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(cmd *cli.Command) zerolog.Logger {
	level := zerolog.InfoLevel
	if cmd.Bool("verbose") {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Logger()
}

func paginate(_ context.Context, cmd *cli.Command) error {
	logger := newLogger(cmd)

	style, err := buildStyle(cmd.String("style"), cmd.String("template"), cmd.String("locale"))
	if err != nil {
		return err
	}

	pagination := pdflayout.Pagination{
		Style:  style,
		Start:  int(cmd.Int("start")),
		End:    int(cmd.Int("end")),
		Hidden: toInts(cmd.IntSlice("hide")),
	}
	if err := pagination.Validate(); err != nil {
		return err
	}
	logger.Debug().Stringer("style", style).Int("start", pagination.Start).Int("end", pagination.End).Msg("pagination configured")

	var labels []pdflayout.PageLabel
	if inputPath := cmd.String("input"); inputPath != "" {
		labels, err = labelFile(logger, inputPath, pagination)
		if err != nil {
			return err
		}
	} else {
		total := int(cmd.Int("pages"))
		if total <= 0 {
			return fmt.Errorf("either --input or a positive --pages is required")
		}
		labels = pagination.Labels(total)
	}

	logger.Info().Int("labels", len(labels)).Msg("pagination rendered")
	for _, label := range labels {
		fmt.Printf("%d\t%s\n", label.Page, label.Text)
	}
	return nil
}

func labelFile(logger zerolog.Logger, inputPath string, pagination pdflayout.Pagination) ([]pdflayout.PageLabel, error) {
	// Initialise pdfium
	pool, err := webassembly.Init(webassembly.Config{
		MinIdle:  1,
		MaxIdle:  1,
		MaxTotal: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialise pdfium: %w", err)
	}
	defer pool.Close()

	instance, err := pool.GetInstance(time.Second * 30)
	if err != nil {
		return nil, fmt.Errorf("failed to get pdfium instance: %w", err)
	}

	labeler := pdflayout.NewLabelerWithPagination(instance, pagination)

	info, err := labeler.GetDocumentInfo(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get document info: %w", err)
	}
	logger.Info().Str("input", inputPath).Int("pages", info.PageCount).Msg("processing PDF")

	labels, err := labeler.LabelFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to label PDF: %w", err)
	}
	return labels, nil
}

func buildStyle(name, template, locale string) (pdflayout.PaginationStyle, error) {
	switch strings.ToLower(name) {
	case "default", "":
		return pdflayout.Default(), nil
	case "roman":
		return pdflayout.Roman(template), nil
	case "roman-lower":
		return pdflayout.CustomNumberFormat(template, pdflayout.RomanNumberFormatter{Lowercase: true}), nil
	case "locale":
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
		}
		return pdflayout.CustomNumberFormat(template, pdflayout.NewLocaleNumberFormatter(tag)), nil
	}
	return nil, fmt.Errorf("unknown pagination style %q", name)
}

func align(_ context.Context, cmd *cli.Command) error {
	logger := newLogger(cmd)

	alignment, err := pdflayout.ParseCellAlignment(cmd.String("alignment"))
	if err != nil {
		return err
	}

	cell := pdflayout.Rect{X1: cmd.Float("cell-width"), Y1: cmd.Float("cell-height")}
	x, y := alignment.Offset(cell, cmd.Float("width"), cmd.Float("height"))
	logger.Debug().Stringer("alignment", alignment).Int("code", alignment.Code()).Msg("alignment parsed")

	fmt.Printf("alignment: %s\n", alignment)
	fmt.Printf("top: %t bottom: %t left: %t right: %t\n",
		alignment.IsTop(), alignment.IsBottom(), alignment.IsLeft(), alignment.IsRight())
	fmt.Printf("horizontal: %s vertical: %s\n", alignment.Horizontal(), alignment.Vertical())
	fmt.Printf("offset: %.2f, %.2f\n", x, y)
	return nil
}

// toInts converts the int64 values returned by cli/v3 flags to ints.
func toInts(values []int64) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = int(v)
	}
	return out
}
