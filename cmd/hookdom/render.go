package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hookdom/internal/config"
	"github.com/vango-dev/hookdom/internal/demo"
	"github.com/vango-dev/hookdom/pkg/dom"
	"github.com/vango-dev/hookdom/pkg/dom/memdom"
	"github.com/vango-dev/hookdom/pkg/render"
)

func renderCmd(flags *globalFlags) *cobra.Command {
	var (
		clicks    int
		mutations bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo application to HTML",
		Long: `Render the demo application into an in-memory document and print
the resulting HTML.

With --clicks the increment button is clicked that many times before the
document is printed, exercising state updates and reconciliation.

Examples:
  hookdom render
  hookdom render --clicks=3
  hookdom render --mutations --debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.Debug)

			doc, err := renderDemo(cmd.Context(), cfg, logger, clicks)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, doc.Root().InnerHTML())
			if mutations {
				for _, m := range doc.Journal().Records() {
					fmt.Fprintf(out, "%-20s %-6s %s %s\n", m.Op, m.Node, m.Name, m.Value)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&clicks, "clicks", "n", 0, "Click the increment button N times")
	cmd.Flags().BoolVarP(&mutations, "mutations", "m", false, "Print the DOM operations of the last update")

	return cmd
}

// renderDemo renders the demo into a fresh document and clicks the
// increment button clicks times. The journal holds the operations of the
// last step.
func renderDemo(ctx context.Context, cfg *config.Config, logger *slog.Logger, clicks int) (*memdom.Document, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	doc := memdom.NewDocument()

	opts := []render.Option{
		render.WithLogger(logger),
		render.WithDebug(cfg.Debug),
		render.WithMaxUpdateDepth(cfg.Render.MaxUpdateDepth),
	}
	if t := tracer(cfg, logger); t != nil {
		opts = append(opts, render.WithTracer(t))
	}
	var failed error
	opts = append(opts, render.WithErrorHandler(func(err error) { failed = err }))
	r := render.New(doc, opts...)

	if err := r.Render(ctx, demo.Tree(demo.Options{}), doc.Root()); err != nil {
		return nil, err
	}

	for i := 0; i < clicks; i++ {
		btn := doc.Root().QueryAttr("id", "increment")
		if btn == nil {
			return nil, fmt.Errorf("render: increment button not found")
		}
		doc.Journal().Reset()
		doc.Dispatch(btn, &dom.Event{Type: "click"})
		if failed != nil {
			return nil, failed
		}
	}
	return doc, nil
}

