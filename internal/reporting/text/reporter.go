package text

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/olusolaa/filelog/internal/core/domain"
	"github.com/olusolaa/filelog/internal/core/ports"
)

const ReporterTypeText = "text"

type Config struct {
	NoColor bool `mapstructure:"no_color" yaml:"no_color"`
}

type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger

	levelColors map[domain.Level]*color.Color
}

// NewReporter writes to w, or stdout when w is nil. Color is disabled when
// configured off or when stdout is not a terminal.
func NewReporter(cfg Config, w io.Writer, logger ports.Logger) (*Reporter, error) {
	if w == nil {
		w = os.Stdout
	}

	colors := map[domain.Level]*color.Color{
		domain.LevelInfo:    color.New(color.FgGreen),
		domain.LevelWarning: color.New(color.FgYellow),
		domain.LevelError:   color.New(color.FgRed, color.Bold),
	}
	if cfg.NoColor || !isTerminal(w) {
		for _, c := range colors {
			c.DisableColor()
		}
	}

	return &Reporter{
		config:      cfg,
		writer:      w,
		logger:      logger,
		levelColors: colors,
	}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func (r *Reporter) Report(ctx context.Context, entries []domain.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(r.writer, "No log entries found.")
		return nil
	}

	tw := tabwriter.NewWriter(r.writer, 0, 8, 2, ' ', 0)

	counts := make(map[domain.Level]int, len(domain.Levels()))
	for _, e := range entries {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		counts[e.Level]++
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			e.Time.Format(domain.TimestampLayout), r.levelTag(e.Level), e.Message)
	}

	fmt.Fprintln(tw, "\nSummary:")
	fmt.Fprintln(tw, "-------")
	for _, level := range domain.Levels() {
		fmt.Fprintf(tw, "%s:\t%d\n", r.levelTag(level), counts[level])
	}
	fmt.Fprintf(tw, "Total:\t%d\n", len(entries))

	if err := tw.Flush(); err != nil {
		r.logger.Errorf(ctx, err, "Failed to write text report")
		return err
	}
	return nil
}

func (r *Reporter) levelTag(level domain.Level) string {
	if c, ok := r.levelColors[level]; ok {
		return c.Sprint(level.Upper())
	}
	return level.Upper()
}
