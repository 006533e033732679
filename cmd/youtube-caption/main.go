package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"ytkeypoints/internal/config"
	"ytkeypoints/internal/keypoints"
	"ytkeypoints/internal/logger"
	"ytkeypoints/internal/youtube"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	cfg         *config.Config
	log         *logrus.Logger
	transcripts *youtube.Client
	summarizer  *keypoints.Client
	verbose     bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "youtube-caption",
		Short:         "Fetch YouTube subtitles and summarize them into key points",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output")

	root.AddCommand(a.languagesCmd(), a.transcriptCmd(), a.keyPointsCmd())
	return root
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level := "warn"
	if a.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, Format: "text"})
	if err != nil {
		return err
	}
	log.SetOutput(os.Stderr)

	a.cfg = cfg
	a.log = log
	a.transcripts = youtube.NewClient(cfg.TranscriptTimeout, youtube.WithLogger(log))
	a.summarizer = keypoints.NewClient(cfg.KeyPoints(), log)
	return nil
}

func videoIDArg(arg string) (string, error) {
	id, ok := youtube.ExtractVideoID(arg)
	if !ok {
		return "", errors.Errorf("invalid YouTube URL: %s", arg)
	}
	return id, nil
}

func (a *app) languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages <url>",
		Short: "List available subtitle languages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := videoIDArg(args[0])
			if err != nil {
				return err
			}
			languages, err := a.transcripts.ListLanguages(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "=== Available Captions (%s) ===\n", id)
			for i, l := range languages {
				kind := "manual"
				if l.IsGenerated {
					kind = "auto"
				}
				fmt.Fprintf(out, "%d. %s (%s) [%s]\n", i+1, l.LanguageCode, l.Language, kind)
			}
			return nil
		},
	}
}

func (a *app) transcriptCmd() *cobra.Command {
	var (
		lang       string
		format     string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "transcript <url>",
		Short: "Fetch the transcript of a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := videoIDArg(args[0])
			if err != nil {
				return err
			}
			transcript, err := a.transcripts.GetTranscript(cmd.Context(), id, lang)
			if err != nil {
				return err
			}
			a.log.WithField("entries", len(transcript.Segments)).Debug("Fetched captions")

			output, err := formatTranscript(transcript, format)
			if err != nil {
				return err
			}

			if outputFile != "" {
				if err := os.WriteFile(outputFile, []byte(output), 0644); err != nil {
					return errors.Wrap(err, "failed to write output file")
				}
				a.log.WithField("file", outputFile).Debug("Output written")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "en", "Caption language code")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json, srt, vtt")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	return cmd
}

func formatTranscript(t *youtube.Transcript, format string) (string, error) {
	switch format {
	case "text":
		return t.Text(), nil
	case "json":
		return t.FormatAsJSON()
	case "srt":
		return t.FormatAsSRT(), nil
	case "vtt":
		return t.FormatAsVTT(), nil
	default:
		return "", errors.Errorf("invalid format %q, must be: text, json, srt, or vtt", format)
	}
}

func (a *app) keyPointsCmd() *cobra.Command {
	var (
		lang  string
		model string
	)

	cmd := &cobra.Command{
		Use:   "keypoints <url>",
		Short: "Fetch the transcript of a video and summarize it into key points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := videoIDArg(args[0])
			if err != nil {
				return err
			}
			transcript, err := a.transcripts.GetTranscript(cmd.Context(), id, lang)
			if err != nil {
				return err
			}
			points, err := a.summarizer.Summarize(cmd.Context(), transcript.Text(), model)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), points)
			return nil
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "en", "Caption language code")
	cmd.Flags().StringVar(&model, "model", keypoints.DefaultModel, "Model to use")
	return cmd
}
