package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"board-chatbot/internal/contextutil"
	"board-chatbot/internal/handlers"
	"board-chatbot/internal/service"
	"board-chatbot/internal/storage"
)

// errQueryLogDisabled is returned by commands that read the query log when
// QUERY_LOG_PATH is not set.
var errQueryLogDisabled = errors.New("query log is disabled; set QUERY_LOG_PATH")

func newAskCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <message>",
		Short: "Run one chat message through the pipeline and print the JSON reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *configFile, func(ctx context.Context, a *app) error {
				resp, err := a.chat.HandleChat(ctx, service.ChatRequest{Message: strings.Join(args, " ")})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), handlers.ChatResponse{
					Message:   resp.Message,
					Posts:     resp.Posts,
					QueryInfo: resp.QueryInfo,
				})
			})
		},
	}
}

func newPostCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "post <id>",
		Short: "Fetch a single board post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *configFile, func(ctx context.Context, a *app) error {
				post, err := a.posts.GetPost(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), post)
			})
		},
	}
}

func newQueriesCmd(configFile *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "queries",
		Short: "List the most recent entries of the query log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *configFile, func(ctx context.Context, a *app) error {
				if a.queries == nil {
					return errQueryLogDisabled
				}
				records, err := a.queries.Recent(ctx, limit)
				if err != nil {
					return err
				}
				return printQueries(cmd.OutOrStdout(), records)
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries to show")
	return cmd
}

// withApp wires the application, attaches a logger and request id to the
// command context, and runs fn.
func withApp(cmd *cobra.Command, configFile string, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp(ctx, configFile)
	if err != nil {
		return err
	}
	defer a.Close()

	requestID := "cli-" + uuid.New().String()
	ctx = contextutil.WithRequestID(ctx, requestID)
	ctx = contextutil.WithLogger(ctx, a.logger.With(zap.String("request_id", requestID)))
	return fn(ctx, a)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printQueries(w io.Writer, records []storage.QueryRecord) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tINTENT\tKEYWORD\tSORT\tPOSTS\tDURATION\tMESSAGE")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			r.IntentType,
			dash(r.Keyword),
			dash(r.Sort),
			r.PostCount,
			r.Duration,
			r.Message,
		)
	}
	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
