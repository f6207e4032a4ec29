package commands

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"reqsign/internal/domain"
	"reqsign/internal/protocol/fieldtoken"
)

func sendCmd() *cobra.Command {
	var (
		method   string
		data     string
		dataFile string
		ctype    string
		headers  []string
		withIK   bool
		fields   string
	)
	cmd := &cobra.Command{
		Use:   "send <url>",
		Short: "Sign and send an HTTP request, capturing fields from the response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !cmd.Flags().Changed("idempotency") {
				withIK = appCtx.Config.Signing.IncludeIdempotencyKey
			}
			if !cmd.Flags().Changed("fields") {
				fields = appCtx.Config.Signing.Fields
			}

			body := []byte(data)
			if dataFile != "" {
				b, err := os.ReadFile(dataFile)
				if err != nil {
					return err
				}
				body = b
			}

			req, err := http.NewRequestWithContext(ctx, strings.ToUpper(method), args[0], bytes.NewReader(body))
			if err != nil {
				return err
			}
			req.Header.Set("Content-Type", ctype)
			for _, h := range headers {
				k, v, ok := strings.Cut(h, ":")
				if !ok {
					return fmt.Errorf("header %q: want Name: value", h)
				}
				req.Header.Add(strings.TrimSpace(k), strings.TrimSpace(v))
			}

			resp, err := appCtx.Transport().Do(ctx, req, domain.SignRequest{
				IncludeIdempotencyKey: withIK,
				Fields:                fieldtoken.Parse(fields),
			})
			if resp != nil {
				out := cmd.OutOrStdout()
				fmt.Fprintln(cmd.ErrOrStderr(), resp.Status)
				if len(resp.Captured) > 0 {
					fmt.Fprintln(cmd.ErrOrStderr(), "captured:", strings.Join(resp.Captured, ","))
				}
				_, _ = out.Write(resp.Body)
				if len(resp.Body) > 0 && resp.Body[len(resp.Body)-1] != '\n' {
					fmt.Fprintln(out)
				}
			}
			return err
		},
	}
	f := cmd.Flags()
	f.StringVarP(&method, "method", "X", http.MethodPost, "HTTP method")
	f.StringVarP(&data, "data", "d", "", "request body")
	f.StringVar(&dataFile, "data-file", "", "read the request body from a file")
	f.StringVar(&ctype, "content-type", domain.MimeJSON, "request Content-Type")
	f.StringArrayVarP(&headers, "header", "H", nil, "extra header, Name: value (repeatable)")
	f.BoolVar(&withIK, "idempotency", true, "prefix the message with the idempotency key")
	f.StringVarP(&fields, "fields", "f", "", "comma-separated fields to sign")
	cmd.MarkFlagsMutuallyExclusive("data", "data-file")
	return cmd
}
