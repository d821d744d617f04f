// Command preview renders the operator and client notices for an inquiry
// as raw MIME messages without sending them.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"project-inquiry-backend/config"
	"project-inquiry-backend/internal/domain"
	"project-inquiry-backend/internal/usecase"
	"project-inquiry-backend/pkg/email"
	"project-inquiry-backend/pkg/llm"
	"project-inquiry-backend/pkg/validation"

	"github.com/spf13/cobra"
)

type previewOptions struct {
	file      string
	sender    string
	operator  string
	signature string
	ack       string
	generate  bool
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &previewOptions{}

	root := &cobra.Command{
		Use:          "preview",
		Short:        "Render inquiry notices as raw MIME messages",
		SilenceUsage: true,
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "-", "inquiry JSON file, - for stdin")
	flags.StringVar(&opts.sender, "sender", "noreply@example.com", "relay sender address")
	flags.StringVar(&opts.operator, "operator", "owner@example.com", "operator mailbox")
	flags.StringVar(&opts.signature, "signature", "The Project Team", "client notice signature")

	operatorCmd := &cobra.Command{
		Use:   "operator",
		Short: "Render the operator notice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inquiry, err := loadInquiry(cmd, opts.file)
			if err != nil {
				return err
			}
			msg, err := usecase.ComposeOperatorNotice(opts.dispatcherConfig(), inquiry)
			if err != nil {
				return err
			}
			return writeMIME(cmd.OutOrStdout(), opts.sender, msg)
		},
	}

	clientCmd := &cobra.Command{
		Use:   "client",
		Short: "Render the client notice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inquiry, err := loadInquiry(cmd, opts.file)
			if err != nil {
				return err
			}

			ack := opts.ack
			if opts.generate {
				ack, err = generateAcknowledgement(cmd.Context(), opts, inquiry)
				if err != nil {
					return err
				}
			}

			msg, err := usecase.ComposeClientNotice(opts.dispatcherConfig(), inquiry, ack)
			if err != nil {
				return err
			}
			return writeMIME(cmd.OutOrStdout(), opts.sender, msg)
		},
	}
	clientCmd.Flags().StringVar(&opts.ack, "ack", config.DefaultFallbackReply, "acknowledgement text")
	clientCmd.Flags().BoolVar(&opts.generate, "generate", false, "generate the acknowledgement with the configured provider")
	clientCmd.MarkFlagsMutuallyExclusive("ack", "generate")

	root.AddCommand(operatorCmd, clientCmd)
	return root
}

func (o *previewOptions) dispatcherConfig() usecase.DispatcherConfig {
	return usecase.DispatcherConfig{
		OperatorEmail: o.operator,
		Signature:     o.signature,
		FallbackReply: config.DefaultFallbackReply,
	}
}

// loadInquiry decodes and validates the inquiry named by path
func loadInquiry(cmd *cobra.Command, path string) (*domain.Inquiry, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open inquiry: %w", err)
		}
		defer f.Close()
		r = f
	}

	var inquiry domain.Inquiry
	if err := json.NewDecoder(r).Decode(&inquiry); err != nil {
		return nil, fmt.Errorf("decode inquiry: %w", err)
	}
	if err := usecase.ValidateInquiry(validation.New(), &inquiry); err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func generateAcknowledgement(ctx context.Context, opts *previewOptions, inquiry *domain.Inquiry) (string, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return "", err
	}
	generator, err := llm.NewFromConfig(ctx, cfg)
	if err != nil {
		return "", err
	}

	d := usecase.NewNotificationDispatcher(opts.dispatcherConfig(), nil, generator)
	return d.GenerateAcknowledgement(ctx, inquiry), nil
}

func writeMIME(out io.Writer, sender string, msg email.Message) error {
	raw, err := email.BuildMIME(sender, msg, time.Now())
	if err != nil {
		return err
	}
	_, err = out.Write(raw)
	return err
}
