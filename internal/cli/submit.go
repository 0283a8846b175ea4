package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sozercan/web-data-gen/apimodels"
	"github.com/sozercan/web-data-gen/internal/form"
	"github.com/sozercan/web-data-gen/internal/output"
	"github.com/sozercan/web-data-gen/internal/prompt"
)

var errSubmissionFailed = errors.New("submission failed")

// newDriver is swapped out in tests.
var newDriver = func() prompt.Driver { return prompt.NewSurveyDriver() }

func newSubmitCommand(v *viper.Viper) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a generation request",
		Long: `Submit a web data generation request.

Fields come from flags, the "form" section of the config file, or are
prompted for with --interactive. The candidate endpoints are tried in order
and the first successful answer is printed.`,
		Example: `  # Submit with defaults
  webdatagen submit --email ada@example.com

  # Fill the form interactively and print JSON
  webdatagen submit -i -o json

  # Only try the direct API
  webdatagen submit --email ada@example.com --no-relay --endpoint https://api.example.com/gen`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			holder, err := holderFromFlags(cmd, v)
			if err != nil {
				return err
			}
			if interactive {
				if err := prompt.Fill(ctx, newDriver(), holder); err != nil {
					return err
				}
			}
			if err := form.Validate(holder.Config()); err != nil {
				return fmt.Errorf("invalid form: %w", err)
			}

			f, format, err := formatter(v)
			if err != nil {
				return err
			}

			logger, closeLogs, err := newLogger(cmd, v)
			if err != nil {
				return err
			}
			defer closeLogs()

			wf, err := newWorkflow(v, logger)
			if err != nil {
				return err
			}

			outcome := wf.Submit(ctx, holder)
			if err := f.Write(writeOut(cmd), outcomeView(outcome, format)); err != nil {
				return err
			}
			if outcome.Status == form.StatusFailure {
				return errSubmissionFailed
			}
			return nil
		},
	}

	addFormFlags(cmd)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for every field")
	return cmd
}

func outcomeView(o form.Outcome, format output.Format) interface{} {
	resp := apimodels.OutcomeResponse{
		Status:       string(o.Status),
		Response:     o.Response,
		ResponseText: o.RawText,
		Error:        o.Error,
	}
	if o.Error != "" {
		resp.Tips = form.Tips
	}
	if format != output.FormatTable {
		return resp
	}

	kv := output.KeyValues{{"Status", resp.Status}}
	if resp.Error != "" {
		kv = append(kv, [2]string{"Error", resp.Error})
		for _, tip := range resp.Tips {
			kv = append(kv, [2]string{"Tip", tip})
		}
	}
	if resp.Response != nil {
		data, err := json.Marshal(resp.Response)
		if err == nil {
			kv = append(kv, [2]string{"Response", string(data)})
		}
	}
	if resp.ResponseText != "" {
		kv = append(kv, [2]string{"Raw Response", resp.ResponseText})
	}
	return kv
}
