package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sozercan/web-data-gen/apimodels"
	"github.com/sozercan/web-data-gen/internal/output"
	"github.com/sozercan/web-data-gen/internal/submit"
)

func newPayloadCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payload",
		Short: "Print the request body that would be submitted",
		Example: `  webdatagen payload --num-users 50 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			holder, err := holderFromFlags(cmd, v)
			if err != nil {
				return err
			}
			f, format, err := formatter(v)
			if err != nil {
				return err
			}

			req := submit.BuildRequest(holder.Config())
			if format != output.FormatTable {
				return f.Write(writeOut(cmd), req)
			}
			return f.Write(writeOut(cmd), payloadRows(req))
		},
	}
	addFormFlags(cmd)
	return cmd
}

func payloadRows(req apimodels.GenerateRequest) output.KeyValues {
	return output.KeyValues{
		{"event_type", req.EventType},
		{"event_types", strings.Join(req.EventTypes, ",")},
		{"num_users", req.NumUsers.String()},
		{"num_events", req.NumEvents.String()},
		{"time_range_days", req.TimeRangeDays.String()},
		{"output_format", req.OutputFormat},
		{"email", req.Email},
		{"sandbox", req.Sandbox},
		{"schema_id", req.SchemaID},
		{"user_prompt", req.UserPrompt},
	}
}
