package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sozercan/web-data-gen/internal/datagen"
	"github.com/sozercan/web-data-gen/internal/logx"
	"github.com/sozercan/web-data-gen/internal/output"
)

type endpointInfo struct {
	Order    int    `json:"order" yaml:"order"`
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	Resolved string `json:"resolved,omitempty" yaml:"resolved,omitempty"`
	Relay    bool   `json:"relay" yaml:"relay"`
}

type endpointList []endpointInfo

func (l endpointList) Header() []string {
	return []string{"#", "Endpoint", "Resolved", "Relay"}
}

func (l endpointList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, e := range l {
		rows = append(rows, []string{strconv.Itoa(e.Order), e.Endpoint, e.Resolved, strconv.FormatBool(e.Relay)})
	}
	return rows
}

func newEndpointsCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints",
		Short: "List candidate endpoints in attempt order",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := datagen.NewClient(v.GetString("origin"))
			if err != nil {
				return err
			}
			wf, err := newWorkflow(v, logx.Discard())
			if err != nil {
				return err
			}
			f, format, err := formatter(v)
			if err != nil {
				return err
			}

			list := endpointList{}
			for i, e := range wf.Endpoints() {
				resolved, _ := client.Resolve(e)
				list = append(list, endpointInfo{
					Order:    i + 1,
					Endpoint: e,
					Resolved: resolved,
					Relay:    datagen.IsRelay(e),
				})
			}
			if format == output.FormatTable {
				return f.Write(writeOut(cmd), list)
			}
			return f.Write(writeOut(cmd), []endpointInfo(list))
		},
	}
}
