package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sozercan/web-data-gen/internal/form"
)

// flagName maps a form field onto its command line flag.
func flagName(field string) string {
	if field == form.FieldUserPrompt {
		return "prompt"
	}
	return strings.ReplaceAll(field, "_", "-")
}

func addFormFlags(cmd *cobra.Command) {
	defaults := form.Defaults()
	for _, f := range form.Fields() {
		def, _ := defaults.Get(f.Name)
		cmd.Flags().String(flagName(f.Name), def, f.Label)
	}
}

// holderFromFlags seeds a holder from defaults, then the config file's form
// section, then flags the user actually set.
func holderFromFlags(cmd *cobra.Command, v *viper.Viper) (*form.Holder, error) {
	h := form.NewHolder()
	for _, f := range form.Fields() {
		key := "form." + f.Name
		if v.IsSet(key) {
			if err := h.SetField(f.Name, v.GetString(key)); err != nil {
				return nil, err
			}
		}

		flag := cmd.Flags().Lookup(flagName(f.Name))
		if flag != nil && flag.Changed {
			if err := h.SetField(f.Name, flag.Value.String()); err != nil {
				return nil, err
			}
		}
	}
	return h, nil
}
