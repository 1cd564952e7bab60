// internal/cli/show_config_entry.go
package tachos

import (
	"io"

	"github.com/mwiater/tachos/internal/appconfig"
)

func runShowConfig(out io.Writer) error {
	file := ""
	if currentConfig != nil {
		file = currentConfig.ConfigPath
	}
	appconfig.ShowConfig(out, file, currentConfig)
	return nil
}
