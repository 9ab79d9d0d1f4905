package environment

import (
	"fmt"
	"strings"

	"helmdeploy/internal/ports"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var _ ports.Environment = (*ViperEnvironment)(nil)

// ViperEnvironment resolves keys from command-line flags first, then from
// environment variables. Keys use dashes; the matching variable is the upper
// cased key with dashes turned into underscores (helm-chart-url reads
// HELM_CHART_URL).
type ViperEnvironment struct {
	v *viper.Viper
}

// ProvideViperEnvironment creates a fresh viper instance bound to flags. A nil
// flag set means environment variables only.
func ProvideViperEnvironment(flags *pflag.FlagSet) (*ViperEnvironment, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	return &ViperEnvironment{v: v}, nil
}

func (e *ViperEnvironment) GetString(key string) string {
	return e.v.GetString(key)
}

func (e *ViperEnvironment) GetBool(key string) (bool, error) {
	value := e.v.Get(key)
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return false, nil
	}
	return cast.ToBoolE(value)
}
