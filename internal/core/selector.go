package core

import (
	"encoding/json"
	"errors"
	"strings"

	"helmdeploy/internal/core/domain"

	"go.uber.org/zap"
)

var errMissingKey = errors.New(`"key" is missing or empty`)

// Selector narrows secrets and variables down to the entries addressed to the
// current chart.
type Selector struct {
	logger *zap.Logger
}

func ProvideSelector(logger *zap.Logger) *Selector {
	return &Selector{logger: logger}
}

// Select keeps, in collection order, every entry whose key carries the
// target's required prefix and whose payload names the target chart. A
// prefixed entry that does not decode aborts the whole selection.
func (s *Selector) Select(
	source domain.Source,
	entries domain.RawCollection,
	target domain.DeploymentTarget,
) ([]domain.NamedValue, error) {
	requiredPrefix := target.RequiredKeyPrefix()

	var selected []domain.NamedValue
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Key, requiredPrefix) {
			continue
		}

		var payload domain.ChartValue
		if err := json.Unmarshal([]byte(entry.Value), &payload); err != nil {
			return nil, domain.NewDecodeError(source, entry.Key, err)
		}
		if payload.Chart != target.Name {
			continue
		}
		if payload.Key == "" {
			return nil, domain.NewDecodeError(source, entry.Key, errMissingKey)
		}

		s.logger.Debug("configuring "+string(source), zap.String("key", entry.Key))
		selected = append(selected, domain.NamedValue{Key: payload.Key, Value: payload.Value})
	}

	return selected, nil
}

// SelectEnvEntries turns every override into an EnvEntry, unfiltered.
func SelectEnvEntries(entries domain.RawCollection) []domain.EnvEntry {
	envEntries := make([]domain.EnvEntry, 0, len(entries))
	for _, entry := range entries {
		envEntries = append(envEntries, domain.EnvEntry{Name: entry.Key, Value: entry.Value})
	}
	return envEntries
}
