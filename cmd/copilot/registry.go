package main

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/coralcrm/copilot/pkg/logger"
	"github.com/coralcrm/copilot/pkg/skills"
)

// buildRegistry loads the builtin skill table and extends it with any
// custom skill definitions found on disk.
func buildRegistry(ctx context.Context) (*skills.Registry, error) {
	reg, err := skills.NewRegistry()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load builtin skills")
	}

	var opts []skills.Option
	if dirs := viper.GetStringSlice("skill_dirs"); len(dirs) > 0 {
		opts = append(opts, skills.WithSkillDirs(dirs...))
	}

	discovery, err := skills.NewDiscovery(opts...)
	if err != nil {
		logger.G(ctx).WithError(err).Debug("skill discovery unavailable")
		return reg, nil
	}
	discovery.Extend(reg)

	logger.G(ctx).WithField("skills", reg.Len()).Debug("skill registry ready")
	return reg, nil
}

// parseEntitySpecs parses repeated --entity flags of the form
// type:id:name. Names may contain colons.
func parseEntitySpecs(specs []string) ([]skills.EntityReference, error) {
	var entities []skills.EntityReference
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 3)
		if len(parts) != 3 {
			return nil, errors.Errorf("invalid entity '%s', expected type:id:name", spec)
		}

		t := skills.EntityType(strings.ToLower(strings.TrimSpace(parts[0])))
		if !skills.ValidEntityType(t) {
			return nil, errors.Errorf("unknown entity type '%s' in '%s'", parts[0], spec)
		}
		if parts[1] == "" || parts[2] == "" {
			return nil, errors.Errorf("entity '%s' is missing an id or name", spec)
		}

		entities = append(entities, skills.EntityReference{
			Type: t,
			ID:   parts[1],
			Name: parts[2],
		})
	}
	return entities, nil
}
