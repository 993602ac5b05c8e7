package log

import (
	"github.com/rs/zerolog"
)

// Component is the slice of the component capability set this package needs
// to render log events. It is satisfied by entx.Component.
type Component interface {
	Name() string
}

func loadComponentIntoArrayLogger(
	component Component,
	arrayLogger *zerolog.Array,
) *zerolog.Array {
	dictLogger := zerolog.Dict()
	dictLogger = dictLogger.Str("component_name", component.Name())
	return arrayLogger.Dict(dictLogger)
}

func loadComponentsToEvent(zeroLoggerEvent *zerolog.Event, components []Component) *zerolog.Event {
	zeroLoggerEvent.Int("total_components", len(components))
	arrayLogger := zerolog.Arr()
	for _, _component := range components {
		arrayLogger = loadComponentIntoArrayLogger(_component, arrayLogger)
	}
	return zeroLoggerEvent.Array("components", arrayLogger)
}

func loadEntityIntoEvent(
	zeroLoggerEvent *zerolog.Event, entityID uint64, entityStage string,
	components []Component,
) *zerolog.Event {
	arrayLogger := zerolog.Arr()
	for _, _component := range components {
		arrayLogger = loadComponentIntoArrayLogger(_component, arrayLogger)
	}
	zeroLoggerEvent.Array("components", arrayLogger)
	zeroLoggerEvent.Uint64("entity_id", entityID)
	return zeroLoggerEvent.Str("stage", entityStage)
}

// Components logs the given component list.
func Components(logger *zerolog.Logger, components []Component, level zerolog.Level) {
	zeroLoggerEvent := logger.WithLevel(level)
	zeroLoggerEvent = loadComponentsToEvent(zeroLoggerEvent, components)
	zeroLoggerEvent.Send()
}

// Entity logs entity info given an entityID, its stage, and its components.
func Entity(
	logger *zerolog.Logger,
	level zerolog.Level, entityID uint64, entityStage string,
	components []Component,
) {
	zeroLoggerEvent := logger.WithLevel(level)
	loadEntityIntoEvent(zeroLoggerEvent, entityID, entityStage, components).Send()
}

// CreateEntityLogger creates a sub logger with the entry {"entity_id" : entityID}.
func CreateEntityLogger(logger *zerolog.Logger, entityID uint64) *zerolog.Logger {
	newLogger := logger.With().Uint64("entity_id", entityID).Logger()
	return &newLogger
}
