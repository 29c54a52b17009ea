package entities

import (
	logger "github.com/sirupsen/logrus"
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
// Settings requires a config file path, so it is loaded by the controllers layer.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewLogger); err != nil {
		return err
	}
	if err := container.Provide(func(log *logger.Logger) logger.FieldLogger {
		return log
	}); err != nil {
		return err
	}
	return nil
}
