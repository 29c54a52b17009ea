package main

import (
	logger "github.com/sirupsen/logrus"
	"go.uber.org/dig"

	"github.com/programmeral/codeupdater/internal"
)

func injectAppContext() (*internal.AppInternal, *logger.Logger) {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get AppInternal and the shared log sink
	var appInternal *internal.AppInternal
	var log *logger.Logger
	if err := container.Invoke(func(ai *internal.AppInternal, l *logger.Logger) {
		appInternal = ai
		log = l
	}); err != nil {
		panic(err)
	}

	return appInternal, log
}
