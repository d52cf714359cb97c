package gevent

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/bassbeaver/gevent/config"
	"github.com/bassbeaver/gevent/event_bus"
	"github.com/bassbeaver/gevent/event_bus/event"
	"github.com/bassbeaver/gevent/helper"
	"github.com/bassbeaver/gioc"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Kernel owns the event machinery of an application: the kinds registry, the
// dispatch table over it and the DI container listener services live in.
// Listener bindings are taken from the "event_listeners" config section,
// services from the "services" section.
type Kernel struct {
	config              *viper.Viper
	container           *gioc.Container
	kindsRegistry       *event_bus.KindsRegistry
	applicationEventBus *event_bus.EventBus
	logger              zerolog.Logger
}

func (k *Kernel) GetContainer() *gioc.Container {
	return k.container
}

func (k *Kernel) GetKindsRegistry() *event_bus.KindsRegistry {
	return k.kindsRegistry
}

func (k *Kernel) GetEventBus() *event_bus.EventBus {
	return k.applicationEventBus
}

func (k *Kernel) RegisterService(alias string, factoryMethod interface{}, enableCaching bool) error {
	return helper.RegisterService(k.config, k.container, alias, factoryMethod, enableCaching)
}

// RegisterCustomEventKind adds a new event kind to the kernel's registry.
// Intended for extension code introducing lifecycle hooks not present in the
// built-in catalog.
func (k *Kernel) RegisterCustomEventKind(name string, capabilityType reflect.Type) (*event_bus.Kind, error) {
	return k.kindsRegistry.RegisterCustom(name, capabilityType)
}

func (k *Kernel) RegisterListener(kind *event_bus.Kind, listenerFunc interface{}, priority int) error {
	return k.applicationEventBus.AppendListener(kind, listenerFunc, priority)
}

// Fire dispatches eventObj to all listeners of the given kind.
func (k *Kernel) Fire(kind *event_bus.Kind, eventObj event.Event) {
	k.applicationEventBus.Dispatch(kind, eventObj)
}

// Bootstrap checks the DI container and wires all configured event
// listeners. Call after all services and custom event kinds are registered
// and before the first Fire.
func (k *Kernel) Bootstrap() error {
	if noCycles, cycledService := k.container.CheckCycles(); !noCycles {
		return errors.New("failed to bootstrap event kernel, errors in DI container: service " + cycledService + " has circular dependencies")
	}

	if readConfigError := k.readConfig(); nil != readConfigError {
		return readConfigError
	}

	k.logger.Info().Int("kinds", k.kindsRegistry.Count()).Msg("event kernel bootstrapped")

	return nil
}

func (k *Kernel) readConfig() error {
	if !k.config.IsSet("event_listeners") {
		return nil
	}

	listenersConfig := make([]config.EventListenerConfig, 0)
	if unmarshalError := k.config.UnmarshalKey("event_listeners", &listenersConfig); nil != unmarshalError {
		return errors.New("failed to read event listeners config, error: " + unmarshalError.Error())
	}

	for _, listenerConfig := range listenersConfig {
		kindObj, resolveError := k.kindsRegistry.ResolveByName(listenerConfig.EventName)
		if nil != resolveError {
			return resolveError
		}

		listenerObj := k.container.GetByAlias(listenerConfig.ListenerAlias())
		listenerMethodValue := reflect.ValueOf(listenerObj).MethodByName(listenerConfig.ListenerMethod())
		if (reflect.Value{}) == listenerMethodValue {
			return fmt.Errorf("method %s not found in listener object %s", listenerConfig.ListenerMethod(), listenerConfig.ListenerAlias())
		}

		appendError := k.applicationEventBus.AppendListener(kindObj, listenerMethodValue.Interface(), listenerConfig.Priority)
		if nil != appendError {
			return appendError
		}

		k.logger.Debug().
			Str("kind", kindObj.Name()).
			Str("listener", listenerConfig.Listener).
			Int("priority", listenerConfig.Priority).
			Msg("registered event listener from config")
	}

	return nil
}

//--------------------

func NewKernel(configPath string) (*Kernel, error) {
	// Read config files to temporary viper object
	configObj, configBuildError := helper.BuildConfigFromDir(configPath)
	if nil != configBuildError {
		return nil, configBuildError
	}

	// Creating kernel obj
	kernel := &Kernel{
		config:        viper.New(),
		container:     gioc.NewContainer(),
		kindsRegistry: event_bus.NewDefaultRegistry(),
		logger:        log.With().Str("component", "gevent.kernel").Logger(),
	}
	kernel.applicationEventBus = event_bus.NewEventBus(kernel.kindsRegistry)

	// Copy known config parts to kernel's viper object
	func(params []string, source, target *viper.Viper) {
		for _, param := range params {
			if source.IsSet(param) {
				target.Set(param, source.Get(param))
			}
		}
	}(
		[]string{"services", "event_listeners", "parameters"},
		configObj,
		kernel.config,
	)

	// Setting parameters to container
	if configObj.IsSet("parameters") {
		kernel.container.SetParameters(configObj.GetStringMapString("parameters"))
	}

	return kernel, nil
}
