package event_bus

import (
	geventError "github.com/bassbeaver/gevent/error"
	"github.com/bassbeaver/gevent/event_bus/event"
	. "gopkg.in/check.v1"
)

type EventBusSuite struct {
	registry *KindsRegistry
	bus      *EventBus
}

var _ = Suite(&EventBusSuite{})

func (s *EventBusSuite) SetUpTest(c *C) {
	s.registry = NewDefaultRegistry()
	s.bus = NewEventBus(s.registry)
}

func (s *EventBusSuite) TestAppendAndDispatch(c *C) {
	receivedNames := make([]string, 0)
	appendError := s.bus.AppendListener(
		PreInsert,
		func(eventObj *event.PreInsert) {
			receivedNames = append(receivedNames, eventObj.GetEntityName())
		},
		0,
	)
	c.Assert(appendError, IsNil)

	s.bus.Dispatch(PreInsert, event.NewPreInsert("user", nil, 1, nil))
	c.Assert(receivedNames, DeepEquals, []string{"user"})

	// Listeners of other kinds are not touched
	s.bus.Dispatch(PostInsert, event.NewPostInsert("user", nil, 1, nil))
	c.Assert(receivedNames, HasLen, 1)
}

func (s *EventBusSuite) TestListenersRunInPriorityOrder(c *C) {
	callOrder := make([]string, 0)

	c.Assert(s.bus.AppendListener(Flush, func(eventObj *event.Flush) { callOrder = append(callOrder, "second") }, 20), IsNil)
	c.Assert(s.bus.AppendListener(Flush, func(eventObj *event.Flush) { callOrder = append(callOrder, "first") }, 10), IsNil)
	c.Assert(s.bus.AppendListener(Flush, func(eventObj *event.Flush) { callOrder = append(callOrder, "third") }, 30), IsNil)

	s.bus.Dispatch(Flush, event.NewFlush(2, 0))
	c.Assert(callOrder, DeepEquals, []string{"first", "second", "third"})
}

func (s *EventBusSuite) TestStopPropagation(c *C) {
	callsCount := 0

	c.Assert(
		s.bus.AppendListener(
			Delete,
			func(eventObj *event.Delete) {
				callsCount++
				eventObj.StopPropagation()
			},
			10,
		),
		IsNil,
	)
	c.Assert(s.bus.AppendListener(Delete, func(eventObj *event.Delete) { callsCount++ }, 20), IsNil)

	s.bus.Dispatch(Delete, event.NewDelete("user", nil))
	c.Assert(callsCount, Equals, 1)
}

func (s *EventBusSuite) TestCapabilityMismatchRejected(c *C) {
	appendError := s.bus.AppendListener(PreInsert, func(eventObj *event.PostInsert) {}, 0)
	c.Assert(appendError, FitsTypeOf, &geventError.InvalidArgumentError{})
}

func (s *EventBusSuite) TestNilArgumentsRejected(c *C) {
	c.Assert(s.bus.AppendListener(nil, func(eventObj *event.PreInsert) {}, 0), FitsTypeOf, &geventError.InvalidArgumentError{})
	c.Assert(s.bus.AppendListener(PreInsert, nil, 0), FitsTypeOf, &geventError.InvalidArgumentError{})
}

func (s *EventBusSuite) TestDispatchWithoutListeners(c *C) {
	s.bus.Dispatch(Evict, event.NewEvict("user", nil))
}

func (s *EventBusSuite) TestCustomKindDispatch(c *C) {
	// Custom kind registered after the bus was created, the dispatch table
	// has to grow
	customKind, registerError := RegisterCustomKind[auditListener](s.registry, "audit")
	c.Assert(registerError, IsNil)

	receivedMessages := make([]string, 0)
	appendError := s.bus.AppendListener(
		customKind,
		func(eventObj *auditEvent) {
			receivedMessages = append(receivedMessages, eventObj.message)
		},
		0,
	)
	c.Assert(appendError, IsNil)

	s.bus.Dispatch(customKind, &auditEvent{message: "entity flushed"})
	c.Assert(receivedMessages, DeepEquals, []string{"entity flushed"})
}

func (s *EventBusSuite) TestForeignKindRejected(c *C) {
	foreignRegistry := NewDefaultRegistry()
	foreignKind, registerError := RegisterCustomKind[auditListener](foreignRegistry, "audit")
	c.Assert(registerError, IsNil)

	appendError := s.bus.AppendListener(foreignKind, func(eventObj *auditEvent) {}, 0)
	c.Assert(appendError, FitsTypeOf, &geventError.UnknownEventKindError{})
}
