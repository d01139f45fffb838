package scheduler

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
)

type SchedulerTestSuite struct {
	suite.Suite
	clock     *clockwork.FakeClock
	scheduler Scheduler
}

func (s *SchedulerTestSuite) SetupTest() {
	s.clock = clockwork.NewFakeClock()
	s.scheduler = New(&Config{Clock: s.clock})
}

func TestSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) TestScheduledFunctionRunsAfterDelay() {
	fired := make(chan struct{})
	s.scheduler.Schedule(time.Second, func() { close(fired) })

	select {
	case <-fired:
		s.Fail("function ran before the delay elapsed")
	case <-time.After(10 * time.Millisecond):
	}

	s.clock.Advance(time.Second)

	select {
	case <-fired:
	case <-time.After(time.Second):
		s.Fail("function did not run after the delay elapsed")
	}
}

func (s *SchedulerTestSuite) TestCancelStopsPendingRun() {
	fired := make(chan struct{})
	handle := s.scheduler.Schedule(time.Second, func() { close(fired) })

	s.True(handle.Cancel())

	s.clock.Advance(2 * time.Second)

	select {
	case <-fired:
		s.Fail("cancelled function still ran")
	case <-time.After(10 * time.Millisecond):
	}

	// Cancelling twice is safe
	s.False(handle.Cancel())
}

func (s *SchedulerTestSuite) TestCancelAfterRunIsNoOp() {
	fired := make(chan struct{})
	handle := s.scheduler.Schedule(time.Second, func() { close(fired) })

	s.clock.Advance(time.Second)
	select {
	case <-fired:
	case <-time.After(time.Second):
		s.Fail("function did not run")
	}

	s.False(handle.Cancel())
}
