package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Updater is a mock type for the heartbeat.Updater type
type Updater struct {
	mock.Mock
}

// Update provides a mock function with given fields: ctx, v
func (_m *Updater) Update(ctx context.Context, v map[string]interface{}) error {
	ret := _m.Called(ctx, v)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, map[string]interface{}) error); ok {
		r0 = rf(ctx, v)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewUpdater creates a new instance of Updater. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewUpdater(t interface {
	mock.TestingT
	Cleanup(func())
}) *Updater {
	m := &Updater{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
