package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Getter is a mock type for the probe.Getter type
type Getter struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx, v
func (_m *Getter) Get(ctx context.Context, v interface{}) error {
	ret := _m.Called(ctx, v)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, interface{}) error); ok {
		r0 = rf(ctx, v)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewGetter creates a new instance of Getter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewGetter(t interface {
	mock.TestingT
	Cleanup(func())
}) *Getter {
	m := &Getter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
