package libevents

import (
	"github.com/stretchr/testify/mock"
)

type mockSignal struct {
	mock.Mock

	tapOnAbort func(fn func(reason any))
}

func (m *mockSignal) Aborted() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *mockSignal) Reason() any {
	args := m.Called()
	return args.Get(0)
}

func (m *mockSignal) OnAbort(fn func(reason any)) (remove func()) {
	if m.tapOnAbort != nil {
		m.tapOnAbort(fn)
	}
	args := m.Called(fn)
	return args.Get(0).(func())
}
