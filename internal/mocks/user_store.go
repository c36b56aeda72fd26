package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/authkeeper/internal/model"
)

// UserStore is a mock type for the model.UserStore type.
type UserStore struct {
	mock.Mock
}

func (_m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, bool, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(model.User), ret.Bool(1), ret.Error(2)
}

func (_m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, bool, error) {
	ret := _m.Called(ctx, email)
	return ret.Get(0).(model.User), ret.Bool(1), ret.Error(2)
}

func (_m *UserStore) Save(ctx context.Context, user model.User) (model.User, error) {
	ret := _m.Called(ctx, user)

	var r0 model.User
	if rf, ok := ret.Get(0).(func(context.Context, model.User) model.User); ok {
		r0 = rf(ctx, user)
	} else {
		r0 = ret.Get(0).(model.User)
	}
	return r0, ret.Error(1)
}

// NewUserStore creates a new UserStore mock and asserts its expectations on cleanup.
func NewUserStore(t TestingT) *UserStore {
	m := &UserStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// RoleStore is a mock type for the model.RoleStore type.
type RoleStore struct {
	mock.Mock
}

func (_m *RoleStore) GetByName(ctx context.Context, name string) (model.Role, bool, error) {
	ret := _m.Called(ctx, name)
	return ret.Get(0).(model.Role), ret.Bool(1), ret.Error(2)
}

func (_m *RoleStore) List(ctx context.Context) ([]model.Role, error) {
	ret := _m.Called(ctx)
	roles, _ := ret.Get(0).([]model.Role)
	return roles, ret.Error(1)
}

// NewRoleStore creates a new RoleStore mock and asserts its expectations on cleanup.
func NewRoleStore(t TestingT) *RoleStore {
	m := &RoleStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
