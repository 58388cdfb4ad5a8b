// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_dispatch_test
//

// Package outbox_dispatch_test is a generated GoMock package.
package outbox_dispatch_test

import (
	context "context"
	dto "fooddelivery/internal/dto"
	entities "fooddelivery/internal/entities"
	logger "fooddelivery/pkg/logger"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MocktaskLogger is a mock of taskLogger interface.
type MocktaskLogger struct {
	ctrl     *gomock.Controller
	recorder *MocktaskLoggerMockRecorder
	isgomock struct{}
}

// MocktaskLoggerMockRecorder is the mock recorder for MocktaskLogger.
type MocktaskLoggerMockRecorder struct {
	mock *MocktaskLogger
}

// NewMocktaskLogger creates a new mock instance.
func NewMocktaskLogger(ctrl *gomock.Controller) *MocktaskLogger {
	mock := &MocktaskLogger{ctrl: ctrl}
	mock.recorder = &MocktaskLoggerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MocktaskLogger) EXPECT() *MocktaskLoggerMockRecorder {
	return m.recorder
}

// Error mocks base method.
func (m *MocktaskLogger) Error(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Error", varargs...)
}

// Error indicates an expected call of Error.
func (mr *MocktaskLoggerMockRecorder) Error(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Error", reflect.TypeOf((*MocktaskLogger)(nil).Error), varargs...)
}

// Info mocks base method.
func (m *MocktaskLogger) Info(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Info", varargs...)
}

// Info indicates an expected call of Info.
func (mr *MocktaskLoggerMockRecorder) Info(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Info", reflect.TypeOf((*MocktaskLogger)(nil).Info), varargs...)
}

// Warn mocks base method.
func (m *MocktaskLogger) Warn(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Warn", varargs...)
}

// Warn indicates an expected call of Warn.
func (mr *MocktaskLoggerMockRecorder) Warn(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Warn", reflect.TypeOf((*MocktaskLogger)(nil).Warn), varargs...)
}

// With mocks base method.
func (m *MocktaskLogger) With(fields ...logger.Field) logger.Logger {
	m.ctrl.T.Helper()
	varargs := []any{}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "With", varargs...)
	ret0, _ := ret[0].(logger.Logger)
	return ret0
}

// With indicates an expected call of With.
func (mr *MocktaskLoggerMockRecorder) With(fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "With", reflect.TypeOf((*MocktaskLogger)(nil).With), fields...)
}

// MockOutboxRepository is a mock of OutboxRepository interface.
type MockOutboxRepository struct {
	ctrl     *gomock.Controller
	recorder *MockOutboxRepositoryMockRecorder
	isgomock struct{}
}

// MockOutboxRepositoryMockRecorder is the mock recorder for MockOutboxRepository.
type MockOutboxRepositoryMockRecorder struct {
	mock *MockOutboxRepository
}

// NewMockOutboxRepository creates a new mock instance.
func NewMockOutboxRepository(ctrl *gomock.Controller) *MockOutboxRepository {
	mock := &MockOutboxRepository{ctrl: ctrl}
	mock.recorder = &MockOutboxRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockOutboxRepository) EXPECT() *MockOutboxRepositoryMockRecorder {
	return m.recorder
}

// ListPending mocks base method.
func (m *MockOutboxRepository) ListPending(ctx context.Context, limit int) ([]entities.OutboxEvent, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPending", ctx, limit)
	ret0, _ := ret[0].([]entities.OutboxEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListPending indicates an expected call of ListPending.
func (mr *MockOutboxRepositoryMockRecorder) ListPending(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPending", reflect.TypeOf((*MockOutboxRepository)(nil).ListPending), ctx, limit)
}

// MarkDispatched mocks base method.
func (m *MockOutboxRepository) MarkDispatched(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkDispatched", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkDispatched indicates an expected call of MarkDispatched.
func (mr *MockOutboxRepositoryMockRecorder) MarkDispatched(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkDispatched", reflect.TypeOf((*MockOutboxRepository)(nil).MarkDispatched), ctx, id)
}

// RecordFailure mocks base method.
func (m *MockOutboxRepository) RecordFailure(ctx context.Context, id int64, lastError string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecordFailure", ctx, id, lastError)
	ret0, _ := ret[0].(error)
	return ret0
}

// RecordFailure indicates an expected call of RecordFailure.
func (mr *MockOutboxRepositoryMockRecorder) RecordFailure(ctx, id, lastError any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordFailure", reflect.TypeOf((*MockOutboxRepository)(nil).RecordFailure), ctx, id, lastError)
}

// MockEventPublisher is a mock of EventPublisher interface.
type MockEventPublisher struct {
	ctrl     *gomock.Controller
	recorder *MockEventPublisherMockRecorder
	isgomock struct{}
}

// MockEventPublisherMockRecorder is the mock recorder for MockEventPublisher.
type MockEventPublisherMockRecorder struct {
	mock *MockEventPublisher
}

// NewMockEventPublisher creates a new mock instance.
func NewMockEventPublisher(ctrl *gomock.Controller) *MockEventPublisher {
	mock := &MockEventPublisher{ctrl: ctrl}
	mock.recorder = &MockEventPublisherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEventPublisher) EXPECT() *MockEventPublisherMockRecorder {
	return m.recorder
}

// PublishOrderStatusChanged mocks base method.
func (m *MockEventPublisher) PublishOrderStatusChanged(ctx context.Context, event dto.OrderStatusChangedEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PublishOrderStatusChanged", ctx, event)
	ret0, _ := ret[0].(error)
	return ret0
}

// PublishOrderStatusChanged indicates an expected call of PublishOrderStatusChanged.
func (mr *MockEventPublisherMockRecorder) PublishOrderStatusChanged(ctx, event any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PublishOrderStatusChanged", reflect.TypeOf((*MockEventPublisher)(nil).PublishOrderStatusChanged), ctx, event)
}

// MockDeliveryGateway is a mock of DeliveryGateway interface.
type MockDeliveryGateway struct {
	ctrl     *gomock.Controller
	recorder *MockDeliveryGatewayMockRecorder
	isgomock struct{}
}

// MockDeliveryGatewayMockRecorder is the mock recorder for MockDeliveryGateway.
type MockDeliveryGatewayMockRecorder struct {
	mock *MockDeliveryGateway
}

// NewMockDeliveryGateway creates a new mock instance.
func NewMockDeliveryGateway(ctrl *gomock.Controller) *MockDeliveryGateway {
	mock := &MockDeliveryGateway{ctrl: ctrl}
	mock.recorder = &MockDeliveryGatewayMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDeliveryGateway) EXPECT() *MockDeliveryGatewayMockRecorder {
	return m.recorder
}

// CreateDeliveryOrder mocks base method.
func (m *MockDeliveryGateway) CreateDeliveryOrder(ctx context.Context, req dto.DeliveryOrderCreateRequest) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateDeliveryOrder", ctx, req)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateDeliveryOrder indicates an expected call of CreateDeliveryOrder.
func (mr *MockDeliveryGatewayMockRecorder) CreateDeliveryOrder(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateDeliveryOrder", reflect.TypeOf((*MockDeliveryGateway)(nil).CreateDeliveryOrder), ctx, req)
}

// MockRestaurantGateway is a mock of RestaurantGateway interface.
type MockRestaurantGateway struct {
	ctrl     *gomock.Controller
	recorder *MockRestaurantGatewayMockRecorder
	isgomock struct{}
}

// MockRestaurantGatewayMockRecorder is the mock recorder for MockRestaurantGateway.
type MockRestaurantGatewayMockRecorder struct {
	mock *MockRestaurantGateway
}

// NewMockRestaurantGateway creates a new mock instance.
func NewMockRestaurantGateway(ctrl *gomock.Controller) *MockRestaurantGateway {
	mock := &MockRestaurantGateway{ctrl: ctrl}
	mock.recorder = &MockRestaurantGatewayMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRestaurantGateway) EXPECT() *MockRestaurantGatewayMockRecorder {
	return m.recorder
}

// SyncOrderStatus mocks base method.
func (m *MockRestaurantGateway) SyncOrderStatus(ctx context.Context, orderID string, status entities.OrderStatusType) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SyncOrderStatus", ctx, orderID, status)
	ret0, _ := ret[0].(error)
	return ret0
}

// SyncOrderStatus indicates an expected call of SyncOrderStatus.
func (mr *MockRestaurantGatewayMockRecorder) SyncOrderStatus(ctx, orderID, status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SyncOrderStatus", reflect.TypeOf((*MockRestaurantGateway)(nil).SyncOrderStatus), ctx, orderID, status)
}
