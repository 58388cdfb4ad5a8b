// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveryorder_test
//

// Package deliveryorder_test is a generated GoMock package.
package deliveryorder_test

import (
	context "context"
	entities "fooddelivery/internal/entities"
	logger "fooddelivery/pkg/logger"
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"
)

// MockserviceLogger is a mock of serviceLogger interface.
type MockserviceLogger struct {
	ctrl     *gomock.Controller
	recorder *MockserviceLoggerMockRecorder
	isgomock struct{}
}

// MockserviceLoggerMockRecorder is the mock recorder for MockserviceLogger.
type MockserviceLoggerMockRecorder struct {
	mock *MockserviceLogger
}

// NewMockserviceLogger creates a new mock instance.
func NewMockserviceLogger(ctrl *gomock.Controller) *MockserviceLogger {
	mock := &MockserviceLogger{ctrl: ctrl}
	mock.recorder = &MockserviceLoggerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockserviceLogger) EXPECT() *MockserviceLoggerMockRecorder {
	return m.recorder
}

// Error mocks base method.
func (m *MockserviceLogger) Error(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Error", varargs...)
}

// Error indicates an expected call of Error.
func (mr *MockserviceLoggerMockRecorder) Error(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Error", reflect.TypeOf((*MockserviceLogger)(nil).Error), varargs...)
}

// Info mocks base method.
func (m *MockserviceLogger) Info(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Info", varargs...)
}

// Info indicates an expected call of Info.
func (mr *MockserviceLoggerMockRecorder) Info(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Info", reflect.TypeOf((*MockserviceLogger)(nil).Info), varargs...)
}

// Warn mocks base method.
func (m *MockserviceLogger) Warn(msg string, fields ...logger.Field) {
	m.ctrl.T.Helper()
	varargs := []any{msg}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Warn", varargs...)
}

// Warn indicates an expected call of Warn.
func (mr *MockserviceLoggerMockRecorder) Warn(msg any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Warn", reflect.TypeOf((*MockserviceLogger)(nil).Warn), varargs...)
}

// With mocks base method.
func (m *MockserviceLogger) With(fields ...logger.Field) logger.Logger {
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
func (mr *MockserviceLoggerMockRecorder) With(fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "With", reflect.TypeOf((*MockserviceLogger)(nil).With), fields...)
}

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
	isgomock struct{}
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockRepository) Create(ctx context.Context, create entities.DeliveryOrderCreate) (*entities.DeliveryOrder, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, create)
	ret0, _ := ret[0].(*entities.DeliveryOrder)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockRepositoryMockRecorder) Create(ctx, create any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRepository)(nil).Create), ctx, create)
}

// GetActiveByOrderID mocks base method.
func (m *MockRepository) GetActiveByOrderID(ctx context.Context, orderID string) (*entities.DeliveryOrder, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetActiveByOrderID", ctx, orderID)
	ret0, _ := ret[0].(*entities.DeliveryOrder)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetActiveByOrderID indicates an expected call of GetActiveByOrderID.
func (mr *MockRepositoryMockRecorder) GetActiveByOrderID(ctx, orderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetActiveByOrderID", reflect.TypeOf((*MockRepository)(nil).GetActiveByOrderID), ctx, orderID)
}

// GetByID mocks base method.
func (m *MockRepository) GetByID(ctx context.Context, id int64) (*entities.DeliveryOrder, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*entities.DeliveryOrder)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockRepository)(nil).GetByID), ctx, id)
}

// ListAvailable mocks base method.
func (m *MockRepository) ListAvailable(ctx context.Context) ([]entities.DeliveryOrder, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListAvailable", ctx)
	ret0, _ := ret[0].([]entities.DeliveryOrder)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListAvailable indicates an expected call of ListAvailable.
func (mr *MockRepositoryMockRecorder) ListAvailable(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListAvailable", reflect.TypeOf((*MockRepository)(nil).ListAvailable), ctx)
}

// ListStaleAccepted mocks base method.
func (m *MockRepository) ListStaleAccepted(ctx context.Context, olderThanSeconds int64) ([]entities.DeliveryOrder, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListStaleAccepted", ctx, olderThanSeconds)
	ret0, _ := ret[0].([]entities.DeliveryOrder)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListStaleAccepted indicates an expected call of ListStaleAccepted.
func (mr *MockRepositoryMockRecorder) ListStaleAccepted(ctx, olderThanSeconds any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListStaleAccepted", reflect.TypeOf((*MockRepository)(nil).ListStaleAccepted), ctx, olderThanSeconds)
}

// ListUnannounced mocks base method.
func (m *MockRepository) ListUnannounced(ctx context.Context) ([]entities.DeliveryOrder, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListUnannounced", ctx)
	ret0, _ := ret[0].([]entities.DeliveryOrder)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListUnannounced indicates an expected call of ListUnannounced.
func (mr *MockRepositoryMockRecorder) ListUnannounced(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListUnannounced", reflect.TypeOf((*MockRepository)(nil).ListUnannounced), ctx)
}

// MarkAnnounced mocks base method.
func (m *MockRepository) MarkAnnounced(ctx context.Context, id int64, at time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkAnnounced", ctx, id, at)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkAnnounced indicates an expected call of MarkAnnounced.
func (mr *MockRepositoryMockRecorder) MarkAnnounced(ctx, id, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkAnnounced", reflect.TypeOf((*MockRepository)(nil).MarkAnnounced), ctx, id, at)
}

// Update mocks base method.
func (m *MockRepository) Update(ctx context.Context, modify entities.DeliveryOrderModify) (*entities.DeliveryOrder, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, modify)
	ret0, _ := ret[0].(*entities.DeliveryOrder)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Update indicates an expected call of Update.
func (mr *MockRepositoryMockRecorder) Update(ctx, modify any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockRepository)(nil).Update), ctx, modify)
}

// MockCourierService is a mock of CourierService interface.
type MockCourierService struct {
	ctrl     *gomock.Controller
	recorder *MockCourierServiceMockRecorder
	isgomock struct{}
}

// MockCourierServiceMockRecorder is the mock recorder for MockCourierService.
type MockCourierServiceMockRecorder struct {
	mock *MockCourierService
}

// NewMockCourierService creates a new mock instance.
func NewMockCourierService(ctrl *gomock.Controller) *MockCourierService {
	mock := &MockCourierService{ctrl: ctrl}
	mock.recorder = &MockCourierServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCourierService) EXPECT() *MockCourierServiceMockRecorder {
	return m.recorder
}

// GetCourier mocks base method.
func (m *MockCourierService) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCourier", ctx, id)
	ret0, _ := ret[0].(*entities.Courier)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCourier indicates an expected call of GetCourier.
func (mr *MockCourierServiceMockRecorder) GetCourier(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCourier", reflect.TypeOf((*MockCourierService)(nil).GetCourier), ctx, id)
}

// UpdateCourier mocks base method.
func (m *MockCourierService) UpdateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateCourier", ctx, courierModify)
	ret0, _ := ret[0].(*entities.Courier)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateCourier indicates an expected call of UpdateCourier.
func (mr *MockCourierServiceMockRecorder) UpdateCourier(ctx, courierModify any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateCourier", reflect.TypeOf((*MockCourierService)(nil).UpdateCourier), ctx, courierModify)
}

// MockCustomerGateway is a mock of CustomerGateway interface.
type MockCustomerGateway struct {
	ctrl     *gomock.Controller
	recorder *MockCustomerGatewayMockRecorder
	isgomock struct{}
}

// MockCustomerGatewayMockRecorder is the mock recorder for MockCustomerGateway.
type MockCustomerGatewayMockRecorder struct {
	mock *MockCustomerGateway
}

// NewMockCustomerGateway creates a new mock instance.
func NewMockCustomerGateway(ctrl *gomock.Controller) *MockCustomerGateway {
	mock := &MockCustomerGateway{ctrl: ctrl}
	mock.recorder = &MockCustomerGatewayMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCustomerGateway) EXPECT() *MockCustomerGatewayMockRecorder {
	return m.recorder
}

// UpdateOrderStatus mocks base method.
func (m *MockCustomerGateway) UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatusType) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateOrderStatus", ctx, orderID, status)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateOrderStatus indicates an expected call of UpdateOrderStatus.
func (mr *MockCustomerGatewayMockRecorder) UpdateOrderStatus(ctx, orderID, status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateOrderStatus", reflect.TypeOf((*MockCustomerGateway)(nil).UpdateOrderStatus), ctx, orderID, status)
}

// MockNotifier is a mock of Notifier interface.
type MockNotifier struct {
	ctrl     *gomock.Controller
	recorder *MockNotifierMockRecorder
	isgomock struct{}
}

// MockNotifierMockRecorder is the mock recorder for MockNotifier.
type MockNotifierMockRecorder struct {
	mock *MockNotifier
}

// NewMockNotifier creates a new mock instance.
func NewMockNotifier(ctrl *gomock.Controller) *MockNotifier {
	mock := &MockNotifier{ctrl: ctrl}
	mock.recorder = &MockNotifierMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNotifier) EXPECT() *MockNotifierMockRecorder {
	return m.recorder
}

// AnnounceNewOrder mocks base method.
func (m *MockNotifier) AnnounceNewOrder(announcement entities.DeliveryAnnouncement) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AnnounceNewOrder", announcement)
	ret0, _ := ret[0].(bool)
	return ret0
}

// AnnounceNewOrder indicates an expected call of AnnounceNewOrder.
func (mr *MockNotifierMockRecorder) AnnounceNewOrder(announcement any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AnnounceNewOrder", reflect.TypeOf((*MockNotifier)(nil).AnnounceNewOrder), announcement)
}

// MockTxManager is a mock of TxManager interface.
type MockTxManager struct {
	ctrl     *gomock.Controller
	recorder *MockTxManagerMockRecorder
	isgomock struct{}
}

// MockTxManagerMockRecorder is the mock recorder for MockTxManager.
type MockTxManagerMockRecorder struct {
	mock *MockTxManager
}

// NewMockTxManager creates a new mock instance.
func NewMockTxManager(ctrl *gomock.Controller) *MockTxManager {
	mock := &MockTxManager{ctrl: ctrl}
	mock.recorder = &MockTxManagerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxManager) EXPECT() *MockTxManagerMockRecorder {
	return m.recorder
}

// Do mocks base method.
func (m *MockTxManager) Do(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Do", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Do indicates an expected call of Do.
func (mr *MockTxManagerMockRecorder) Do(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Do", reflect.TypeOf((*MockTxManager)(nil).Do), ctx, fn)
}
