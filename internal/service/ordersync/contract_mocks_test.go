// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ordersync_test
//

// Package ordersync_test is a generated GoMock package.
package ordersync_test

import (
	context "context"
	entities "fooddelivery/internal/entities"
	ordersync "fooddelivery/internal/service/ordersync"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockOrderGateway is a mock of OrderGateway interface.
type MockOrderGateway struct {
	ctrl     *gomock.Controller
	recorder *MockOrderGatewayMockRecorder
	isgomock struct{}
}

// MockOrderGatewayMockRecorder is the mock recorder for MockOrderGateway.
type MockOrderGatewayMockRecorder struct {
	mock *MockOrderGateway
}

// NewMockOrderGateway creates a new mock instance.
func NewMockOrderGateway(ctrl *gomock.Controller) *MockOrderGateway {
	mock := &MockOrderGateway{ctrl: ctrl}
	mock.recorder = &MockOrderGatewayMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockOrderGateway) EXPECT() *MockOrderGatewayMockRecorder {
	return m.recorder
}

// GetOrderByID mocks base method.
func (m *MockOrderGateway) GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOrderByID", ctx, orderID)
	ret0, _ := ret[0].(*entities.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOrderByID indicates an expected call of GetOrderByID.
func (mr *MockOrderGatewayMockRecorder) GetOrderByID(ctx, orderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOrderByID", reflect.TypeOf((*MockOrderGateway)(nil).GetOrderByID), ctx, orderID)
}

// MockDeliveryOrderService is a mock of DeliveryOrderService interface.
type MockDeliveryOrderService struct {
	ctrl     *gomock.Controller
	recorder *MockDeliveryOrderServiceMockRecorder
	isgomock struct{}
}

// MockDeliveryOrderServiceMockRecorder is the mock recorder for MockDeliveryOrderService.
type MockDeliveryOrderServiceMockRecorder struct {
	mock *MockDeliveryOrderService
}

// NewMockDeliveryOrderService creates a new mock instance.
func NewMockDeliveryOrderService(ctrl *gomock.Controller) *MockDeliveryOrderService {
	mock := &MockDeliveryOrderService{ctrl: ctrl}
	mock.recorder = &MockDeliveryOrderServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDeliveryOrderService) EXPECT() *MockDeliveryOrderServiceMockRecorder {
	return m.recorder
}

// CancelBySourceOrder mocks base method.
func (m *MockDeliveryOrderService) CancelBySourceOrder(ctx context.Context, orderID string) (*entities.DeliveryOrder, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CancelBySourceOrder", ctx, orderID)
	ret0, _ := ret[0].(*entities.DeliveryOrder)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CancelBySourceOrder indicates an expected call of CancelBySourceOrder.
func (mr *MockDeliveryOrderServiceMockRecorder) CancelBySourceOrder(ctx, orderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CancelBySourceOrder", reflect.TypeOf((*MockDeliveryOrderService)(nil).CancelBySourceOrder), ctx, orderID)
}

// CreateDeliveryOrder mocks base method.
func (m *MockDeliveryOrderService) CreateDeliveryOrder(ctx context.Context, create entities.DeliveryOrderCreate) (*entities.DeliveryOrder, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateDeliveryOrder", ctx, create)
	ret0, _ := ret[0].(*entities.DeliveryOrder)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// CreateDeliveryOrder indicates an expected call of CreateDeliveryOrder.
func (mr *MockDeliveryOrderServiceMockRecorder) CreateDeliveryOrder(ctx, create any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateDeliveryOrder", reflect.TypeOf((*MockDeliveryOrderService)(nil).CreateDeliveryOrder), ctx, create)
}

// MockHandlerFactory is a mock of HandlerFactory interface.
type MockHandlerFactory struct {
	ctrl     *gomock.Controller
	recorder *MockHandlerFactoryMockRecorder
	isgomock struct{}
}

// MockHandlerFactoryMockRecorder is the mock recorder for MockHandlerFactory.
type MockHandlerFactoryMockRecorder struct {
	mock *MockHandlerFactory
}

// NewMockHandlerFactory creates a new mock instance.
func NewMockHandlerFactory(ctrl *gomock.Controller) *MockHandlerFactory {
	mock := &MockHandlerFactory{ctrl: ctrl}
	mock.recorder = &MockHandlerFactoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHandlerFactory) EXPECT() *MockHandlerFactoryMockRecorder {
	return m.recorder
}

// GetHandler mocks base method.
func (m *MockHandlerFactory) GetHandler(status entities.OrderStatusType) (ordersync.ExecuteFn, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetHandler", status)
	ret0, _ := ret[0].(ordersync.ExecuteFn)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetHandler indicates an expected call of GetHandler.
func (mr *MockHandlerFactoryMockRecorder) GetHandler(status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetHandler", reflect.TypeOf((*MockHandlerFactory)(nil).GetHandler), status)
}
