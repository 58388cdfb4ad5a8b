package courier

import (
	"context"
	"fmt"

	"fooddelivery/internal/entities"
)

type Courier struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Courier {
	return &Courier{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Courier) CreateCourier(ctx context.Context, courierModify entities.CourierModify) (int64, error) {
	if courierModify.Name == nil ||
		courierModify.Phone == nil ||
		courierModify.TransportType == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*courierModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*courierModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if !isValidTransport(courierModify.TransportType.String()) {
		return 0, ErrInvalidTransport
	}

	// couriers start offline and go available by an explicit status update
	if courierModify.Status == nil {
		offline := entities.CourierOffline
		courierModify.Status = &offline
	}
	if !isValidStatus(courierModify.Status.String()) {
		return 0, ErrInvalidStatus
	}

	id, err := s.repository.Create(ctx, courierModify)
	if err != nil {
		return 0, fmt.Errorf("create courier: %w", err)
	}

	return id, nil
}

// UpdateCourier applies a partial update. Going offline is refused while a
// delivery is in progress; going busy/available is gated by being online.
func (s *Courier) UpdateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.ID == nil {
		return nil, ErrInvalidCourierID
	}
	if courierModify.Name == nil &&
		courierModify.Phone == nil &&
		courierModify.Status == nil &&
		courierModify.TransportType == nil &&
		courierModify.CurrentOrderID == nil &&
		!courierModify.ClearCurrent &&
		courierModify.CompletedOrders == nil &&
		courierModify.TotalEarnings == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if courierModify.Name != nil && !isValidName(*courierModify.Name) {
		return nil, ErrInvalidName
	}
	if courierModify.Phone != nil && !isValidPhone(*courierModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if courierModify.Status != nil && !isValidStatus(courierModify.Status.String()) {
		return nil, ErrInvalidStatus
	}
	if courierModify.TransportType != nil && !isValidTransport(courierModify.TransportType.String()) {
		return nil, ErrInvalidTransport
	}

	if courierModify.Status != nil && *courierModify.Status == entities.CourierOffline {
		var updated *entities.Courier
		err := s.txManager.Do(ctx, func(ctx context.Context) error {
			current, err := s.repository.GetByID(ctx, *courierModify.ID)
			if err != nil {
				return fmt.Errorf("get courier: %w", err)
			}
			if current.CurrentOrderID != nil {
				return ErrCourierBusy
			}

			updated, err = s.repository.Update(ctx, courierModify)
			if err != nil {
				return fmt.Errorf("update courier: %w", err)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return updated, nil
	}

	courier, err := s.repository.Update(ctx, courierModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update courier: %w", err)
	}
	return courier, nil
}

func (s *Courier) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get courier: %w", err)
	}

	return courier, nil
}

func (s *Courier) GetCouriers(ctx context.Context) ([]entities.Courier, error) {
	couriers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get couriers: %w", err)
	}

	return couriers, nil
}
