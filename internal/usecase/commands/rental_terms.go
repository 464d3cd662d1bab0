package commands

import (
	"context"

	"rentmarket/internal/domain/rental"
	"rentmarket/internal/infra"
	"rentmarket/internal/pkg/errs"
	"rentmarket/internal/pkg/identity"
	"rentmarket/internal/usecase/queries"
	"rentmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateTermsParams struct {
	AssetID          uuid.UUID
	DailyRateCents   int64
	WeeklyRateCents  *int64
	MonthlyRateCents *int64
	DepositCents     *int64
}

// UpdateTermsParams patches only the fields that are set; a nil field keeps
// the current value.
type UpdateTermsParams struct {
	DailyRateCents   *int64
	WeeklyRateCents  *int64
	MonthlyRateCents *int64
	DepositCents     *int64
}

type RentalTermsCommands interface {
	Create(ctx context.Context, actor identity.Actor, params CreateTermsParams) (*queries.RentalTermsView, error)
	Update(ctx context.Context, actor identity.Actor, termsID uuid.UUID, params UpdateTermsParams) (*queries.RentalTermsView, error)
	Delete(ctx context.Context, actor identity.Actor, termsID uuid.UUID) error
}

type rentalTermsCommandsImpl struct {
	uow   shared.UnitOfWork
	terms queries.RentalTermsReadStore
}

func NewRentalTermsCommands(uow shared.UnitOfWork, terms queries.RentalTermsReadStore) RentalTermsCommands {
	return &rentalTermsCommandsImpl{
		uow:   uow,
		terms: terms,
	}
}

func (c *rentalTermsCommandsImpl) Create(ctx context.Context, actor identity.Actor, params CreateTermsParams) (*queries.RentalTermsView, error) {
	var assetID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		asset, err := tx.Assets().FindByID(ctx, params.AssetID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrAssetNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		// Owners configure pricing for their own assets only.
		if asset.OwnerID != actor.UserID {
			return errs.ErrUnauthorized
		}

		entity, err := rental.NewTerms(
			params.AssetID, asset.OwnerID,
			params.DailyRateCents, params.WeeklyRateCents, params.MonthlyRateCents, params.DepositCents,
		)
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidRates)
		}

		if _, err := tx.RentalTerms().Create(ctx, entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrTermsAlreadyExist
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		assetID = params.AssetID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.terms.FindByAssetID(ctx, assetID)
}

func (c *rentalTermsCommandsImpl) Update(ctx context.Context, actor identity.Actor, termsID uuid.UUID, params UpdateTermsParams) (*queries.RentalTermsView, error) {
	var assetID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.RentalTerms().LockByID(ctx, termsID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRentalTermsNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !entity.IsOwnedBy(actor.UserID) {
			return errs.ErrUnauthorized
		}

		daily := entity.DailyRateCents()
		if params.DailyRateCents != nil {
			daily = *params.DailyRateCents
		}
		weekly := entity.WeeklyRateCents()
		if params.WeeklyRateCents != nil {
			weekly = params.WeeklyRateCents
		}
		monthly := entity.MonthlyRateCents()
		if params.MonthlyRateCents != nil {
			monthly = params.MonthlyRateCents
		}
		deposit := entity.DepositCents()
		if params.DepositCents != nil {
			deposit = params.DepositCents
		}

		// Rate changes never reprice existing bookings.
		if err := entity.UpdateRates(daily, weekly, monthly, deposit); err != nil {
			return errs.Mark(err, errs.ErrInvalidRates)
		}
		if err := tx.RentalTerms().UpdateRates(ctx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		assetID = entity.AssetID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.terms.FindByAssetID(ctx, assetID)
}

// Delete removes the pricing configuration. Any booking still holding its
// dates blocks deletion, regardless of how far in the future it lies.
func (c *rentalTermsCommandsImpl) Delete(ctx context.Context, actor identity.Actor, termsID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.RentalTerms().LockByID(ctx, termsID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRentalTermsNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !entity.IsOwnedBy(actor.UserID) {
			return errs.ErrUnauthorized
		}

		blocked, err := tx.Bookings().ExistsBlockingByTermsID(ctx, entity.ID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if blocked {
			return errs.ErrActiveBookingsExist
		}

		if err := tx.RentalTerms().Delete(ctx, entity.ID()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
