package components

import (
	"rentmarket/internal/infra/db"
	"rentmarket/internal/infra/readstore"
	"rentmarket/internal/infra/uow"
	"rentmarket/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Read stores back both the query services and the command read-backs
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewRentalTermsReadStore,
			fx.As(new(queries.RentalTermsReadStore)),
		),
		fx.Annotate(
			readstore.NewAssetReadStore,
			fx.As(new(queries.AssetReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
