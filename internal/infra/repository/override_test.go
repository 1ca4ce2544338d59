//go:build unit

package repository_test

import (
	"context"
	"testing"

	"sncleaning-pricing/internal/infra"
	"sncleaning-pricing/internal/infra/query"
	"sncleaning-pricing/internal/infra/repository"
	"sncleaning-pricing/tests/common/builder"
	repositorymock "sncleaning-pricing/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOverrideRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: override created"},
		{
			name:       "error: same customer, service and cleaning type",
			queryErr:   &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
		},
		{name: "error: database error occurs", queryErr: errDBConnection, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockOverrideWriteQueries(ctrl)
			tx := &mockDBTX{}
			repo := repository.NewOverrideRepository(mockQueries, tx)

			o := builder.NewOverrideBuilder().WithCleaningType("deep").WithRate("-2.50").MustBuildDomain()

			mockQueries.EXPECT().
				CreatePricingOverride(ctx, tx, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.CreatePricingOverrideParams) error {
					assert.Equal(t, o.ID(), arg.ID)
					assert.Equal(t, o.CustomerID(), arg.CustomerID)
					assert.Equal(t, "domestic", arg.ServiceType)
					assert.Equal(t, pgtype.Text{String: "deep", Valid: true}, arg.CleaningType)
					assert.Equal(t, "-2.5", arg.OverrideRate)
					return tc.queryErr
				})

			err := repo.Create(ctx, o)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOverrideRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	customerID := uuid.New()

	t.Run("success: service-wide override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockOverrideWriteQueries(ctrl)
		tx := &mockDBTX{}
		repo := repository.NewOverrideRepository(mockQueries, tx)

		mockQueries.EXPECT().GetPricingOverride(ctx, tx, id).Return(query.PricingOverride{
			ID:           id,
			CustomerID:   customerID,
			ServiceType:  "end_of_tenancy",
			OverrideRate: "4.00",
		}, nil)

		got, err := repo.FindByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, customerID, got.CustomerID())
		assert.True(t, got.IsServiceWide())
		assert.Equal(t, "4", got.OverrideRate().String())
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockOverrideWriteQueries(ctrl)
		tx := &mockDBTX{}
		repo := repository.NewOverrideRepository(mockQueries, tx)

		mockQueries.EXPECT().GetPricingOverride(ctx, tx, id).Return(query.PricingOverride{}, pgx.ErrNoRows)

		got, err := repo.FindByID(ctx, id)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, got)
	})
}

func TestOverrideRepository_UpdateDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("update: no row matched is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockOverrideWriteQueries(ctrl)
		tx := &mockDBTX{}
		repo := repository.NewOverrideRepository(mockQueries, tx)

		mockQueries.EXPECT().UpdatePricingOverride(ctx, tx, gomock.Any()).Return(int64(0), nil)

		err := repo.Update(ctx, builder.NewOverrideBuilder().MustBuildDomain())

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("update: success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockOverrideWriteQueries(ctrl)
		tx := &mockDBTX{}
		repo := repository.NewOverrideRepository(mockQueries, tx)

		o := builder.NewOverrideBuilder().MustBuildDomain()
		mockQueries.EXPECT().
			UpdatePricingOverride(ctx, tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.UpdatePricingOverrideParams) (int64, error) {
				assert.Equal(t, o.ID(), arg.ID)
				assert.False(t, arg.CleaningType.Valid)
				return 1, nil
			})

		assert.NoError(t, repo.Update(ctx, o))
	})

	t.Run("delete: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockOverrideWriteQueries(ctrl)
		tx := &mockDBTX{}
		repo := repository.NewOverrideRepository(mockQueries, tx)

		id := uuid.New()
		mockQueries.EXPECT().DeletePricingOverride(ctx, tx, id).Return(int64(0), errDBConnection)

		err := repo.Delete(ctx, id)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("delete: success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockOverrideWriteQueries(ctrl)
		tx := &mockDBTX{}
		repo := repository.NewOverrideRepository(mockQueries, tx)

		id := uuid.New()
		mockQueries.EXPECT().DeletePricingOverride(ctx, tx, id).Return(int64(1), nil)

		assert.NoError(t, repo.Delete(ctx, id))
	})
}
