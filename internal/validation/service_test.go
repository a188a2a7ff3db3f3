package validation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"npwp-gateway/internal/validation/models"
	dErrors "npwp-gateway/pkg/domain-errors"
)

// nil metrics throughout: promauto registration is process-global and the
// metric methods are nil-safe.
func newService(batchLimit int) *Service {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), nil, batchLimit)
}

func TestCheck_ValidInput(t *testing.T) {
	s := newService(10)
	env := s.Check(context.Background(), "12.000.001.9-004.005")

	assert.Equal(t, models.StatusOK, env.Status)
	assert.Equal(t, "OK", env.Message)
	require.NotNil(t, env.Result)
	assert.Equal(t, "12.000.001.9-004.005", env.Result.NPWP)
	assert.Equal(t, "12", env.Result.TaxpayerTypeCode)
	assert.Equal(t, "000001", env.Result.Serial)
	assert.Equal(t, "9", env.Result.CheckDigit)
	assert.Equal(t, "004", env.Result.LocalTaxOfficeCode)
	assert.Equal(t, "005", env.Result.BranchCode)
	assert.NotNil(t, env.Metadata)
	assert.Contains(t, env.Metadata, "checked_at")
}

func TestCheck_RelaxedSpellingsCanonicalize(t *testing.T) {
	s := newService(10)

	for _, input := range []string{
		"0.000.001.0-000.000",
		"00.000.001.0-000",
		"00 000 001 0 000 000",
	} {
		env := s.Check(context.Background(), input)
		require.Equal(t, models.StatusOK, env.Status, input)
		assert.Equal(t, "00.000.001.0-000.000", env.Result.NPWP, input)
	}
}

func TestCheck_InvalidInput(t *testing.T) {
	s := newService(10)

	t.Run("malformed length", func(t *testing.T) {
		env := s.Check(context.Background(), "")
		assert.Equal(t, models.StatusCallerError, env.Status)
		assert.Equal(t, "not 15 digit", env.Message)
		assert.Nil(t, env.Result)
	})

	t.Run("zero serial", func(t *testing.T) {
		env := s.Check(context.Background(), "00.000.000.0-000.000")
		assert.Equal(t, models.StatusCallerError, env.Status)
		assert.Equal(t, "serial starts from 1, not 0", env.Message)
		assert.Nil(t, env.Result)
	})
}

func TestCheckBatch_PreservesOrder(t *testing.T) {
	s := newService(100)

	raws := make([]string, 50)
	for i := range raws {
		if i%2 == 0 {
			raws[i] = fmt.Sprintf("00.000.%03d.0-000.000", i+1)
		} else {
			raws[i] = "bad input"
		}
	}

	results, err := s.CheckBatch(context.Background(), raws)
	require.NoError(t, err)
	require.Len(t, results, len(raws))

	for i, env := range results {
		if i%2 == 0 {
			assert.Equal(t, models.StatusOK, env.Status, "index %d", i)
			assert.Equal(t, raws[i], env.Result.NPWP, "index %d", i)
		} else {
			assert.Equal(t, models.StatusCallerError, env.Status, "index %d", i)
		}
	}
}

func TestCheckBatch_RejectsOversizedBatch(t *testing.T) {
	s := newService(2)

	_, err := s.CheckBatch(context.Background(), []string{"a", "b", "c"})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}
