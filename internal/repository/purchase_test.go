package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPurchaseDAO struct {
	gotItemID      uint
	gotPelangganID uint
	gotQuantity    int
	gotTotalHarga  int
	err            error
}

func (s *stubPurchaseDAO) Execute(_ context.Context, itemID, pelangganID uint, quantity, totalHarga int) error {
	s.gotItemID = itemID
	s.gotPelangganID = pelangganID
	s.gotQuantity = quantity
	s.gotTotalHarga = totalHarga

	return s.err
}

func TestPurchaseRepository_Execute(t *testing.T) {
	stub := &stubPurchaseDAO{}
	repo := NewPurchaseRepository(stub)

	err := repo.Execute(context.Background(), 1, 7, 3, 150)
	require.NoError(t, err)

	assert.Equal(t, uint(1), stub.gotItemID)
	assert.Equal(t, uint(7), stub.gotPelangganID)
	assert.Equal(t, 3, stub.gotQuantity)
	assert.Equal(t, 150, stub.gotTotalHarga)
}

func TestPurchaseRepository_Execute_WrapsError(t *testing.T) {
	repo := NewPurchaseRepository(&stubPurchaseDAO{err: ErrInsufficientSaldo})

	err := repo.Execute(context.Background(), 1, 7, 3, 150)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientSaldo))
}
