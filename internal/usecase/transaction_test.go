package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionRunsInOrder(t *testing.T) {
	txn := NewTransaction()
	var order []string

	txn.AddOperation("primeira", func(ctx context.Context) error {
		order = append(order, "primeira")
		return nil
	})
	txn.AddOperation("segunda", func(ctx context.Context) error {
		order = append(order, "segunda")
		return nil
	})

	err := txn.Execute(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"primeira", "segunda"}, order)
}

// Falha no meio: as operações seguintes não rodam e as compensações das
// anteriores rodam em ordem reversa.
func TestTransactionStopsAndCompensates(t *testing.T) {
	txn := NewTransaction()
	var order []string

	txn.AddOperation("a", func(ctx context.Context) error {
		order = append(order, "a")
		return nil
	})
	txn.AddCompensation("desfaz-a", func(ctx context.Context) error {
		order = append(order, "desfaz-a")
		return nil
	})

	txn.AddOperation("b", func(ctx context.Context) error {
		return errors.New("db caiu")
	})

	txn.AddOperation("c", func(ctx context.Context) error {
		order = append(order, "c")
		return nil
	})

	err := txn.Execute(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "operation 'b' failed")
	assert.Equal(t, []string{"a", "desfaz-a"}, order)
}
