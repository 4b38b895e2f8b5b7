package gainpq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/partitionlab/gohypart/gainpq"
)

func TestInsertDeleteMax_GlobalOrder(t *testing.T) {
	pq := gainpq.New(3, false, nil)
	require.NoError(t, pq.Insert(10, 0, 5))
	require.NoError(t, pq.Insert(11, 1, 9))
	require.NoError(t, pq.Insert(12, 2, 1))
	pq.EnablePart(0)
	pq.EnablePart(1)
	pq.EnablePart(2)

	id, key, part, err := pq.DeleteMax()
	require.NoError(t, err)
	require.Equal(t, int32(11), id)
	require.Equal(t, int64(9), key)
	require.Equal(t, int32(1), part)
	require.Equal(t, 2, pq.Size())
}

func TestDisablePart_ExcludedFromDeleteMax(t *testing.T) {
	pq := gainpq.New(2, false, nil)
	require.NoError(t, pq.Insert(0, 0, 100))
	require.NoError(t, pq.Insert(1, 1, 1))
	pq.EnablePart(0)
	pq.EnablePart(1)
	pq.DisablePart(0)

	id, _, part, err := pq.DeleteMax()
	require.NoError(t, err)
	require.Equal(t, int32(1), id)
	require.Equal(t, int32(1), part)
}

func TestDeleteMax_NoEnabledQueues(t *testing.T) {
	pq := gainpq.New(2, false, nil)
	require.NoError(t, pq.Insert(0, 0, 1))
	_, _, _, err := pq.DeleteMax()
	require.ErrorIs(t, err, gainpq.ErrNoEnabledQueues)
}

func TestEnablePart_Idempotent(t *testing.T) {
	pq := gainpq.New(2, false, nil)
	require.NoError(t, pq.Insert(0, 0, 1))
	pq.EnablePart(0)
	pq.EnablePart(0)
	require.Equal(t, int32(1), pq.NumEnabledParts())
}

func TestDeleteMaxFromPart(t *testing.T) {
	pq := gainpq.New(2, false, nil)
	require.NoError(t, pq.Insert(0, 0, 1))
	require.NoError(t, pq.Insert(1, 0, 5))
	pq.EnablePart(0)

	id, key, err := pq.DeleteMaxFromPart(0)
	require.NoError(t, err)
	require.Equal(t, int32(1), id)
	require.Equal(t, int64(5), key)
	require.True(t, pq.IsEnabled(0))

	_, _, err = pq.DeleteMaxFromPart(0)
	require.NoError(t, err)
	require.False(t, pq.IsEnabled(0))
	require.True(t, pq.IsUnused(0))
}

func TestRemove_EmptiesAndDisables(t *testing.T) {
	pq := gainpq.New(2, false, nil)
	require.NoError(t, pq.Insert(5, 1, 3))
	pq.EnablePart(1)
	require.NoError(t, pq.Remove(5, 1))
	require.Equal(t, 0, pq.Size())
	require.True(t, pq.IsUnused(1))
}

func TestUpdateKeyBy_ReordersMax(t *testing.T) {
	pq := gainpq.New(1, false, nil)
	require.NoError(t, pq.Insert(1, 0, 1))
	require.NoError(t, pq.Insert(2, 0, 10))
	pq.EnablePart(0)
	require.NoError(t, pq.UpdateKeyBy(1, 0, 20))

	id, key, _, err := pq.DeleteMax()
	require.NoError(t, err)
	require.Equal(t, int32(1), id)
	require.Equal(t, int64(21), key)
}

func TestSlotReuseAfterUnused(t *testing.T) {
	pq := gainpq.New(2, false, nil)
	require.NoError(t, pq.Insert(0, 0, 1))
	pq.EnablePart(0)
	_, _, _, err := pq.DeleteMax()
	require.NoError(t, err)
	require.True(t, pq.IsUnused(0))

	require.NoError(t, pq.Insert(7, 1, 9))
	pq.EnablePart(1)
	id, _, part, err := pq.DeleteMax()
	require.NoError(t, err)
	require.Equal(t, int32(7), id)
	require.Equal(t, int32(1), part)
}

func TestContains(t *testing.T) {
	pq := gainpq.New(1, false, nil)
	require.NoError(t, pq.Insert(3, 0, 1))
	require.True(t, pq.Contains(3, 0))
	require.False(t, pq.Contains(4, 0))
}
