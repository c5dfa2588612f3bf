package sped

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_RequiresAttachedTable(t *testing.T) {
	res := &Result{}

	_, err := res.Register("C100")
	assert.ErrorIs(t, err, ErrNoTable)

	_, err = res.RawTable()
	assert.ErrorIs(t, err, ErrNoTable)
}

func TestResult_Register(t *testing.T) {
	res := &Result{}
	res.attachTable(Table{
		rec("C100", "1"),
		rec("C170", "a", "b"),
		rec("C100", "2"),
	})

	rows, err := res.Register("C100")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "1", rows[0]["1"])
	assert.Equal(t, "2", rows[1]["1"])

	none, err := res.Register("Z999")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestResult_AttachTwicePanics(t *testing.T) {
	res := &Result{}
	res.attachTable(Table{})
	assert.Panics(t, func() { res.attachTable(Table{}) })
}
