package tutor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmptyInputs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, tc := range [][2]string{
		{"", "SELECT * FROM users"},
		{"SELECT * FROM users", ""},
		{"   \n", "SELECT * FROM users"},
		{"", ""},
	} {
		ok, err := Validate(ctx, store, tc[0], tc[1], true)
		require.NoError(t, err)
		assert.False(t, ok, "empty input must never validate: %q vs %q", tc[0], tc[1])
	}
}

func TestValidateIdenticalQueries(t *testing.T) {
	store, err := NewHRStore(context.Background(), "testdata")
	require.NoError(t, err)
	defer store.Close()

	for _, ordered := range []bool{true, false} {
		ok, err := Validate(context.Background(), store,
			"SELECT * FROM Employees", "SELECT * FROM Employees", ordered)
		require.NoError(t, err)
		assert.True(t, ok, "identical queries must be equivalent (ordered=%v)", ordered)
	}
}

func TestValidateOrderSensitivity(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	learner := "SELECT name, age FROM users ORDER BY age DESC"
	reference := "SELECT name, age FROM users ORDER BY age ASC"

	ok, err := Validate(ctx, store, learner, reference, false)
	require.NoError(t, err)
	assert.True(t, ok, "reversed row order must be equivalent when order does not matter")

	ok, err = Validate(ctx, store, learner, reference, true)
	require.NoError(t, err)
	assert.False(t, ok, "reversed row order must not be equivalent when order matters")
}

func TestValidateInvalidQuery(t *testing.T) {
	store := newTestStore(t)

	ok, err := Validate(context.Background(), store,
		"SELECT * FROM nonexistent_table", "SELECT * FROM users", true)
	require.Error(t, err)
	assert.False(t, ok, "a failed execution is never equivalent")
}

func TestValidateDifferentColumns(t *testing.T) {
	store := newTestStore(t)

	// Same data, different column names: the sort keys differ per side, and
	// the column-name comparison fails first either way.
	ok, err := Validate(context.Background(), store,
		"SELECT name AS n FROM users", "SELECT name FROM users", false)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidateDifferentData(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ok, err := Validate(ctx, store,
		"SELECT name FROM users WHERE age > 26", "SELECT name FROM users", true)
	require.NoError(t, err)
	assert.False(t, ok)
}
