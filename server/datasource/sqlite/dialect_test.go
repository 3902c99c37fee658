package sqlite

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	d := &Dialect{}

	u, err := url.Parse("sqlite:///var/lib/gateway/app.db")
	require.NoError(t, err)

	dsn, err := d.BuildDSN(u)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/gateway/app.db", dsn)
}

func TestBuildDSN_RelativePathAndParams(t *testing.T) {
	d := &Dialect{}

	u, err := url.Parse("sqlite://app.db?cache=shared")
	require.NoError(t, err)

	dsn, err := d.BuildDSN(u)
	require.NoError(t, err)
	assert.Equal(t, "app.db?cache=shared", dsn)
}

func TestBuildDSN_MissingPath(t *testing.T) {
	d := &Dialect{}

	u, err := url.Parse("sqlite://")
	require.NoError(t, err)

	_, err = d.BuildDSN(u)
	assert.Error(t, err)
}

func TestMapColumn(t *testing.T) {
	d := &Dialect{}

	label, _, _ := d.MapColumn("INTEGER")
	assert.Equal(t, "INT64", label)

	label, binary, _ := d.MapColumn("BLOB")
	assert.Equal(t, "BLOB", label)
	assert.True(t, binary)

	// Expression columns have no declared type.
	label, binary, _ = d.MapColumn("")
	assert.Equal(t, "TEXT", label)
	assert.False(t, binary)
}
