package table

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `date,Alice,Bob,Carol
2023-08-02,1,,0.5
2023-08-01,1,2,1
2023-08-03, 3 ,1,
`

func TestReadSortsAndZeroFills(t *testing.T) {
	tbl, err := Read(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, tbl.Persons())
	assert.Equal(t, 3, tbl.Len())
	assert.True(t, tbl.First().Equal(time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC)))

	w, err := tbl.Weight(time.Date(2023, 8, 2, 0, 0, 0, 0, time.UTC), "Bob")
	require.NoError(t, err)
	assert.Zero(t, w, "blank cell is unavailable")
	w, _ = tbl.Weight(time.Date(2023, 8, 3, 0, 0, 0, 0, time.UTC), "Alice")
	assert.Equal(t, 3.0, w)
	w, _ = tbl.Weight(time.Date(2023, 8, 2, 0, 0, 0, 0, time.UTC), "Carol")
	assert.Equal(t, 0.5, w)
}

func TestReadDateLayouts(t *testing.T) {
	in := "when,Alice\n2023/08/01,1\n02.08.2023,1\n2023-08-03T00:00:00Z,1\n"
	tbl, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Len())
	assert.True(t, tbl.Last().Equal(time.Date(2023, 8, 3, 0, 0, 0, 0, time.UTC)))
}

func TestReadMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"header only":    "date,Alice\n",
		"no persons":     "date\n2023-08-01\n",
		"bad date":       "date,Alice\nyesterday,1\n",
		"bad number":     "date,Alice\n2023-08-01,maybe\n",
		"negative":       "date,Alice\n2023-08-01,-1\n",
		"short row":      "date,Alice,Bob\n2023-08-01,1\n",
		"duplicate date": "date,Alice\n2023-08-01,1\n2023-08-01,1\n",
		"duplicate name": "date,Alice,Alice\n2023-08-01,1,1\n",
	}
	for name, in := range cases {
		_, err := Read(strings.NewReader(in))
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: expected ErrMalformed, got %v", name, err)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vacations.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
