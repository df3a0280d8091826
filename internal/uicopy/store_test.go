package uicopy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AgenciaContable/internal/db"
	"AgenciaContable/internal/logging"
)

func newTestStore(t *testing.T) (*Store, *db.Store) {
	t.Helper()
	ctx := context.Background()
	st, err := db.Open(ctx, ":memory:", logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.Migrate(ctx))
	return NewStore(st.DB(), logging.Discard()), st
}

func rowCount(t *testing.T, st *db.Store) int {
	t.Helper()
	var n int
	require.NoError(t, st.DB().Get(&n, `SELECT COUNT(*) FROM ui_copy`))
	return n
}

func TestDefaultsTable(t *testing.T) {
	keys := Keys()
	assert.Len(t, keys, 56)

	seen := map[Key]bool{}
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
		assert.True(t, Known(k))
	}
	assert.False(t, Known("unknown_key"))
	assert.Equal(t, "AC", Default(BrandMark))
	assert.Equal(t, "%", Default(Metric3Suffix))
}

func TestFreshStoreReadsDefaultsWithoutWriting(t *testing.T) {
	s, st := newTestStore(t)
	ctx := context.Background()

	c, err := s.Effective(ctx)
	require.NoError(t, err)
	assert.Equal(t, "AC", c.Get(BrandMark))
	assert.Equal(t, Defaults(), c)

	assert.Equal(t, 0, rowCount(t, st))
	ok, err := s.Initialized(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEffectiveIsStable(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, map[string]string{"brand_mark": "XY"}))

	a, err := s.Effective(ctx)
	require.NoError(t, err)
	b, err := s.Effective(ctx)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSaveDropsUnknownKeys(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, map[string]string{"unknown_key": "x"}))
	c, err := s.Effective(ctx)
	require.NoError(t, err)
	assert.NotContains(t, c, "unknown_key")
}

func TestSaveEmptyPayloadClearsEverything(t *testing.T) {
	s, st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, map[string]string{}))
	c, err := s.Effective(ctx)
	require.NoError(t, err)

	require.Len(t, c, len(Keys()))
	for _, k := range Keys() {
		assert.Equal(t, "", c.Get(k), k)
	}
	assert.Equal(t, 1, rowCount(t, st))

	ok, err := s.Initialized(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSaveRoundTrip(t *testing.T) {
	s, st := newTestStore(t)
	ctx := context.Background()

	x := map[string]string{}
	for i, k := range Keys() {
		x[string(k)] = string(k) + " <é> " + string(rune('a'+i%26))
	}
	require.NoError(t, s.Save(ctx, x))
	// повторная запись заменяет строку, а не добавляет новую
	require.NoError(t, s.Save(ctx, x))
	assert.Equal(t, 1, rowCount(t, st))

	c, err := s.Effective(ctx)
	require.NoError(t, err)
	assert.Equal(t, Copy(x), c)

	var raw string
	require.NoError(t, st.DB().Get(&raw, `SELECT data FROM ui_copy WHERE id = 1`))
	assert.Contains(t, raw, "<é>")
}

func TestHistoricalUnknownKeysPassThrough(t *testing.T) {
	s, st := newTestStore(t)
	ctx := context.Background()

	_, err := st.DB().Exec(`INSERT INTO ui_copy (id, data) VALUES (1, ?)`, `{"brand_mark":"ZZ","legacy_banner":"hola"}`)
	require.NoError(t, err)

	c, err := s.Effective(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ZZ", c.Get(BrandMark))
	assert.Equal(t, "hola", c["legacy_banner"])
	assert.Equal(t, Default(BrandTitle), c.Get(BrandTitle))
}

func TestMalformedOverlayFallsBackToDefaults(t *testing.T) {
	s, st := newTestStore(t)
	ctx := context.Background()

	for _, payload := range []string{`not json`, `["a"]`, `{"brand_mark": 5}`} {
		_, err := st.DB().Exec(`DELETE FROM ui_copy`)
		require.NoError(t, err)
		_, err = st.DB().Exec(`INSERT INTO ui_copy (id, data) VALUES (1, ?)`, payload)
		require.NoError(t, err)

		c, err := s.Effective(ctx)
		require.NoError(t, err, payload)
		assert.Equal(t, Defaults(), c, payload)
	}
}

func TestEntriesFollowKeyOrder(t *testing.T) {
	c := Defaults()
	c[string(BrandMark)] = "XY"
	entries := c.Entries()
	require.Len(t, entries, len(Keys()))
	assert.Equal(t, BrandMark, entries[0].Key)
	assert.Equal(t, "XY", entries[0].Value)
	assert.Equal(t, "AC", entries[0].Default)
	assert.Equal(t, LearnMoreLinkLabel, entries[len(entries)-1].Key)
}
