package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AgenciaContable/internal/logging"
	"AgenciaContable/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:", logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestParseURL(t *testing.T) {
	cases := []struct {
		in, driver, dsn string
	}{
		{"postgres://u:p@db:5432/agencia", DriverPostgres, "postgres://u:p@db:5432/agencia"},
		{"postgresql://db/agencia", DriverPostgres, "postgresql://db/agencia"},
		{"host=db dbname=agencia sslmode=disable", DriverPostgres, "host=db dbname=agencia sslmode=disable"},
		{"sqlite:///app.db", DriverSQLite, "app.db"},
		{"sqlite:////var/lib/app.db", DriverSQLite, "/var/lib/app.db"},
		{":memory:", DriverSQLite, ":memory:"},
		{"file:test.db?cache=shared", DriverSQLite, "file:test.db?cache=shared"},
	}
	for _, c := range cases {
		driver, dsn, err := ParseURL(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.driver, driver, c.in)
		assert.Equal(t, c.dsn, dsn, c.in)
	}

	_, _, err := ParseURL("mysql://root@localhost/x")
	assert.Error(t, err)
	_, _, err = ParseURL("  ")
	assert.Error(t, err)
}

func TestSafeDSNHidesPassword(t *testing.T) {
	assert.Equal(t, "db:5432/agencia", safeDSN(DriverPostgres, "postgres://u:secret@db:5432/agencia"))
	assert.Equal(t, "host=db user=u dbname=agencia", safeDSN(DriverPostgres, "host=db user=u password=secret dbname=agencia"))
	assert.NotContains(t, redact("postgres://u:secret@db/agencia"), "secret")
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestAdminLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	super := &models.Admin{Username: "superadmin", HashedPassword: "h1", IsSuper: true}
	require.NoError(t, s.CreateAdmin(ctx, super))
	require.NotZero(t, super.ID)

	plain := &models.Admin{Username: "editor", HashedPassword: "h2"}
	require.NoError(t, s.CreateAdmin(ctx, plain))

	err := s.CreateAdmin(ctx, &models.Admin{Username: "editor", HashedPassword: "h3"})
	assert.ErrorIs(t, err, ErrDuplicate)

	got, err := s.AdminByUsername(ctx, "editor")
	require.NoError(t, err)
	assert.Equal(t, plain.ID, got.ID)
	assert.False(t, got.IsSuper)
	assert.False(t, got.CreatedAt.IsZero())

	require.NoError(t, s.SetAdminPassword(ctx, plain.ID, "h4"))
	got, err = s.AdminByID(ctx, plain.ID)
	require.NoError(t, err)
	assert.Equal(t, "h4", got.HashedPassword)
	assert.ErrorIs(t, s.SetAdminPassword(ctx, 999, "x"), ErrNotFound)

	// супер-админа удалить нельзя
	deleted, err := s.DeleteAdmin(ctx, super.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = s.DeleteAdmin(ctx, plain.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = s.AdminByID(ctx, plain.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := s.CountAdmins(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSingletonsDefaultWithoutWrite(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	settings, err := s.SiteSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSiteSettings(), settings)

	has, err := s.HasSingleton(ctx, "site_settings")
	require.NoError(t, err)
	assert.False(t, has, "read must not create the row")

	settings.ContactEmail = "hola@despacho.mx"
	require.NoError(t, s.SaveSiteSettings(ctx, settings))
	settings.PhoneNumber = "555"
	require.NoError(t, s.SaveSiteSettings(ctx, settings))

	got, err := s.SiteSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hola@despacho.mx", got.ContactEmail)
	assert.Equal(t, "555", got.PhoneNumber)
	assert.EqualValues(t, 1, got.ID)

	_, err = s.HasSingleton(ctx, "admins")
	assert.Error(t, err)
}

func TestPageContentRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	idx := models.DefaultIndexContent()
	idx.HeroTitle = "Nuevo título"
	require.NoError(t, s.SaveIndexContent(ctx, idx))
	gotIdx, err := s.IndexContent(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Nuevo título", gotIdx.HeroTitle)

	about := models.DefaultAboutContent()
	about.TeamTitle = "Personas"
	require.NoError(t, s.SaveAboutContent(ctx, about))
	gotAbout, err := s.AboutContent(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Personas", gotAbout.TeamTitle)

	lm := models.LearnMoreContent{Title: "Blog", IntroText: "Hola"}
	require.NoError(t, s.SaveLearnMoreContent(ctx, lm))
	gotLM, err := s.LearnMoreContent(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Blog", gotLM.Title)
}

func TestServicesCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	svc := &models.Service{Title: "Nómina", Description: "d", KeyPoints: "a\nb"}
	require.NoError(t, s.CreateService(ctx, svc))

	svc.Title = "Nómina y IMSS"
	require.NoError(t, s.UpdateService(ctx, *svc))
	list, err := s.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Nómina y IMSS", list[0].Title)
	assert.Equal(t, []string{"a", "b"}, list[0].Points())

	require.NoError(t, s.DeleteService(ctx, svc.ID))
	assert.ErrorIs(t, s.DeleteService(ctx, svc.ID), ErrNotFound)
	assert.ErrorIs(t, s.UpdateService(ctx, *svc), ErrNotFound)
}

func TestTeamCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	m := &models.TeamMember{Name: "Ana", Role: "Socia", Bio: "bio"}
	require.NoError(t, s.CreateTeamMember(ctx, m))

	m.ImageURL = "/static/uploads/team/abc.jpg"
	require.NoError(t, s.UpdateTeamMember(ctx, *m))
	got, err := s.TeamMember(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "/static/uploads/team/abc.jpg", got.ImageURL)

	require.NoError(t, s.DeleteTeamMember(ctx, m.ID))
	_, err = s.TeamMember(ctx, m.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostsPublishedFilterAndOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := &models.Post{Title: "uno", Description: "d", ContentType: models.PostContentNone, IsPublished: true}
	hidden := &models.Post{Title: "dos", Description: "d", ContentType: models.PostContentNone}
	last := &models.Post{Title: "tres", Description: "d", ContentType: models.PostContentNone, IsPublished: true}
	for _, p := range []*models.Post{first, hidden, last} {
		require.NoError(t, s.CreatePost(ctx, p))
	}

	all, err := s.ListPosts(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pub, err := s.ListPosts(ctx, true)
	require.NoError(t, err)
	require.Len(t, pub, 2)
	assert.Equal(t, "tres", pub[0].Title)
	assert.Equal(t, "uno", pub[1].Title)

	hidden.IsPublished = true
	hidden.ContentType = models.PostContentYouTube
	hidden.ContentURL = "https://www.youtube.com/embed/x"
	require.NoError(t, s.UpdatePost(ctx, hidden))
	got, err := s.Post(ctx, hidden.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPublished)
	assert.Equal(t, "https://www.youtube.com/embed/x", got.ContentURL)

	require.NoError(t, s.DeletePost(ctx, hidden.ID))
	_, err = s.Post(ctx, hidden.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContactMessages(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, s.CreateContactMessage(ctx, &models.ContactMessage{Name: name, Email: name + "@x.mx", Message: "hola"}))
	}
	recent, err := s.RecentContactMessages(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].Name)
}
