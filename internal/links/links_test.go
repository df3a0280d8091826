package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhatsApp(t *testing.T) {
	assert.Equal(t, "https://wa.me/5215512345678", WhatsApp("+52 1 55 1234-5678"))
	assert.Equal(t, "https://wa.me/", WhatsApp(""))
}

func TestYouTubeEmbed(t *testing.T) {
	cases := map[string]string{
		"":                                           "",
		"https://youtu.be/abc123":                    "https://www.youtube.com/embed/abc123",
		"https://www.youtube.com/watch?v=abc123&t=5": "https://www.youtube.com/embed/abc123",
		"https://www.youtube.com/shorts/xyz":         "https://www.youtube.com/embed/xyz",
		"https://www.youtube.com/embed/xyz":          "https://www.youtube.com/embed/xyz",
		"https://www.youtube.com/channel/abc":        "https://www.youtube.com/channel/abc",
		"https://www.youtube.com/watch":              "https://www.youtube.com/watch",
		"https://vimeo.com/1":                        "https://vimeo.com/1",
	}
	for in, want := range cases {
		assert.Equal(t, want, YouTubeEmbed(in), in)
	}
}

func TestMapsEmbed(t *testing.T) {
	cases := []struct{ in, fallback, want string }{
		{"", DefaultMapsQuery, "https://www.google.com/maps?q=Ciudad%20de%20Mexico%2C%20Mexico&output=embed"},
		{"https://www.google.com/maps/embed?pb=abc", DefaultMapsQuery, "https://www.google.com/maps/embed?pb=abc"},
		{"https://www.google.com/maps/place/Reforma?hl=es", DefaultMapsQuery, "https://www.google.com/maps/place/Reforma?hl=es&output=embed"},
		{"https://maps.google.com/?ll=1,2", "CDMX", "https://maps.google.com/?ll=1%2C2&output=embed&q=CDMX"},
		{"https://www.google.com/maps?q=Reforma&output=embed", DefaultMapsQuery, "https://www.google.com/maps?output=embed&q=Reforma"},
		{"Av. Reforma 222", DefaultMapsQuery, "https://www.google.com/maps?q=Av.%20Reforma%20222&output=embed"},
		{"https://osm.org/x", DefaultMapsQuery, "https://www.google.com/maps?q=https%3A%2F%2Fosm.org%2Fx&output=embed"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, MapsEmbed(c.in, c.fallback), c.in)
	}
}
