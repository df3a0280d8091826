package models

// Однострочные таблицы с текстами страниц. Значения по умолчанию — те же,
// что получает свежая база после seed.

// SiteSettings — контакты и соцсети, общие для всех страниц.
type SiteSettings struct {
	ID              int64  `db:"id"`
	ContactEmail    string `db:"contact_email"`
	WhatsAppNumber  string `db:"whatsapp_number"`
	PhoneNumber     string `db:"phone_number"`
	AddressText     string `db:"address_text"`
	SocialFacebook  string `db:"social_facebook"`
	SocialInstagram string `db:"social_instagram"`
	SocialX         string `db:"social_x"`
	SocialLinkedIn  string `db:"social_linkedin"`
}

func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ContactEmail:    "contacto@agencia.mx",
		WhatsAppNumber:  "+5215512345678",
		PhoneNumber:     "+52 55 1234 5678",
		AddressText:     "Ciudad de México, México",
		SocialFacebook:  "https://facebook.com",
		SocialInstagram: "https://instagram.com",
		SocialX:         "https://x.com",
		SocialLinkedIn:  "https://linkedin.com",
	}
}

// IndexContent — тексты главной страницы.
type IndexContent struct {
	ID            int64  `db:"id"`
	HeroTitle     string `db:"hero_title"`
	HeroSubtitle  string `db:"hero_subtitle"`
	MissionTitle  string `db:"mission_title"`
	MissionText   string `db:"mission_text"`
	ValuesTitle   string `db:"values_title"`
	ValuesText    string `db:"values_text"`
	ServicesTitle string `db:"services_title"`
	ContactTitle  string `db:"contact_title"`
	ContactText   string `db:"contact_text"`
}

func DefaultIndexContent() IndexContent {
	return IndexContent{
		HeroTitle:     "Contabilidad clara, crecimiento seguro",
		HeroSubtitle:  "Acompañamos a negocios mexicanos con planeación fiscal, cumplimiento y estrategia financiera.",
		MissionTitle:  "Misión",
		MissionText:   "Impulsar a nuestros clientes con soluciones contables confiables, transparentes y oportunas.",
		ValuesTitle:   "Valores",
		ValuesText:    "Ética, precisión, confidencialidad, enfoque humano y mejora continua.",
		ServicesTitle: "Servicios",
		ContactTitle:  "Contacto",
		ContactText:   "Agenda una asesoría y recibe un diagnóstico inicial sin costo.",
	}
}

// AboutContent — страница «Nosotros».
type AboutContent struct {
	ID             int64  `db:"id"`
	Title          string `db:"title"`
	StoryText      string `db:"story_text"`
	TeamTitle      string `db:"team_title"`
	LocationTitle  string `db:"location_title"`
	LocationMapURL string `db:"location_map_url"`
}

func DefaultAboutContent() AboutContent {
	return AboutContent{
		Title: "Nuestra trayectoria",
		StoryText: "Más de una década acompañando a empresas familiares, startups y corporativos en México, " +
			"con soluciones contables y fiscales que respaldan cada decisión.",
		TeamTitle:      "Equipo",
		LocationTitle:  "Ubicación",
		LocationMapURL: "https://www.google.com/maps?q=Ciudad%20de%20Mexico&output=embed",
	}
}

// LearnMoreContent — шапка страницы с публикациями.
type LearnMoreContent struct {
	ID        int64  `db:"id"`
	Title     string `db:"title"`
	IntroText string `db:"intro_text"`
}

func DefaultLearnMoreContent() LearnMoreContent {
	return LearnMoreContent{
		Title: "Aprende más",
		IntroText: "Consejos, noticias y análisis para tomar decisiones informadas en tu negocio. " +
			"Explora nuestras publicaciones recientes.",
	}
}
