package uicopy

// Key — имя строки интерфейса. Набор ключей фиксирован на этапе компиляции.
type Key string

const (
	BrandMark     Key = "brand_mark"
	BrandTitle    Key = "brand_title"
	BrandSubtitle Key = "brand_subtitle"

	NavHomeLabel    Key = "nav_home_label"
	NavAboutLabel   Key = "nav_about_label"
	NavLearnLabel   Key = "nav_learn_label"
	NavContactLabel Key = "nav_contact_label"

	FooterTitle        Key = "footer_title"
	FooterText         Key = "footer_text"
	FooterContactTitle Key = "footer_contact_title"
	FooterSocialTitle  Key = "footer_social_title"
	FooterBottom       Key = "footer_bottom"

	IndexEyebrow         Key = "index_eyebrow"
	HeroPrimaryCTA       Key = "hero_primary_cta"
	HeroSecondaryCTA     Key = "hero_secondary_cta"
	IndexIdentityEyebrow Key = "index_identity_eyebrow"
	IndexServicesEyebrow Key = "index_services_eyebrow"
	IndexServicesIntro   Key = "index_services_intro"
	HeroCardTitle        Key = "hero_card_title"
	HeroCardText         Key = "hero_card_text"

	Metric1Value  Key = "metric_1_value"
	Metric1Prefix Key = "metric_1_prefix"
	Metric1Suffix Key = "metric_1_suffix"
	Metric1Label  Key = "metric_1_label"
	Metric2Value  Key = "metric_2_value"
	Metric2Prefix Key = "metric_2_prefix"
	Metric2Suffix Key = "metric_2_suffix"
	Metric2Label  Key = "metric_2_label"
	Metric3Value  Key = "metric_3_value"
	Metric3Prefix Key = "metric_3_prefix"
	Metric3Suffix Key = "metric_3_suffix"
	Metric3Label  Key = "metric_3_label"

	ContactHeading         Key = "contact_heading"
	ContactFormHeading     Key = "contact_form_heading"
	ContactButtonLabel     Key = "contact_button_label"
	ContactDirectLabel     Key = "contact_direct_label"
	SocialLabelFacebook    Key = "social_label_facebook"
	SocialLabelInstagram   Key = "social_label_instagram"
	SocialLabelX           Key = "social_label_x"
	SocialLabelLinkedIn    Key = "social_label_linkedin"
	ContactLabelWhatsApp   Key = "contact_label_whatsapp"
	ContactLabelEmail      Key = "contact_label_email"
	ContactLabelPhone      Key = "contact_label_phone"
	ContactLabelAddress    Key = "contact_label_address"
	ContactLabelName       Key = "contact_label_name"
	ContactLabelEmailField Key = "contact_label_email_field"
	ContactLabelMessage    Key = "contact_label_message"
	ContactAlertSent       Key = "contact_alert_sent"
	ContactAlertPending    Key = "contact_alert_pending"

	AboutEyebrow    Key = "about_eyebrow"
	TeamEyebrow     Key = "team_eyebrow"
	TeamIntro       Key = "team_intro"
	LocationHeading Key = "location_heading"
	LocationIntro   Key = "location_intro"

	LearnMoreEyebrow   Key = "learn_more_eyebrow"
	LearnMoreLinkLabel Key = "learn_more_link_label"
)

type entry struct {
	key Key
	def string
}

// defaults в порядке показа в админке.
var defaults = []entry{
	{BrandMark, "AC"},
	{BrandTitle, "Agencia Contable"},
	{BrandSubtitle, "Estrategia financiera en México"},
	{NavHomeLabel, "Inicio"},
	{NavAboutLabel, "Nosotros"},
	{NavLearnLabel, "Aprende más"},
	{NavContactLabel, "Contactar"},
	{FooterTitle, "Atención directa"},
	{FooterText, "Agenda una cita con nuestro equipo y recibe un diagnóstico inicial."},
	{FooterContactTitle, "Contacto"},
	{FooterSocialTitle, "Redes"},
	{FooterBottom, "© 2026 Agencia Contable. Todos los derechos reservados."},
	{IndexEyebrow, "Firma contable en México"},
	{HeroPrimaryCTA, "Agenda una asesoría"},
	{HeroSecondaryCTA, "Explorar contenido"},
	{IndexIdentityEyebrow, "Identidad"},
	{IndexServicesEyebrow, "Lo que hacemos"},
	{IndexServicesIntro, "Servicios diseñados para simplificar tu operación y fortalecer tu estrategia."},
	{HeroCardTitle, "Respaldo integral"},
	{HeroCardText, "Coordinamos contabilidad, fiscal y nómina para que tomes decisiones seguras y oportunas."},
	{Metric1Value, "350"},
	{Metric1Prefix, "+"},
	{Metric1Suffix, ""},
	{Metric1Label, "clientes activos"},
	{Metric2Value, "12"},
	{Metric2Prefix, ""},
	{Metric2Suffix, ""},
	{Metric2Label, "trayectoria"},
	{Metric3Value, "98"},
	{Metric3Prefix, ""},
	{Metric3Suffix, "%"},
	{Metric3Label, "satisfacción"},
	{ContactHeading, "Hablemos de tu crecimiento"},
	{ContactFormHeading, "Envíanos un mensaje"},
	{ContactButtonLabel, "Enviar"},
	{ContactDirectLabel, "Contacto Directo"},
	{SocialLabelFacebook, "Facebook"},
	{SocialLabelInstagram, "Instagram"},
	{SocialLabelX, "X"},
	{SocialLabelLinkedIn, "LinkedIn"},
	{ContactLabelWhatsApp, "WhatsApp"},
	{ContactLabelEmail, "Email"},
	{ContactLabelPhone, "Teléfono"},
	{ContactLabelAddress, "Dirección"},
	{ContactLabelName, "Nombre"},
	{ContactLabelEmailField, "Correo"},
	{ContactLabelMessage, "Mensaje"},
	{ContactAlertSent, "Mensaje enviado. Te responderemos pronto."},
	{ContactAlertPending, "Mensaje registrado. Configura el correo SMTP para envío automático."},
	{AboutEyebrow, "Nosotros"},
	{TeamEyebrow, "Personas"},
	{TeamIntro, "Profesionales con experiencia en contabilidad, fiscal y estrategia financiera."},
	{LocationHeading, "Estamos en el corazón financiero"},
	{LocationIntro, "Visítanos en nuestras oficinas o agenda una reunión virtual con el equipo."},
	{LearnMoreEyebrow, "Conocimiento"},
	{LearnMoreLinkLabel, "Ver publicación"},
}

var known = func() map[Key]string {
	m := make(map[Key]string, len(defaults))
	for _, e := range defaults {
		m[e.key] = e.def
	}
	return m
}()

// Keys — все известные ключи в порядке показа.
func Keys() []Key {
	out := make([]Key, len(defaults))
	for i, e := range defaults {
		out[i] = e.key
	}
	return out
}

// Known сообщает, входит ли ключ в фиксированный набор.
func Known(k Key) bool {
	_, ok := known[k]
	return ok
}

// Default — значение по умолчанию ("" для неизвестного ключа).
func Default(k Key) string { return known[k] }

// Defaults — свежая копия таблицы значений по умолчанию.
func Defaults() Copy {
	c := make(Copy, len(defaults))
	for _, e := range defaults {
		c[string(e.key)] = e.def
	}
	return c
}
