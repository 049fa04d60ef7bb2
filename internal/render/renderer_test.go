package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tbourn/go-hosting-portal/internal/domain"
)

func baseData(title string) map[string]any {
	return map[string]any{
		"Title": title,
		"User":  domain.Identity{UserID: 1, Username: "admin", DisplayName: "Administrador"},
	}
}

func TestNew_ParsesEmbeddedTemplates(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, name := range []string{
		"login.html", "dashboard.html", "contact.html", "hosting.html",
		"about.html", "vps.html", "dedicados.html", "dominios.html",
		"ssl.html", "backup.html", "correo.html", "seguridad.html",
		"monitoreo.html", "creador.html", "404.html", "500.html",
	} {
		if !r.Has(name) {
			t.Fatalf("template %q missing", name)
		}
	}
}

func TestRender_LoginAnonymous(t *testing.T) {
	r := MustNew()
	var buf bytes.Buffer

	data := map[string]any{"Title": "Iniciar sesión", "User": nil, "Username": "", "Error": ""}
	if err := r.Render(&buf, "login.html", data); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), `action="/login"`) {
		t.Fatalf("login form missing: %s", buf.String())
	}
}

func TestRender_DashboardWithServices(t *testing.T) {
	r := MustNew()
	var buf bytes.Buffer

	data := baseData("Panel")
	data["Services"] = []domain.Service{{Title: "VPS Pro", Price: "$5", Summary: "rápido"}}
	if err := r.Render(&buf, "dashboard.html", data); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "VPS Pro") || !strings.Contains(out, "Administrador") {
		t.Fatalf("dashboard missing content: %s", out)
	}
}

func TestRender_HostingWithoutService(t *testing.T) {
	r := MustNew()
	var buf bytes.Buffer

	// Absent service: the template must fall back, not crash.
	data := baseData("Hosting web")
	data["Service"] = (*domain.Service)(nil)
	if err := r.Render(&buf, "hosting.html", data); err != nil {
		t.Fatalf("Render with nil service: %v", err)
	}
	if !strings.Contains(buf.String(), "no está disponible") {
		t.Fatalf("fallback notice missing: %s", buf.String())
	}
}

func TestRender_ContactPreservesValues(t *testing.T) {
	r := MustNew()
	var buf bytes.Buffer

	data := baseData("Contacto")
	data["AllTopics"] = []string{"Ventas", "Soporte"}
	data["Name"] = "Ana"
	data["Email"] = "ana@example.com"
	data["Message"] = "Hola"
	data["Error"] = "No pudimos guardar tu mensaje."
	data["Success"] = false
	if err := r.Render(&buf, "contact.html", data); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Ana", "ana@example.com", "Hola", "No pudimos guardar"} {
		if !strings.Contains(out, want) {
			t.Fatalf("form state %q not preserved: %s", want, out)
		}
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	r := MustNew()
	var buf bytes.Buffer
	if err := r.Render(&buf, "nope.html", nil); err == nil {
		t.Fatalf("expected error for unknown template")
	}
}
