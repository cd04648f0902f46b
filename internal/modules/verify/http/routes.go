package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"prodcheck/internal/modules/verify/domain"
	"prodcheck/internal/modules/verify/infra"
)

// Module wires up dependencies for the verification pages and API.
type Module struct {
	validator *domain.Validator
	verifier  *domain.Verifier
	store     domain.HandoffStore
	inflight  *infra.InFlight
	entryURL  string
	resultURL string
	log       *zap.Logger
}

func NewModule(v *domain.Validator, verifier *domain.Verifier, store domain.HandoffStore) *Module {
	return &Module{
		validator: v,
		verifier:  verifier,
		store:     store,
		inflight:  infra.NewInFlight(),
		entryURL:  "/",
		resultURL: "/result",
		log:       zap.NewNop(),
	}
}

func (m *Module) WithPages(entryURL, resultURL string) *Module {
	if entryURL != "" {
		m.entryURL = entryURL
	}
	if resultURL != "" {
		m.resultURL = resultURL
	}
	return m
}

func (m *Module) WithLogger(l *zap.Logger) *Module {
	if l != nil {
		m.log = l
	}
	return m
}

func (m *Module) Register(r fiber.Router) {
	sub := &submission{
		validator: m.validator,
		verifier:  m.verifier,
		store:     m.store,
		inflight:  m.inflight,
		log:       m.log,
	}

	// -------- pages --------
	r.Get(m.entryURL, EntryPageHandler(m.validator))
	r.Post("/verify", SubmitPageHandler(sub, m.validator, m.resultURL))
	r.Get(m.resultURL, ResultPageHandler(m.store, m.entryURL, m.log))
	r.Post("/home", HomeHandler(m.store, m.entryURL))

	// -------- api --------
	api := r.Group("/api/v1")
	api.Post("/codes/validate", ValidateCodeHandler(m.validator))
	api.Post("/codes/sanitize", SanitizeCodeHandler())
	api.Post("/verify", VerifyHandler(sub, m.resultURL))
	api.Get("/result", GetResultHandler(m.store, m.entryURL, m.log))
	api.Delete("/result", ClearResultHandler(m.store))
}
