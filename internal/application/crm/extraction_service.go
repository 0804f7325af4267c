package crm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/instrategy/salesflow/internal/domain/crm"
	"github.com/instrategy/salesflow/internal/infrastructure/gemini"
)

// TextGenerator is the model call the extraction flow needs
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (*gemini.Result, error)
}

// ParseType selects which extraction prompt to use
type ParseType string

const (
	ParseContacts  ParseType = "contacts"
	ParseCompanies ParseType = "companies"
)

// Failure reasons surfaced to API clients.
const (
	ReasonNoKey       = "no_gemini_key"
	ReasonGeminiError = "gemini_error"
	ReasonException   = "exception"
)

const (
	// Company names fetched as prompt context, and how many of them
	// actually make it into the prompt.
	contextNamesFetch  = 1000
	contextNamesPrompt = 200
)

// ParseOutcome is the structured result of one extraction attempt.
// Exactly one of Parsed/Raw is meaningful on success; Reason is set
// only on failure.
type ParseOutcome struct {
	OK      bool
	Parsed  json.RawMessage
	Raw     string
	Reason  string
	Message string
	Status  int
	Body    string
}

// HTTPStatus maps the outcome to the status the API must return. A
// missing API key is a degraded-but-healthy condition, not an error.
func (o *ParseOutcome) HTTPStatus() int {
	switch o.Reason {
	case "", ReasonNoKey:
		return http.StatusOK
	case ReasonGeminiError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ExtractionService turns free-form notes into structured CRM records
type ExtractionService struct {
	llm       TextGenerator // nil when no API key is configured
	companies crm.CompanyRepository
	logger    *zap.Logger
}

// NewExtractionService creates a new ExtractionService
func NewExtractionService(llm TextGenerator, companies crm.CompanyRepository, logger *zap.Logger) *ExtractionService {
	return &ExtractionService{llm: llm, companies: companies, logger: logger}
}

// Parse runs the extraction prompt for the given type over the text
func (s *ExtractionService) Parse(ctx context.Context, parseType ParseType, text string) *ParseOutcome {
	if s.llm == nil {
		return &ParseOutcome{
			Reason:  ReasonNoKey,
			Message: "text extraction is disabled: no Gemini API key configured",
		}
	}

	var prompt string
	if parseType == ParseCompanies {
		prompt = companyPrompt(text)
	} else {
		prompt = contactPrompt(text, s.companyNames(ctx))
	}

	result, err := s.llm.GenerateContent(ctx, prompt)
	if err != nil {
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) {
			return &ParseOutcome{
				Reason: ReasonGeminiError,
				Status: apiErr.StatusCode,
				Body:   apiErr.Body,
			}
		}
		return &ParseOutcome{Reason: ReasonException, Message: err.Error()}
	}

	if result.Text == "" {
		return &ParseOutcome{OK: true, Raw: result.Raw}
	}
	if parsed, ok := gemini.FirstJSON(result.Text); ok {
		return &ParseOutcome{OK: true, Parsed: parsed}
	}
	return &ParseOutcome{OK: true, Raw: result.Text}
}

// companyNames fetches known company names as prompt context. The fetch
// is best effort: extraction still runs without it.
func (s *ExtractionService) companyNames(ctx context.Context) []string {
	names, err := s.companies.ListNames(ctx, contextNamesFetch)
	if err != nil {
		s.logger.Warn("company name fetch for extraction context failed", zap.Error(err))
		return nil
	}
	if len(names) > contextNamesPrompt {
		names = names[:contextNamesPrompt]
	}
	return names
}

func companyPrompt(text string) string {
	return fmt.Sprintf(`You are a data extractor. Extract companies mentioned in the following Spanish or English text and return a JSON object with a single top-level key "items" whose value is an array of company objects.

For each company include as many of these fields as you can detect:
- name: official company name (string)
- country: country or best-guess (string)
- sector: industry/sector (string)
- total_revenue: numeric or string if available (string)
- net_profit: numeric or string if available (string)
- lead_status: one of "lead", "prospect", "customer", "unknown" if inferable (string)
- source: short string saying where it was mentioned (optional)
- confidence: number between 0 and 1 (optional)

Return ONLY valid JSON (no surrounding explanation). Example:
{"items":[{"name":"Acme Corp","country":"Peru","sector":"Agritech","lead_status":"lead"}]}

Text:
%s`, text)
}

func contactPrompt(text string, knownCompanies []string) string {
	var sb strings.Builder
	sb.WriteString(`Eres un extractor de datos. Extrae contactos individuales del texto (en español o inglés) y devuelve SOLO un objeto JSON válido con una clave de nivel superior "items", cuyo valor es un arreglo de contactos.

REQUISITOS DE CADA CONTACTO (usa estos nombres EXACTOS de campos):
- first_name: nombre(s) de pila (string)
- last_name: apellido(s) (string)
- company: nombre de empresa donde trabaja (string)
- cargo: el cargo o función que realiza (string)
- email: correo electrónico (string) [opcional, puede omitirse si no está]
- telefono: número telefónico en formato local o internacional (string) [opcional, puede omitirse si no está]
- country: país (string)
- role: SOLO puede ser "Trabajador" o "Director General". Si el cargo describe al director general/CEO/gerente general, usa "Director General"; en caso contrario usa "Trabajador".

RESTRICCIONES:
- Devuelve ÚNICAMENTE JSON (sin explicación, sin markdown).
- Si un dato no aparece, omite ese campo (no lo dejes vacío).
- No inventes correos o teléfonos.

FORMATO: Devuelve JSON compacto en una sola línea (sin saltos de línea ni espacios innecesarios).

EJEMPLO DE SALIDA (solo como guía del formato):
{"items":[{"first_name":"María","last_name":"Rivas","company":"Andes AgroTech Solutions","cargo":"Gerente de Operaciones","email":"maria@ejemplo.com","country":"Perú","role":"Trabajador"}]}

`)
	if len(knownCompanies) > 0 {
		sb.WriteString("Empresas conocidas (para desambiguar si es necesario): ")
		sb.WriteString(strings.Join(knownCompanies, ", "))
		sb.WriteString(".\n\n")
	}
	sb.WriteString("TEXTO:\n")
	sb.WriteString(text)
	return sb.String()
}
